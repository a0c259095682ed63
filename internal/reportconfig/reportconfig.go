package reportconfig

import (
	"github.com/IgorBayerl/ReportGenerator/opencover_converter/internal/logging"
	"github.com/IgorBayerl/ReportGenerator/opencover_converter/internal/parser/filtering"
)

// IReportConfiguration defines the configuration of a conversion run.
type IReportConfiguration interface {
	InputFile() string
	OutputFile() string
	SourcesDirectory() string
	IncludeGettersSetters() bool
	ModuleFilters() filtering.IFilter
	ClassFilters() filtering.IFilter
	VerbosityLevel() logging.VerbosityLevel
	ShowSummary() bool
}

// ReportConfiguration is the validated configuration built from Settings.
type ReportConfiguration struct {
	inputFile             string
	outputFile            string
	sourcesDirectory      string
	includeGettersSetters bool
	moduleFilters         filtering.IFilter
	classFilters          filtering.IFilter
	verbosity             logging.VerbosityLevel
	showSummary           bool
}

func (rc *ReportConfiguration) InputFile() string                      { return rc.inputFile }
func (rc *ReportConfiguration) OutputFile() string                     { return rc.outputFile }
func (rc *ReportConfiguration) SourcesDirectory() string               { return rc.sourcesDirectory }
func (rc *ReportConfiguration) IncludeGettersSetters() bool            { return rc.includeGettersSetters }
func (rc *ReportConfiguration) ModuleFilters() filtering.IFilter       { return rc.moduleFilters }
func (rc *ReportConfiguration) ClassFilters() filtering.IFilter        { return rc.classFilters }
func (rc *ReportConfiguration) VerbosityLevel() logging.VerbosityLevel { return rc.verbosity }
func (rc *ReportConfiguration) ShowSummary() bool                      { return rc.showSummary }

// NewReportConfiguration validates the settings. All problems are collected
// and returned together as a MultiError.
func NewReportConfiguration(s *Settings) (*ReportConfiguration, error) {
	var errs MultiError

	errs.Collect(IsNotEmpty(s.Input, "input"))
	errs.Collect(IsNotEmpty(s.Output, "output"))

	verbosity, err := logging.ParseVerbosity(s.Verbosity)
	errs.Collect(err)

	moduleFilters, err := filtering.NewDefaultFilter(s.ModuleFilters)
	errs.Collect(err)

	classFilters, err := filtering.NewDefaultFilter(s.ClassFilters)
	errs.Collect(err)

	if !errs.Empty() {
		return nil, errs
	}

	return &ReportConfiguration{
		inputFile:             s.Input,
		outputFile:            s.Output,
		sourcesDirectory:      s.Sources,
		includeGettersSetters: s.IncludeGettersSetters,
		moduleFilters:         moduleFilters,
		classFilters:          classFilters,
		verbosity:             verbosity,
		showSummary:           !s.HideSummary,
	}, nil
}
