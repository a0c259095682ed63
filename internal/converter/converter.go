// Package converter turns an OpenCover report into a Cobertura report.
//
// The OpenCover tree (modules, classes, methods, sequence points, branch points)
// is walked once. Classes are regrouped by their logical name: nested and
// compiler generated types never show up on their own, and the instrumented
// body of an async method is taken from its state machine. Every builder
// returns the subtree it built together with the coverage counts of that
// subtree; the caller sums the counts of its children. Nothing is shared
// between conversions.
package converter

import (
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/IgorBayerl/ReportGenerator/opencover_converter/internal/inputxml"
	"github.com/IgorBayerl/ReportGenerator/opencover_converter/internal/language/csharp"
	"github.com/IgorBayerl/ReportGenerator/opencover_converter/internal/logging"
	"github.com/IgorBayerl/ReportGenerator/opencover_converter/internal/outputxml"
	"github.com/IgorBayerl/ReportGenerator/opencover_converter/internal/parser/filtering"
)

// ErrNilReport is returned when no input report is passed to the converter.
var ErrNilReport = errors.New("openCoverReport must not be nil")

const (
	placeholderComplexity = 0
	placeholderVersion    = "0"
)

var logger = logging.ComponentLogger("converter")

// Config is the part of the configuration the converter needs.
type Config interface {
	// SourcesDirectory overrides the inferred source root when not empty.
	SourcesDirectory() string
	// IncludeGettersSetters keeps property accessors in the output.
	IncludeGettersSetters() bool
	// ModuleFilters selects modules by name. A nil filter includes everything.
	ModuleFilters() filtering.IFilter
	// ClassFilters selects logical classes by name. A nil filter includes everything.
	ClassFilters() filtering.IFilter
}

// conversionOrchestrator carries the settings of a single conversion.
type conversionOrchestrator struct {
	sourcesDirectory string
	classifier       *csharp.Classifier
	moduleFilter     filtering.IFilter
	classFilter      filtering.IFilter
	now              func() time.Time
}

func newConversionOrchestrator(config Config, now func() time.Time) *conversionOrchestrator {
	o := &conversionOrchestrator{
		classifier:   csharp.NewClassifier(false),
		moduleFilter: filtering.IncludeAll(),
		classFilter:  filtering.IncludeAll(),
		now:          now,
	}
	if config == nil {
		return o
	}
	o.sourcesDirectory = config.SourcesDirectory()
	o.classifier = csharp.NewClassifier(config.IncludeGettersSetters())
	if f := config.ModuleFilters(); f != nil {
		o.moduleFilter = f
	}
	if f := config.ClassFilters(); f != nil {
		o.classFilter = f
	}
	return o
}

// ConvertToCobertura converts an OpenCover session into a Cobertura document.
// A nil config behaves like the defaults: inferred source root, no accessors,
// no filters.
func ConvertToCobertura(report *inputxml.CoverageSession, config Config) (*outputxml.Coverage, error) {
	return newConversionOrchestrator(config, time.Now).convert(report)
}

func (o *conversionOrchestrator) convert(report *inputxml.CoverageSession) (*outputxml.Coverage, error) {
	if report == nil {
		return nil, ErrNilReport
	}

	modules := o.includedModules(report)
	root := o.resolveSourceRoot(modules)

	doc := &outputxml.Coverage{
		Complexity: placeholderComplexity,
		Version:    placeholderVersion,
		Timestamp:  o.now().Unix(),
	}
	if root.Path != "" {
		doc.Sources.Source = []string{root.Path}
	}

	var total coverageCounts
	for _, module := range modules {
		pkg, counts := o.buildPackage(module, root)
		doc.Packages.Package = append(doc.Packages.Package, pkg)
		total = total.add(counts)
	}

	doc.LineRate = total.lineRate()
	doc.BranchRate = total.branchRate()
	doc.LinesCovered = total.LinesCovered
	doc.LinesValid = total.LinesValid
	doc.BranchesCovered = total.BranchesCovered
	doc.BranchesValid = total.BranchesValid

	logger.WithFields(map[string]interface{}{
		"packages":      len(doc.Packages.Package),
		"linesCovered":  total.LinesCovered,
		"linesValid":    total.LinesValid,
		"branchesValid": total.BranchesValid,
	}).Debug("conversion finished")
	return doc, nil
}

// includedModules drops skipped and filtered modules, keeping declaration order.
func (o *conversionOrchestrator) includedModules(report *inputxml.CoverageSession) []inputxml.ModuleXML {
	var modules []inputxml.ModuleXML
	for _, module := range report.Modules.Module {
		if module.IsSkipped() {
			logger.WithField("module", module.ModuleName).Debug("module skipped by instrumenter")
			continue
		}
		if !o.moduleFilter.IsElementIncludedInReport(module.ModuleName) {
			logger.WithField("module", module.ModuleName).Debug("module excluded by filter")
			continue
		}
		modules = append(modules, module)
	}
	return modules
}

func parseInt(s string) (int, bool) {
	v, err := strconv.Atoi(s)
	return v, err == nil
}

func parseVisitCount(s string) int64 {
	v, _ := strconv.ParseInt(s, 10, 64)
	return v
}
