// Package cli implements the opencover-converter command: read an OpenCover
// report, convert it and save the Cobertura report.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/spf13/pflag"

	"github.com/IgorBayerl/ReportGenerator/opencover_converter/internal/converter"
	"github.com/IgorBayerl/ReportGenerator/opencover_converter/internal/filesystem"
	"github.com/IgorBayerl/ReportGenerator/opencover_converter/internal/logging"
	"github.com/IgorBayerl/ReportGenerator/opencover_converter/internal/outputxml"
	"github.com/IgorBayerl/ReportGenerator/opencover_converter/internal/parser"
	"github.com/IgorBayerl/ReportGenerator/opencover_converter/internal/parser/filtering"
	_ "github.com/IgorBayerl/ReportGenerator/opencover_converter/internal/parser/opencover"
	"github.com/IgorBayerl/ReportGenerator/opencover_converter/internal/reportconfig"
	"github.com/IgorBayerl/ReportGenerator/opencover_converter/internal/reporter/textsummary"
)

const (
	exitSuccess = 0
	exitFailure = 1
)

// namedArgRegex matches the "-key:value" argument style.
var namedArgRegex = regexp.MustCompile(`^--?(\w{2,}):(.+)$`)

// flagValues receives the parsed command line.
type flagValues struct {
	input                 string
	output                string
	sources               string
	includeGettersSetters bool
	config                string
	verbosity             string
	moduleFilters         string
	classFilters          string
	summary               bool
	help                  bool
}

func newFlagSet(v *flagValues) *pflag.FlagSet {
	flags := pflag.NewFlagSet(logging.AppName, pflag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.ParseErrorsWhitelist.UnknownFlags = true

	flags.StringVar(&v.input, "input", "", "OpenCover report to convert (required)")
	flags.StringVar(&v.output, "output", "", "Cobertura report to write (required)")
	flags.StringVar(&v.sources, "sources", "", "Source root; inferred from the report when empty")
	flags.BoolVar(&v.includeGettersSetters, "includeGettersSetters", false, "Keep property getters and setters")
	flags.StringVar(&v.config, "config", "", "Optional configuration file (YAML, JSON or TOML)")
	flags.StringVar(&v.verbosity, "verbosity", "Info", "Verbose, Info, Warning, Error or Off")
	flags.StringVar(&v.moduleFilters, "moduleFilters", "", "Module filters, e.g. \"+App*;-*.Tests\"")
	flags.StringVar(&v.classFilters, "classFilters", "", "Class filters, e.g. \"-App.Generated.*\"")
	flags.BoolVar(&v.summary, "summary", true, "Print a coverage summary after conversion")
	flags.BoolVarP(&v.help, "help", "h", false, "Show this help")
	return flags
}

// normalizeArgs rewrites "-key:value" into "--key=value". Keys are matched
// case-insensitively against the known flags; unknown keys are left for pflag
// to ignore.
func normalizeArgs(flags *pflag.FlagSet, args []string) []string {
	names := make(map[string]string)
	flags.VisitAll(func(f *pflag.Flag) {
		names[strings.ToLower(f.Name)] = f.Name
	})

	normalized := make([]string, 0, len(args))
	for _, arg := range args {
		match := namedArgRegex.FindStringSubmatch(arg)
		if match == nil {
			normalized = append(normalized, arg)
			continue
		}
		key := match[1]
		if name, ok := names[strings.ToLower(key)]; ok {
			key = name
		}
		normalized = append(normalized, "--"+key+"="+match[2])
	}
	return normalized
}

// Run executes the command and returns the process exit code. Diagnostics
// and the summary go to stdout.
func Run(args []string, stdout io.Writer, fsys filesystem.Filesystem) int {
	logging.Configure(stdout, logging.Info)
	logger := logging.ComponentLogger("cli")

	var values flagValues
	flags := newFlagSet(&values)
	if err := flags.Parse(normalizeArgs(flags, args)); err != nil {
		fmt.Fprintln(stdout, err)
		showHelp(stdout, flags)
		return exitFailure
	}
	if values.help {
		showHelp(stdout, flags)
		return exitSuccess
	}

	if values.config != "" {
		if _, err := fsys.Stat(values.config); err != nil {
			fmt.Fprintln(stdout, "Configuration file does not exist: "+values.config)
			return exitFailure
		}
	}
	settings, err := reportconfig.LoadSettings(values.config)
	if err != nil {
		fmt.Fprintln(stdout, err)
		return exitFailure
	}
	applyFlags(flags, &values, settings)

	if settings.Input == "" || settings.Output == "" {
		showHelp(stdout, flags)
		return exitFailure
	}

	config, err := reportconfig.NewReportConfiguration(settings)
	if err != nil {
		fmt.Fprintln(stdout, "Invalid configuration:")
		fmt.Fprintln(stdout, err)
		return exitFailure
	}
	logging.Configure(stdout, config.VerbosityLevel())

	inputFile, outputFile := config.InputFile(), config.OutputFile()
	if _, err := fsys.Stat(inputFile); err != nil {
		fmt.Fprintln(stdout, "Report does not exist: "+inputFile)
		return exitFailure
	}
	if abs, err := fsys.Abs(inputFile); err == nil {
		logger.WithField("file", abs).Debug("reading report")
	}

	p, err := parser.FindParserForFile(fsys, inputFile)
	if err != nil {
		fmt.Fprintf(stdout, "Failed to parse report: %s (%v)\n", inputFile, err)
		return exitFailure
	}
	session, err := p.Parse(fsys, inputFile)
	if err != nil {
		fmt.Fprintf(stdout, "Failed to parse report: %s (%v)\n", inputFile, err)
		return exitFailure
	}

	doc, err := converter.ConvertToCobertura(session, config)
	if err != nil {
		fmt.Fprintf(stdout, "Failed to convert report: %s (%v)\n", inputFile, err)
		return exitFailure
	}

	if err := saveReport(fsys, outputFile, doc); err != nil {
		fmt.Fprintf(stdout, "Failed to save report: %s (%v)\n", outputFile, err)
		return exitFailure
	}
	logger.WithField("file", outputFile).Debug("report saved")

	if config.ShowSummary() && config.VerbosityLevel() != logging.Off {
		builder := textsummary.NewTextSummaryReportBuilder(stdout)
		if err := builder.CreateReport(outputFile, textsummary.NewSummary(doc)); err != nil {
			logger.WithError(err).Warn("could not print summary")
		}
	}
	return exitSuccess
}

// applyFlags overrides file and environment settings with the flags that
// were given explicitly.
func applyFlags(flags *pflag.FlagSet, v *flagValues, s *reportconfig.Settings) {
	if flags.Changed("input") {
		s.Input = v.input
	}
	if flags.Changed("output") {
		s.Output = v.output
	}
	if flags.Changed("sources") {
		s.Sources = v.sources
	}
	if flags.Changed("includeGettersSetters") {
		s.IncludeGettersSetters = v.includeGettersSetters
	}
	if flags.Changed("verbosity") {
		s.Verbosity = v.verbosity
	}
	if flags.Changed("moduleFilters") {
		s.ModuleFilters = filtering.SplitFilterList(v.moduleFilters)
	}
	if flags.Changed("classFilters") {
		s.ClassFilters = filtering.SplitFilterList(v.classFilters)
	}
	if flags.Changed("summary") {
		s.HideSummary = !v.summary
	}
}

func saveReport(fsys filesystem.Filesystem, path string, doc *outputxml.Coverage) (err error) {
	f, err := fsys.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	w := bufio.NewWriter(f)
	if err := outputxml.Write(w, doc); err != nil {
		return err
	}
	return w.Flush()
}

func showHelp(out io.Writer, flags *pflag.FlagSet) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Parameters:")
	fmt.Fprintln(out, `["]-input:<OpenCover Report>["]`)
	fmt.Fprintln(out, `["]-output:<Cobertura Report>["]`)
	fmt.Fprintln(out, `["]-sources:<Source directory>["] (optional)`)
	fmt.Fprintln(out, `["]-includeGettersSetters:<true|false>["] (optional, default false)`)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Options:")
	fmt.Fprint(out, flags.FlagUsages())
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Example:")
	fmt.Fprintln(out, `   "-input:OpenCover.xml" "-output:Cobertura.xml"`)
}
