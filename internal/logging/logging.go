package logging

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// AppName is used as the "app" field of every log entry.
const AppName = "opencover-converter"

// VerbosityLevel defines the logging verbosity.
type VerbosityLevel int

const (
	Verbose VerbosityLevel = iota
	Info
	Warning
	Error
	Off
)

var verbosityNames = map[string]VerbosityLevel{
	"verbose": Verbose,
	"info":    Info,
	"warning": Warning,
	"error":   Error,
	"off":     Off,
}

// ParseVerbosity parses a level name case-insensitively.
func ParseVerbosity(s string) (VerbosityLevel, error) {
	level, ok := verbosityNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return Info, errors.Errorf("invalid verbosity level '%s'. Valid levels are Verbose, Info, Warning, Error, Off", s)
	}
	return level, nil
}

func (v VerbosityLevel) String() string {
	switch v {
	case Verbose:
		return "Verbose"
	case Info:
		return "Info"
	case Warning:
		return "Warning"
	case Error:
		return "Error"
	case Off:
		return "Off"
	}
	return "Unknown"
}

func (v VerbosityLevel) logrusLevel() log.Level {
	switch v {
	case Verbose:
		return log.DebugLevel
	case Warning:
		return log.WarnLevel
	case Error:
		return log.ErrorLevel
	case Off:
		return log.PanicLevel
	}
	return log.InfoLevel
}

// AppLogger returns the shared application logger.
func AppLogger() *log.Logger {
	return log.StandardLogger()
}

// ComponentLogger returns an entry tagged with the given component.
func ComponentLogger(component string) *log.Entry {
	return AppLogger().WithFields(log.Fields{"app": AppName, "component": component})
}

// Configure sets output and level of the application logger. Off discards everything.
func Configure(out io.Writer, level VerbosityLevel) {
	logger := AppLogger()
	logger.SetLevel(level.logrusLevel())
	logger.SetFormatter(&log.TextFormatter{DisableTimestamp: true, DisableColors: true})
	if level == Off {
		logger.SetOutput(io.Discard)
		return
	}
	logger.SetOutput(out)
}
