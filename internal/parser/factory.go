package parser

import (
	"github.com/pkg/errors"

	"github.com/IgorBayerl/ReportGenerator/opencover_converter/internal/filesystem"
)

// ErrUnsupportedReport is returned when no registered parser accepts a file.
var ErrUnsupportedReport = errors.New("no suitable parser found")

var registeredParsers []IParser

// RegisterParser adds a parser to the list of available parsers.
// This should be called by each parser implementation in its init() function.
func RegisterParser(p IParser) {
	registeredParsers = append(registeredParsers, p)
}

// GetParsers returns all registered parsers.
func GetParsers() []IParser {
	return registeredParsers
}

// FindParserForFile returns the first registered parser that supports the file.
func FindParserForFile(fsys filesystem.Filesystem, filePath string) (IParser, error) {
	for _, p := range registeredParsers {
		if p.SupportsFile(fsys, filePath) {
			return p, nil
		}
	}
	return nil, errors.Wrapf(ErrUnsupportedReport, "file %s is not an OpenCover report", filePath)
}
