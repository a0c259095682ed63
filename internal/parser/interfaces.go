package parser

import (
	"github.com/IgorBayerl/ReportGenerator/opencover_converter/internal/filesystem"
	"github.com/IgorBayerl/ReportGenerator/opencover_converter/internal/inputxml"
)

// IParser defines the contract for coverage report parsers.
type IParser interface {
	Name() string
	// SupportsFile sniffs the file and reports whether Parse can read it.
	SupportsFile(fsys filesystem.Filesystem, filePath string) bool
	Parse(fsys filesystem.Filesystem, filePath string) (*inputxml.CoverageSession, error)
}
