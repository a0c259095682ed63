package opencover

import (
	"encoding/xml"
	"io"

	"github.com/pkg/errors"

	"github.com/IgorBayerl/ReportGenerator/opencover_converter/internal/filereader"
	"github.com/IgorBayerl/ReportGenerator/opencover_converter/internal/filesystem"
	"github.com/IgorBayerl/ReportGenerator/opencover_converter/internal/inputxml"
	"github.com/IgorBayerl/ReportGenerator/opencover_converter/internal/logging"
	"github.com/IgorBayerl/ReportGenerator/opencover_converter/internal/parser"
)

const rootElement = "CoverageSession"

var logger = logging.ComponentLogger("parser")

// OpenCoverParser implements the parser.IParser interface for OpenCover XML reports.
type OpenCoverParser struct{}

// NewOpenCoverParser creates a new OpenCoverParser.
func NewOpenCoverParser() parser.IParser {
	return &OpenCoverParser{}
}

func init() {
	parser.RegisterParser(NewOpenCoverParser())
}

// Name returns the name of the parser.
func (p *OpenCoverParser) Name() string {
	return "OpenCover"
}

// SupportsFile checks whether the first element of the file is a CoverageSession.
func (p *OpenCoverParser) SupportsFile(fsys filesystem.Filesystem, filePath string) bool {
	f, err := fsys.Open(filePath)
	if err != nil {
		return false
	}
	defer f.Close()

	decoder := filereader.NewXMLDecoder(f)
	for {
		token, err := decoder.Token()
		if err != nil {
			return false
		}
		if se, ok := token.(xml.StartElement); ok {
			return se.Name.Local == rootElement
		}
	}
}

// Parse loads the whole report into memory.
func (p *OpenCoverParser) Parse(fsys filesystem.Filesystem, filePath string) (*inputxml.CoverageSession, error) {
	f, err := fsys.Open(filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", filePath)
	}
	defer f.Close()

	session, err := decodeSession(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal OpenCover XML from %s", filePath)
	}

	logger.WithFields(map[string]interface{}{
		"file":    filePath,
		"modules": len(session.Modules.Module),
	}).Debug("report loaded")
	return session, nil
}

func decodeSession(r io.Reader) (*inputxml.CoverageSession, error) {
	var session inputxml.CoverageSession
	if err := filereader.NewXMLDecoder(r).Decode(&session); err != nil {
		return nil, err
	}
	return &session, nil
}
