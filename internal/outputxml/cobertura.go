// Package outputxml contains the Cobertura 04 document produced by the converter
// and its serialisation.
package outputxml

import (
	"encoding/xml"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// DocType is written in front of every document.
const DocType = `<!DOCTYPE coverage SYSTEM "http://cobertura.sourceforge.net/xml/coverage-04.dtd">`

// Rate is a coverage ratio in [0, 1]. It is written with a period decimal
// separator and the shortest representation that round-trips.
type Rate float64

// MarshalXMLAttr implements xml.MarshalerAttr.
func (r Rate) MarshalXMLAttr(name xml.Name) (xml.Attr, error) {
	return xml.Attr{Name: name, Value: FormatRate(float64(r))}, nil
}

// FormatRate formats a rate without exponent or grouping.
func FormatRate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// NewRate returns covered/valid, or 1 when valid is 0.
func NewRate(covered, valid int64) Rate {
	if valid == 0 {
		return 1
	}
	return Rate(float64(covered) / float64(valid))
}

// Coverage is the document root.
type Coverage struct {
	XMLName         xml.Name `xml:"coverage"`
	LineRate        Rate     `xml:"line-rate,attr"`
	BranchRate      Rate     `xml:"branch-rate,attr"`
	LinesCovered    int64    `xml:"lines-covered,attr"`
	LinesValid      int64    `xml:"lines-valid,attr"`
	BranchesCovered int64    `xml:"branches-covered,attr"`
	BranchesValid   int64    `xml:"branches-valid,attr"`
	Complexity      int      `xml:"complexity,attr"`
	Version         string   `xml:"version,attr"`
	Timestamp       int64    `xml:"timestamp,attr"`
	Sources         Sources  `xml:"sources"`
	Packages        Packages `xml:"packages"`
}

// Sources holds at most one source root.
type Sources struct {
	Source []string `xml:"source"`
}

// Packages wraps the package list.
type Packages struct {
	Package []Package `xml:"package"`
}

// Package corresponds to one OpenCover module.
type Package struct {
	Name       string  `xml:"name,attr"`
	LineRate   Rate    `xml:"line-rate,attr"`
	BranchRate Rate    `xml:"branch-rate,attr"`
	Complexity int     `xml:"complexity,attr"`
	Classes    Classes `xml:"classes"`
}

// Classes wraps the class list.
type Classes struct {
	Class []Class `xml:"class"`
}

// Class is a logical class. Lines is the flattened union of its methods' lines.
type Class struct {
	Name       string  `xml:"name,attr"`
	Filename   string  `xml:"filename,attr"`
	LineRate   Rate    `xml:"line-rate,attr"`
	BranchRate Rate    `xml:"branch-rate,attr"`
	Complexity int     `xml:"complexity,attr"`
	Methods    Methods `xml:"methods"`
	Lines      Lines   `xml:"lines"`
}

// Methods wraps the method list.
type Methods struct {
	Method []Method `xml:"method"`
}

// Method is a single method with its own line list.
type Method struct {
	Name       string `xml:"name,attr"`
	Signature  string `xml:"signature,attr"`
	LineRate   Rate   `xml:"line-rate,attr"`
	BranchRate Rate   `xml:"branch-rate,attr"`
	Complexity int    `xml:"complexity,attr"`
	Lines      Lines  `xml:"lines"`
}

// Lines wraps a line list.
type Lines struct {
	Line []Line `xml:"line"`
}

// Line holds only value fields, so copying a Line yields an independent line.
type Line struct {
	Number            int    `xml:"number,attr"`
	Hits              int64  `xml:"hits,attr"`
	Branch            bool   `xml:"branch,attr"`
	ConditionCoverage string `xml:"condition-coverage,attr,omitempty"`
}

// Write serialises the document with the XML declaration and the Cobertura DOCTYPE.
func Write(w io.Writer, doc *Coverage) error {
	if doc == nil {
		return errors.New("cannot write a nil coverage document")
	}
	if _, err := io.WriteString(w, xml.Header+DocType+"\n"); err != nil {
		return errors.Wrap(err, "writing document header")
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return errors.Wrap(err, "encoding coverage document")
	}
	if err := enc.Flush(); err != nil {
		return errors.Wrap(err, "flushing coverage document")
	}
	_, err := io.WriteString(w, "\n")
	return err
}
