// Package inputxml contains the encoding/xml mapping of an OpenCover report.
//
// Only the parts of the schema that the converter reads are mapped. Numeric
// attributes are kept as strings, like the rest of the raw XML model, and are
// parsed where they are consumed.
package inputxml

import (
	"encoding/xml"
	"strings"
)

// CoverageSession is the root element of an OpenCover report.
type CoverageSession struct {
	XMLName xml.Name   `xml:"CoverageSession"`
	Modules ModulesXML `xml:"Modules"`
}

// ModulesXML wraps the list of modules.
type ModulesXML struct {
	Module []ModuleXML `xml:"Module"`
}

// ModuleXML is a single instrumented assembly.
type ModuleXML struct {
	SkippedDueTo string     `xml:"skippedDueTo,attr"`
	Hash         string     `xml:"hash,attr"`
	ModulePath   string     `xml:"ModulePath"`
	ModuleName   string     `xml:"ModuleName"`
	Files        FilesXML   `xml:"Files"`
	Classes      ClassesXML `xml:"Classes"`
}

// FilesXML wraps the source files of a module.
type FilesXML struct {
	File []FileXML `xml:"File"`
}

// FileXML maps a file id to its absolute path.
type FileXML struct {
	UID      string `xml:"uid,attr"`
	FullPath string `xml:"fullPath,attr"`
}

// ClassesXML wraps the classes of a module.
type ClassesXML struct {
	Class []ClassXML `xml:"Class"`
}

// ClassXML is a physical class as reported by the instrumenter. Nested and
// compiler generated types appear as separate classes with a '/' in FullName.
type ClassXML struct {
	SkippedDueTo string     `xml:"skippedDueTo,attr"`
	FullName     string     `xml:"FullName"`
	Methods      MethodsXML `xml:"Methods"`
}

// MethodsXML wraps the methods of a class.
type MethodsXML struct {
	Method []MethodXML `xml:"Method"`
}

// MethodXML is a single method. Name is the mangled identifier, for example
// "System.Void Foo.Bar::Baz(System.Int32)".
type MethodXML struct {
	SkippedDueTo   string            `xml:"skippedDueTo,attr"`
	Visited        string            `xml:"visited,attr"`
	IsConstructor  string            `xml:"isConstructor,attr"`
	IsStatic       string            `xml:"isStatic,attr"`
	IsGetter       string            `xml:"isGetter,attr"`
	IsSetter       string            `xml:"isSetter,attr"`
	Name           string            `xml:"Name"`
	FileRef        *FileRefXML       `xml:"FileRef"`
	SequencePoints SequencePointsXML `xml:"SequencePoints"`
	BranchPoints   BranchPointsXML   `xml:"BranchPoints"`
}

// FileRefXML points to a FileXML of the owning module.
type FileRefXML struct {
	UID string `xml:"uid,attr"`
}

// SequencePointsXML wraps the sequence points of a method.
type SequencePointsXML struct {
	SequencePoint []SequencePointXML `xml:"SequencePoint"`
}

// SequencePointXML is a statement level instrumentation point.
type SequencePointXML struct {
	VisitCount  string `xml:"vc,attr"`
	UniqueSeqID string `xml:"uspid,attr"`
	Ordinal     string `xml:"ordinal,attr"`
	StartLine   string `xml:"sl,attr"`
	StartColumn string `xml:"sc,attr"`
	EndLine     string `xml:"el,attr"`
	EndColumn   string `xml:"ec,attr"`
	FileID      string `xml:"fileid,attr"`
}

// BranchPointsXML wraps the branch points of a method.
type BranchPointsXML struct {
	BranchPoint []BranchPointXML `xml:"BranchPoint"`
}

// BranchPointXML is a decision point. StartLine is optional; older OpenCover
// versions do not write it.
type BranchPointXML struct {
	VisitCount  string `xml:"vc,attr"`
	UniqueSeqID string `xml:"uspid,attr"`
	Ordinal     string `xml:"ordinal,attr"`
	Offset      string `xml:"offset,attr"`
	Path        string `xml:"path,attr"`
	StartLine   string `xml:"sl,attr"`
	FileID      string `xml:"fileid,attr"`
}

// IsSkipped reports whether the instrumenter excluded the module.
func (m ModuleXML) IsSkipped() bool { return m.SkippedDueTo != "" }

// IsSkipped reports whether the instrumenter excluded the class.
func (c ClassXML) IsSkipped() bool { return c.SkippedDueTo != "" }

// IsSkipped reports whether the instrumenter excluded the method.
func (m MethodXML) IsSkipped() bool { return m.SkippedDueTo != "" }

// IsAccessor reports whether the method is a property getter or setter.
func (m MethodXML) IsAccessor() bool {
	return strings.EqualFold(m.IsGetter, "true") || strings.EqualFold(m.IsSetter, "true")
}

// HasFileRef reports whether the method points to a source file.
func (m MethodXML) HasFileRef() bool { return m.FileRef != nil }
