// Package csharp holds the knowledge about how the C# compiler names the types
// and methods it generates, as they show up in OpenCover reports.
package csharp

import (
	"regexp"
	"strings"
)

//go:generate go tool stringer -type=Kind

// Kind classifies a reported class or method.
type Kind int

const (
	// Logical is an entity a developer wrote and that appears in the output.
	Logical Kind = iota
	// CompilerGenerated is synthesized by the compiler (state machines,
	// closures, iterator helpers). It never appears in the output by itself.
	CompilerGenerated
	// SkipExplicit is excluded by the instrumenter or by configuration.
	SkipExplicit
)

// Predicate matches an entity name.
type Predicate func(name string) bool

// NameContains returns a predicate matching names that contain s.
func NameContains(s string) Predicate {
	return func(name string) bool { return strings.Contains(name, s) }
}

// NameMatches returns a predicate matching names against re.
func NameMatches(re *regexp.Regexp) Predicate {
	return re.MatchString
}

// iteratorHelperRegex matches lambda and iterator helper methods such as
// "System.Boolean Foo.Bar::<Baz>b__0(System.Int32)".
var iteratorHelperRegex = regexp.MustCompile(`::<.+>.+__`)

// DefaultClassPatterns mark a class name as compiler generated.
func DefaultClassPatterns() []Predicate {
	return []Predicate{NameContains("__"), NameContains("<"), NameContains("/")}
}

// DefaultMethodPatterns mark a method name as compiler generated.
func DefaultMethodPatterns() []Predicate {
	return []Predicate{NameMatches(iteratorHelperRegex)}
}

// Classifier decides the Kind of classes and methods.
type Classifier struct {
	classPatterns         []Predicate
	methodPatterns        []Predicate
	includeGettersSetters bool
}

// NewClassifier creates a Classifier with the default patterns.
func NewClassifier(includeGettersSetters bool) *Classifier {
	return &Classifier{
		classPatterns:         DefaultClassPatterns(),
		methodPatterns:        DefaultMethodPatterns(),
		includeGettersSetters: includeGettersSetters,
	}
}

// WithClassPatterns replaces the class patterns.
func (c *Classifier) WithClassPatterns(patterns ...Predicate) *Classifier {
	c.classPatterns = patterns
	return c
}

// WithMethodPatterns replaces the method patterns.
func (c *Classifier) WithMethodPatterns(patterns ...Predicate) *Classifier {
	c.methodPatterns = patterns
	return c
}

// ClassifyClass classifies a physical class by its full name.
func (c *Classifier) ClassifyClass(fullName string, skipped bool) Kind {
	if skipped {
		return SkipExplicit
	}
	if anyMatch(c.classPatterns, fullName) {
		return CompilerGenerated
	}
	return Logical
}

// ClassifyMethod classifies a method by its mangled name and flags.
func (c *Classifier) ClassifyMethod(name string, skipped, accessor bool) Kind {
	if skipped {
		return SkipExplicit
	}
	if anyMatch(c.methodPatterns, name) {
		return CompilerGenerated
	}
	if accessor && !c.includeGettersSetters {
		return SkipExplicit
	}
	return Logical
}

func anyMatch(patterns []Predicate, name string) bool {
	for _, p := range patterns {
		if p(name) {
			return true
		}
	}
	return false
}
