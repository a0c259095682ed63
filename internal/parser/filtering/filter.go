// Package filtering implements the "+Include*;-Exclude*" filters used to
// restrict which modules and classes end up in the converted report.
package filtering

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

// IFilter decides whether a named element is part of the report.
type IFilter interface {
	IsElementIncludedInReport(name string) bool
	HasCustomFilters() bool
}

// DefaultFilter matches names against include and exclude wildcard patterns.
// Excludes win over includes.
type DefaultFilter struct {
	includeFilters []*regexp.Regexp
	excludeFilters []*regexp.Regexp
	hasCustom      bool
}

// IncludeAll returns a filter that accepts every name.
func IncludeAll() IFilter {
	f, _ := NewDefaultFilter(nil)
	return f
}

// NewDefaultFilter compiles filters of the form "+Pattern" or "-Pattern".
// '*' matches any sequence and '?' a single character. Empty entries are ignored.
func NewDefaultFilter(filters []string) (IFilter, error) {
	df := &DefaultFilter{}
	var errs []string

	for _, f := range filters {
		f = strings.TrimSpace(f)
		switch {
		case f == "":
			continue
		case strings.HasPrefix(f, "+"):
			re, err := createFilterRegex(f)
			if err != nil {
				errs = append(errs, "invalid include filter '"+f+"': "+err.Error())
				continue
			}
			df.includeFilters = append(df.includeFilters, re)
		case strings.HasPrefix(f, "-"):
			re, err := createFilterRegex(f)
			if err != nil {
				errs = append(errs, "invalid exclude filter '"+f+"': "+err.Error())
				continue
			}
			df.excludeFilters = append(df.excludeFilters, re)
		default:
			errs = append(errs, "filter '"+f+"' must start with '+' or '-'")
		}
	}

	if len(errs) > 0 {
		return nil, errors.Errorf("error creating filter: %s", strings.Join(errs, "; "))
	}

	df.hasCustom = len(df.includeFilters) > 0 || len(df.excludeFilters) > 0

	if len(df.includeFilters) == 0 {
		re, _ := createFilterRegex("+*")
		df.includeFilters = append(df.includeFilters, re)
	}

	return df, nil
}

// IsElementIncludedInReport checks if the given name matches the filter rules.
func (df *DefaultFilter) IsElementIncludedInReport(name string) bool {
	for _, excludeRe := range df.excludeFilters {
		if excludeRe.MatchString(name) {
			return false
		}
	}

	for _, includeRe := range df.includeFilters {
		if includeRe.MatchString(name) {
			return true
		}
	}
	return false
}

// HasCustomFilters returns true if any include or exclude filters were specified.
func (df *DefaultFilter) HasCustomFilters() bool {
	return df.hasCustom
}

// SplitFilterList splits a ';' or ',' separated filter list.
func SplitFilterList(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ';' || r == ',' })
	result := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			result = append(result, f)
		}
	}
	return result
}

// createFilterRegex converts "+Foo.*" to a case-insensitive anchored regex.
func createFilterRegex(filter string) (*regexp.Regexp, error) {
	if len(filter) < 2 {
		return nil, errors.New("empty filter pattern")
	}
	pattern := regexp.QuoteMeta(filter[1:])
	pattern = strings.ReplaceAll(pattern, `\*`, ".*")
	pattern = strings.ReplaceAll(pattern, `\?`, ".")

	return regexp.Compile("(?i)^" + pattern + "$")
}
