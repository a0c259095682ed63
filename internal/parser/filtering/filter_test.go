package filtering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultFilter(t *testing.T) {
	testCases := []struct {
		name       string
		filters    []string
		included   []string
		excluded   []string
		hasCustom  bool
		wantErrMsg string
	}{
		{
			name:     "No filters include everything",
			included: []string{"Foo", "Foo.Tests", ""},
		},
		{
			name:      "Include with wildcard",
			filters:   []string{"+Foo.*"},
			included:  []string{"Foo.Core", "foo.core"},
			excluded:  []string{"Bar.Core", "Foo"},
			hasCustom: true,
		},
		{
			name:      "Exclude wins over include",
			filters:   []string{"+*", "-*.Tests"},
			included:  []string{"Foo.Core"},
			excluded:  []string{"Foo.Tests", "FOO.TESTS"},
			hasCustom: true,
		},
		{
			name:      "Question mark matches one character",
			filters:   []string{"+Foo?"},
			included:  []string{"Foo1", "FooX"},
			excluded:  []string{"Foo", "Foo12"},
			hasCustom: true,
		},
		{
			name:      "Regex metacharacters are literal",
			filters:   []string{"+Foo.(Bar)"},
			included:  []string{"Foo.(Bar)"},
			excluded:  []string{"FooX(Bar)"},
			hasCustom: true,
		},
		{
			name:       "Missing sign is rejected",
			filters:    []string{"Foo"},
			wantErrMsg: "must start with '+' or '-'",
		},
		{
			name:       "Sign without pattern is rejected",
			filters:    []string{"+"},
			wantErrMsg: "invalid include filter",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := NewDefaultFilter(tc.filters)
			if tc.wantErrMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErrMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.hasCustom, f.HasCustomFilters())
			for _, name := range tc.included {
				assert.True(t, f.IsElementIncludedInReport(name), "expected %q to be included", name)
			}
			for _, name := range tc.excluded {
				assert.False(t, f.IsElementIncludedInReport(name), "expected %q to be excluded", name)
			}
		})
	}
}

func TestSplitFilterList(t *testing.T) {
	assert.Equal(t, []string{"+Foo*", "-*.Tests"}, SplitFilterList(" +Foo* ; -*.Tests;"))
	assert.Equal(t, []string{"+A", "+B"}, SplitFilterList("+A,+B"))
	assert.Empty(t, SplitFilterList(""))
}

func TestIncludeAll(t *testing.T) {
	f := IncludeAll()
	assert.True(t, f.IsElementIncludedInReport("anything"))
	assert.False(t, f.HasCustomFilters())
}
