package outputxml

import (
	"bytes"
	"encoding/xml"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRate(t *testing.T) {
	testCases := []struct {
		name     string
		covered  int64
		valid    int64
		expected Rate
	}{
		{"Nothing to cover", 0, 0, 1},
		{"Half covered", 1, 2, 0.5},
		{"Nothing covered", 0, 7, 0},
		{"Fully covered", 7, 7, 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, NewRate(tc.covered, tc.valid))
		})
	}
}

func TestFormatRate(t *testing.T) {
	testCases := []struct {
		value    float64
		expected string
	}{
		{1, "1"},
		{0, "0"},
		{0.5, "0.5"},
		{0.6, "0.6"},
		{1.0 / 3.0, "0.3333333333333333"},
		{0.0000001, "0.0000001"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatRate(tc.value))
		})
	}
}

func TestWrite(t *testing.T) {
	doc := &Coverage{
		LineRate:     0.5,
		BranchRate:   1,
		LinesCovered: 1,
		LinesValid:   2,
		Version:      "0",
		Timestamp:    1700000000,
		Sources:      Sources{Source: []string{"/src"}},
		Packages: Packages{Package: []Package{{
			Name:       "App",
			LineRate:   0.5,
			BranchRate: 1,
			Classes: Classes{Class: []Class{{
				Name:       "App.Calc",
				Filename:   "Calc.cs",
				LineRate:   0.5,
				BranchRate: 1,
				Methods: Methods{Method: []Method{{
					Name:       "Add",
					Signature:  "(System.Int32)",
					LineRate:   0.5,
					BranchRate: 1,
					Lines:      Lines{Line: []Line{{Number: 10, Hits: 1, Branch: true, ConditionCoverage: "50% (1/2)"}, {Number: 11}}},
				}}},
				Lines: Lines{Line: []Line{{Number: 10, Hits: 1, Branch: true, ConditionCoverage: "50% (1/2)"}, {Number: 11}}},
			}}},
		}}},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, doc))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, xml.Header+DocType+"\n"))
	assert.Contains(t, out, `<coverage line-rate="0.5" branch-rate="1" lines-covered="1" lines-valid="2" branches-covered="0" branches-valid="0" complexity="0" version="0" timestamp="1700000000">`)
	assert.Contains(t, out, `<source>/src</source>`)
	assert.Contains(t, out, `<class name="App.Calc" filename="Calc.cs" line-rate="0.5" branch-rate="1" complexity="0">`)
	assert.Contains(t, out, `<method name="Add" signature="(System.Int32)" line-rate="0.5" branch-rate="1" complexity="0">`)
	assert.Contains(t, out, `<line number="10" hits="1" branch="true" condition-coverage="50% (1/2)"></line>`)
	assert.Contains(t, out, `<line number="11" hits="0" branch="false"></line>`)

	var decoded Coverage
	require.NoError(t, xml.Unmarshal(buf.Bytes(), &decoded))
	decoded.XMLName = doc.XMLName
	assert.Equal(t, *doc, decoded)
}

func TestWrite_NilDocument(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Write(&buf, nil))
	assert.Empty(t, buf.String())
}

func TestLineCopiesAreIndependent(t *testing.T) {
	methodLines := []Line{{Number: 3, Hits: 1}}
	classLines := append([]Line(nil), methodLines...)

	methodLines[0].Branch = true
	methodLines[0].ConditionCoverage = "100% (1/1)"

	assert.False(t, classLines[0].Branch)
	assert.Empty(t, classLines[0].ConditionCoverage)
}
