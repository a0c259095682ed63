package textsummary

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IgorBayerl/ReportGenerator/opencover_converter/internal/outputxml"
)

func sampleDocument() *outputxml.Coverage {
	return &outputxml.Coverage{
		LineRate:        0.6,
		BranchRate:      0.4,
		LinesCovered:    3,
		LinesValid:      5,
		BranchesCovered: 2,
		BranchesValid:   5,
		Packages: outputxml.Packages{Package: []outputxml.Package{{
			Name: "App",
			Classes: outputxml.Classes{Class: []outputxml.Class{
				{Name: "App.Calc", Methods: outputxml.Methods{Method: []outputxml.Method{{Name: "Add"}, {Name: "Sub"}}}},
				{Name: "App.Service", Methods: outputxml.Methods{Method: []outputxml.Method{{Name: "Run"}}}},
			}},
		}}},
	}
}

func TestNewSummary(t *testing.T) {
	s := NewSummary(sampleDocument())
	assert.Equal(t, Summary{
		Packages:        1,
		Classes:         2,
		Methods:         3,
		LinesCovered:    3,
		LinesValid:      5,
		BranchesCovered: 2,
		BranchesValid:   5,
		LineRate:        0.6,
		BranchRate:      0.4,
	}, s)
}

func TestCreateReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTextSummaryReportBuilder(&buf).CreateReport("cobertura.xml", NewSummary(sampleDocument())))

	out := buf.String()
	assert.Contains(t, out, "Summary")
	assert.Contains(t, out, "cobertura.xml")
	assert.Contains(t, out, "Classes:")
	assert.Contains(t, out, "60.0% (3 of 5)")
	assert.Contains(t, out, "40.0% (2 of 5)")
	assert.NotContains(t, out, "\x1b[", "no colours when writing to a buffer")
}
