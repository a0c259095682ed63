// Package textsummary prints a short coverage overview of a converted report.
package textsummary

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/IgorBayerl/ReportGenerator/opencover_converter/internal/outputxml"
)

// Summary holds the numbers shown to the user.
type Summary struct {
	Packages        int
	Classes         int
	Methods         int
	LinesCovered    int64
	LinesValid      int64
	BranchesCovered int64
	BranchesValid   int64
	LineRate        float64
	BranchRate      float64
}

// NewSummary collects the numbers of a converted document.
func NewSummary(doc *outputxml.Coverage) Summary {
	s := Summary{
		LinesCovered:    doc.LinesCovered,
		LinesValid:      doc.LinesValid,
		BranchesCovered: doc.BranchesCovered,
		BranchesValid:   doc.BranchesValid,
		LineRate:        float64(doc.LineRate),
		BranchRate:      float64(doc.BranchRate),
	}
	for _, pkg := range doc.Packages.Package {
		s.Packages++
		for _, class := range pkg.Classes.Class {
			s.Classes++
			s.Methods += len(class.Methods.Method)
		}
	}
	return s
}

// TextSummaryReportBuilder renders a Summary. Colours are only used when the
// writer is a terminal.
type TextSummaryReportBuilder struct {
	out        io.Writer
	titleStyle lipgloss.Style
	labelStyle lipgloss.Style
	goodStyle  lipgloss.Style
	badStyle   lipgloss.Style
}

// NewTextSummaryReportBuilder creates a builder writing to out.
func NewTextSummaryReportBuilder(out io.Writer) *TextSummaryReportBuilder {
	renderer := lipgloss.NewRenderer(out)
	return &TextSummaryReportBuilder{
		out:        out,
		titleStyle: renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		labelStyle: renderer.NewStyle().Foreground(lipgloss.Color("240")),
		goodStyle:  renderer.NewStyle().Foreground(lipgloss.Color("42")),
		badStyle:   renderer.NewStyle().Foreground(lipgloss.Color("208")),
	}
}

// CreateReport writes the summary of the report written to target.
func (b *TextSummaryReportBuilder) CreateReport(target string, s Summary) error {
	var sb strings.Builder
	sb.WriteString(b.titleStyle.Render("Summary"))
	sb.WriteString("\n")
	b.row(&sb, "Report:", target)
	b.row(&sb, "Packages:", fmt.Sprint(s.Packages))
	b.row(&sb, "Classes:", fmt.Sprint(s.Classes))
	b.row(&sb, "Methods:", fmt.Sprint(s.Methods))
	b.row(&sb, "Line coverage:", b.coverage(s.LineRate, s.LinesCovered, s.LinesValid))
	b.row(&sb, "Branch coverage:", b.coverage(s.BranchRate, s.BranchesCovered, s.BranchesValid))

	_, err := io.WriteString(b.out, sb.String())
	return err
}

func (b *TextSummaryReportBuilder) row(sb *strings.Builder, label, value string) {
	fmt.Fprintf(sb, "  %s %s\n", b.labelStyle.Render(fmt.Sprintf("%-16s", label)), value)
}

func (b *TextSummaryReportBuilder) coverage(rate float64, covered, valid int64) string {
	text := fmt.Sprintf("%.1f%% (%d of %d)", rate*100, covered, valid)
	if rate >= 0.8 {
		return b.goodStyle.Render(text)
	}
	return b.badStyle.Render(text)
}
