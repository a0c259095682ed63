package converter

import "github.com/IgorBayerl/ReportGenerator/opencover_converter/internal/outputxml"

// coverageCounts is the summary every builder returns next to its subtree.
type coverageCounts struct {
	LinesCovered    int64
	LinesValid      int64
	BranchesCovered int64
	BranchesValid   int64
}

func (c coverageCounts) add(other coverageCounts) coverageCounts {
	return coverageCounts{
		LinesCovered:    c.LinesCovered + other.LinesCovered,
		LinesValid:      c.LinesValid + other.LinesValid,
		BranchesCovered: c.BranchesCovered + other.BranchesCovered,
		BranchesValid:   c.BranchesValid + other.BranchesValid,
	}
}

func (c coverageCounts) lineRate() outputxml.Rate {
	return outputxml.NewRate(c.LinesCovered, c.LinesValid)
}

func (c coverageCounts) branchRate() outputxml.Rate {
	return outputxml.NewRate(c.BranchesCovered, c.BranchesValid)
}
