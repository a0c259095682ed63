package converter

import (
	"fmt"
	"math"
	"strings"

	"github.com/IgorBayerl/ReportGenerator/opencover_converter/internal/inputxml"
	"github.com/IgorBayerl/ReportGenerator/opencover_converter/internal/language/csharp"
	"github.com/IgorBayerl/ReportGenerator/opencover_converter/internal/outputxml"
)

// moveNextMarker identifies the method of a state machine that holds the
// instrumented body of an async method.
const moveNextMarker = "::MoveNext()"

// methodResult is a converted method plus what its class needs from it.
type methodResult struct {
	Method outputxml.Method
	// ClassLines are copies of Method.Lines for the flattened class view.
	ClassLines []outputxml.Line
	Counts     coverageCounts
}

// buildMethod converts one logical method. It reports false when the method
// has no place in the output, which happens for async methods whose state
// machine cannot be found.
func (o *conversionOrchestrator) buildMethod(method inputxml.MethodXML, module inputxml.ModuleXML) (methodResult, bool) {
	name := csharp.ParseMethodName(method.Name)
	seqPoints := method.SequencePoints.SequencePoint
	branchPoints := method.BranchPoints.BranchPoint

	if name.IsAsync() {
		stateMachine, ok := findStateMachineMethod(name, module)
		if !ok {
			logger.WithField("method", method.Name).Debug("async state machine not found, method dropped")
			return methodResult{}, false
		}
		logger.WithFields(map[string]interface{}{
			"method":       method.Name,
			"stateMachine": stateMachine.Name,
		}).Debug("async method resolved")
		seqPoints = stateMachine.SequencePoints.SequencePoint
		branchPoints = stateMachine.BranchPoints.BranchPoint
	}

	lines, orphans := aggregateLines(seqPoints, branchPoints)
	if len(orphans) > 0 {
		logger.WithFields(map[string]interface{}{
			"method":  method.Name,
			"orphans": len(orphans),
		}).Debug("branch points without a matching sequence point")
	}

	counts := countPoints(seqPoints, branchPoints)
	return methodResult{
		Method: outputxml.Method{
			Name:       name.Name,
			Signature:  name.Signature,
			LineRate:   counts.lineRate(),
			BranchRate: counts.branchRate(),
			Complexity: placeholderComplexity,
			Lines:      outputxml.Lines{Line: lines},
		},
		ClassLines: append([]outputxml.Line(nil), lines...),
		Counts:     counts,
	}, true
}

// findStateMachineMethod looks through the whole module for the MoveNext
// method of the type generated for an async method.
func findStateMachineMethod(name csharp.MethodName, module inputxml.ModuleXML) (inputxml.MethodXML, bool) {
	typePrefix := name.StateMachineTypeName()
	methodMarker := "<" + name.Name + ">"
	for _, class := range module.Classes.Class {
		if class.IsSkipped() || !strings.HasPrefix(class.FullName, typePrefix) {
			continue
		}
		for _, candidate := range class.Methods.Method {
			if candidate.IsSkipped() {
				continue
			}
			if strings.Contains(candidate.Name, methodMarker) && strings.Contains(candidate.Name, moveNextMarker) {
				return candidate, true
			}
		}
	}
	return inputxml.MethodXML{}, false
}

// countPoints counts every sequence point as a line and every branch point as
// a branch.
func countPoints(seqPoints []inputxml.SequencePointXML, branchPoints []inputxml.BranchPointXML) coverageCounts {
	var c coverageCounts
	for _, sp := range seqPoints {
		c.LinesValid++
		if parseVisitCount(sp.VisitCount) != 0 {
			c.LinesCovered++
		}
	}
	for _, bp := range branchPoints {
		c.BranchesValid++
		if parseVisitCount(bp.VisitCount) != 0 {
			c.BranchesCovered++
		}
	}
	return c
}

// aggregateLines turns sequence points into lines, one per line number.
// Points on a line already seen raise its hits to the highest visit count.
// Branch points are attached to the line they start on; the ones that start
// nowhere or on a line without sequence point are returned as orphans.
func aggregateLines(seqPoints []inputxml.SequencePointXML, branchPoints []inputxml.BranchPointXML) ([]outputxml.Line, []inputxml.BranchPointXML) {
	var lines []outputxml.Line
	position := make(map[int]int, len(seqPoints))
	for _, sp := range seqPoints {
		number, _ := parseInt(sp.StartLine)
		hits := parseVisitCount(sp.VisitCount)
		if i, ok := position[number]; ok {
			if hits > lines[i].Hits {
				lines[i].Hits = hits
			}
			continue
		}
		position[number] = len(lines)
		lines = append(lines, outputxml.Line{Number: number, Hits: hits})
	}

	var orphans []inputxml.BranchPointXML
	byLine := make(map[int][]inputxml.BranchPointXML)
	for _, bp := range branchPoints {
		number, ok := parseInt(bp.StartLine)
		if !ok {
			orphans = append(orphans, bp)
			continue
		}
		if _, ok := position[number]; !ok {
			orphans = append(orphans, bp)
			continue
		}
		byLine[number] = append(byLine[number], bp)
	}

	for i := range lines {
		points := byLine[lines[i].Number]
		if len(points) == 0 {
			continue
		}
		covered := 0
		for _, bp := range points {
			if parseVisitCount(bp.VisitCount) != 0 {
				covered++
			}
		}
		lines[i].Branch = true
		lines[i].ConditionCoverage = conditionCoverage(covered, len(points))
	}
	return lines, orphans
}

// conditionCoverage renders "<percent>% (<covered>/<total>)".
func conditionCoverage(covered, total int) string {
	percent := int(math.Round(float64(covered) / float64(total) * 100))
	return fmt.Sprintf("%d%% (%d/%d)", percent, covered, total)
}
