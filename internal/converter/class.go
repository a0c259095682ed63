package converter

import (
	"strings"

	"github.com/IgorBayerl/ReportGenerator/opencover_converter/internal/inputxml"
	"github.com/IgorBayerl/ReportGenerator/opencover_converter/internal/language/csharp"
	"github.com/IgorBayerl/ReportGenerator/opencover_converter/internal/outputxml"
)

// logicalClassNames returns the distinct names of the classes to emit, in
// the order they first appear in the module.
func (o *conversionOrchestrator) logicalClassNames(module inputxml.ModuleXML) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, class := range module.Classes.Class {
		if _, ok := seen[class.FullName]; ok {
			continue
		}
		kind := o.classifier.ClassifyClass(class.FullName, class.IsSkipped())
		if kind != csharp.Logical {
			continue
		}
		seen[class.FullName] = struct{}{}
		if !o.classFilter.IsElementIncludedInReport(class.FullName) {
			logger.WithField("class", class.FullName).Debug("class excluded by filter")
			continue
		}
		names = append(names, class.FullName)
	}
	return names
}

// buildClass merges every fragment named exactly className into one class.
func (o *conversionOrchestrator) buildClass(className string, module inputxml.ModuleXML, filesByID map[string]string, root sourceRoot) (outputxml.Class, coverageCounts) {
	class := outputxml.Class{
		Name:       className,
		Filename:   root.relative(classFilename(className, module, filesByID)),
		Complexity: placeholderComplexity,
	}

	var counts coverageCounts
	for _, fragment := range module.Classes.Class {
		if fragment.FullName != className || fragment.IsSkipped() {
			continue
		}
		for _, method := range fragment.Methods.Method {
			kind := o.classifier.ClassifyMethod(method.Name, method.IsSkipped(), method.IsAccessor())
			if kind != csharp.Logical {
				logger.WithFields(map[string]interface{}{
					"method": method.Name,
					"kind":   kind.String(),
				}).Debug("method left out")
				continue
			}
			result, ok := o.buildMethod(method, module)
			if !ok {
				continue
			}
			class.Methods.Method = append(class.Methods.Method, result.Method)
			class.Lines.Line = append(class.Lines.Line, result.ClassLines...)
			counts = counts.add(result.Counts)
		}
	}

	class.LineRate = counts.lineRate()
	class.BranchRate = counts.branchRate()
	return class, counts
}

// classFilename is the file of the first method with a file reference among
// the fragments of the class and its nested types. Unknown ids give "".
func classFilename(className string, module inputxml.ModuleXML, filesByID map[string]string) string {
	nestedPrefix := className + "/"
	for _, fragment := range module.Classes.Class {
		if fragment.IsSkipped() {
			continue
		}
		if fragment.FullName != className && !strings.HasPrefix(fragment.FullName, nestedPrefix) {
			continue
		}
		for _, method := range fragment.Methods.Method {
			if method.HasFileRef() {
				return filesByID[method.FileRef.UID]
			}
		}
	}
	return ""
}
