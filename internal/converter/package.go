package converter

import (
	"github.com/IgorBayerl/ReportGenerator/opencover_converter/internal/inputxml"
	"github.com/IgorBayerl/ReportGenerator/opencover_converter/internal/outputxml"
)

// buildPackage converts one module into a package named after it.
func (o *conversionOrchestrator) buildPackage(module inputxml.ModuleXML, root sourceRoot) (outputxml.Package, coverageCounts) {
	filesByID := make(map[string]string, len(module.Files.File))
	for _, file := range module.Files.File {
		filesByID[file.UID] = file.FullPath
	}

	pkg := outputxml.Package{
		Name:       module.ModuleName,
		Complexity: placeholderComplexity,
	}

	var counts coverageCounts
	for _, name := range o.logicalClassNames(module) {
		class, classCounts := o.buildClass(name, module, filesByID, root)
		pkg.Classes.Class = append(pkg.Classes.Class, class)
		counts = counts.add(classCounts)
	}

	pkg.LineRate = counts.lineRate()
	pkg.BranchRate = counts.branchRate()

	logger.WithFields(map[string]interface{}{
		"module":  module.ModuleName,
		"classes": len(pkg.Classes.Class),
	}).Debug("package built")
	return pkg, counts
}
