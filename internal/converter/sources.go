package converter

import (
	"strings"

	"github.com/IgorBayerl/ReportGenerator/opencover_converter/internal/inputxml"
)

// sourceRoot is the directory reported in <sources>. Filenames below it are
// written relative to it.
type sourceRoot struct {
	Path  string
	strip string
}

// relative strips the root and the separator that follows it.
func (r sourceRoot) relative(fullPath string) string {
	if r.strip == "" {
		return fullPath
	}
	return strings.TrimPrefix(fullPath, r.strip)
}

func (o *conversionOrchestrator) resolveSourceRoot(modules []inputxml.ModuleXML) sourceRoot {
	var paths []string
	for _, module := range modules {
		for _, file := range module.Files.File {
			paths = append(paths, file.FullPath)
		}
	}
	root := resolveSourceRoot(paths, o.sourcesDirectory)
	logger.WithField("sourceRoot", root.Path).Debug("resolved source root")
	return root
}

// resolveSourceRoot returns the override when one is given, otherwise the
// longest common directory of all paths, cut at a separator boundary.
func resolveSourceRoot(fullPaths []string, override string) sourceRoot {
	if override != "" {
		return overrideRoot(override, separatorOf(fullPaths))
	}

	prefix := commonDirectoryPrefix(distinctDirectories(fullPaths))
	if prefix == "" {
		return sourceRoot{}
	}
	for _, p := range fullPaths {
		if len(p) > len(prefix) && strings.HasPrefix(p, prefix) && isSeparator(p[len(prefix)]) {
			return sourceRoot{Path: prefix, strip: prefix + string(p[len(prefix)])}
		}
	}
	return sourceRoot{Path: prefix, strip: prefix}
}

// overrideRoot rewrites a user supplied directory to the separator style of
// the report and drops trailing separators.
func overrideRoot(dir string, sep byte) sourceRoot {
	dir = strings.ReplaceAll(dir, string(otherSeparator(sep)), string(sep))
	trimmed := strings.TrimRight(dir, string(sep))
	if trimmed == "" {
		return sourceRoot{Path: dir, strip: string(sep)}
	}
	return sourceRoot{Path: trimmed, strip: trimmed + string(sep)}
}

// distinctDirectories keeps the first occurrence of every directory.
func distinctDirectories(fullPaths []string) []string {
	seen := make(map[string]struct{}, len(fullPaths))
	var dirs []string
	for _, p := range fullPaths {
		dir := directoryOf(p)
		if _, ok := seen[dir]; ok {
			continue
		}
		seen[dir] = struct{}{}
		dirs = append(dirs, dir)
	}
	return dirs
}

// commonDirectoryPrefix is independent of the order of dirs.
func commonDirectoryPrefix(dirs []string) string {
	if len(dirs) == 0 {
		return ""
	}
	prefix := dirs[0]
	for _, dir := range dirs[1:] {
		if prefix == "" {
			break
		}
		prefix = shrinkToCommonPrefix(prefix, dir)
	}
	return prefix
}

func shrinkToCommonPrefix(candidate, dir string) string {
	n := min(len(candidate), len(dir))
	i := 0
	for i < n && candidate[i] == dir[i] {
		i++
	}

	if i == len(candidate) && (i == len(dir) || isSeparator(dir[i])) {
		return candidate
	}
	if i == len(dir) && isSeparator(candidate[i]) {
		return dir
	}

	cut := strings.LastIndexAny(candidate[:i], `/\`)
	if cut < 0 {
		return ""
	}
	return candidate[:cut]
}

// directoryOf returns everything before the last separator, or "" when there is none.
func directoryOf(fullPath string) string {
	cut := strings.LastIndexAny(fullPath, `/\`)
	if cut < 0 {
		return ""
	}
	return fullPath[:cut]
}

// separatorOf reports the separator the paths use. Forward slash wins when
// nothing else is found.
func separatorOf(fullPaths []string) byte {
	for _, p := range fullPaths {
		if i := strings.IndexAny(p, `/\`); i >= 0 {
			return p[i]
		}
	}
	return '/'
}

func otherSeparator(sep byte) byte {
	if sep == '/' {
		return '\\'
	}
	return '/'
}

func isSeparator(c byte) bool {
	return c == '/' || c == '\\'
}
