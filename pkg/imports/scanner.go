// Package imports analyses relative ES module imports between source files.
package imports

import (
	"os"
	"path"
	"regexp"
	"strings"
)

var (
	// importPattern matches `import x from "mod"` and bare `import "mod"`.
	importPattern = regexp.MustCompile(`import\s+(?:.*?\s+from\s+)?['"](.*?)['"]`)
	// fromPattern matches the specifier of any `from "mod"` clause.
	fromPattern = regexp.MustCompile(`from\s+['"](.+)['"]`)
)

// resolveExtensions are tried, in order, when a specifier has no file behind it.
var resolveExtensions = []string{".jsx", ".js"}

// Specifiers returns every import specifier in content, in source order.
func Specifiers(content string) []string {
	return submatches(importPattern, content)
}

// FromSpecifiers returns the specifier of every `from` clause in content.
func FromSpecifiers(content string) []string {
	return submatches(fromPattern, content)
}

func submatches(re *regexp.Regexp, content string) []string {
	var specs []string
	for _, m := range re.FindAllStringSubmatch(content, -1) {
		specs = append(specs, m[1])
	}
	return specs
}

// IsRelative reports whether specifier points into the project rather than a package.
func IsRelative(specifier string) bool {
	return strings.HasPrefix(specifier, ".")
}

// Resolve returns the file basePath refers to: basePath itself when it is a
// regular file, otherwise the first existing basePath+ext. It returns "" when
// nothing matches.
func Resolve(basePath string) string {
	if info, err := os.Lstat(basePath); err == nil && info.Mode().IsRegular() {
		return basePath
	}
	for _, ext := range resolveExtensions {
		if _, err := os.Stat(basePath + ext); err == nil {
			return basePath + ext
		}
	}
	return ""
}

// ModuleName is the name a specifier imports, e.g. "Modal" for "../components/Modal".
func ModuleName(specifier string) string {
	return path.Base(specifier)
}

// Stem is a file's base name without its extension.
func Stem(name string) string {
	base := path.Base(name)
	return strings.TrimSuffix(base, path.Ext(base))
}
