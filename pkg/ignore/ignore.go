// Package ignore decides which directories and files a walk must leave out.
package ignore

import (
	"os"
	"path/filepath"
	"strings"

	gitignore "github.com/sabhiram/go-gitignore"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// GitIgnoreFile is the name of the pattern file read by LoadGitIgnore.
const GitIgnoreFile = ".gitignore"

// Rules holds the exact-name ignore sets and an optional gitignore matcher.
type Rules struct {
	Dirs     map[string]struct{} // Directory base names never descended into.
	Files    map[string]struct{} // File base names never included.
	lines    []string
	patterns *gitignore.GitIgnore
	logger   *zap.Logger
}

// NewRules builds Rules from name lists. A nil logger is replaced by a no-op one.
func NewRules(dirs, files []string, logger *zap.Logger) *Rules {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Rules{
		Dirs:   toSet(dirs),
		Files:  toSet(files),
		logger: logger,
	}
}

func toSet(names []string) map[string]struct{} {
	return lo.SliceToMap(names, func(name string) (string, struct{}) {
		return name, struct{}{}
	})
}

// LoadGitIgnore compiles <root>/.gitignore into the rules. A missing file is
// not an error.
func (r *Rules) LoadGitIgnore(root string) error {
	path := filepath.Join(root, GitIgnoreFile)
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			r.logger.Debug("No ignore file found", zap.String("filePath", path))
			return nil
		}
		r.logger.Error("Failed to read ignore file", zap.String("filePath", path), zap.Error(err))
		return err
	}

	lines := strings.Split(string(content), "\n")
	r.CompileLines(lines...)
	r.logger.Debug("Compiled ignore patterns", zap.String("filePath", path), zap.Int("lineCount", len(lines)))
	return nil
}

// CompileLines adds gitignore-style pattern lines to the rules. Later lines
// take precedence, so negations can re-include earlier matches.
func (r *Rules) CompileLines(lines ...string) {
	r.lines = append(r.lines, lines...)
	r.patterns = gitignore.CompileIgnoreLines(r.lines...)
}

// SkipDir reports whether the directory at relPath (relative to the walk
// root, any separator) with base name name must be pruned.
func (r *Rules) SkipDir(relPath, name string) bool {
	if _, ok := r.Dirs[name]; ok {
		r.logger.Debug("Directory name is ignored", zap.String("directory", relPath))
		return true
	}
	return r.matches(relPath + "/")
}

// SkipFile reports whether the file at relPath with base name name must be
// left out regardless of its extension.
func (r *Rules) SkipFile(relPath, name string) bool {
	if _, ok := r.Files[name]; ok {
		r.logger.Debug("File name is ignored", zap.String("filePath", relPath))
		return true
	}
	return r.matches(relPath)
}

func (r *Rules) matches(relPath string) bool {
	if r.patterns == nil {
		return false
	}
	matched := r.patterns.MatchesPath(filepath.ToSlash(relPath))
	if matched {
		r.logger.Debug("Path matches ignore pattern", zap.String("path", relPath))
	}
	return matched
}
