// File: pkg/aggregate/traversal.go
package aggregate

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"contexto/pkg/ignore"

	"go.uber.org/zap"
)

// visitFunc is called for every non-directory entry the walk reaches.
type visitFunc func(absPath, relPath, name string) error

// walkTree walks start in pre-order with an explicit stack. Within a
// directory, files are visited in listing order before any subdirectory is
// descended into, and ignored subdirectories are pruned before they are
// pushed. Relative paths are computed against root.
//
// Unreadable directories are logged and skipped. A cancelled context or an
// error returned by visit stops the walk.
func walkTree(ctx context.Context, start, root string, rules *ignore.Rules, logger *zap.Logger, visit visitFunc) error {
	stack := []string{start}

	for len(stack) > 0 {
		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		entries, err := os.ReadDir(dir)
		if err != nil {
			logger.Warn("Error reading directory during traversal", zap.String("directory", dir), zap.Error(err))
			continue
		}

		var subdirs []string
		for _, entry := range entries {
			if err := ctx.Err(); err != nil {
				return err
			}

			absPath := filepath.Join(dir, entry.Name())
			relPath, relErr := filepath.Rel(root, absPath)
			if relErr != nil {
				logger.Warn("Unable to determine relative path, using absolute path",
					zap.String("filePath", absPath),
					zap.Error(relErr))
				relPath = absPath
			}

			if isDirectory(absPath, entry) {
				if rules.SkipDir(relPath, entry.Name()) {
					logger.Debug("Skipping ignored directory during traversal", zap.String("directory", relPath))
					continue
				}
				// Links to directories are listed but never followed.
				if entry.Type()&fs.ModeSymlink != 0 {
					logger.Debug("Not following directory link", zap.String("directory", relPath))
					continue
				}
				subdirs = append(subdirs, absPath)
				continue
			}

			if err := visit(absPath, relPath, entry.Name()); err != nil {
				return err
			}
		}

		// Push in reverse so the first subdirectory is walked first.
		for i := len(subdirs) - 1; i >= 0; i-- {
			stack = append(stack, subdirs[i])
		}
	}

	return nil
}

// isDirectory reports whether entry is a directory, resolving symbolic links.
// Broken links count as files so that reading them reports the failure.
func isDirectory(absPath string, entry fs.DirEntry) bool {
	if entry.Type()&fs.ModeSymlink == 0 {
		return entry.IsDir()
	}
	info, err := os.Stat(absPath)
	if err != nil {
		return false
	}
	return info.IsDir()
}
