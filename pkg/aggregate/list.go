package aggregate

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"contexto/pkg/console"

	"go.uber.org/zap"
)

// Collect concatenates the profile's explicit file list, in order, into the
// profile's output. Missing entries leave a marker in the output instead of
// content; unreadable ones are only reported. Decoding is lenient.
func Collect(ctx context.Context, opts Options) (Summary, error) {
	var summary Summary

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	out := opts.Console
	if out == nil {
		out = console.Discard()
	}
	p := opts.Profile
	logger = logger.With(zap.String("profile", p.Name))

	root, err := filepath.Abs(opts.Root)
	if err != nil {
		return summary, fmt.Errorf("failed to get absolute path: %w", err)
	}

	reportMenuStart(out)

	output, err := createOutput(p.Output, logger)
	if err != nil {
		return summary, err
	}

	for _, relPath := range p.Files {
		if err := ctx.Err(); err != nil {
			output.Close()
			return summary, err
		}

		fullPath := filepath.Join(root, filepath.FromSlash(relPath))
		if _, err := os.Stat(fullPath); err != nil {
			reportMenuMissing(out, relPath)
			logger.Debug("Listed file does not exist", zap.String("filePath", relPath))
			if err := output.WriteString(formatMissing(relPath)); err != nil {
				output.Close()
				return summary, err
			}
			continue
		}

		content, err := readLenient(fullPath)
		if err != nil {
			summary.Failed++
			reportMenuError(out, relPath, err)
			logger.Warn("Failed to read listed file", zap.String("filePath", relPath), zap.Error(err))
			continue
		}

		if err := output.WriteString(formatMenuBlock(relPath, content)); err != nil {
			output.Close()
			return summary, err
		}
		summary.Added++
		summary.Bytes += int64(len(content))
		reportMenuAdded(out, relPath)
	}

	if err := output.Close(); err != nil {
		return summary, err
	}

	reportMenuDone(out, p.Output)
	logger.Info("Menu collection completed",
		zap.Int("addedFiles", summary.Added),
		zap.Int("missingFiles", len(p.Files)-summary.Added-summary.Failed),
		zap.Int("failedFiles", summary.Failed))
	return summary, nil
}
