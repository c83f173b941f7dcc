// Package aggregate concatenates the selected files of a project tree into a
// single context dump.
package aggregate

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"contexto/pkg/console"
	"contexto/pkg/ignore"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
)

// Run writes the context dump described by opts.Profile.
//
// The banner is written once, then every selected file under the profile's
// target becomes one delimited block. Files that cannot be read are reported
// and skipped. When the profile requires its target and it is missing, Run
// prints the condition and returns ErrTargetNotFound without creating the
// output file.
func Run(ctx context.Context, opts Options) (Summary, error) {
	var summary Summary
	startTime := time.Now()

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
		logger.Error("Failed to resolve root path", zap.String("root", opts.Root), zap.Error(err))
		return summary, fmt.Errorf("failed to get absolute path: %w", err)
	}

	start := filepath.Join(root, p.Target)
	if p.RequireTarget {
		// Any stat failure counts as missing.
		if _, err := os.Stat(start); err != nil {
			reportMissingTarget(out, p.Target)
			logger.Warn("Target directory not found", zap.String("target", start), zap.Error(err))
			return summary, fmt.Errorf("%w: %s", ErrTargetNotFound, p.Target)
		}
	}

	rules := opts.Rules
	if rules == nil {
		rules = ignore.NewRules(p.IgnoreDirs, p.IgnoreFiles, logger)
	}

	outputPath, err := filepath.Abs(p.Output)
	if err != nil {
		return summary, fmt.Errorf("failed to get absolute output path: %w", err)
	}

	logger.Info("Starting context dump",
		zap.String("root", root),
		zap.String("start", start),
		zap.String("output", outputPath),
		zap.Strings("extensions", p.Extensions))

	output, err := createOutput(outputPath, logger)
	if err != nil {
		return summary, err
	}

	if err := output.WriteString(p.Banner); err != nil {
		output.Close()
		return summary, err
	}

	sel := newSelector(p.Extensions, rules, outputPath)
	walkErr := walkTree(ctx, start, root, rules, logger, func(absPath, relPath, name string) error {
		if !sel.include(absPath, relPath, name) {
			return nil
		}

		content, err := readText(absPath)
		if err != nil {
			summary.Failed++
			reportReadError(out, relPath, err)
			logger.Warn("Failed to read file", zap.String("filePath", relPath), zap.Error(err))
			return nil
		}

		if err := output.WriteString(formatBlock(relPath, content)); err != nil {
			return err
		}

		summary.Added++
		summary.Bytes += int64(len(content))
		if opts.Tree != "" {
			summary.Files = append(summary.Files, relPath)
		}
		reportAdded(out, relPath)
		logger.Debug("Added file to context dump", zap.String("filePath", relPath), zap.Int("contentSizeBytes", len(content)))
		return nil
	})

	if err := output.Close(); err != nil {
		return summary, err
	}
	if walkErr != nil {
		logger.Error("Context dump interrupted", zap.Error(walkErr))
		return summary, fmt.Errorf("failed to walk %s: %w", start, walkErr)
	}

	if opts.Tree != "" {
		tree := GenerateTree(filepath.Base(root), summary.Files)
		if err := writeToFile(opts.Tree, []byte(tree), 0644, logger); err != nil {
			return summary, fmt.Errorf("failed to write tree structure: %w", err)
		}
	}

	reportDone(out, p.Done)
	logger.Info("Context dump completed",
		zap.String("output", outputPath),
		zap.Int("addedFiles", summary.Added),
		zap.Int("failedFiles", summary.Failed),
		zap.String("contentSize", humanize.Bytes(uint64(summary.Bytes))),
		zap.Duration("elapsed", time.Since(startTime)))
	return summary, nil
}
