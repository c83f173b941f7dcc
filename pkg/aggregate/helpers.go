// File: pkg/aggregate/helpers.go
package aggregate

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// outputFile is the single buffered writer target of a run.
type outputFile struct {
	path   string
	file   *os.File
	writer *bufio.Writer
	logger *zap.Logger
}

// createOutput creates (or truncates) path, creating its directory first.
func createOutput(path string, logger *zap.Logger) (*outputFile, error) {
	if err := ensureDirectory(filepath.Dir(path), logger); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		logger.Error("Failed to create output file", zap.String("file", path), zap.Error(err))
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	return &outputFile{
		path:   path,
		file:   f,
		writer: bufio.NewWriter(f),
		logger: logger,
	}, nil
}

func (o *outputFile) WriteString(s string) error {
	if _, err := o.writer.WriteString(s); err != nil {
		o.logger.Error("Failed to write to output file", zap.String("file", o.path), zap.Error(err))
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// Close flushes buffered content and closes the file. The first error wins.
func (o *outputFile) Close() error {
	flushErr := o.writer.Flush()
	closeErr := o.file.Close()
	if flushErr != nil {
		o.logger.Error("Failed to flush output file", zap.String("file", o.path), zap.Error(flushErr))
		return fmt.Errorf("failed to flush output: %w", flushErr)
	}
	if closeErr != nil {
		o.logger.Error("Failed to close output file", zap.String("file", o.path), zap.Error(closeErr))
		return fmt.Errorf("failed to close output: %w", closeErr)
	}
	return nil
}

// ensureDirectory ensures a directory exists, creating it if necessary.
func ensureDirectory(path string, logger *zap.Logger) error {
	if err := os.MkdirAll(path, os.ModePerm); err != nil {
		logger.Error("Failed to create directory", zap.String("path", path), zap.Error(err))
		return err
	}
	logger.Debug("Ensured directory exists", zap.String("path", path))
	return nil
}

// writeToFile writes data to a file and logs the operation.
func writeToFile(path string, data []byte, perm os.FileMode, logger *zap.Logger) error {
	if err := ensureDirectory(filepath.Dir(path), logger); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, perm); err != nil {
		logger.Error("Failed to write file", zap.String("path", path), zap.Error(err))
		return err
	}
	logger.Debug("Successfully wrote file", zap.String("path", path))
	return nil
}
