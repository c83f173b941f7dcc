package imports

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"contexto/pkg/console"

	"go.uber.org/zap"
)

// Default report locations.
const (
	DefaultTreeOutput  = "arbol_de_dependencias.txt"
	DefaultUsageOutput = "reporte_uso_archivos.txt"
)

// Options configures a report run.
type Options struct {
	Root    string           // Project root; sources live under Root/src.
	Output  string           // Report destination.
	Console *console.Console // Progress lines; discarded when nil.
	Logger  *zap.Logger      // No-op when nil.
}

func (o Options) defaults() (*console.Console, *zap.Logger) {
	out, logger := o.Console, o.Logger
	if out == nil {
		out = console.Discard()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return out, logger
}

const (
	treeIndent   = "    "
	treeBranch   = "└──"
	treeRootIcon = "📦"
)

var (
	treeHeader  = "ARBOL DE DEPENDENCIAS DEL PROYECTO\n" + strings.Repeat("=", 36) + "\n\n"
	treeDivider = "\n" + strings.Repeat("-", 40) + "\n\n"
)

// DependencyTree writes, for every .jsx page under src/pages, the tree of
// files it reaches through relative imports. A file already on the current
// branch is marked as a cycle and not expanded again.
func DependencyTree(ctx context.Context, opts Options) error {
	out, logger := opts.defaults()
	out.Printf("🌳 Generando árbol de dependencias...")

	root, err := filepath.Abs(opts.Root)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	var report strings.Builder
	report.WriteString(treeHeader)

	pagesDir := filepath.Join(root, "src", "pages")
	if _, err := os.Stat(pagesDir); err == nil {
		entries, err := os.ReadDir(pagesDir)
		if err != nil {
			logger.Error("Failed to list pages directory", zap.String("directory", pagesDir), zap.Error(err))
			return fmt.Errorf("failed to read %s: %w", pagesDir, err)
		}
		for _, entry := range entries {
			if !strings.HasSuffix(entry.Name(), ".jsx") {
				continue
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			page := filepath.Join(pagesDir, entry.Name())
			report.WriteString(buildTree(page, 0, nil, logger))
			report.WriteString(treeDivider)
		}
	} else {
		out.Printf("⚠️ No encontré la carpeta src/pages")
		logger.Warn("Pages directory not found", zap.String("directory", pagesDir))
	}

	if err := writeReport(opts.Output, report.String(), logger); err != nil {
		return err
	}
	out.Printf("✅ ¡Listo! Revisa el archivo: %s", opts.Output)
	return nil
}

// buildTree renders filePath at depth and recurses into its relative imports.
// visited holds the files on the current branch only.
func buildTree(filePath string, depth int, visited map[string]bool, logger *zap.Logger) string {
	name := filepath.Base(filePath)
	indent := strings.Repeat(treeIndent, depth)

	if visited[filePath] {
		return fmt.Sprintf("%s%s %s (🔄 Ciclo detectado)\n", indent, treeBranch, name)
	}

	branch := make(map[string]bool, len(visited)+1)
	for k := range visited {
		branch[k] = true
	}
	branch[filePath] = true

	icon := treeBranch
	if depth == 0 {
		icon = treeRootIcon
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s%s %s\n", indent, icon, name))

	content, err := os.ReadFile(filePath)
	if err != nil {
		logger.Warn("Failed to read file for dependency tree", zap.String("filePath", filePath), zap.Error(err))
		b.WriteString(indent + treeIndent + "❌ Error leyendo archivo\n")
		return b.String()
	}

	dir := filepath.Dir(filePath)
	for _, specifier := range Specifiers(string(content)) {
		if !IsRelative(specifier) {
			continue
		}
		resolved := Resolve(filepath.Join(dir, filepath.FromSlash(specifier)))
		if resolved == "" {
			logger.Debug("Unresolved relative import", zap.String("filePath", filePath), zap.String("import", specifier))
			continue
		}
		b.WriteString(buildTree(resolved, depth+1, branch, logger))
	}
	return b.String()
}

func writeReport(path, content string, logger *zap.Logger) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		logger.Error("Failed to write report", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}
	logger.Debug("Successfully wrote report", zap.String("path", path), zap.Int("sizeBytes", len(content)))
	return nil
}
