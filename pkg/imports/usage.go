package imports

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// ErrSourceNotFound is returned when the project has no src directory.
var ErrSourceNotFound = errors.New("source directory not found")

var (
	usageHeader  = "REPORTE DE USO DE ARCHIVOS\n" + strings.Repeat("=", 44) + "\n\n"
	usageDivider = "\n" + strings.Repeat("-", 44) + "\n"
)

// Usage maps each source file to the files that import it, both relative to
// the project root with forward slashes.
type Usage struct {
	order []string
	users map[string][]string
}

// UsedBy returns the importers of file, in scan order.
func (u *Usage) UsedBy(file string) []string {
	return u.users[file]
}

// Files returns every scanned file in report order.
func (u *Usage) Files() []string {
	files := append([]string(nil), u.order...)
	sort.Strings(files)
	return files
}

// Analyze scans the .js and .jsx files under root/src and records, for each
// `from` specifier, which files share its module name.
func Analyze(ctx context.Context, root string, logger *zap.Logger) (*Usage, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	srcDir := filepath.Join(root, "src")
	if _, err := os.Stat(srcDir); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, srcDir)
	}

	sources, err := collectSources(srcDir)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", srcDir, err)
	}

	u := &Usage{users: make(map[string][]string, len(sources))}
	keys := make([]string, len(sources))
	for i, source := range sources {
		keys[i] = relSlash(root, source)
		u.order = append(u.order, keys[i])
		u.users[keys[i]] = []string{}
	}

	for i, source := range sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		content, err := os.ReadFile(source)
		if err != nil {
			logger.Warn("Failed to read source file", zap.String("filePath", keys[i]), zap.Error(err))
			continue
		}
		for _, specifier := range FromSpecifiers(string(content)) {
			name := ModuleName(specifier)
			for _, key := range u.order {
				if Stem(key) != name || lo.Contains(u.users[key], keys[i]) {
					continue
				}
				u.users[key] = append(u.users[key], keys[i])
			}
		}
	}

	logger.Debug("Analyzed source usage", zap.Int("sourceFiles", len(sources)))
	return u, nil
}

// collectSources lists .js and .jsx files under dir, depth first. Links to
// directories are followed.
func collectSources(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		full := filepath.Join(dir, entry.Name())
		info, err := os.Stat(full)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			nested, err := collectSources(full)
			if err != nil {
				return nil, err
			}
			files = append(files, nested...)
			continue
		}
		if strings.HasSuffix(entry.Name(), ".jsx") || strings.HasSuffix(entry.Name(), ".js") {
			files = append(files, full)
		}
	}
	return files, nil
}

func relSlash(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}
	return filepath.ToSlash(rel)
}

// Render formats the usage report.
func (u *Usage) Render() string {
	var b strings.Builder
	b.WriteString(usageHeader)
	for _, file := range u.Files() {
		usedBy := u.users[file]
		b.WriteString(fmt.Sprintf("📂 ARCHIVO: %s\n", file))
		if len(usedBy) == 0 {
			b.WriteString("   ⚠️  NO SE ENCONTRARON REFERENCIAS (¿Archivo huérfano o Página Principal?)\n")
		} else {
			b.WriteString(fmt.Sprintf("   ✅ Usado en (%d lugares):\n", len(usedBy)))
			for _, user := range usedBy {
				b.WriteString(fmt.Sprintf("      - %s\n", user))
			}
		}
		b.WriteString(usageDivider)
	}
	return b.String()
}

// UsageReport analyses the project and writes the rendered report to
// opts.Output. A missing src directory is reported and returned as
// ErrSourceNotFound without writing anything.
func UsageReport(ctx context.Context, opts Options) error {
	out, logger := opts.defaults()
	out.Printf("🔍 Escaneando proyecto...")

	root, err := filepath.Abs(opts.Root)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	usage, err := Analyze(ctx, root, logger)
	if err != nil {
		if errors.Is(err, ErrSourceNotFound) {
			out.Warnf("ERROR: No encuentro la carpeta 'src'. Asegúrate de ejecutar esto desde la raíz del proyecto.")
		}
		logger.Error("Failed to analyze usage", zap.Error(err))
		return err
	}

	if err := writeReport(opts.Output, usage.Render(), logger); err != nil {
		return err
	}
	out.Printf("🎉 Reporte generado: %s", opts.Output)
	return nil
}
