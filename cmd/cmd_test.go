package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&out)
	RootCmd.SetArgs(args)
	t.Cleanup(func() {
		RootCmd.SetOut(nil)
		RootCmd.SetErr(nil)
		RootCmd.SetArgs(nil)
	})
	err := Execute(context.Background())
	return out.String(), err
}

func TestRootDumpsContext(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "node_modules"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "index.js"), []byte("main()"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "node_modules", "dep.js"), []byte("dep"), 0o644))
	output := filepath.Join(t.TempDir(), "dump.txt")

	out, err := execute(t, "--root", root, "--output", output)
	require.NoError(t, err)
	assert.Contains(t, out, "Agregado: index.js\n")

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "--- CONTEXTO DEL PROYECTO: GESTION-PALTA ---\n"))
	assert.Contains(t, string(data), "RUTA: index.js\n")
	assert.NotContains(t, string(data), "dep.js")
}

func TestPagesMissingTargetIsNotFatal(t *testing.T) {
	root := t.TempDir()
	output := filepath.Join(t.TempDir(), "pages.txt")

	out, err := execute(t, "pages", "--root", root, "--output", output)
	require.NoError(t, err)
	assert.Contains(t, out, "ERROR: No encuentro la carpeta '"+filepath.Join("src", "pages")+"'")
	assert.NoFileExists(t, output)
}

func TestConfigOverridesProfile(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "main.ts"), []byte("ts"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "main.js"), []byte("js"), 0o644))
	cfg := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("profiles:\n  contexto:\n    extensions: [ts]\n"), 0o644))
	output := filepath.Join(t.TempDir(), "dump.txt")
	// Flags live on the shared RootCmd.
	t.Cleanup(func() { global.Config = "" })

	out, err := execute(t, "--root", root, "--config", cfg, "--output", output)
	require.NoError(t, err)
	assert.Contains(t, out, "Agregado: main.ts\n")
	assert.NotContains(t, out, "main.js")
}

func TestVersionShort(t *testing.T) {
	out, err := execute(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", out)
}
