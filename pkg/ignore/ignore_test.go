package ignore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestRulesNames(t *testing.T) {
	rules := NewRules(
		[]string{"node_modules", ".git", "dist"},
		[]string{"package-lock.json"},
		zaptest.NewLogger(t),
	)

	tests := []struct {
		path     string
		dir      bool
		expected bool
	}{
		{"node_modules", true, true},
		{filepath.Join("src", "node_modules"), true, true},
		{filepath.Join("a", "b", "dist"), true, true},
		{"distribution", true, false},
		{"src", true, false},
		{"package-lock.json", false, true},
		{filepath.Join("sub", "package-lock.json"), false, true},
		{"package.json", false, false},
		{"node_modules", false, false},
	}

	for _, tt := range tests {
		name := filepath.Base(tt.path)
		if tt.dir {
			assert.Equal(t, tt.expected, rules.SkipDir(tt.path, name), "SkipDir(%q)", tt.path)
		} else {
			assert.Equal(t, tt.expected, rules.SkipFile(tt.path, name), "SkipFile(%q)", tt.path)
		}
	}
}

func TestRulesEmpty(t *testing.T) {
	rules := NewRules(nil, nil, nil)
	assert.False(t, rules.SkipDir("node_modules", "node_modules"))
	assert.False(t, rules.SkipFile("yarn.lock", "yarn.lock"))
}

func TestLoadGitIgnore(t *testing.T) {
	t.Run("missing file is not an error", func(t *testing.T) {
		rules := NewRules(nil, nil, zaptest.NewLogger(t))
		require.NoError(t, rules.LoadGitIgnore(t.TempDir()))
		assert.False(t, rules.SkipFile("x.log", "x.log"))
	})

	t.Run("patterns apply to files and directories", func(t *testing.T) {
		root := t.TempDir()
		content := "# build output\n*.log\n/coverage\n!keep.log\n"
		require.NoError(t, os.WriteFile(filepath.Join(root, GitIgnoreFile), []byte(content), 0o644))

		rules := NewRules(nil, nil, zaptest.NewLogger(t))
		require.NoError(t, rules.LoadGitIgnore(root))

		assert.True(t, rules.SkipFile(filepath.Join("logs", "app.log"), "app.log"))
		assert.False(t, rules.SkipFile("keep.log", "keep.log"))
		assert.True(t, rules.SkipDir("coverage", "coverage"))
		assert.False(t, rules.SkipDir(filepath.Join("src", "coverage"), "coverage"))
		assert.False(t, rules.SkipFile("main.js", "main.js"))
	})

	t.Run("lines accumulate across calls", func(t *testing.T) {
		rules := NewRules(nil, nil, nil)
		rules.CompileLines("*.tmp")
		rules.CompileLines("*.bak")
		assert.True(t, rules.SkipFile("a.tmp", "a.tmp"))
		assert.True(t, rules.SkipFile("a.bak", "a.bak"))
	})
}
