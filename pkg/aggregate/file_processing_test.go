package aggregate

import (
	"os"
	"path/filepath"
	"testing"

	"contexto/pkg/ignore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectorInclude(t *testing.T) {
	rules := ignore.NewRules(nil, []string{"package-lock.json", "yarn.lock"}, nil)
	sel := newSelector([]string{".js", ".json"}, rules, "/out/dump.js")

	tests := []struct {
		name     string
		abs      string
		expected bool
	}{
		{"index.js", "/p/index.js", true},
		{"config.json", "/p/config.json", true},
		{"package-lock.json", "/p/package-lock.json", false},
		{"yarn.lock", "/p/yarn.lock", false},
		{"README", "/p/README", false},
		{"app.JS", "/p/app.JS", false},
		{"dump.js", "/out/dump.js", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sel.include(tt.abs, tt.name, tt.name))
		})
	}
}

func TestValidateUTF8(t *testing.T) {
	assert.NoError(t, validateUTF8([]byte("plain ascii")))
	assert.NoError(t, validateUTF8([]byte("ñandú \ufffd ok")))
	assert.NoError(t, validateUTF8(nil))

	err := validateUTF8([]byte("ab\xc3"))
	require.ErrorIs(t, err, ErrInvalidUTF8)
	assert.EqualError(t, err, "invalid UTF-8: byte 0xc3 at offset 2")
}

func TestNormalizeNewlines(t *testing.T) {
	assert.Equal(t, "a\nb\n", normalizeNewlines("a\r\nb\r\n"))
	assert.Equal(t, "a\nb", normalizeNewlines("a\rb"))
	assert.Equal(t, "a\n\nb", normalizeNewlines("a\r\rb"))
	assert.Equal(t, "unchanged\n", normalizeNewlines("unchanged\n"))
}

func TestReadText(t *testing.T) {
	dir := t.TempDir()

	_, err := readText(filepath.Join(dir, "missing.js"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(dir, "bom.js")
	require.NoError(t, os.WriteFile(path, []byte("\xef\xbb\xbfconst a = 1;\r\n"), 0o644))
	content, err := readText(path)
	require.NoError(t, err)
	assert.Equal(t, "\ufeffconst a = 1;\n", content)
}

func TestDecodeLenient(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"valid text is untouched", "ñandú", "ñandú"},
		{"each stray byte gets a marker", "a\xff\xfeb", "a\uFFFD\uFFFDb"},
		{"truncated sequence is one marker", "a\xe2\x82b", "a\uFFFDb"},
		{"truncated sequence at the end", "ab\xf0\x9f\x98", "ab\uFFFD"},
		{"encoded surrogate is one marker per byte", "\xed\xa0\x80", "\uFFFD\uFFFD\uFFFD"},
		{"lone continuation byte", "\x80x", "\uFFFDx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, decodeLenient([]byte(tt.input)))
		})
	}
}

func TestReadLenient(t *testing.T) {
	path := filepath.Join(t.TempDir(), "latin1.jsx")
	require.NoError(t, os.WriteFile(path, []byte("a\xff\xfeb"), 0o644))

	content, err := readLenient(path)
	require.NoError(t, err)
	assert.Equal(t, "a\uFFFD\uFFFDb", content)
}

func TestGenerateTree(t *testing.T) {
	tree := GenerateTree("proj", []string{
		"zeta.js",
		filepath.Join("lib", "b.js"),
		"Alpha.js",
		filepath.Join("lib", "A.js"),
		filepath.Join("app", "x", "y.css"),
	})

	want := "proj/\n" +
		"├── app/\n" +
		"│   └── x/\n" +
		"│       └── y.css\n" +
		"├── lib/\n" +
		"│   ├── A.js\n" +
		"│   └── b.js\n" +
		"├── Alpha.js\n" +
		"└── zeta.js\n"
	assert.Equal(t, want, tree)
}
