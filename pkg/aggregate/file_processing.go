package aggregate

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"contexto/pkg/ignore"

	"github.com/samber/lo"
)

var (
	pathSeparator = strings.Repeat("=", pathSeparatorWidth)
	menuSeparator = strings.Repeat("=", menuSeparatorWidth)
	menuFooter    = strings.Repeat("-", menuFooterWidth)
)

// selector decides which walked files end up in the output.
type selector struct {
	extensions map[string]struct{}
	rules      *ignore.Rules
	skipPath   string // Absolute path of the output file itself.
}

func newSelector(extensions []string, rules *ignore.Rules, outputPath string) *selector {
	return &selector{
		extensions: lo.SliceToMap(extensions, func(ext string) (string, struct{}) {
			return ext, struct{}{}
		}),
		rules:    rules,
		skipPath: outputPath,
	}
}

// include reports whether a file is part of the dump: its extension is
// allowed and its name is not ignored.
func (s *selector) include(absPath, relPath, name string) bool {
	if _, ok := s.extensions[filepath.Ext(name)]; !ok {
		return false
	}
	if s.rules.SkipFile(relPath, name) {
		return false
	}
	return absPath != s.skipPath
}

// readText reads a whole file as strict UTF-8 text, translating CRLF and
// lone CR line endings to LF.
func readText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if err := validateUTF8(data); err != nil {
		return "", err
	}
	return normalizeNewlines(string(data)), nil
}

// readLenient reads a whole file, replacing invalid UTF-8 with U+FFFD.
func readLenient(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return decodeLenient(data), nil
}

// decodeLenient writes one U+FFFD per maximal ill-formed subsequence: a lone
// invalid byte is one marker, a truncated multi-byte sequence is one marker.
func decodeLenient(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}

	var b strings.Builder
	b.Grow(len(data))
	for offset := 0; offset < len(data); {
		r, size := utf8.DecodeRune(data[offset:])
		if r != utf8.RuneError || size > 1 {
			b.Write(data[offset : offset+size])
			offset += size
			continue
		}
		b.WriteRune(utf8.RuneError)
		offset += invalidPrefixLen(data[offset:])
	}
	return b.String()
}

// invalidPrefixLen returns how many bytes of p form the longest incomplete
// but well-formed start of a multi-byte sequence, or 1.
func invalidPrefixLen(p []byte) int {
	size := 1
	for n := 2; n < utf8.UTFMax && n <= len(p); n++ {
		if utf8.FullRune(p[:n]) {
			break
		}
		size = n
	}
	return size
}

func validateUTF8(data []byte) error {
	for offset := 0; offset < len(data); {
		r, size := utf8.DecodeRune(data[offset:])
		if r == utf8.RuneError && size <= 1 {
			return fmt.Errorf("%w: byte 0x%02x at offset %d", ErrInvalidUTF8, data[offset], offset)
		}
		offset += size
	}
	return nil
}

func normalizeNewlines(s string) string {
	if !strings.Contains(s, "\r") {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// formatBlock renders one file of the context dump.
func formatBlock(relPath, content string) string {
	return "\n" + pathSeparator + "\n" +
		"RUTA: " + relPath + "\n" +
		pathSeparator + "\n" +
		content + "\n"
}

// formatMenuBlock renders one file of the menu collection.
func formatMenuBlock(relPath, content string) string {
	return menuSeparator + "\n" +
		"ARCHIVO: " + relPath + "\n" +
		menuSeparator + "\n\n" +
		content + "\n\n"
}

func formatMissing(relPath string) string {
	return "⚠️ ARCHIVO FALTANTE: " + relPath + "\n\n"
}
