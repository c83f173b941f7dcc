package aggregate

import (
	"errors"

	"contexto/pkg/console"
	"contexto/pkg/ignore"
	"contexto/pkg/profile"

	"go.uber.org/zap"
)

// Sentinel errors reported by a run.
var (
	// ErrTargetNotFound is returned when a profile requires its target
	// directory and it is missing. The condition has already been printed.
	ErrTargetNotFound = errors.New("target directory not found")
	// ErrInvalidUTF8 wraps content that cannot be decoded as UTF-8.
	ErrInvalidUTF8 = errors.New("invalid UTF-8")
)

// Options holds everything a single aggregation run needs.
type Options struct {
	Root    string           // Directory relative paths are computed against.
	Profile profile.Profile  // Extensions, ignore lists, output and messages.
	Rules   *ignore.Rules    // Built from Profile when nil.
	Tree    string           // Optional destination for a tree of the included files.
	Console *console.Console // Human-readable progress; discarded when nil.
	Logger  *zap.Logger      // Structured diagnostics; no-op when nil.
}

// Summary reports what a run wrote.
type Summary struct {
	Added  int      // Files written to the output.
	Failed int      // Files that could not be read.
	Bytes  int64    // Content bytes written, delimiters excluded.
	Files  []string // Added relative paths in write order; only kept when a tree is requested.
}

// Block separator widths.
const (
	pathSeparatorWidth = 50
	menuSeparatorWidth = 80
	menuFooterWidth    = 42
)
