package profile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is looked up in the project root when no --config is given.
const DefaultConfigFile = ".contexto.yaml"

// Override replaces the named fields of a built-in profile. Nil fields are
// left untouched.
type Override struct {
	Output      *string  `yaml:"output"`
	Target      *string  `yaml:"target"`
	Extensions  []string `yaml:"extensions"`
	IgnoreDirs  []string `yaml:"ignore_dirs"`
	IgnoreFiles []string `yaml:"ignore_files"`
	Files       []string `yaml:"files"`
}

// Config is the on-disk shape of the optional profile file.
type Config struct {
	Profiles map[string]Override `yaml:"profiles"`
}

// Loader reads profile configuration files.
type Loader struct {
	logger *zap.Logger
}

// NewLoader creates a new configuration loader.
func NewLoader(logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{logger: logger}
}

// Load reads the configuration at path. When explicit is false a missing file
// yields an empty Config; an explicitly requested file must exist.
func (l *Loader) Load(path string, explicit bool) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			l.logger.Debug("No profile configuration found", zap.String("filePath", path))
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		l.logger.Error("Failed to parse config file", zap.String("filePath", path), zap.Error(err))
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	for name := range cfg.Profiles {
		if _, ok := Builtin(name); !ok {
			return nil, fmt.Errorf("config file %s: unknown profile %q", path, name)
		}
	}

	l.logger.Debug("Loaded profile configuration",
		zap.String("filePath", path),
		zap.Strings("profiles", lo.Keys(cfg.Profiles)))
	return &cfg, nil
}

// Resolve returns the built-in profile name with any configured overrides applied.
func (c *Config) Resolve(name string) (Profile, error) {
	p, ok := Builtin(name)
	if !ok {
		return Profile{}, fmt.Errorf("unknown profile %q", name)
	}
	if c == nil {
		return p, nil
	}
	o, ok := c.Profiles[name]
	if !ok {
		return p, nil
	}
	return o.apply(p), nil
}

func (o Override) apply(p Profile) Profile {
	if o.Output != nil {
		p.Output = *o.Output
	}
	if o.Target != nil {
		p.Target = filepath.FromSlash(*o.Target)
	}
	if o.Extensions != nil {
		p.Extensions = lo.Uniq(lo.Map(o.Extensions, func(ext string, _ int) string {
			return NormalizeExtension(ext)
		}))
	}
	if o.IgnoreDirs != nil {
		p.IgnoreDirs = o.IgnoreDirs
	}
	if o.IgnoreFiles != nil {
		p.IgnoreFiles = o.IgnoreFiles
	}
	if o.Files != nil {
		p.Files = o.Files
	}
	return p
}

// NormalizeExtension adds the leading dot to ext when it is missing.
func NormalizeExtension(ext string) string {
	ext = strings.TrimSpace(ext)
	if ext == "" || strings.HasPrefix(ext, ".") {
		return ext
	}
	return "." + ext
}
