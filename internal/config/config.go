// Package config loads itemizer settings from TOML or YAML files and the
// environment, and turns them into pipeline options.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/itemize"
	"github.com/gogpu/itemize/fontmap"
	"github.com/gogpu/itemize/text"
)

// EnvPrefix prefixes the environment variables read by ApplyEnv.
const EnvPrefix = "ITEMIZE_"

var (
	// ErrInvalidConfig is matched by every FieldError.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrUnsupportedFormat is returned for files that are neither TOML
	// nor YAML.
	ErrUnsupportedFormat = errors.New("config: unsupported file format")
)

// Config holds every setting of the itemize command.
type Config struct {
	BufferSize    int    `toml:"buffer_size" yaml:"buffer_size"`
	MaxBufferSize int    `toml:"max_buffer_size" yaml:"max_buffer_size"`
	Direction     string `toml:"direction" yaml:"direction"`
	Language      string `toml:"language" yaml:"language"`
	Invalid       string `toml:"invalid" yaml:"invalid"`
	Format        string `toml:"format" yaml:"format"`

	Fonts FontConfig `toml:"fonts" yaml:"fonts"`
}

// FontConfig configures font resolution.
type FontConfig struct {
	Enabled   bool     `toml:"enabled" yaml:"enabled"`
	Families  []string `toml:"families" yaml:"families"`
	System    bool     `toml:"system" yaml:"system"`
	CacheDir  string   `toml:"cache_dir" yaml:"cache_dir"`
	CacheSize int      `toml:"cache_size" yaml:"cache_size"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		BufferSize:    itemize.DefaultBufferSize,
		MaxBufferSize: itemize.DefaultMaxBufferSize,
		Direction:     "ltr",
		Invalid:       "fail",
		Format:        "text",
		Fonts: FontConfig{
			Enabled:   true,
			CacheSize: 256,
		},
	}
}

// ParseError reports a malformed configuration file.
type ParseError struct {
	Path    string
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("config: parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// FieldError reports an invalid setting.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// Is reports whether target is ErrInvalidConfig.
func (e *FieldError) Is(target error) bool { return target == ErrInvalidConfig }

// Load reads the file at path over the defaults. The format is chosen by
// extension (.toml, .yaml, .yml). A missing file is not an error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
	}
	return Parse(path, data)
}

// Parse decodes data over the defaults. name is only used to pick the
// format and to label errors.
func Parse(name string, data []byte) (Config, error) {
	cfg := Default()

	var err error
	switch strings.ToLower(filepath.Ext(name)) {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
	if err != nil {
		return Config{}, &ParseError{Path: name, Message: err.Error(), Err: err}
	}
	return cfg, nil
}

// ApplyEnv overrides settings from ITEMIZE_* variables found by lookup,
// which is normally os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	strs := map[string]*string{
		"DIRECTION":       &c.Direction,
		"LANGUAGE":        &c.Language,
		"INVALID":         &c.Invalid,
		"FORMAT":          &c.Format,
		"FONTS_CACHE_DIR": &c.Fonts.CacheDir,
	}
	for name, dst := range strs {
		if v, ok := lookup(EnvPrefix + name); ok {
			*dst = v
		}
	}

	ints := map[string]*int{
		"BUFFER_SIZE":     &c.BufferSize,
		"MAX_BUFFER_SIZE": &c.MaxBufferSize,
	}
	for name, dst := range ints {
		if v, ok := lookup(EnvPrefix + name); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return &FieldError{Field: EnvPrefix + name, Message: fmt.Sprintf("not an integer: %q", v)}
			}
			*dst = n
		}
	}

	bools := map[string]*bool{
		"FONTS":        &c.Fonts.Enabled,
		"SYSTEM_FONTS": &c.Fonts.System,
	}
	for name, dst := range bools {
		if v, ok := lookup(EnvPrefix + name); ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return &FieldError{Field: EnvPrefix + name, Message: fmt.Sprintf("not a boolean: %q", v)}
			}
			*dst = b
		}
	}

	if v, ok := lookup(EnvPrefix + "FONTS_FAMILIES"); ok {
		c.Fonts.Families = splitList(v)
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// Validate checks every field and returns all problems joined.
func (c Config) Validate() error {
	var errs []error
	add := func(field, format string, args ...any) {
		errs = append(errs, &FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if c.BufferSize < itemize.MinBufferSize {
		add("buffer_size", "must be at least %d, got %d", itemize.MinBufferSize, c.BufferSize)
	}
	if c.MaxBufferSize < c.BufferSize {
		add("max_buffer_size", "must not be below buffer_size (%d), got %d", c.BufferSize, c.MaxBufferSize)
	}
	if _, err := text.ParseDirection(c.Direction); err != nil {
		add("direction", "%v", err)
	}
	if _, err := text.CanonicalLanguage(c.Language); err != nil {
		add("language", "%v", err)
	}
	if _, err := itemize.ParseInvalidPolicy(c.Invalid); err != nil {
		add("invalid", "%v", err)
	}
	switch strings.ToLower(c.Format) {
	case "text", "json":
	default:
		add("format", "must be text or json, got %q", c.Format)
	}
	if c.Fonts.CacheSize < 0 {
		add("fonts.cache_size", "must not be negative, got %d", c.Fonts.CacheSize)
	}

	return errors.Join(errs...)
}

// Options converts the configuration into pipeline options. The font
// resolver is not included; see NewResolver.
func (c Config) Options() ([]itemize.Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	dir, _ := text.ParseDirection(c.Direction)
	lang, _ := text.CanonicalLanguage(c.Language)
	policy, _ := itemize.ParseInvalidPolicy(c.Invalid)

	return []itemize.Option{
		itemize.WithBufferSize(c.BufferSize),
		itemize.WithMaxBufferSize(c.MaxBufferSize),
		itemize.WithBaseDirection(dir),
		itemize.WithLanguage(lang),
		itemize.WithInvalidPolicy(policy),
	}, nil
}

// NewResolver builds the font resolver described by the configuration.
// It returns nil when font resolution is disabled.
func (c Config) NewResolver() (*fontmap.Resolver, error) {
	if !c.Fonts.Enabled {
		return nil, nil
	}
	opts := []fontmap.Option{fontmap.WithCacheSize(c.Fonts.CacheSize)}
	if len(c.Fonts.Families) > 0 {
		opts = append(opts, fontmap.WithFamilies(c.Fonts.Families...))
	}
	if c.Fonts.System {
		opts = append(opts, fontmap.WithSystemFonts(c.Fonts.CacheDir))
	}
	return fontmap.NewResolver(opts...)
}
