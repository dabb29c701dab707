package config

import (
	"fmt"

	"github.com/quirelabs/quire/internal/config/loader"
	"github.com/quirelabs/quire/internal/engine/paginate"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "QUIRE_"

// Config is the application configuration.
type Config struct {
	Pagination Pagination
	Logging    Logging
	Rules      Rules
}

// Pagination holds the engine budgets.
type Pagination struct {
	WordsPerPage          int
	CharactersPerPage     int
	MaxWindowPages        int
	RepaginationThreshold float64
}

// Logging holds log output settings.
type Logging struct {
	// Level is one of debug, info, warn, error.
	Level string
}

// Rules holds split-rule scripting settings.
type Rules struct {
	// Script is the path of an optional Lua split-rule script.
	Script string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Pagination: Pagination{
			WordsPerPage:          paginate.DefaultWordsPerPage,
			CharactersPerPage:     paginate.DefaultCharactersPerPage,
			MaxWindowPages:        paginate.DefaultMaxWindowPages,
			RepaginationThreshold: paginate.DefaultRepaginationThreshold,
		},
		Logging: Logging{Level: "info"},
	}
}

// Engine converts the pagination section into the engine's config value.
func (c Config) Engine() paginate.Config {
	return paginate.Config{
		WordsPerPage:          c.Pagination.WordsPerPage,
		CharactersPerPage:     c.Pagination.CharactersPerPage,
		MaxWindowPages:        c.Pagination.MaxWindowPages,
		RepaginationThreshold: c.Pagination.RepaginationThreshold,
	}
}

// Validate checks the configuration for usable values.
func (c Config) Validate() error {
	if err := c.Engine().Validate(); err != nil {
		return err
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Logging.Level)
	}
	return nil
}

// Load assembles configuration from defaults, the given file (optional,
// "" skips the file layer), and environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		m, err := loader.ForPath(path).LoadFrom(path)
		if err != nil {
			return Config{}, err
		}
		cfg.apply(m)
	}

	env, err := loader.NewEnvLoader(EnvPrefix).Load()
	if err != nil {
		return Config{}, err
	}
	cfg.apply(env)

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// apply overlays a loader map onto the config. Unknown keys are ignored;
// values that cannot be coerced keep the existing setting.
func (c *Config) apply(m map[string]any) {
	if m == nil {
		return
	}
	if n, ok := lookupInt(m, "pagination", "words_per_page"); ok {
		c.Pagination.WordsPerPage = n
	}
	if n, ok := lookupInt(m, "pagination", "characters_per_page"); ok {
		c.Pagination.CharactersPerPage = n
	}
	if n, ok := lookupInt(m, "pagination", "max_window_pages"); ok {
		c.Pagination.MaxWindowPages = n
	}
	if f, ok := lookupFloat(m, "pagination", "repagination_threshold"); ok {
		c.Pagination.RepaginationThreshold = f
	}
	if s, ok := lookupString(m, "logging", "level"); ok {
		c.Logging.Level = s
	}
	if s, ok := lookupString(m, "rules", "script"); ok {
		c.Rules.Script = s
	}
}

// lookup walks nested maps by key path.
func lookup(m map[string]any, path ...string) (any, bool) {
	cur := any(m)
	for _, key := range path {
		mm, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = mm[key]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// lookupInt fetches an integer value, coercing the numeric types the
// various format decoders produce.
func lookupInt(m map[string]any, path ...string) (int, bool) {
	v, ok := lookup(m, path...)
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}

// lookupFloat fetches a float value with the same coercions.
func lookupFloat(m map[string]any, path ...string) (float64, bool) {
	v, ok := lookup(m, path...)
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

// lookupString fetches a string value.
func lookupString(m map[string]any, path ...string) (string, bool) {
	v, ok := lookup(m, path...)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}
