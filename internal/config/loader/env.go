package loader

import (
	"os"
	"strconv"
	"strings"
)

// EnvLoader loads configuration from environment variables.
type EnvLoader struct {
	prefix  string            // Environment variable prefix (e.g., "QUIRE_")
	mapping map[string]string // Env var -> config path
}

// NewEnvLoader creates a new environment variable loader.
// The prefix should include the trailing underscore (e.g., "QUIRE_").
func NewEnvLoader(prefix string) *EnvLoader {
	return &EnvLoader{
		prefix:  prefix,
		mapping: defaultEnvMapping(),
	}
}

// NewEnvLoaderWithMapping creates a loader with custom environment variable mappings.
func NewEnvLoaderWithMapping(prefix string, mapping map[string]string) *EnvLoader {
	return &EnvLoader{
		prefix:  prefix,
		mapping: mapping,
	}
}

// defaultEnvMapping returns the default environment variable mappings.
func defaultEnvMapping() map[string]string {
	return map[string]string{
		"QUIRE_WORDS_PER_PAGE":      "pagination.words_per_page",
		"QUIRE_CHARACTERS_PER_PAGE": "pagination.characters_per_page",
		"QUIRE_MAX_WINDOW_PAGES":    "pagination.max_window_pages",
		"QUIRE_THRESHOLD":           "pagination.repagination_threshold",
		"QUIRE_LOG_LEVEL":           "logging.level",
		"QUIRE_SPLIT_RULE":          "rules.script",
	}
}

// Load reads environment variables and returns a configuration map.
// Note: Empty string values are treated as valid values, not as unset.
func (l *EnvLoader) Load() (map[string]any, error) {
	config := make(map[string]any)

	for env, path := range l.mapping {
		if !strings.HasPrefix(env, l.prefix) {
			continue
		}
		if val, ok := os.LookupEnv(env); ok {
			setByPath(config, path, parseValue(val))
		}
	}

	return config, nil
}

// parseValue converts an environment string to bool, int, or float when
// it looks like one, otherwise keeps it as a string.
func parseValue(val string) any {
	switch strings.ToLower(val) {
	case "true":
		return true
	case "false":
		return false
	}
	if n, err := strconv.ParseInt(val, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(val, 64); err == nil {
		return f
	}
	return val
}
