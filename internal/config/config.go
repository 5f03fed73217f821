package config

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"bootstrap-machine/internal/logger"
)

// DefaultEnvFile and DefaultVersionsFile are the fixed relative locations the
// tool reads on every run. The environment file carries the developer's
// identity and preferences; the versions file carries pinned tool versions
// and overrides the environment file on key conflicts.
const (
	DefaultEnvFile      = "environment.yaml"
	DefaultVersionsFile = "versions.yaml"
)

// ConfigError reports a missing or malformed configuration document.
// It is fatal to the run: no provisioning action executes after one.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// Config is the immutable key/value settings map for one run. Keys are
// normalized to upper-case identifiers (dashes become underscores) so the
// same names work as lookup keys and as environment variables for the
// external tools the actions shell out to.
//
// It is created once at startup by Load and read-only afterwards; nothing
// is persisted across runs.
type Config struct {
	values map[string]string
}

// New builds a Config from literal settings, normalizing the keys. Real
// runs go through Load; New exists for wiring actions against fixed
// settings in tests.
func New(values map[string]string) *Config {
	normalized := make(map[string]string, len(values))
	for k, v := range values {
		normalized[NormalizeKey(k)] = v
	}
	return &Config{values: normalized}
}

// Load reads the environment description document and the companion version
// pin document and merges them into one Config, versions winning on conflict.
// Both files are required inputs of a run; a missing or malformed document
// yields a *ConfigError.
func Load(envPath, versionsPath string) (*Config, error) {
	values, err := loadDocument(envPath)
	if err != nil {
		return nil, err
	}

	pins, err := loadDocument(versionsPath)
	if err != nil {
		return nil, err
	}
	for k, v := range pins {
		values[k] = v
	}

	logger.Debug("[DEBUG] Loaded %d configuration keys from %s + %s\n", len(values), envPath, versionsPath)
	return &Config{values: values}, nil
}

// loadDocument reads one key/value document from disk and parses it.
func loadDocument(path string) (map[string]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}
	values, err := parseDocument(raw)
	if err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}
	return values, nil
}

// parseDocument extracts the top-level scalar keys of a flat key/value
// document. Keys that introduce nested content (lists or mappings) and keys
// with no value at all are skipped; only scalar settings are promoted into
// the run's configuration. Key names are normalized with NormalizeKey.
func parseDocument(raw []byte) (map[string]string, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("malformed document: %w", err)
	}

	values := make(map[string]string)

	// An empty document parses to a node with no content; that is a valid
	// (if useless) configuration.
	if len(doc.Content) == 0 {
		return values, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("top level must be key/value pairs, got %s", nodeKind(root))
	}

	// Mapping nodes store key and value nodes interleaved.
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		if value.Kind != yaml.ScalarNode || value.Tag == "!!null" {
			logger.Debug("[DEBUG] Skipping non-scalar key %q\n", key.Value)
			continue
		}
		values[NormalizeKey(key.Value)] = strings.TrimSpace(value.Value)
	}
	return values, nil
}

// nodeKind names a YAML node kind for error messages.
func nodeKind(n *yaml.Node) string {
	switch n.Kind {
	case yaml.MappingNode:
		return "a mapping"
	case yaml.SequenceNode:
		return "a list"
	case yaml.ScalarNode:
		return "a scalar"
	default:
		return "an unknown node"
	}
}

// NormalizeKey converts a document key into the canonical upper-case
// identifier used for lookups and environment export.
func NormalizeKey(key string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(key), "-", "_"))
}

// Get returns the value for a normalized key, or the empty string when unset.
func (c *Config) Get(key string) string {
	return c.values[NormalizeKey(key)]
}

// Lookup returns the value for a normalized key and whether it was set.
func (c *Config) Lookup(key string) (string, bool) {
	v, ok := c.values[NormalizeKey(key)]
	return v, ok
}

// GetDefault returns the value for a key, or def when the key is unset.
func (c *Config) GetDefault(key, def string) string {
	if v, ok := c.Lookup(key); ok {
		return v
	}
	return def
}

// Len reports the number of loaded settings.
func (c *Config) Len() int { return len(c.values) }

// Environ returns base extended with one KEY=value pair per loaded setting,
// sorted by key for stable output. The overlay is handed to each sub-process
// invocation instead of mutating the tool's own process environment.
func (c *Config) Environ(base []string) []string {
	keys := make([]string, 0, len(c.values))
	for k := range c.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	env := make([]string, 0, len(base)+len(keys))
	env = append(env, base...)
	for _, k := range keys {
		env = append(env, k+"="+c.values[k])
	}
	return env
}
