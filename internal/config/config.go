package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/harrison/spellingbee/internal/wordlist"
)

// Column count bounds for the result layout.
const (
	MinColumns = 1
	MaxColumns = 9
)

// Emphasis modes for pangram highlighting.
const (
	EmphasisAlways = "always"
	EmphasisAuto   = "auto"
	EmphasisNever  = "never"
)

// DefaultDictionary is the system word list.
const DefaultDictionary = wordlist.DefaultPath

// encodingAliases maps accepted spellings to the canonical encoding names.
var encodingAliases = map[string]string{
	"utf-8":      wordlist.EncodingUTF8,
	"utf8":       wordlist.EncodingUTF8,
	"iso-8859-1": wordlist.EncodingLatin1,
	"iso8859-1":  wordlist.EncodingLatin1,
	"latin1":     wordlist.EncodingLatin1,
	"latin-1":    wordlist.EncodingLatin1,
}

// Config represents spellingbee configuration options
type Config struct {
	// Dictionary is the path to the newline-delimited word list
	Dictionary string `yaml:"dictionary"`

	// Columns is the number of words printed per row (clamped to 1..9)
	Columns int `yaml:"columns"`

	// Encoding is the character encoding of the word list (utf-8, iso-8859-1)
	Encoding string `yaml:"encoding"`

	// Emphasis controls bold pangram cells: always, auto (TTY only), never
	Emphasis string `yaml:"emphasis"`

	// LogLevel sets the diagnostic verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		Dictionary: DefaultDictionary,
		Encoding:   wordlist.EncodingUTF8,
		Columns:    MinColumns,
		Emphasis:   EmphasisAlways,
		LogLevel:   "warn",
	}
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Only keys present in the file override defaults
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if _, exists := raw["dictionary"]; exists {
		cfg.Dictionary = fileCfg.Dictionary
	}
	if _, exists := raw["encoding"]; exists {
		cfg.Encoding = NormalizeEncoding(fileCfg.Encoding)
	}
	if _, exists := raw["columns"]; exists {
		cfg.Columns = ClampColumns(fileCfg.Columns)
	}
	if _, exists := raw["emphasis"]; exists {
		cfg.Emphasis = strings.ToLower(fileCfg.Emphasis)
	}
	if _, exists := raw["log_level"]; exists {
		cfg.LogLevel = strings.ToLower(fileCfg.LogLevel)
	}

	return cfg, nil
}

// MergeWithFlags merges CLI flags into the configuration
// Non-nil flag values override configuration values
func (c *Config) MergeWithFlags(dictionary *string, encoding *string, columns *string, emphasis *string, logLevel *string) {
	if dictionary != nil {
		c.Dictionary = *dictionary
	}
	if encoding != nil {
		c.Encoding = NormalizeEncoding(*encoding)
	}
	if columns != nil {
		c.Columns = ParseColumns(*columns)
	}
	if emphasis != nil {
		c.Emphasis = strings.ToLower(*emphasis)
	}
	if logLevel != nil {
		c.LogLevel = strings.ToLower(*logLevel)
	}
}

// Validate validates the configuration values
// Returns an error if any values are invalid
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Dictionary) == "" {
		return fmt.Errorf("dictionary path cannot be empty")
	}

	if !wordlist.ValidEncoding(c.Encoding) {
		return fmt.Errorf("invalid encoding %q, must be one of: utf-8, iso-8859-1", c.Encoding)
	}

	if c.Columns < MinColumns || c.Columns > MaxColumns {
		return fmt.Errorf("columns must be between %d and %d, got %d", MinColumns, MaxColumns, c.Columns)
	}

	switch c.Emphasis {
	case EmphasisAlways, EmphasisAuto, EmphasisNever:
	default:
		return fmt.Errorf("invalid emphasis %q, must be one of: always, auto, never", c.Emphasis)
	}

	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	return nil
}

// ClampColumns limits n to [MinColumns, MaxColumns].
func ClampColumns(n int) int {
	if n < MinColumns {
		return MinColumns
	}
	if n > MaxColumns {
		return MaxColumns
	}
	return n
}

// ParseColumns turns a --columns argument into a column count.
// Values that are not non-negative integers, including ones too large to
// represent, fall back to MinColumns. Parsed values are clamped.
func ParseColumns(s string) int {
	n, err := strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, 0)
	if err != nil {
		return MinColumns
	}
	if n > MaxColumns {
		return MaxColumns
	}
	return ClampColumns(int(n))
}

// NormalizeEncoding maps common spellings such as "UTF8" or "latin1" to the
// canonical names wordlist understands. Unknown names are returned lowercased
// so Validate can report them.
func NormalizeEncoding(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := encodingAliases[name]; ok {
		return canonical
	}
	return name
}
