// Package config loads markmode settings from a TOML file with
// environment variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "MARKMODE_"

// SelectionConfig holds selection engine settings.
type SelectionConfig struct {
	// EnableColorSelection enables the Alt/Ctrl+digit color commands.
	EnableColorSelection bool `toml:"enableColorSelection"`

	// LineModeDefault selects line-oriented selection when the alternate
	// modifier is not held at selection start.
	LineModeDefault bool `toml:"lineModeDefault"`
}

// WordsConfig holds word-scanning settings.
type WordsConfig struct {
	// Delimiters is appended to the built-in word delimiter set.
	Delimiters string `toml:"delimiters"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level ("debug", "info", "warn", "error").
	Level string `toml:"level"`

	// File is the log destination; empty discards log output.
	File string `toml:"file"`
}

// Settings is the full markmode configuration.
type Settings struct {
	Selection SelectionConfig `toml:"selection"`
	Words     WordsConfig     `toml:"words"`
	Logging   LoggingConfig   `toml:"logging"`
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		Selection: SelectionConfig{
			EnableColorSelection: true,
			LineModeDefault:      true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads settings from path, falling back to defaults when the file
// does not exist, then applies environment variable overrides.
func Load(path string) (Settings, error) {
	s := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// no config file, defaults apply
	case err != nil:
		return s, fmt.Errorf("reading config file %s: %w", path, err)
	default:
		if err := toml.Unmarshal(data, &s); err != nil {
			return s, &ParseError{Path: path, Message: err.Error(), Err: err}
		}
	}

	s.applyEnv()
	return s, nil
}

// applyEnv overlays MARKMODE_-prefixed environment variables onto the
// settings. Unset variables leave the file/default value in place.
func (s *Settings) applyEnv() {
	if v, ok := os.LookupEnv(EnvPrefix + "LOG_LEVEL"); ok {
		s.Logging.Level = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "LOG_FILE"); ok {
		s.Logging.File = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "WORD_DELIMITERS"); ok {
		s.Words.Delimiters = v
	}
	if v, ok := lookupBool(EnvPrefix + "COLOR_SELECTION"); ok {
		s.Selection.EnableColorSelection = v
	}
	if v, ok := lookupBool(EnvPrefix + "LINE_MODE"); ok {
		s.Selection.LineModeDefault = v
	}
}

// lookupBool reads an environment variable as a boolean. Accepts the
// forms strconv does plus yes/no and on/off.
func lookupBool(key string) (bool, bool) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return false, false
	}
	switch strings.ToLower(raw) {
	case "yes", "on":
		return true, true
	case "no", "off":
		return false, true
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}

// ParseError represents an error while parsing a configuration file.
type ParseError struct {
	Path    string
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// DefaultPath returns the conventional config file location, honoring
// MARKMODE_CONFIG when set.
func DefaultPath() string {
	if p := os.Getenv(EnvPrefix + "CONFIG"); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return dir + "/markmode/config.toml"
}
