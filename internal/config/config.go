// Package config loads deckc settings.
//
// Precedence, highest first:
//  1. Environment variables with the DECKC_ prefix
//  2. The YAML file named by --config
//  3. Defaults
//
// Environment variables map onto keys by dropping the prefix, lowercasing
// and splitting the section off at the first underscore:
//
//	DECKC_LAYOUT_TABLE_ROWS -> layout.table_rows
//	DECKC_SERVER_PORT       -> server.port
package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"go.uber.org/multierr"

	"github.com/hapi-suta/runbookforge-sub002/internal/layout"
)

// EnvPrefix marks environment variables that override configuration.
const EnvPrefix = "DECKC_"

const maxConfigFileSize = 1024 * 1024

// Config is the full set of settings.
type Config struct {
	Layout  LayoutConfig  `koanf:"layout"`
	Log     LogConfig     `koanf:"log"`
	Server  ServerConfig  `koanf:"server"`
	Journal JournalConfig `koanf:"journal"`
}

// LayoutConfig sets pagination capacities.
type LayoutConfig struct {
	TableRows   int `koanf:"table_rows"`
	ColumnItems int `koanf:"column_items"`
}

// Options converts the capacities for layout.Compile.
func (c LayoutConfig) Options() layout.Options {
	return layout.Options{TableRowsPerSlide: c.TableRows, ColumnItemsPerSlide: c.ColumnItems}
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// ServerConfig is where serve listens.
type ServerConfig struct {
	Host string `koanf:"host"`
	Port int    `koanf:"port"`
}

// Addr is host:port.
func (c ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// JournalConfig locates the export journal. An empty path disables it.
type JournalConfig struct {
	Path string `koanf:"path"`
}

// Enabled reports whether exports are journaled.
func (c JournalConfig) Enabled() bool { return c.Path != "" }

// Defaults returns the built-in settings.
func Defaults() map[string]any {
	return map[string]any{
		"layout.table_rows":   layout.DefaultTableRowsPerSlide,
		"layout.column_items": layout.DefaultColumnItemsPerSlide,
		"log.level":           "info",
		"log.format":          "console",
		"server.host":         "localhost",
		"server.port":         8080,
		"journal.path":        "",
	}
}

// Load reads defaults, then the YAML file at path if path is not empty,
// then the environment.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	if path != "" {
		content, err := readFile(path)
		if err != nil {
			return nil, err
		}
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// envKey maps DECKC_SECTION_FIELD_NAME to section.field_name.
func envKey(s string) string {
	lower := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	section, field, ok := strings.Cut(lower, "_")
	if !ok {
		return lower
	}
	return section + "." + field
}

func readFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("config path %s is a directory", path)
	}
	if info.Size() > maxConfigFileSize {
		return nil, fmt.Errorf("config file %s is too large (%d bytes, max %d)", path, info.Size(), maxConfigFileSize)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return content, nil
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var err error
	if c.Layout.TableRows <= 0 {
		err = multierr.Append(err, fmt.Errorf("layout.table_rows must be positive, got %d", c.Layout.TableRows))
	}
	if c.Layout.ColumnItems <= 0 {
		err = multierr.Append(err, fmt.Errorf("layout.column_items must be positive, got %d", c.Layout.ColumnItems))
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		err = multierr.Append(err, fmt.Errorf("log.level must be debug, info, warn or error, got %q", c.Log.Level))
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		err = multierr.Append(err, fmt.Errorf("log.format must be console or json, got %q", c.Log.Format))
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		err = multierr.Append(err, fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port))
	}
	return err
}
