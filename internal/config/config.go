// Package config loads the gonmea command configuration from TOML.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// EnvConfig names the environment variable holding a config file path.
const EnvConfig = "GONMEA_CONFIG"

// Config is the effective command configuration.
type Config struct {
	Language       string
	Format         string
	OnlyErrors     bool
	StrictChecksum bool
	Catalogs       []string
	Serial         SerialConfig
	LogLevel       string
}

// SerialConfig selects the receiver used by "gonmea watch".
type SerialConfig struct {
	Device string
	Baud   int
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Language: "en",
		Format:   "text",
		Serial:   SerialConfig{Device: "/dev/ttyUSB0", Baud: 4800},
		LogLevel: "info",
	}
}

type fileConfig struct {
	Language       string     `toml:"language"`
	Format         string     `toml:"format"`
	OnlyErrors     bool       `toml:"only_errors"`
	StrictChecksum bool       `toml:"strict_checksum"`
	Catalogs       []string   `toml:"catalogs"`
	Serial         fileSerial `toml:"serial"`
	Log            fileLog    `toml:"log"`
}

type fileSerial struct {
	Device string `toml:"device"`
	Baud   int    `toml:"baud"`
}

type fileLog struct {
	Level string `toml:"level"`
}

// Load reads path, or the file named by GONMEA_CONFIG when path is empty.
// Without either it returns Default().
func Load(path string) (Config, error) {
	if path == "" {
		path = strings.TrimSpace(os.Getenv(EnvConfig))
	}
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile overlays the keys defined in path on Default().
func LoadFile(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load config: unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("language") {
		cfg.Language = strings.ToLower(strings.TrimSpace(raw.Language))
	}
	if meta.IsDefined("format") {
		cfg.Format = strings.ToLower(strings.TrimSpace(raw.Format))
	}
	if meta.IsDefined("only_errors") {
		cfg.OnlyErrors = raw.OnlyErrors
	}
	if meta.IsDefined("strict_checksum") {
		cfg.StrictChecksum = raw.StrictChecksum
	}
	if meta.IsDefined("catalogs") {
		cfg.Catalogs = normalizePaths(raw.Catalogs)
	}
	if meta.IsDefined("serial", "device") {
		cfg.Serial.Device = strings.TrimSpace(raw.Serial.Device)
	}
	if meta.IsDefined("serial", "baud") {
		cfg.Serial.Baud = raw.Serial.Baud
	}
	if meta.IsDefined("log", "level") {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(raw.Log.Level))
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks enumerated values.
func (c Config) Validate() error {
	switch c.Language {
	case "en", "ja":
	default:
		return fmt.Errorf("language must be en or ja, got %q", c.Language)
	}
	switch c.Format {
	case "text", "json":
	default:
		return fmt.Errorf("format must be text or json, got %q", c.Format)
	}
	if c.Serial.Baud <= 0 {
		return fmt.Errorf("serial baud must be positive, got %d", c.Serial.Baud)
	}
	return nil
}

func normalizePaths(in []string) []string {
	out := make([]string, 0, len(in))
	for _, p := range in {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}
