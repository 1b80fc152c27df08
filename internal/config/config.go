// Package config loads the service configuration from the data directory,
// the environment and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aretw0/bilingua/pkg/domain"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/magiconair/properties"
	"github.com/spf13/pflag"
)

// EnvPrefix is the prefix of environment overrides (BILINGUA_PORT, BILINGUA_LOG_LEVEL...).
const EnvPrefix = "BILINGUA_"

// OverridesFileName is an optional YAML file next to bi.properties.
const OverridesFileName = "bilingua.yaml"

// DefaultLockTTL bounds how long a replica may hold the books lock.
const DefaultLockTTL = 5 * time.Second

// Backend kinds.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
)

// Config is the fully layered service configuration.
type Config struct {
	Dir       string `koanf:"dir"`
	LeftName  string `koanf:"left_name"`
	RightName string `koanf:"right_name"`

	Backend  string `koanf:"backend"`
	Port     int    `koanf:"port"`
	Metrics  bool   `koanf:"metrics"`
	LogLevel string `koanf:"log_level"`

	RedisAddr     string        `koanf:"redis_addr"`
	RedisPassword string        `koanf:"redis_password"`
	RedisDB       int           `koanf:"redis_db"`
	RedisPrefix   string        `koanf:"redis_prefix"`
	LockTTL       time.Duration `koanf:"lock_ttl"`
}

// Defaults returns the lowest-priority layer.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"backend":      BackendFile,
		"port":         8080,
		"metrics":      true,
		"log_level":    "info",
		"redis_addr":   "localhost:6379",
		"redis_db":     0,
		"redis_prefix": "bilingua:",
		"lock_ttl":     DefaultLockTTL.String(),
	}
}

// DefaultDir is ~/Documents/pi/bilingua.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, "Documents", "pi", "bilingua"), nil
}

// ResolveDir picks the data directory: explicit value, then BILINGUA_DIR, then DefaultDir.
func ResolveDir(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if dir := os.Getenv(EnvPrefix + "DIR"); dir != "" {
		return dir, nil
	}
	return DefaultDir()
}

// Load builds the configuration for the data directory dir.
//
// Priority (lowest to highest): defaults, bi.properties, bilingua.yaml, BILINGUA_*
// environment variables, explicitly set flags. bi.properties is required.
func Load(dir string, flags *pflag.FlagSet) (*Config, error) {
	dir, err := ResolveDir(dir)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. bi.properties (book names)
	propsPath := filepath.Join(dir, domain.PropertiesFileName)
	props, err := properties.LoadFile(propsPath, properties.UTF8)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", propsPath, err)
	}
	if err := k.Load(confmap.Provider(toAny(props.Map()), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", propsPath, err)
	}

	// 3. Optional YAML overrides
	overrides := filepath.Join(dir, OverridesFileName)
	if _, err := os.Stat(overrides); err == nil {
		if err := k.Load(file.Provider(overrides), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", overrides, err)
		}
	}

	// 4. Environment (BILINGUA_LOG_LEVEL -> log_level)
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 5. Flags (only those explicitly set)
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed || f.Name == "dir" {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.Dir = dir

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the fields the service cannot start without.
func (c *Config) Validate() error {
	var errs []error
	if c.LeftName == "" {
		errs = append(errs, fmt.Errorf("left_name is required in %s", domain.PropertiesFileName))
	}
	if c.RightName == "" {
		errs = append(errs, fmt.Errorf("right_name is required in %s", domain.PropertiesFileName))
	}
	switch c.Backend {
	case BackendFile, BackendRedis:
	default:
		errs = append(errs, fmt.Errorf("unknown backend %q (supported: %s, %s)", c.Backend, BackendFile, BackendRedis))
	}
	if c.Port < 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("port %d out of range", c.Port))
	}
	if c.LockTTL <= 0 {
		errs = append(errs, fmt.Errorf("lock_ttl must be positive, got %s", c.LockTTL))
	}
	return errors.Join(errs...)
}

func toAny(m map[string]string) map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
