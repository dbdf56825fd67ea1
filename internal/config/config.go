package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"sanakirja/internal/infrastructure/filestore"
)

// Store kinds.
const (
	StoreFile     = "file"
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

const (
	// EnvPrefix prefixes every environment variable read by Load.
	EnvPrefix = "SANAKIRJA_"

	// DefaultConfigFile is loaded when present and no explicit file is given.
	DefaultConfigFile = "sanakirja.yaml"

	defaultDatabaseURL = "postgres://localhost:5432/sanakirja?sslmode=disable"
)

type Config struct {
	Port           int           `koanf:"port"`
	Store          string        `koanf:"store"`
	File           string        `koanf:"file"`
	DatabaseURL    string        `koanf:"database_url"`
	MigrationsPath string        `koanf:"migrations_path"`
	Locale         string        `koanf:"locale"`
	LogLevel       string        `koanf:"log_level"`
	Discord        DiscordConfig `koanf:"discord"`
}

type DiscordConfig struct {
	Token   string `koanf:"token"`
	GuildID string `koanf:"guild_id"`
}

// Load builds the configuration. Precedence (highest to lowest):
// flags > SANAKIRJA_* env vars (including those from .env) > config file > defaults.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env is optional when variables come from the environment.
	}

	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]any{
		"port":            3000,
		"store":           StoreFile,
		"file":            filestore.DefaultPath,
		"migrations_path": "migrations",
		"locale":          "en",
		"log_level":       "info",
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("config: load defaults: %w", err)
	}

	if cfgFile == "" {
		if _, err := os.Stat(DefaultConfigFile); err == nil {
			cfgFile = DefaultConfigFile
		}
	}
	if cfgFile != "" {
		if err := k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", cfgFile, err)
		}
	}

	// SANAKIRJA_DATABASE_URL -> database_url, SANAKIRJA_DISCORD_TOKEN -> discord.token
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("config: load env: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			if !f.Changed || f.Name == "config" {
				return "", nil
			}
			return flagKey(f.Name), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("config: load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	if rest, ok := strings.CutPrefix(key, "discord_"); ok {
		return "discord." + rest
	}
	return key
}

// flagKey maps kebab-case flag names to config keys.
func flagKey(name string) string {
	key := strings.ReplaceAll(name, "-", "_")
	if rest, ok := strings.CutPrefix(key, "discord_"); ok {
		return "discord." + rest
	}
	return key
}

// validate checks the loaded configuration and fills dependent defaults.
func (c *Config) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("config: port must be between 1 and 65535, got %d", c.Port)
	}

	switch c.Store {
	case StoreFile:
		if strings.TrimSpace(c.File) == "" {
			return fmt.Errorf("config: file is required when store is %q", StoreFile)
		}
	case StoreMemory:
	case StorePostgres:
		if strings.TrimSpace(c.DatabaseURL) == "" {
			// Local default when database_url is not provided.
			c.DatabaseURL = defaultDatabaseURL
		}
		parsed, err := url.Parse(c.DatabaseURL)
		if err != nil {
			return fmt.Errorf("config: invalid database_url (%q): %w", c.DatabaseURL, err)
		}
		if parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("config: invalid database_url (%q): missing scheme or host", c.DatabaseURL)
		}
	default:
		return fmt.Errorf("config: unknown store %q (want %s, %s or %s)", c.Store, StoreFile, StorePostgres, StoreMemory)
	}

	if _, err := c.SlogLevel(); err != nil {
		return err
	}

	if c.Discord.GuildID != "" {
		for _, r := range c.Discord.GuildID {
			if r < '0' || r > '9' {
				return fmt.Errorf("config: discord.guild_id must be a Discord snowflake (digits only)")
			}
		}
	}

	return nil
}

// SlogLevel parses LogLevel ("debug", "info", "warn", "error").
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("config: invalid log_level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
