package common

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
	"gopkg.in/ini.v1"
)

const defaultConfigTemplate = "PORT=3000\nSQLITE_PATH=data/pack-panel.db\nPACK_CACHE_TTL=10m\nAPI_RATE_LIMIT=600\n"

// envSettings mirrors the keys accepted by config.ini. Zero values leave the current setting untouched.
type envSettings struct {
	Port            int           `env:"PORT"`
	SQLitePath      string        `env:"SQLITE_PATH"`
	SQLDSN          string        `env:"SQL_DSN"`
	RedisConnString string        `env:"REDIS_CONN_STRING"`
	PackCacheTTL    time.Duration `env:"PACK_CACHE_TTL"`
	APIRateLimit    int           `env:"API_RATE_LIMIT"`
}

// explicitFlags holds the names of command-line flags given on the command line.
// Values from config.ini and the environment never override them.
type explicitFlags map[string]bool

func setFlags(fs *flag.FlagSet) explicitFlags {
	set := explicitFlags{}
	fs.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}

// LoadConfig applies ~/.config/pack-panel/config.ini, then .env, then the process environment.
// Later sources win, and flags set on the command line win over all of them.
func LoadConfig(ctx context.Context) error {
	explicit := setFlags(flag.CommandLine)
	if err := loadConfigFile(explicit); err != nil {
		return err
	}
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return loadEnv(ctx, envconfig.OsLookuper(), explicit)
}

func loadEnv(ctx context.Context, lookuper envconfig.Lookuper, explicit explicitFlags) error {
	var settings envSettings
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &settings,
		Lookuper: lookuper,
	}); err != nil {
		return fmt.Errorf("process environment: %w", err)
	}
	settings.apply(explicit)
	return nil
}

func (s envSettings) apply(explicit explicitFlags) {
	if s.Port != 0 && !explicit["port"] {
		*Port = s.Port
	}
	if s.SQLitePath != "" {
		SQLitePath = s.SQLitePath
	}
	if s.SQLDSN != "" {
		SQLDSN = s.SQLDSN
	}
	if s.RedisConnString != "" {
		RedisConnString = s.RedisConnString
	}
	if s.PackCacheTTL > 0 {
		PackCacheTTL = s.PackCacheTTL
	}
	if s.APIRateLimit > 0 {
		APIRateLimitPerMinute = s.APIRateLimit
	}
}

func loadConfigFile(explicit explicitFlags) error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("get user home directory: %w", err)
	}

	configPath := filepath.Join(homeDir, ".config", "pack-panel", "config.ini")
	if err := ensureConfigFile(configPath); err != nil {
		return err
	}

	configMap, err := parseIniConfig(configPath)
	if err != nil {
		return err
	}

	if err := applyConfigMap(configMap, explicit); err != nil {
		return fmt.Errorf("apply config file %s: %w", configPath, err)
	}

	return nil
}

func ensureConfigFile(configPath string) error {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("create config directory %s: %w", configDir, err)
	}

	configFile, err := os.OpenFile(configPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return nil
		}
		return fmt.Errorf("create config file %s: %w", configPath, err)
	}
	defer configFile.Close()

	if _, err := configFile.WriteString(defaultConfigTemplate); err != nil {
		return fmt.Errorf("write default config file %s: %w", configPath, err)
	}

	return nil
}

func parseIniConfig(path string) (map[string]string, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("parse ini config %s: %w", path, err)
	}

	configMap := make(map[string]string)
	for _, section := range cfg.Sections() {
		for _, key := range section.Keys() {
			configKey := strings.ToUpper(strings.TrimSpace(key.Name()))
			if configKey == "" {
				continue
			}
			configMap[configKey] = strings.TrimSpace(key.Value())
		}
	}

	return configMap, nil
}

func applyConfigMap(configMap map[string]string, explicit explicitFlags) error {
	var settings envSettings

	if configValue, ok := configMap["SQLITE_PATH"]; ok && configValue != "" {
		settings.SQLitePath = configValue
	}

	if configValue, ok := configMap["SQL_DSN"]; ok && configValue != "" {
		settings.SQLDSN = configValue
	}

	if configValue, ok := configMap["REDIS_CONN_STRING"]; ok && configValue != "" {
		settings.RedisConnString = configValue
	}

	if configValue, ok := configMap["PORT"]; ok && configValue != "" {
		portInt, err := strconv.Atoi(configValue)
		if err != nil {
			return fmt.Errorf("invalid value for PORT: %w", err)
		}
		settings.Port = portInt
	}

	if configValue, ok := configMap["PACK_CACHE_TTL"]; ok && configValue != "" {
		ttl, err := time.ParseDuration(configValue)
		if err != nil {
			return fmt.Errorf("invalid value for PACK_CACHE_TTL: %w", err)
		}
		settings.PackCacheTTL = ttl
	}

	if configValue, ok := configMap["API_RATE_LIMIT"]; ok && configValue != "" {
		limit, err := strconv.Atoi(configValue)
		if err != nil {
			return fmt.Errorf("invalid value for API_RATE_LIMIT: %w", err)
		}
		settings.APIRateLimit = limit
	}

	settings.apply(explicit)
	return nil
}
