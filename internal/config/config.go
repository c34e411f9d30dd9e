// Package config loads and validates the manager's configuration from
// the environment. A .env file in the working directory is read first
// when present; real environment variables win over it. All variables
// carry the BINDMAN_ prefix.
package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const envPrefix = "BINDMAN_"

// Default returns the configuration used when no environment overrides
// are set. Paths follow the stock Debian BIND layout.
func Default() Config {
	return Config{
		Bind: BindConfig{
			NamedConf:             "/etc/bind/named.conf",
			NamedConfOptions:      "/etc/bind/named.conf.options",
			ManagedInclude:        "/etc/bind/managed-zones.conf",
			ManagedZoneDir:        "/etc/bind/managed-zones",
			RequireManagedInclude: true,
			MastersACL:            "primary-servers",
		},
		Tools: ToolsConfig{
			NamedCheckconf: "/usr/bin/named-checkconf",
			NamedCheckzone: "/usr/bin/named-checkzone",
			Rndc:           "/usr/sbin/rndc",
		},
		Zone: ZoneConfig{
			DefaultTTL:     300,
			AutoBumpSerial: true,
		},
		Logging: LoggingConfig{
			Level:  "INFO",
			Format: "json",
		},
		API: APIConfig{
			Host: "127.0.0.1",
			Port: 8080,
		},
	}
}

// Load builds the configuration from defaults, .env, and environment
// variables, then validates it.
func Load() (Config, error) {
	// Missing .env is fine; a malformed one is not.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, err
	}

	cfg := Default()

	envStr(&cfg.Bind.NamedConf, "NAMED_CONF")
	envStr(&cfg.Bind.NamedConfOptions, "NAMED_CONF_OPTIONS")
	envStr(&cfg.Bind.ManagedInclude, "MANAGED_INCLUDE")
	envStr(&cfg.Bind.ManagedZoneDir, "MANAGED_ZONE_DIR")
	envBool(&cfg.Bind.RequireManagedInclude, "REQUIRE_MANAGED_INCLUDE")
	envStr(&cfg.Bind.MastersACL, "MASTERS_ACL")

	envStr(&cfg.Tools.NamedCheckconf, "NAMED_CHECKCONF")
	envStr(&cfg.Tools.NamedCheckzone, "NAMED_CHECKZONE")
	envStr(&cfg.Tools.Rndc, "RNDC")

	envUint32(&cfg.Zone.DefaultTTL, "DEFAULT_TTL")
	envBool(&cfg.Zone.AutoBumpSerial, "AUTO_BUMP_SERIAL")

	envStr(&cfg.Logging.Level, "LOG_LEVEL")
	envStr(&cfg.Logging.Format, "LOG_FORMAT")
	envStr(&cfg.Logging.File, "LOG_FILE")

	envStr(&cfg.API.Host, "API_HOST")
	envInt(&cfg.API.Port, "API_PORT")
	envStr(&cfg.API.APIKey, "API_KEY")

	envStr(&cfg.Audit.DBPath, "AUDIT_DB")

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate validates and normalizes the configuration.
func (cfg *Config) Validate() error {
	if cfg.Bind.ManagedInclude == "" {
		return errors.New("bind.managed_include must be set")
	}
	if cfg.Bind.ManagedZoneDir == "" {
		return errors.New("bind.managed_zone_dir must be set")
	}
	if cfg.Bind.MastersACL == "" {
		return errors.New("bind.masters_acl must be set")
	}

	if cfg.Zone.DefaultTTL == 0 {
		return errors.New("zone.default_ttl must be positive")
	}

	// Normalize logging
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "INFO"
	}
	cfg.Logging.Level = strings.ToUpper(cfg.Logging.Level)
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}

	if cfg.API.Host == "" {
		cfg.API.Host = "127.0.0.1"
	}
	if cfg.API.Port <= 0 || cfg.API.Port > 65535 {
		return errors.New("api.port must be 1..65535")
	}

	return nil
}

func envStr(dst *string, key string) {
	if v, ok := os.LookupEnv(envPrefix + key); ok {
		*dst = v
	}
}

func envBool(dst *bool, key string) {
	if v, ok := os.LookupEnv(envPrefix + key); ok {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			*dst = b
		}
	}
}

func envInt(dst *int, key string) {
	if v, ok := os.LookupEnv(envPrefix + key); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			*dst = n
		}
	}
}

func envUint32(dst *uint32, key string) {
	if v, ok := os.LookupEnv(envPrefix + key); ok {
		if n, err := strconv.ParseUint(strings.TrimSpace(v), 10, 32); err == nil {
			*dst = uint32(n)
		}
	}
}
