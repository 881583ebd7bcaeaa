package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// insecure development defaults; Validate rejects them outside development
const (
	defaultJWTSecret     = "dev-secret-akash"
	defaultAdminPassword = "admin123"
)

type Config struct {
	Addr          string        `yaml:"addr"`
	Env           string        `yaml:"env"`
	BaseURL       string        `yaml:"base_url"`
	JWTSecret     string        `yaml:"jwt_secret"`
	APITimeout    time.Duration `yaml:"timeout"`
	DatabasePath  string        `yaml:"database_path"`
	TokenDuration time.Duration `yaml:"token_duration"`
	AdminEmail    string        `yaml:"admin_email"`
	AdminName     string        `yaml:"admin_name"`
	AdminPassword string        `yaml:"admin_password"`
	Metrics       bool          `yaml:"metrics"`
}

// LoadConfig builds the configuration from environment variables and, when
// path is non-empty, overlays values from a YAML file.
func LoadConfig(path string) (*Config, error) {
	apiTimeout := 15 * time.Second
	tokenDuration := 7 * 24 * time.Hour

	cfg := &Config{
		Addr:          getEnv("HUB_ADDR", ":8080"),
		Env:           getEnv("HUB_ENV", "development"),
		BaseURL:       getEnv("HUB_BASE_URL", "http://localhost:8080"),
		JWTSecret:     getEnv("HUB_JWT_SECRET", defaultJWTSecret),
		APITimeout:    apiTimeout,
		DatabasePath:  getEnv("HUB_DATABASE_PATH", "database.sqlite"),
		TokenDuration: tokenDuration,
		AdminEmail:    getEnv("HUB_ADMIN_EMAIL", "admin@akash.network"),
		AdminName:     getEnv("HUB_ADMIN_NAME", "Admin"),
		AdminPassword: getEnv("HUB_ADMIN_PASSWORD", defaultAdminPassword),
		Metrics:       getEnvBool("HUB_METRICS"),
	}
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		if err := dec.Decode(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// Validate checks the configuration for values that must not reach a deployed
// environment. The insecure defaults are only allowed in development.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr must not be empty")
	}
	if c.DatabasePath == "" {
		return fmt.Errorf("database_path must not be empty")
	}
	if c.TokenDuration <= 0 {
		return fmt.Errorf("token_duration must be positive")
	}
	if c.AdminEmail == "" || c.AdminPassword == "" {
		return fmt.Errorf("admin seed email and password must be set")
	}

	if c.Env != "development" {
		if c.JWTSecret == defaultJWTSecret || len(c.JWTSecret) < 16 {
			return fmt.Errorf("jwt_secret is insecure for env %q", c.Env)
		}
		if c.AdminPassword == defaultAdminPassword {
			return fmt.Errorf("admin_password is insecure for env %q", c.Env)
		}
	}

	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}

func getEnvBool(key string) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "1", "true", "yes":
		return true
	}

	return false
}
