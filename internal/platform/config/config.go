package config

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds runtime configuration loaded from environment variables.
type Config struct {
	Port                string
	GinMode             string
	FirebaseProjectID   string
	FirebaseCredsBase64 string
	FirebaseCredsFile   string
	EmulatorHost        string
	AllowedOrigins      string
	APIToken            string
	LogLevel            string
	LogFormat           string
}

// Load reads environment variables into a Config with sensible defaults.
func Load() (Config, error) {
	v := viper.New()
	v.SetDefault("port", "8080")
	v.SetDefault("gin_mode", "release")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := Config{
		Port:                strings.TrimSpace(v.GetString("port")),
		GinMode:             strings.TrimSpace(v.GetString("gin_mode")),
		FirebaseProjectID:   strings.TrimSpace(v.GetString("firebase_project_id")),
		FirebaseCredsBase64: strings.TrimSpace(v.GetString("firebase_creds_base64")),
		FirebaseCredsFile:   strings.TrimSpace(v.GetString("firebase_creds_file")),
		EmulatorHost:        strings.TrimSpace(v.GetString("firestore_emulator_host")),
		AllowedOrigins:      strings.TrimSpace(v.GetString("allowed_origins")),
		APIToken:            strings.TrimSpace(v.GetString("api_token")),
		LogLevel:            strings.ToLower(strings.TrimSpace(v.GetString("log_level"))),
		LogFormat:           strings.ToLower(strings.TrimSpace(v.GetString("log_format"))),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate ensures required fields are present.
func (c Config) Validate() error {
	if c.Port == "" {
		return errors.New("PORT is required")
	}
	if c.FirebaseProjectID == "" {
		return errors.New("FIREBASE_PROJECT_ID is required")
	}
	if c.EmulatorHost == "" && c.FirebaseCredsBase64 == "" && c.FirebaseCredsFile == "" {
		return errors.New("provide FIREBASE_CREDS_BASE64 or FIREBASE_CREDS_FILE for Firestore auth")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid LOG_LEVEL %q (must be debug, info, warn, or error)", c.LogLevel)
	}
	switch c.LogFormat {
	case "json", "console":
	default:
		return fmt.Errorf("invalid LOG_FORMAT %q (must be json or console)", c.LogFormat)
	}
	return nil
}

// FirebaseCredentialsJSON returns the service account JSON bytes and the source used.
func (c Config) FirebaseCredentialsJSON() ([]byte, string, error) {
	if c.FirebaseCredsBase64 != "" {
		decoded, err := base64.StdEncoding.DecodeString(c.FirebaseCredsBase64)
		if err != nil {
			return nil, "base64", fmt.Errorf("decode FIREBASE_CREDS_BASE64: %w", err)
		}
		return decoded, "base64", nil
	}
	if c.FirebaseCredsFile != "" {
		data, err := os.ReadFile(c.FirebaseCredsFile)
		if err != nil {
			return nil, "file", fmt.Errorf("read FIREBASE_CREDS_FILE: %w", err)
		}
		return data, "file", nil
	}
	return nil, "", errors.New("no firebase credentials found")
}
