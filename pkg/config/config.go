package config

import (
	"os"
	"strconv"
	"time"

	"github.com/freshly-app/freshly/pkg/keyvault"
	"github.com/freshly-app/freshly/pkg/logger"
)

// VisionBackendConfig holds settings for one vision backend.
type VisionBackendConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// Config is the single configuration object for the service. It is built
// once at startup and passed into components; nothing mutates it afterwards.
type Config struct {
	Port        string
	Environment string
	LogLevel    string

	DataDir   string
	UploadDir string

	GenAI    VisionBackendConfig
	Annotate VisionBackendConfig
}

// Load builds the configuration from environment variables. An encrypted
// primary API key (GENAI_API_KEY_ENCRYPTED) takes precedence over the plain
// GENAI_API_KEY and is decrypted with a key derived from the machine
// fingerprint and ENCRYPTION_SECRET.
func Load() *Config {
	return &Config{
		Port:        getEnv("HTTP_PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		DataDir:     getEnv("DATA_DIR", "data"),
		UploadDir:   getEnv("UPLOAD_DIR", "uploads"),
		GenAI: VisionBackendConfig{
			APIKey:  resolveGenAIKey(),
			BaseURL: getEnv("GENAI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
			Model:   getEnv("GENAI_MODEL", "gemini-1.5-flash"),
			Timeout: getEnvDuration("GENAI_TIMEOUT_SECONDS", 30*time.Second),
		},
		Annotate: VisionBackendConfig{
			APIKey:  getEnv("ANNOTATE_API_KEY", ""),
			BaseURL: getEnv("ANNOTATE_BASE_URL", "https://vision.googleapis.com/v1"),
			Timeout: getEnvDuration("ANNOTATE_TIMEOUT_SECONDS", 30*time.Second),
		},
	}
}

func resolveGenAIKey() string {
	if encrypted := os.Getenv("GENAI_API_KEY_ENCRYPTED"); encrypted != "" {
		secret := getEnv("ENCRYPTION_SECRET", "default-secret-key")
		key := keyvault.DeriveKey(keyvault.Fingerprint(), secret)
		decrypted, err := keyvault.Decrypt(key, encrypted)
		if err == nil {
			return decrypted
		}
		logger.Logger.Warn().Err(err).Msg("Failed to decrypt API key, trying plain key")
	}
	return os.Getenv("GENAI_API_KEY")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if seconds, err := strconv.Atoi(value); err == nil && seconds > 0 {
			return time.Duration(seconds) * time.Second
		}
	}
	return defaultValue
}
