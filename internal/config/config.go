package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	Gemini GeminiConfig
	Log    LogConfig
	CORS   CORSConfig
	State  StateConfig
	Upload UploadConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// GeminiConfig holds extraction service settings. FlashModel serves most
// calls; ProModel is reserved for the expert half of consultations.
type GeminiConfig struct {
	APIKey      string `mapstructure:"api_key"`
	FlashModel  string `mapstructure:"flash_model"`
	ProModel    string `mapstructure:"pro_model"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// StateConfig holds the location of the persisted application state
// (calendar events and theme).
type StateConfig struct {
	Dir string `mapstructure:"dir"`
}

// UploadConfig holds file upload limits.
type UploadConfig struct {
	MaxFileSizeMB int64 `mapstructure:"max_file_size_mb"`
}

// Load reads configuration from environment variables with the LEGAJOS_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("LEGAJOS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// Gemini defaults
	v.SetDefault("gemini.api_key", "")
	v.SetDefault("gemini.flash_model", "gemini-2.5-flash")
	v.SetDefault("gemini.pro_model", "gemini-2.5-pro")
	v.SetDefault("gemini.timeout_secs", 120)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:5173,http://127.0.0.1:5173")

	// State defaults
	v.SetDefault("state.dir", "./state")

	// Upload defaults
	v.SetDefault("upload.max_file_size_mb", 25)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":             "LEGAJOS_SERVER_PORT",
		"server.read_timeout":     "LEGAJOS_SERVER_READ_TIMEOUT",
		"server.write_timeout":    "LEGAJOS_SERVER_WRITE_TIMEOUT",
		"server.environment":      "LEGAJOS_SERVER_ENVIRONMENT",
		"gemini.api_key":          "LEGAJOS_GEMINI_API_KEY",
		"gemini.flash_model":      "LEGAJOS_GEMINI_FLASH_MODEL",
		"gemini.pro_model":        "LEGAJOS_GEMINI_PRO_MODEL",
		"gemini.timeout_secs":     "LEGAJOS_GEMINI_TIMEOUT_SECS",
		"log.level":               "LEGAJOS_LOG_LEVEL",
		"log.format":              "LEGAJOS_LOG_FORMAT",
		"cors.allowed_origins":    "LEGAJOS_CORS_ALLOWED_ORIGINS",
		"state.dir":               "LEGAJOS_STATE_DIR",
		"upload.max_file_size_mb": "LEGAJOS_UPLOAD_MAX_FILE_SIZE_MB",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if LEGAJOS_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("LEGAJOS_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Gemini = GeminiConfig{
		APIKey:      v.GetString("gemini.api_key"),
		FlashModel:  v.GetString("gemini.flash_model"),
		ProModel:    v.GetString("gemini.pro_model"),
		TimeoutSecs: v.GetInt("gemini.timeout_secs"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{AllowedOrigins: corsOrigins}

	cfg.State = StateConfig{Dir: v.GetString("state.dir")}
	cfg.Upload = UploadConfig{MaxFileSizeMB: v.GetInt64("upload.max_file_size_mb")}

	return cfg, nil
}
