package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// Example ENV equivalent:
//
//	SERVER_PORT=8080
//	STAND_NAME=Lemons R Us
//	LOG_LEVEL=info
//	LOG_PRETTY=false
//	RATE_LIMIT_PER_MINUTE=60
//	CORS_ALLOWED_ORIGINS=*
//	REQUEST_TIMEOUT=10s
type Config struct {
	Server ServerConfig // HTTP server configuration
	Stand  StandConfig  // The stand served by this process
	Log    LogConfig    // Logger settings
}

// ServerConfig holds HTTP server settings.
//
// Fields:
//   - Port: the TCP port the HTTP server will listen on (e.g., "8080").
//   - RateLimitPerMinute: requests allowed per client IP per minute.
//   - AllowedOrigins: origins accepted by the CORS middleware.
//   - RequestTimeout: deadline attached to every request context.
type ServerConfig struct {
	Port               string
	RateLimitPerMinute int
	AllowedOrigins     []string
	RequestTimeout     time.Duration
}

// StandConfig names the stand whose records the service keeps.
type StandConfig struct {
	Name string
}

// LogConfig mirrors the arguments of logger.Init.
type LogConfig struct {
	Level  string
	Pretty bool
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Fatal exit:
//   - If required variables are missing, validateConfig() will terminate the app
//     with a descriptive log message.
func LoadConfig() {
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("STAND_NAME", "Lemons R Us")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_PRETTY", false)
	viper.SetDefault("RATE_LIMIT_PER_MINUTE", 60)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	viper.SetDefault("REQUEST_TIMEOUT", "10s")

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	viper.AutomaticEnv()

	AppConfig = Config{
		Server: ServerConfig{
			Port:               viper.GetString("SERVER_PORT"),
			RateLimitPerMinute: viper.GetInt("RATE_LIMIT_PER_MINUTE"),
			AllowedOrigins:     splitList(viper.GetString("CORS_ALLOWED_ORIGINS")),
			RequestTimeout:     viper.GetDuration("REQUEST_TIMEOUT"),
		},
		Stand: StandConfig{
			Name: strings.TrimSpace(viper.GetString("STAND_NAME")),
		},
		Log: LogConfig{
			Level:  viper.GetString("LOG_LEVEL"),
			Pretty: viper.GetBool("LOG_PRETTY"),
		},
	}

	validateConfig()
}

// missingFields lists the environment variables whose values are unusable.
func missingFields(cfg Config) []string {
	var missing []string

	if cfg.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if cfg.Server.RateLimitPerMinute <= 0 {
		missing = append(missing, "RATE_LIMIT_PER_MINUTE")
	}
	if cfg.Server.RequestTimeout <= 0 {
		missing = append(missing, "REQUEST_TIMEOUT")
	}
	if cfg.Stand.Name == "" {
		missing = append(missing, "STAND_NAME")
	}

	return missing
}

// validateConfig terminates the application when AppConfig is incomplete.
func validateConfig() {
	if missing := missingFields(AppConfig); len(missing) > 0 {
		log.Fatalf("❌ Missing required environment variables: %v\n", missing)
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
