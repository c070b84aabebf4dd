package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port        string
	Environment string

	// Database
	Database DatabaseConfig

	// AI Service
	AI AIConfig

	// Chat behaviour
	Chat ChatConfig

	// Security
	Security SecurityConfig
}

type DatabaseConfig struct {
	URI      string
	Name     string
	Host     string
	Port     string
	Username string
	Password string

	// Connection pool settings
	MaxConnections int
	MinConnections int
	MaxIdleTime    time.Duration
}

type AIConfig struct {
	Provider  string // "gemini"
	APIKey    string
	Model     string
	MaxTokens int
	Timeout   time.Duration
}

type ChatConfig struct {
	// HistoryWindow is how many recent turns are fed back to the LLM as
	// conversational context.
	HistoryWindow int

	// The clinic runs on a single fixed civil timezone with no DST rules;
	// all relative dates ("tomorrow") are anchored to it.
	TimezoneName        string
	TimezoneOffsetHours int

	DefaultPatientID string
}

type SecurityConfig struct {
	AllowedOrigins []string
}

// Load reads .env (if present) and the environment into a Config.
func Load() (*Config, error) {
	// Missing .env just means plain environment variables.
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),

		Database: DatabaseConfig{
			URI:      getEnv("DATABASE_URL", ""),
			Name:     getEnv("DB_NAME", "hospital_chatbot"),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "27017"),
			Username: getEnv("DB_USERNAME", ""),
			Password: getEnv("DB_PASSWORD", ""),

			MaxConnections: getEnvAsInt("DB_MAX_CONNECTIONS", 100),
			MinConnections: getEnvAsInt("DB_MIN_CONNECTIONS", 10),
			MaxIdleTime:    getEnvAsDuration("DB_MAX_IDLE_TIME", "30m"),
		},

		AI: AIConfig{
			Provider:  getEnv("AI_PROVIDER", "gemini"),
			APIKey:    getEnv("GOOGLE_API_KEY", ""),
			Model:     getEnv("AI_MODEL", "gemini-2.5-flash"),
			MaxTokens: getEnvAsInt("AI_MAX_TOKENS", 500),
			Timeout:   getEnvAsDuration("AI_TIMEOUT", "30s"),
		},

		Chat: ChatConfig{
			HistoryWindow:       getEnvAsInt("CHAT_HISTORY_WINDOW", 6),
			TimezoneName:        getEnv("CLINIC_TIMEZONE_NAME", "PKT"),
			TimezoneOffsetHours: getEnvAsInt("CLINIC_TIMEZONE_OFFSET_HOURS", 5),
			DefaultPatientID:    getEnv("CHAT_DEFAULT_PATIENT_ID", "anonymous"),
		},

		Security: SecurityConfig{
			AllowedOrigins: getEnvAsSlice("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"}),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue
	}
	return strings.Split(value, ",")
}

func (c *Config) validate() error {
	if c.Database.URI == "" {
		if c.Database.Host == "" || c.Database.Port == "" {
			return fmt.Errorf("database URI or host/port must be provided")
		}
	}

	if c.AI.APIKey == "" {
		return fmt.Errorf("AI API key is required")
	}

	if c.Chat.HistoryWindow < 1 {
		return fmt.Errorf("chat history window must be at least 1")
	}

	return nil
}

// Location returns the fixed civil timezone all scheduling is anchored to.
func (c *Config) Location() *time.Location {
	return time.FixedZone(c.Chat.TimezoneName, c.Chat.TimezoneOffsetHours*3600)
}

// BuildDatabaseURI constructs the MongoDB URI if one was not provided.
func (c *Config) BuildDatabaseURI() string {
	if c.Database.URI != "" {
		return c.Database.URI
	}

	if c.Database.Username != "" && c.Database.Password != "" {
		return fmt.Sprintf("mongodb://%s:%s@%s:%s/%s",
			c.Database.Username,
			c.Database.Password,
			c.Database.Host,
			c.Database.Port,
			c.Database.Name,
		)
	}
	return fmt.Sprintf("mongodb://%s:%s/%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
	)
}
