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
	Database   DatabaseConfig
	JWT        JWTConfig
	App        AppConfig
	Terminal   TerminalConfig
	Report     ReportConfig
	ImageStore ImageStoreConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// TerminalConfig holds the pre-shared terminal credentials. Tokens maps a
// credential to the branch the terminal is installed at; Token is a legacy
// branchless credential (the event then uses the employee's branch).
type TerminalConfig struct {
	Tokens map[string]string
	Token  string
}

// ReportConfig are the aggregator options: the time zone used to bucket
// events into local calendar days, and the fallback page size.
type ReportConfig struct {
	TimeZone        string
	DefaultPageSize int
}

type ImageStoreConfig struct {
	Type string // "cloudinary" or "local"

	// cloudinary
	CloudName    string
	UploadPreset string
	Folder       string

	// local
	BasePath string
	BaseURL  string
}

func Load() (*Config, error) {
	// .env is optional outside development
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "attendance_db"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "8h"),
	}

	// Terminal configuration
	terminalTokens, err := parseTerminalTokens(getEnv("TERMINAL_TOKENS", ""))
	if err != nil {
		return nil, err
	}
	config.Terminal = TerminalConfig{
		Tokens: terminalTokens,
		Token:  getEnv("TERMINAL_TOKEN", ""),
	}

	// Report configuration
	pageSize, err := strconv.Atoi(getEnv("DEFAULT_PAGE_SIZE", "10"))
	if err != nil || pageSize < 1 {
		return nil, fmt.Errorf("invalid DEFAULT_PAGE_SIZE")
	}
	config.Report = ReportConfig{
		TimeZone:        getEnv("REPORT_TIMEZONE", "America/La_Paz"),
		DefaultPageSize: pageSize,
	}

	// Image store configuration
	config.ImageStore = ImageStoreConfig{
		Type:         getEnv("IMAGE_STORE", "cloudinary"),
		CloudName:    getEnv("CLOUDINARY_CLOUD_NAME", ""),
		UploadPreset: getEnv("CLOUDINARY_UPLOAD_PRESET", ""),
		Folder:       getEnv("CLOUDINARY_FOLDER", "attendance_images"),
		BasePath:     getEnv("STORAGE_BASE_PATH", "./uploads"),
		BaseURL:      getEnv("STORAGE_BASE_URL", "http://localhost:8080/uploads"),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if len(c.Terminal.Tokens) == 0 && c.Terminal.Token == "" {
		return fmt.Errorf("TERMINAL_TOKENS or TERMINAL_TOKEN is required")
	}
	if _, err := time.LoadLocation(c.Report.TimeZone); err != nil {
		return fmt.Errorf("invalid REPORT_TIMEZONE %q: %w", c.Report.TimeZone, err)
	}
	if c.ImageStore.Type == "cloudinary" {
		if c.ImageStore.CloudName == "" {
			return fmt.Errorf("CLOUDINARY_CLOUD_NAME is required")
		}
		if c.ImageStore.UploadPreset == "" {
			return fmt.Errorf("CLOUDINARY_UPLOAD_PRESET is required")
		}
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// parseTerminalTokens parses "token:branchID,token2:branchID2" pairs.
func parseTerminalTokens(raw string) (map[string]string, error) {
	tokens := make(map[string]string)
	if raw == "" {
		return tokens, nil
	}
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, ":", 2)
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return nil, fmt.Errorf("invalid TERMINAL_TOKENS entry %q, want token:branchID", entry)
		}
		tokens[parts[0]] = parts[1]
	}
	return tokens, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
