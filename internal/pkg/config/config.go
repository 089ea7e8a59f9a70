// internal/pkg/config/config.go
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	// Application
	App AppConfig

	// Inventory
	Inventory InventoryConfig

	// Reports
	Reports ReportConfig

	// Seed
	Seed SeedConfig
}

// AppConfig holds application-specific configuration
type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Version     string
	LogLevel    string
	LogFormat   string // json, text
	Debug       bool
}

// InventoryConfig holds catalog behaviour configuration
type InventoryConfig struct {
	LowStockThreshold int
	DefaultQuantity   int
}

// ReportConfig holds report generation configuration
type ReportConfig struct {
	RecentLimit     int
	TopModelLimit   int
	ReorderLeadDays int
}

// SeedConfig controls loading of the built-in fixture data
type SeedConfig struct {
	Enabled bool
}

// Load loads configuration from environment variables
func Load(logger *slog.Logger) (*Config, error) {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	// Load .env file in development
	if env == "development" || env == "local" {
		if err := godotenv.Load(); err != nil {
			logger.Warn("no .env file found, using environment variables",
				slog.String("error", err.Error()))
		} else {
			logger.Info(".env file loaded successfully")
		}
	}

	// Initialize viper
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.SetTypeByDefaultValue(true)

	// Set defaults
	setDefaults()

	// Build config struct
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "stock-wiz"),
			Environment: env,
			Version:     getEnv("APP_VERSION", "dev"),
			LogLevel:    getEnv("LOG_LEVEL", "debug"),
			LogFormat:   getEnv("LOG_FORMAT", "json"),
			Debug:       getBoolEnv("APP_DEBUG", env == "development"),
		},
		Inventory: InventoryConfig{
			LowStockThreshold: getIntEnv("INVENTORY_LOW_STOCK_THRESHOLD", 10),
			DefaultQuantity:   getIntEnv("INVENTORY_DEFAULT_QUANTITY", 1),
		},
		Reports: ReportConfig{
			RecentLimit:     getIntEnv("REPORT_RECENT_LIMIT", 5),
			TopModelLimit:   getIntEnv("REPORT_TOP_MODEL_LIMIT", 10),
			ReorderLeadDays: getIntEnv("REPORT_REORDER_LEAD_DAYS", 7),
		},
		Seed: SeedConfig{
			Enabled: getBoolEnv("SEED_ENABLED", true),
		},
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.App.Name == "" {
		return fmt.Errorf("app name is required")
	}
	if c.Inventory.LowStockThreshold < 0 {
		return fmt.Errorf("low stock threshold must not be negative")
	}
	if c.Inventory.DefaultQuantity < 0 {
		return fmt.Errorf("default quantity must not be negative")
	}
	if c.Reports.RecentLimit <= 0 {
		return fmt.Errorf("recent limit must be positive")
	}
	if c.Reports.TopModelLimit <= 0 {
		return fmt.Errorf("top model limit must be positive")
	}
	if c.Reports.ReorderLeadDays <= 0 {
		return fmt.Errorf("reorder lead days must be positive")
	}
	return nil
}

// IsProduction returns true if running in production
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// IsDevelopment returns true if running in development
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development" || c.App.Environment == "local"
}

// Helper functions

func setDefaults() {
	viper.SetDefault("app.name", "stock-wiz")
	viper.SetDefault("app.environment", "development")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "json")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return defaultValue
}
