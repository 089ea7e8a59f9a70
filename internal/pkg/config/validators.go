// internal/pkg/config/validators.go
package config

import (
	"errors"
	"fmt"
)

// ErrMissingRequiredConfig indicates a required configuration value is absent
var ErrMissingRequiredConfig = errors.New("missing required configuration")

// Validator validates a loaded configuration
type Validator interface {
	Validate(cfg *Config) error
}

// BasicValidator performs basic configuration validation
type BasicValidator struct{}

// Validate performs basic validation
func (v *BasicValidator) Validate(cfg *Config) error {
	if cfg.App.Name == "" {
		return fmt.Errorf("%w: app name", ErrMissingRequiredConfig)
	}

	if cfg.Inventory.LowStockThreshold < 0 {
		return fmt.Errorf("inventory low_stock_threshold must not be negative")
	}

	if cfg.Reports.RecentLimit <= 0 {
		return fmt.Errorf("report recent_limit must be positive")
	}

	if cfg.Reports.TopModelLimit <= 0 {
		return fmt.Errorf("report top_model_limit must be positive")
	}

	return nil
}

// ProductionValidator performs strict validation for production environments
type ProductionValidator struct{}

// Validate performs production-specific validation
func (v *ProductionValidator) Validate(cfg *Config) error {
	if cfg.App.Debug {
		return fmt.Errorf("debug mode must be disabled in production")
	}

	if cfg.App.LogFormat != "json" {
		return fmt.Errorf("log format must be json in production")
	}

	switch cfg.App.LogLevel {
	case "debug":
		return fmt.Errorf("debug log level not allowed in production")
	}

	return nil
}

// ValidateFor runs the validators appropriate for the configured environment.
func ValidateFor(cfg *Config) error {
	validators := []Validator{&BasicValidator{}}
	if cfg.IsProduction() {
		validators = append(validators, &ProductionValidator{})
	}

	for _, v := range validators {
		if err := v.Validate(cfg); err != nil {
			return err
		}
	}

	return nil
}
