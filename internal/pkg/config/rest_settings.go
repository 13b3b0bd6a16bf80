package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// RestConfig aggregates every setting the REST service needs: the listen
// port, logging and the key store database.
type RestConfig struct {
	Port     string           `mapstructure:"port" validate:"required"`
	Logger   LoggerSettings   `mapstructure:"logger"`
	Database DatabaseSettings `mapstructure:"database"`
}

// Validate checks that all fields in RestConfig and its nested settings are
// valid
func (c *RestConfig) Validate() error {
	validate := validator.New()

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validation failed for RestConfig: %w", err)
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	return c.Database.Validate()
}

// InitializeRestConfig reads the YAML configuration at configPath, applies
// environment variable overrides and validates the result.
func InitializeRestConfig(configPath string) (*RestConfig, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	var restConfig RestConfig
	if err := v.Unmarshal(&restConfig); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := restConfig.Validate(); err != nil {
		return nil, err
	}

	return &restConfig, nil
}
