// Package config defines the data structures related to configuration and
// includes functions for loading and normalizing the config.
package config

import (
	"fmt"
	"io"

	"github.com/iwvelando/energy-estimate/pkg/constants"
	"github.com/iwvelando/energy-estimate/pkg/mathutil"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for energy-estimate.
type Configuration struct {
	Estimate EstimateConfig `yaml:"estimate,omitempty"`
	Logging  LoggingConfig  `yaml:"logging,omitempty"`
	Output   OutputConfig   `yaml:"output,omitempty"`
}

// EstimateConfig holds the estimation parameters.
type EstimateConfig struct {
	// RegionScalar adjusts the national baseline toward a specific
	// region's costs. Zero means unset; the default applies.
	RegionScalar float64 `yaml:"regionScalar,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.AutomaticEnv()

	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := v.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// LoadConfigurationFromReader loads YAML configuration from an in-memory
// reader, as used by the web server.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	var configuration Configuration
	err := v.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// NormalizeRegionScalar replaces a non-positive or non-finite regional
// scalar with the default and returns warnings for anything replaced. The
// estimator itself never validates the scalar; this is the caller-side
// guard.
func (c *Configuration) NormalizeRegionScalar() []string {
	var warnings []string
	scalar := c.Estimate.RegionScalar

	if scalar == 0 {
		// Unset; apply the default silently.
		c.Estimate.RegionScalar = constants.DefaultRegionScalar
		return warnings
	}

	if !mathutil.IsFinite(scalar) || scalar <= 0 {
		warnings = append(warnings, fmt.Sprintf(
			"regional scalar %v is not a positive number; using default %v",
			scalar, constants.DefaultRegionScalar))
		c.Estimate.RegionScalar = constants.DefaultRegionScalar
	}

	return warnings
}
