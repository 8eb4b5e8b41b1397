// Package constants provides shared constants for the energy-estimate application.
package constants

// Estimation constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// ConfidenceZScore is the z-score for a 95% normal-approximation
	// confidence interval. Fixed, not configurable.
	ConfidenceZScore = 1.96

	// DefaultRegionScalar is the multiplicative adjustment applied to the
	// national baseline when no regional scalar is configured.
	DefaultRegionScalar = 1.30

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"
)

// Server constants
const (
	// DefaultServerAddress is the address the web server binds to when
	// no address is configured.
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes caps the size of JSON request bodies.
	DefaultMaxBodySizeBytes = 256 * 1024
)
