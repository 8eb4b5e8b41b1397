package main

import (
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/iwvelando/energy-estimate/internal/config"
	"github.com/iwvelando/energy-estimate/internal/estimate"
	"github.com/iwvelando/energy-estimate/internal/seasonal"
	"github.com/iwvelando/energy-estimate/internal/server"
	"github.com/iwvelando/energy-estimate/pkg/chart"
	"github.com/iwvelando/energy-estimate/pkg/constants"
	"github.com/iwvelando/energy-estimate/pkg/output"
	"github.com/iwvelando/energy-estimate/pkg/validation"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// version is overridden at build time via -ldflags.
var version = "dev"

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info" // Default to info level
	}

	// Parse log level
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	// Determine output format
	format := loggingConfig.Format
	if format == "" {
		format = "json" // Default to JSON for production
	}

	// Configure encoder
	var zapConfig zap.Config
	switch format {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		zapConfig = zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	// Configure output file if specified
	if loggingConfig.OutputFile != "" {
		// Ensure the directory exists
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}

		// Test if we can create/write to the file
		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}

		zapConfig.OutputPaths = []string{loggingConfig.OutputFile}
		zapConfig.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return zapConfig.Build()
}

// loadConfiguration loads the config file; the default file being absent is
// not an error, an explicitly requested file must exist.
func loadConfiguration(path string, explicit bool) (*config.Configuration, error) {
	if !explicit {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return &config.Configuration{}, nil
		}
	}
	return config.LoadConfiguration(path)
}

func main() {
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	year := flag.Int("year", 0, "construction year of the home")
	squareFeet := flag.Int("sqft", 0, "floor area of the home in square feet")
	regionScalar := flag.Float64("region-scalar", 0, "regional cost multiplier override")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	serve := flag.Bool("serve", false, "run the web server instead of a one-shot estimate")
	listen := flag.String("listen", "", "listen address override for the web server")
	serverConfigLocation := flag.String("server-config", "", "path to server configuration file")
	flag.Parse()

	explicitConfig := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			explicitConfig = true
		}
	})

	conf, err := loadConfiguration(*configLocation, explicitConfig)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		os.Exit(1)
	}

	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	if *serve {
		runServer(logger, *serverConfigLocation, *listen)
		return
	}

	if *year == 0 || *squareFeet == 0 {
		logger.Fatal("both -year and -sqft are required for a one-shot estimate",
			zap.String("op", "main"),
		)
	}

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}

	err = validation.ValidateOutputFormat(outputFormat)
	if err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	// CLI scalar override takes precedence over config; normalization
	// replaces anything non-positive with the default.
	if *regionScalar != 0 {
		conf.Estimate.RegionScalar = *regionScalar
	}
	warnings := conf.NormalizeRegionScalar()
	for _, warning := range warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	result, err := estimate.Compute(logger, *year, *squareFeet, conf.Estimate.RegionScalar)
	if err != nil {
		if errors.Is(err, estimate.ErrUnresolvableInput) {
			fmt.Fprintln(os.Stderr, "No estimate available: year or floor area is outside the estimable range.")
			os.Exit(1)
		}
		logger.Fatal("failed to compute estimate",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	series, err := chart.MonthlySeries(seasonal.Decompose(result.Monthly))
	if err != nil {
		logger.Fatal("failed to build seasonal series",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	report := output.Report{Result: result, Series: series}
	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(report)
	case constants.OutputFormatCSV:
		output.CsvFormat(report)
	}
}

func runServer(logger *zap.Logger, configLocation, listenOverride string) {
	serverConf, err := server.LoadConfig(configLocation)
	if err != nil {
		logger.Fatal("failed to load server configuration",
			zap.String("op", "main.runServer"),
			zap.Error(err),
		)
	}

	address := serverConf.Address
	if listenOverride != "" {
		address = listenOverride
	}

	handler := server.NewHandler(logger, serverConf.BodySizeBytes(), version)

	logger.Info("starting web server",
		zap.String("op", "main.runServer"),
		zap.String("address", address),
	)

	if err := http.ListenAndServe(address, handler); err != nil {
		logger.Fatal("web server failed",
			zap.String("op", "main.runServer"),
			zap.Error(err),
		)
	}
}
