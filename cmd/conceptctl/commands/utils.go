/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: utils.go
Description: Shared utilities for the conceptctl commands. Provides common
configuration loading, logging setup, and connection helpers used across all
command implementations.
*/

package commands

import (
	"fmt"
	"time"

	"github.com/kleascm/concept-client/pkg/concept"
	"github.com/kleascm/concept-client/pkg/execution"
	"github.com/kleascm/concept-client/pkg/logging"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// appLogger is the session logger shared by the command implementations
var appLogger *logging.Logger

// LoadConfig loads configuration from files and environment
func LoadConfig() error {
	// Set config file if specified
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Set environment variable prefix
	viper.SetEnvPrefix("CONCEPTCTL")
	viper.AutomaticEnv()

	return nil
}

// SetupLogging configures the logging system from the viper configuration
func SetupLogging() error {
	config := &logging.LoggerConfig{
		Level:     logging.LogLevel(viper.GetString("log_level")),
		Format:    logging.LogFormat(viper.GetString("log_format")),
		OutputDir: viper.GetString("log_dir"),
		MaxFiles:  viper.GetInt("log_max_files"),
		MaxSize:   viper.GetInt64("log_max_size"),
		Timestamp: true,
		Colors:    true,
		Compress:  viper.GetBool("log_compress"),
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid logging configuration: %w", err)
	}

	logger, err := logging.NewLogger(config)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	appLogger = logger

	// Route the package-level logrus used by the client library through the
	// same formatter and outputs as the session logger.
	std := logrus.StandardLogger()
	std.SetLevel(logger.GetLogger().GetLevel())
	std.SetFormatter(logger.GetLogger().Formatter)
	std.SetOutput(logger.GetLogger().Out)

	return nil
}

// CloseLogging closes the session logger and prunes old log files
func CloseLogging() {
	if appLogger == nil {
		return
	}
	if err := appLogger.Close(); err != nil {
		logrus.WithError(err).Warn("Failed to close logger")
	}
	appLogger = nil
}

// launchOptions builds server launch options from the configuration
func launchOptions() execution.Options {
	return execution.Options{
		Headless:          viper.GetBool("headless"),
		Path:              viper.GetString("exe_path"),
		Port:              viper.GetInt("port"),
		StartTimeout:      viper.GetDuration("start_timeout"),
		InactivityTimeout: viper.GetDuration("inactivity_timeout"),
		LogFilePath:       viper.GetString("server_log"),
	}
}

// startConcept launches the host process and connects to it
func startConcept() (*concept.Concept, error) {
	opts := launchOptions()
	if opts.Path == "" {
		return nil, fmt.Errorf("no executable path configured (use --exe or CONCEPTCTL_EXE_PATH)")
	}
	return concept.Start(opts)
}

// shutDown shuts the host process down, logging rather than failing on error
func shutDown(c *concept.Concept) {
	if err := c.ShutDown(); err != nil {
		logrus.WithError(err).Warn("Server shutdown failed")
	}
}

// commandTimeout returns the per-command timeout from the configuration
func commandTimeout() time.Duration {
	timeout := viper.GetDuration("timeout")
	if timeout <= 0 {
		timeout = time.Hour
	}
	return timeout
}
