/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: main.go
Description: Main command-line interface for conceptctl. Provides commands for
pinging, calculating and inspecting RAM Concept models over the local API,
with configuration management and structured logging.
*/

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/kleascm/concept-client/cmd/conceptctl/commands"
	"github.com/kleascm/concept-client/pkg/protocol"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Configuration
	configFile string
	logLevel   string

	// Server configuration
	exePath           string
	port              int
	headless          bool
	startTimeout      time.Duration
	inactivityTimeout time.Duration
	serverLog         string

	// Execution configuration
	timeout time.Duration
	saveAs  string

	// Logging configuration
	logDir      string
	logFormat   string
	logMaxFiles int
	logMaxSize  int64
	logCompress bool
	logPrune    bool
)

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:   "conceptctl",
		Short: "conceptctl - Command-line client for the RAM Concept API",
		Long: `conceptctl drives a local RAM Concept process over its HTTP API. It can
launch the host headlessly, open and calculate model files, and inspect model
contents, with structured logging and session reports for automation.`,
		Version: protocol.Version,
	}

	// Add persistent flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Logging level (debug, info, warn, error)")

	// Add server flags
	rootCmd.PersistentFlags().StringVar(&exePath, "exe", "", "Path to the Concept executable")
	rootCmd.PersistentFlags().IntVar(&port, "port", 0, "Server port (0 = pick an available port)")
	rootCmd.PersistentFlags().BoolVar(&headless, "headless", true, "Run the server without a GUI")
	rootCmd.PersistentFlags().DurationVar(&startTimeout, "start-timeout", 60*time.Second, "Server startup timeout")
	rootCmd.PersistentFlags().DurationVar(&inactivityTimeout, "inactivity-timeout", time.Hour, "Server inactivity shutdown timeout")
	rootCmd.PersistentFlags().StringVar(&serverLog, "server-log", "", "Log file path for the server's own output")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", time.Hour, "Timeout for long-running commands")

	// Add logging-specific flags
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "./logs", "Log output directory")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "custom", "Log format (text, json, custom)")
	rootCmd.PersistentFlags().IntVar(&logMaxFiles, "log-max-files", 10, "Maximum number of log files to keep")
	rootCmd.PersistentFlags().Int64Var(&logMaxSize, "log-max-size", 100*1024*1024, "Maximum log file size in bytes")
	rootCmd.PersistentFlags().BoolVar(&logCompress, "log-compress", false, "Compress rotated log files")

	// Bind flags to viper
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("exe_path", rootCmd.PersistentFlags().Lookup("exe"))
	viper.BindPFlag("port", rootCmd.PersistentFlags().Lookup("port"))
	viper.BindPFlag("headless", rootCmd.PersistentFlags().Lookup("headless"))
	viper.BindPFlag("start_timeout", rootCmd.PersistentFlags().Lookup("start-timeout"))
	viper.BindPFlag("inactivity_timeout", rootCmd.PersistentFlags().Lookup("inactivity-timeout"))
	viper.BindPFlag("server_log", rootCmd.PersistentFlags().Lookup("server-log"))
	viper.BindPFlag("timeout", rootCmd.PersistentFlags().Lookup("timeout"))
	viper.BindPFlag("log_dir", rootCmd.PersistentFlags().Lookup("log-dir"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("log_max_files", rootCmd.PersistentFlags().Lookup("log-max-files"))
	viper.BindPFlag("log_max_size", rootCmd.PersistentFlags().Lookup("log-max-size"))
	viper.BindPFlag("log_compress", rootCmd.PersistentFlags().Lookup("log-compress"))

	// Add ping command
	pingCmd := &cobra.Command{
		Use:   "ping",
		Short: "Ping a running server",
		Long: `Attach to a running Concept API server on the configured port and
round-trip a ping to verify the connection is healthy.`,
		RunE: commands.RunPing,
	}
	rootCmd.AddCommand(pingCmd)

	// Add calc command
	calcCmd := &cobra.Command{
		Use:   "calc <file>",
		Short: "Open, mesh, calculate and save a model file",
		Long: `Start the Concept host process, open the given model file, generate the
mesh, run a full calculation, save the file and shut the host down. A
timestamped session report is written for automation pipelines.`,
		Args: cobra.ExactArgs(1),
		RunE: commands.RunCalc,
	}
	calcCmd.Flags().StringVar(&saveAs, "save-as", "", "Save the calculated model to a different path")
	viper.BindPFlag("save_as", calcCmd.Flags().Lookup("save-as"))
	rootCmd.AddCommand(calcCmd)

	// Add inspect command
	inspectCmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Print the layers, materials and loadings of a model file",
		Long: `Open the given model file and print a summary of its loading layers,
load combinations, tendon layers and material catalogs.`,
		Args: cobra.ExactArgs(1),
		RunE: commands.RunInspect,
	}
	rootCmd.AddCommand(inspectCmd)

	// Add logs command
	logsCmd := &cobra.Command{
		Use:   "logs",
		Short: "Summarize past session logs",
		Long: `Analyze the session logs in the configured log directory, counting
commands, failures, launches and calc runs. With --prune, oversized logs are
rotated and files beyond the retention limit are removed first.`,
		RunE: commands.RunLogs,
	}
	logsCmd.Flags().BoolVar(&logPrune, "prune", false, "Rotate and prune the log directory before analyzing")
	viper.BindPFlag("log_prune", logsCmd.Flags().Lookup("prune"))
	rootCmd.AddCommand(logsCmd)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
