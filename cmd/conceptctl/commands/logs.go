/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: logs.go
Description: Logs command for conceptctl. Summarizes past session logs and
optionally rotates and prunes the log directory.
*/

package commands

import (
	"fmt"

	"github.com/kleascm/concept-client/pkg/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RunLogs analyzes the session logs in the configured log directory
func RunLogs(cmd *cobra.Command, args []string) error {
	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logDir := viper.GetString("log_dir")
	manager := logging.NewLogManager(
		logDir,
		viper.GetInt("log_max_files"),
		viper.GetInt64("log_max_size"),
		viper.GetBool("log_compress"),
	)

	if viper.GetBool("log_prune") {
		if err := manager.RotateLogs(); err != nil {
			return fmt.Errorf("failed to rotate logs: %w", err)
		}
		if err := manager.CleanupOldLogs(); err != nil {
			return fmt.Errorf("failed to prune logs: %w", err)
		}
		fmt.Printf("🧹 Pruned log directory: %s\n", logDir)
	}

	analyzer := logging.NewLogAnalyzer(logDir)
	analysis, err := analyzer.AnalyzeLogs()
	if err != nil {
		return fmt.Errorf("failed to analyze logs: %w", err)
	}
	fmt.Println(analysis.GetLogSummary())

	stats, err := manager.GetLogStats()
	if err != nil {
		return fmt.Errorf("failed to stat logs: %w", err)
	}
	fmt.Printf("📊 %d files (%d compressed), %d bytes total\n",
		stats.TotalFiles, stats.CompressedFiles, stats.TotalSize)
	return nil
}
