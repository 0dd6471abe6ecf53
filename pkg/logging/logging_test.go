/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: logging_test.go
Description: Tests for the logging system. Covers configuration validation,
file output, the client event helpers, formatter prefixes and log analysis.
*/

package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoggerConfigValidate tests the configuration checks
func TestLoggerConfigValidate(t *testing.T) {
	valid := &LoggerConfig{
		Level:     LogLevelInfo,
		Format:    LogFormatCustom,
		OutputDir: t.TempDir(),
		MaxFiles:  5,
		MaxSize:   1024,
	}
	assert.NoError(t, valid.Validate())

	bad := *valid
	bad.OutputDir = ""
	assert.Error(t, bad.Validate())

	bad = *valid
	bad.MaxFiles = 0
	assert.Error(t, bad.Validate())

	bad = *valid
	bad.Format = LogFormat("xml")
	assert.Error(t, bad.Validate())

	bad = *valid
	bad.Level = LogLevel("verbose")
	assert.Error(t, bad.Validate())
}

// TestLoggerFileOutput tests that a session log file is created and written
func TestLoggerFileOutput(t *testing.T) {
	dir := t.TempDir()
	logger, err := NewLogger(&LoggerConfig{
		Level:     LogLevelDebug,
		Format:    LogFormatText,
		OutputDir: dir,
		MaxFiles:  5,
		MaxSize:   1024 * 1024,
		Timestamp: true,
	})
	require.NoError(t, err)
	defer logger.Close()

	logger.Info("session started", map[string]interface{}{"port": 1999})
	logger.LogCommand("[PING]", 12*time.Millisecond, "success", nil)
	logger.LogLaunch(1999, 4242, nil)
	logger.LogCalc("slab.cpt", 3*time.Second, nil)
	logger.LogSession(10, 1, nil)

	files, err := filepath.Glob(filepath.Join(dir, "conceptctl_*.log"))
	require.NoError(t, err)
	require.Len(t, files, 1)

	content, err := os.ReadFile(files[0])
	require.NoError(t, err)
	text := string(content)
	assert.Contains(t, text, "session started")
	assert.Contains(t, text, "Command completed")
	assert.Contains(t, text, "Server launched")
	assert.Contains(t, text, "Calc-all completed")
	assert.Contains(t, text, "Session statistics")
}

// TestLoggerCloseAppliesRetention tests that closing a logger prunes the log
// directory down to the retention limit
func TestLoggerCloseAppliesRetention(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 3; i++ {
		name := filepath.Join(dir, fmt.Sprintf("conceptctl_old_%d.log", i))
		require.NoError(t, os.WriteFile(name, []byte("x"), 0o644))
		past := time.Now().Add(time.Duration(i-4) * time.Hour)
		require.NoError(t, os.Chtimes(name, past, past))
	}

	logger, err := NewLogger(&LoggerConfig{
		Level:     LogLevelInfo,
		Format:    LogFormatText,
		OutputDir: dir,
		MaxFiles:  2,
		MaxSize:   1024 * 1024,
	})
	require.NoError(t, err)
	logger.Info("retention check", nil)
	require.NoError(t, logger.Close())

	files, err := filepath.Glob(filepath.Join(dir, "conceptctl_*.log"))
	require.NoError(t, err)
	assert.Len(t, files, 2)
}

// TestChannelFormatterPrefixes tests the event prefix mapping
func TestChannelFormatterPrefixes(t *testing.T) {
	formatter := &ChannelFormatter{}

	assert.Equal(t, "CMD", formatter.getEventPrefix("Command completed"))
	assert.Equal(t, "CMD", formatter.getEventPrefix("Command failed"))
	assert.Equal(t, "LAUNCH", formatter.getEventPrefix("Server launched"))
	assert.Equal(t, "SERVER", formatter.getEventPrefix("Server shutting down"))
	assert.Equal(t, "CALC", formatter.getEventPrefix("Calc-all completed"))
	assert.Equal(t, "SESSION", formatter.getEventPrefix("Session statistics"))
	assert.Equal(t, "MODEL", formatter.getEventPrefix("Model opened"))
	assert.Equal(t, "", formatter.getEventPrefix("unrelated message"))
}

// TestChannelFormatterTruncation tests the long-value display rules
func TestChannelFormatterTruncation(t *testing.T) {
	formatter := &ChannelFormatter{}

	longCommand := strings.Repeat("[CALC_ALL]", 10)
	formatted := formatter.formatChannelValue("command", longCommand)
	assert.Len(t, formatted, 43)
	assert.True(t, strings.HasSuffix(formatted, "..."))

	formatted = formatter.formatChannelValue("request_id", "0123456789abcdef")
	assert.Equal(t, "01234567...", formatted)

	formatted = formatter.formatChannelValue("duration", 1500*time.Millisecond)
	assert.Equal(t, "1.5s", formatted)
}

// TestChannelFormatterOutput tests a full formatted entry
func TestChannelFormatterOutput(t *testing.T) {
	formatter := &ChannelFormatter{CustomFormatter: CustomFormatter{Timestamp: false, Colors: false}}
	entry := &logrus.Entry{
		Logger:  logrus.New(),
		Level:   logrus.InfoLevel,
		Message: "Server launched",
		Data:    logrus.Fields{"port": 1999},
		Time:    time.Now(),
	}

	formatted, err := formatter.Format(entry)
	require.NoError(t, err)
	text := string(formatted)
	assert.Contains(t, text, "[LAUNCH]")
	assert.Contains(t, text, "Server launched")
	assert.Contains(t, text, "port=1999")
}

// TestLogAnalyzer tests event counting across session logs
func TestLogAnalyzer(t *testing.T) {
	dir := t.TempDir()
	logContent := strings.Join([]string{
		"2026-01-02 10:00:00.000 INFO [LAUNCH] Server launched port=1999",
		"2026-01-02 10:00:01.000 DEBUG [CMD] Command completed command=[PING]",
		"2026-01-02 10:00:02.000 DEBUG [CMD] Command completed command=[CALC_ALL]",
		"2026-01-02 10:00:03.000 WARN [CMD] Command failed command=[SAVE_FILE]",
		"2026-01-02 10:00:04.000 INFO [CALC] Calc-all completed file=slab.cpt",
	}, "\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "conceptctl_test.log"), []byte(logContent), 0o644))

	analyzer := NewLogAnalyzer(dir)
	analysis, err := analyzer.AnalyzeLogs()
	require.NoError(t, err)

	assert.Equal(t, 1, analysis.LogFiles)
	assert.Equal(t, int64(5), analysis.TotalLines)
	assert.Equal(t, int64(2), analysis.CommandCount)
	assert.Equal(t, int64(1), analysis.FailureCount)
	assert.Equal(t, int64(1), analysis.LaunchCount)
	assert.Equal(t, int64(1), analysis.CalcCount)
	assert.Contains(t, analysis.GetLogSummary(), "Calc Runs: 1")
}

// TestLogManagerCleanup tests the retention policy
func TestLogManagerCleanup(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 5; i++ {
		name := filepath.Join(dir, "conceptctl_2026-01-0"+string(rune('1'+i))+".log")
		require.NoError(t, os.WriteFile(name, []byte("x"), 0o644))
		// distinct modification times so retention ordering is stable
		past := time.Now().Add(time.Duration(i-5) * time.Hour)
		require.NoError(t, os.Chtimes(name, past, past))
	}

	manager := NewLogManager(dir, 2, 1024, false)
	require.NoError(t, manager.CleanupOldLogs())

	files, err := filepath.Glob(filepath.Join(dir, "conceptctl_*.log"))
	require.NoError(t, err)
	assert.Len(t, files, 2)

	stats, err := manager.GetLogStats()
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalFiles)
}
