package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

const (
	logDir      = "logs"
	logFileName = "vi-invaders.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging routes log and slog to a file when debug is set, and discards them otherwise
// Nothing may reach stdout or stderr while the terminal is in raw mode
func setupLogging(debug bool) *os.File {
	if !debug {
		discardLogs()
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		discardLogs()
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("vi-invaders-%s.log", time.Now().Format("20060102-150405")))
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		discardLogs()
		return nil
	}

	// slog.SetDefault redirects the log package, so log is pointed at the file afterwards
	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	log.SetOutput(f)
	return f
}

// discardLogs silences both slog and log; log must be set last
func discardLogs() {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	log.SetOutput(io.Discard)
}

// tagRun adds run_id to every slog record without disturbing the log package output
func tagRun(runID string) {
	out := log.Writer()
	slog.SetDefault(slog.Default().With("run_id", runID))
	log.SetOutput(out)
}
