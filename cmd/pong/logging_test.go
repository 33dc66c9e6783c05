package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// useTempLogDir points the log directory at a per-test location and restores the logger
func useTempLogDir(t *testing.T) string {
	t.Helper()
	prevDir, prevOut, prevFlags := logDir, log.Writer(), log.Flags()
	logDir = filepath.Join(t.TempDir(), "logs")
	t.Cleanup(func() {
		logDir = prevDir
		log.SetOutput(prevOut)
		log.SetFlags(prevFlags)
	})
	return logDir
}

// TestSetupLoggingDisabled verifies log output is discarded without debug
func TestSetupLoggingDisabled(t *testing.T) {
	dir := useTempLogDir(t)

	logFile := setupLogging(false)
	if logFile != nil {
		t.Error("Expected nil log file when debug=false")
		logFile.Close()
	}
	if output := log.Writer(); output != io.Discard {
		t.Errorf("Expected log output to be io.Discard, got %v", output)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Error("Log directory created without debug")
	}
}

// TestSetupLoggingEnabled verifies debug mode writes to the log file
func TestSetupLoggingEnabled(t *testing.T) {
	dir := useTempLogDir(t)

	logFile := setupLogging(true)
	if logFile == nil {
		t.Fatal("Expected non-nil log file when debug=true")
	}
	defer logFile.Close()

	log.Println("scene: title started")

	data, err := os.ReadFile(filepath.Join(dir, logFileName))
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	text := string(data)
	if !strings.Contains(text, "pong started") || !strings.Contains(text, "scene: title started") {
		t.Errorf("Log file content = %q", text)
	}

	output := log.Writer()
	if output == os.Stdout || output == os.Stderr {
		t.Error("Log output should not reach the terminal")
	}
}

// TestSetupLoggingRotation verifies an oversized log is moved aside
func TestSetupLoggingRotation(t *testing.T) {
	dir := useTempLogDir(t)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create logs directory: %v", err)
	}

	logPath := filepath.Join(dir, logFileName)
	if err := os.WriteFile(logPath, make([]byte, maxLogSize+1), 0644); err != nil {
		t.Fatalf("Failed to write large log file: %v", err)
	}

	logFile := setupLogging(true)
	if logFile == nil {
		t.Fatal("Expected non-nil log file")
	}
	defer logFile.Close()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read logs directory: %v", err)
	}
	rotatedFound := false
	for _, entry := range entries {
		if entry.Name() != logFileName && filepath.Ext(entry.Name()) == ".log" {
			rotatedFound = true
		}
	}
	if !rotatedFound {
		t.Error("Expected to find rotated log file")
	}

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Failed to stat new log file: %v", err)
	}
	if info.Size() > maxLogSize {
		t.Errorf("Expected new log file to be smaller than %d bytes, got %d", maxLogSize, info.Size())
	}
}

// TestSetupLoggingAppends verifies a small existing log is kept and extended
func TestSetupLoggingAppends(t *testing.T) {
	dir := useTempLogDir(t)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create logs directory: %v", err)
	}
	logPath := filepath.Join(dir, logFileName)
	if err := os.WriteFile(logPath, []byte("previous run\n"), 0644); err != nil {
		t.Fatalf("Failed to seed log file: %v", err)
	}

	logFile := setupLogging(true)
	if logFile == nil {
		t.Fatal("Expected non-nil log file")
	}
	defer logFile.Close()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.HasPrefix(string(data), "previous run\n") {
		t.Errorf("Existing log not preserved: %q", data)
	}
}
