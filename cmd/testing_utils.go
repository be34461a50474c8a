// Package cmd contains testing utilities shared between command tests.
// This file provides helpers for running the setup command in an isolated
// working directory.
package cmd

import (
	"os"
	"testing"

	"github.com/denoyey/mentahan/internal/configs"
	logger "github.com/denoyey/mentahan/internal/logging"
)

// setupTestEnvironment changes into a fresh temporary directory and restores
// the original working directory and global state when the test ends.
func setupTestEnvironment(t *testing.T) string {
	t.Helper()

	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}

	tempDir := t.TempDir()
	if err := os.Chdir(tempDir); err != nil {
		t.Fatalf("Failed to change to temp directory: %v", err)
	}

	t.Cleanup(func() {
		if err := os.Chdir(originalWd); err != nil {
			t.Fatalf("Failed to change to original directory: %v", err)
		}
		ResetGlobalState()
	})

	return tempDir
}

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	settingsPath = configs.FileName
	Logger = logger.Logger{}
}
