package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// CreateFile creates a file with the given content in the specified directory.
// It fails the test if the file cannot be created.
func CreateFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)

	// Create parent directories if needed
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}

	return path
}

// TempFile writes content to name inside a fresh temporary directory.
func TempFile(t *testing.T, name, content string) string {
	t.Helper()
	return CreateFile(t, t.TempDir(), name, content)
}

// IsolateEnv points the docmap config and state directories at a fresh
// temporary directory and returns it. Config lives under "config", state
// (log files) under "state".
func IsolateEnv(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	t.Setenv("DOCMAP_CONFIG_DIR", filepath.Join(root, "config"))
	t.Setenv("DOCMAP_STATE_DIR", filepath.Join(root, "state"))
	return root
}

// CaptureLogs redirects the global logger to a buffer for the rest of the
// test. Loggers derive from the global one when created, so create the
// component under test after calling this.
func CaptureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	original := log.Logger
	originalLevel := zerolog.GlobalLevel()

	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	t.Cleanup(func() {
		log.Logger = original
		zerolog.SetGlobalLevel(originalLevel)
	})
	return &buf
}
