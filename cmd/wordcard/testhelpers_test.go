package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/wordcard/internal/storage"
	"github.com/at-ishikawa/wordcard/internal/testutil"
)

// setConfigFile sets the package-level configFile variable for testing and restores it on cleanup.
func setConfigFile(t *testing.T, cfgPath string) {
	t.Helper()
	oldConfigFile := configFile
	configFile = cfgPath
	t.Cleanup(func() { configFile = oldConfigFile })
}

// setupBrokenConfigFile creates a config file with invalid YAML that causes Load() to fail.
func setupBrokenConfigFile(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("{{invalid yaml content"), 0644))
	return cfgPath
}

// executeCommand runs cmd with args and stdin, returning what it wrote to stdout.
func executeCommand(t *testing.T, cmd *cobra.Command, stdin string, args ...string) (string, error) {
	t.Helper()
	var stdout bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stdout)
	err := cmd.Execute()
	return stdout.String(), err
}

// loadSnapshot reads the snapshot the file backend configured by testutil.SetupTestConfig holds.
func loadSnapshot(t *testing.T, tmpDir string) storage.Snapshot {
	t.Helper()
	gateway := storage.NewGateway(storage.NewFileStore(testutil.DataDirectory(tmpDir)), "")
	snapshot, err := gateway.Load(context.Background())
	require.NoError(t, err)
	return snapshot
}

func trimNewline(s string) string {
	return strings.TrimRight(s, "\n")
}

func indexOf(s, substr string) int {
	return strings.Index(s, substr)
}
