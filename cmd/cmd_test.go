package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandTree(t *testing.T) {
	want := []string{"serve", "export", "mood", "chat", "mcp", "init", "version"}
	for _, name := range want {
		c, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, c.Name())
	}

	for _, name := range []string{"log", "history", "stats"} {
		c, _, err := rootCmd.Find([]string{"mood", name})
		require.NoError(t, err, name)
		assert.Equal(t, name, c.Name())
	}
}

func TestExportAndMoodCommands(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("MINDCARE_DATA_DIR", filepath.Join(dir, "data"))
	t.Setenv("MINDCARE_STORAGE__BACKEND", "file")
	config := filepath.Join(dir, "missing.yml")

	out := filepath.Join(dir, "site")
	rootCmd.SetArgs([]string{"export", "--config", config, "--output", out, "--quiet"})
	require.NoError(t, rootCmd.Execute())
	assert.FileExists(t, filepath.Join(out, "index.html"))
	assert.FileExists(t, filepath.Join(out, "search-index.json"))

	rootCmd.SetArgs([]string{"mood", "log", "--config", config, "--mood", "4", "--emotion", "Happy", "--notes", "fine"})
	require.NoError(t, rootCmd.Execute())
	assert.FileExists(t, filepath.Join(dir, "data", "slots", "mindcare-mood-history.json"))

	rootCmd.SetArgs([]string{"mood", "log", "--config", config, "--mood", "9"})
	assert.Error(t, rootCmd.Execute())

	rootCmd.SetArgs([]string{"mood", "stats", "--config", config})
	assert.NoError(t, rootCmd.Execute())
}
