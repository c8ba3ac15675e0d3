package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tgienger/projman/internal/models"
	"github.com/tgienger/projman/internal/state"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestResolveConfig_FlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, "theme: gruvbox\norphans: keep\nids: uuid\nlog:\n  level: warn\n")

	cfg, err := resolveConfig(&flags{
		configPath: path,
		theme:      "nord",
		ids:        "sequence",
		noMarkdown: true,
	})
	require.NoError(t, err)

	assert.Equal(t, "nord", cfg.Theme)
	assert.Equal(t, "keep", cfg.Orphans)
	assert.Equal(t, "sequence", cfg.IDs)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.False(t, cfg.Markdown)
}

func TestResolveConfig_DefaultsWithoutFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := resolveConfig(&flags{})
	require.NoError(t, err)
	assert.Equal(t, "tokyo-night", cfg.Theme)
	assert.Equal(t, "cascade", cfg.Orphans)
	assert.True(t, cfg.Markdown)
}

func TestResolveConfig_RejectsBadValues(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	for name, f := range map[string]*flags{
		"theme":     {theme: "neon"},
		"orphans":   {orphans: "adopt"},
		"ids":       {ids: "snowflake"},
		"log level": {logLevel: "loud"},
		"config":    {configPath: filepath.Join(t.TempDir(), "missing.yaml")},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := resolveConfig(f)
			assert.Error(t, err)
		})
	}
}

func TestNewStore_UsesConfiguredPolicyAndIDs(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfg, err := resolveConfig(&flags{ids: "sequence", orphans: "keep"})
	require.NoError(t, err)

	store, err := newStore(cfg)
	require.NoError(t, err)

	p, err := store.AddProject(models.ProjectInput{Title: "A", Description: "B", DueDate: "2025-01-01"})
	require.NoError(t, err)
	assert.Equal(t, "id-1", p.ID)

	store.SelectProject(p.ID)
	_, err = store.AddTask("orphan me")
	require.NoError(t, err)
	_, ok := store.DeleteProject()
	require.True(t, ok)

	assert.Len(t, store.Snapshot().Tasks(), 1)
	assert.Equal(t, state.NoSelection(), store.Snapshot().Selection())
}

func TestRootCmd_Version(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--version"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "projman dev")
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"extra"})

	assert.Error(t, cmd.Execute())
}
