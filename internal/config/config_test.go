package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// isolate points the global config at a temp dir, moves into a fresh
// project dir and clears NESTDEMO_* variables.
func isolate(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, "xdg"))
	t.Setenv("NESTDEMO_LOG_LEVEL", "")
	t.Setenv("NESTDEMO_LOG_FILE", "")
	os.Unsetenv("NESTDEMO_LOG_LEVEL")
	os.Unsetenv("NESTDEMO_LOG_FILE")

	project := filepath.Join(tmp, "project")
	require.NoError(t, os.MkdirAll(project, 0755))
	t.Chdir(project)
	return tmp
}

func TestGlobalPath(t *testing.T) {
	t.Run("with XDG_CONFIG_HOME set", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/custom/config")
		assert.Equal(t, "/custom/config/nestdemo/nestdemo.yml", GlobalPath())
	})

	t.Run("without XDG_CONFIG_HOME", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		got := GlobalPath()
		assert.True(t, filepath.IsAbs(got), "want absolute path, got %s", got)
		assert.True(t, strings.HasSuffix(filepath.ToSlash(got), ".config/nestdemo/nestdemo.yml"), got)
	})
}

func TestProjectPath(t *testing.T) {
	assert.Equal(t, "nestdemo.yml", ProjectPath())
}

func TestExists(t *testing.T) {
	isolate(t)
	assert.False(t, Exists())

	require.NoError(t, WriteGlobal(Default()))
	assert.True(t, Exists())

	require.NoError(t, os.Remove(GlobalPath()))
	require.NoError(t, WriteProject(Default()))
	assert.True(t, Exists())
}

func TestWriteGlobal(t *testing.T) {
	isolate(t)
	cfg := &Config{LogLevel: "debug", LogFile: "/tmp/nestdemo.log"}

	require.NoError(t, WriteGlobal(cfg))

	data, err := os.ReadFile(GlobalPath())
	require.NoError(t, err)

	var got Config
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.Equal(t, *cfg, got)
}

func TestLoad_NoConfig(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_Precedence(t *testing.T) {
	isolate(t)

	require.NoError(t, WriteGlobal(&Config{LogLevel: "warn", LogFile: "global.log"}))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "global.log", cfg.LogFile)

	// Project overrides only the keys it sets
	require.NoError(t, os.WriteFile(ProjectPath(), []byte("log_level: error\n"), 0644))

	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, "global.log", cfg.LogFile)

	t.Setenv("NESTDEMO_LOG_LEVEL", "debug")

	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_BrokenProjectConfig(t *testing.T) {
	isolate(t)
	require.NoError(t, os.WriteFile(ProjectPath(), []byte("log_level: [unclosed\n"), 0644))

	_, err := Load()
	assert.ErrorContains(t, err, "merging project config")
}
