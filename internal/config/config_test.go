package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// clearEnv isolates a test from the caller's environment and any .env file.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"NAMEFORM_THEME", "PORT", "NAMEFORM_LISTEN", "NAMEFORM_LOG_LEVEL", "NAMEFORM_LOG_FILE", "NAMEFORM_CHAR_LIMIT"} {
		t.Setenv(k, "")
	}
	chdir(t, t.TempDir())
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.Equal(t, "classic", cfg.Theme)
	require.Equal(t, 64, cfg.CharLimit)
	require.Equal(t, ":8080", cfg.Listen)
	require.Equal(t, "info", cfg.Logging.Level)
	require.NoError(t, cfg.Validate())
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)
}

func TestConfig_SaveLoad(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nameform.yaml")

	cfg := DefaultConfig()
	cfg.Theme = "neon"
	cfg.Listen = "127.0.0.1:9000"
	cfg.Logging.Format = "json"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg, loaded)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nameform.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: mono\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "mono", cfg.Theme)
	require.Equal(t, 64, cfg.CharLimit)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "3000")
	t.Setenv("NAMEFORM_LOG_LEVEL", "debug")
	t.Setenv("NAMEFORM_CHAR_LIMIT", "10")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, ":3000", cfg.Listen)
	require.Equal(t, "debug", cfg.Logging.Level)
	require.Equal(t, 10, cfg.CharLimit)

	t.Setenv("NAMEFORM_LISTEN", "localhost:4000")
	cfg, err = Load("")
	require.NoError(t, err)
	require.Equal(t, "localhost:4000", cfg.Listen, "NAMEFORM_LISTEN wins over PORT")
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("NAMEFORM_THEME")
	require.NoError(t, os.WriteFile(".env", []byte("NAMEFORM_THEME=neon\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("NAMEFORM_THEME") })

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "neon", cfg.Theme)
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("theme: [\n"), 0o644))
	_, err := Load(bad)
	require.ErrorContains(t, err, "parse config")

	unknown := filepath.Join(dir, "theme.yaml")
	require.NoError(t, os.WriteFile(unknown, []byte("theme: rainbow\n"), 0o644))
	_, err = Load(unknown)
	require.ErrorContains(t, err, "unknown theme")

	t.Setenv("NAMEFORM_CHAR_LIMIT", "lots")
	_, err = Load("")
	require.ErrorContains(t, err, "NAMEFORM_CHAR_LIMIT")
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatal(err)
		}
	})
}
