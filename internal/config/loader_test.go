package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScene(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoaderExplicitPath(t *testing.T) {
	path := writeScene(t, t.TempDir(), "scene.json", `{"canvas": {"width": 10, "height": 20}}`)

	cfg, err := NewLoader(path).Load()
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Canvas.Width)
	assert.Equal(t, 20, cfg.Canvas.Height)
}

func TestLoaderExplicitPathMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoaderEnv(t *testing.T) {
	path := writeScene(t, t.TempDir(), "env.json", `{"stroke_width": 4}`)
	t.Setenv(EnvPath, path)

	l := NewLoader("")
	assert.Equal(t, path, l.GetConfigPath())

	cfg, err := l.Load()
	require.NoError(t, err)
	assert.Equal(t, float32(4), cfg.StrokeWidth)
}

func TestLoaderHomeConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvPath, "")
	t.Chdir(t.TempDir())

	path := writeScene(t, home, filepath.Join(".config", "vaint", "config.json"), `{"background": "black"}`)
	assert.Equal(t, path, NewLoader("").GetConfigPath())
}

func TestLoaderWorkingDirectoryWins(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvPath, "")
	writeScene(t, home, filepath.Join(".config", "vaint", "config.json"), `{}`)

	wd := t.TempDir()
	t.Chdir(wd)
	writeScene(t, wd, "vaint.json", `{}`)

	path := NewLoader("").GetConfigPath()
	assert.Equal(t, "vaint.json", filepath.Base(path))
}

func TestLoaderDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(EnvPath, "")
	t.Chdir(t.TempDir())

	cfg, err := NewLoader("").Load()
	require.NoError(t, err)
	assert.Equal(t, New(), cfg)
}
