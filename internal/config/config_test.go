package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, 1e-5, cfg.Epsilon)
	assert.Equal(t, 64, cfg.Wrap)
	assert.Equal(t, 4096, cfg.Capacity)
	assert.Equal(t, ".lua", cfg.ScriptExt)
	assert.Equal(t, "_Test", cfg.TestMarker)
	assert.Equal(t, "_Ignore", cfg.IgnoreMarker)
	assert.Equal(t, "-t", cfg.Token)
	assert.True(t, cfg.Scripts)
	assert.True(t, cfg.SortScripts)
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), ".unit.yaml", `
epsilon: 0.001
wrap: 32
script_dir: scripts
no_color: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 0.001, cfg.Epsilon)
	assert.Equal(t, 32, cfg.Wrap)
	assert.Equal(t, "scripts", cfg.ScriptDir)
	assert.True(t, cfg.NoColor)
	assert.Equal(t, path, cfg.Path)
	// Unset keys keep their defaults.
	assert.Equal(t, ".lua", cfg.ScriptExt)
	assert.Equal(t, 4096, cfg.Capacity)
}

func TestLoad_TOML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "unit.toml", `
capacity = 16
scripts = false
test_marker = "Spec_"
token = "--test"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 16, cfg.Capacity)
	assert.False(t, cfg.Scripts)
	assert.Equal(t, "Spec_", cfg.TestMarker)
	assert.Equal(t, "--test", cfg.Token)
	assert.Equal(t, 1e-5, cfg.Epsilon)
}

func TestLoad_EmptyYAMLIsDefault(t *testing.T) {
	path := writeFile(t, t.TempDir(), ".unit.yml", "")

	cfg, err := Load(path)
	require.NoError(t, err)

	want := Default()
	want.Path = path
	assert.Equal(t, want, cfg)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		contains string
	}{
		{"unknown yaml key", ".unit.yaml", "epsilon: 0.1\ncolour: red\n", "colour"},
		{"unknown toml key", "unit.toml", "wrap = 8\ncolour = \"red\"\n", "unknown keys: colour"},
		{"yaml syntax", ".unit.yaml", "wrap: [\n", "yaml"},
		{"toml syntax", "unit.toml", "wrap = \n", "toml"},
		{"unsupported format", "unit.json", "{}", "unsupported config format"},
		{"negative epsilon", ".unit.yaml", "epsilon: -1\n", "epsilon"},
		{"zero epsilon", "unit.toml", "epsilon = 0.0\n", "epsilon"},
		{"negative wrap", ".unit.yaml", "wrap: -1\n", "wrap"},
		{"extension without dot", ".unit.yaml", "script_ext: lua\n", "script_ext"},
		{"empty marker", "unit.toml", "test_marker = \"\"\n", "test_marker"},
		{"token without dash", ".unit.yaml", "token: t\n", "token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), tt.file, tt.content)

			_, err := Load(path)
			require.Error(t, err)

			var cfgErr *Error
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, path, cfgErr.Path)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), ".unit.yaml"))

	var cfgErr *Error
	require.ErrorAs(t, err, &cfgErr)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFind(t *testing.T) {
	t.Run("none", func(t *testing.T) {
		path, err := Find(t.TempDir())
		require.NoError(t, err)
		assert.Empty(t, path)
	})

	t.Run("yaml wins over toml", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "unit.toml", "")
		want := writeFile(t, dir, ".unit.yaml", "")

		path, err := Find(dir)
		require.NoError(t, err)
		assert.Equal(t, want, path)
	})

	t.Run("toml only", func(t *testing.T) {
		dir := t.TempDir()
		want := writeFile(t, dir, "unit.toml", "")

		path, err := Find(dir)
		require.NoError(t, err)
		assert.Equal(t, want, path)
	})

	t.Run("directories are skipped", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(dir, ".unit.yaml"), 0o755))
		want := writeFile(t, dir, ".unit.yml", "")

		path, err := Find(dir)
		require.NoError(t, err)
		assert.Equal(t, want, path)
	})
}

func TestFindAndLoad(t *testing.T) {
	cfg, err := FindAndLoad(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	dir := t.TempDir()
	writeFile(t, dir, "unit.toml", "wrap = 10\n")
	cfg, err = FindAndLoad(dir)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Wrap)
}

func TestError_Message(t *testing.T) {
	err := &Error{Path: "unit.toml", Err: os.ErrPermission}
	assert.Equal(t, "config unit.toml: permission denied", err.Error())
	assert.ErrorIs(t, err, os.ErrPermission)

	err = &Error{Err: os.ErrPermission}
	assert.Equal(t, "config: permission denied", err.Error())
}
