package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		envSetup map[string]string
		validate func(t *testing.T, p *Paths)
	}{
		{
			name: "explicit overrides",
			envSetup: map[string]string{
				EnvConfigDir: "/custom/config",
				EnvStateDir:  "/custom/state",
			},
			validate: func(t *testing.T, p *Paths) {
				assert.Equal(t, "/custom/config", p.ConfigDir())
				assert.Equal(t, "/custom/state", p.StateDir())
				assert.Equal(t, "/custom/state/docmap.log", p.LogFilePath())
			},
		},
		{
			name: "XDG_STATE_HOME respected",
			envSetup: map[string]string{
				EnvStateDir:      "",
				"XDG_STATE_HOME": "/xdg/state",
			},
			validate: func(t *testing.T, p *Paths) {
				assert.Equal(t, "/xdg/state/docmap", p.StateDir())
			},
		},
		{
			name: "home expansion in override",
			envSetup: map[string]string{
				EnvHome:      "/home/tester",
				EnvConfigDir: "~/conf",
			},
			validate: func(t *testing.T, p *Paths) {
				assert.Equal(t, "/home/tester/conf", p.ConfigDir())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envSetup {
				t.Setenv(k, v)
			}
			tt.validate(t, New())
		})
	}
}

func TestFindConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvConfigDir, dir)

	p := New()
	assert.Empty(t, p.FindConfigFile())

	yamlPath := filepath.Join(dir, "docmap.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("render:\n  strict: true\n"), 0644))
	assert.Equal(t, yamlPath, p.FindConfigFile())

	tomlPath := filepath.Join(dir, "docmap.toml")
	require.NoError(t, os.WriteFile(tomlPath, []byte("[render]\nstrict = true\n"), 0644))
	assert.Equal(t, tomlPath, p.FindConfigFile(), "toml takes precedence over yaml")
}

func TestExpandHome(t *testing.T) {
	t.Setenv(EnvHome, "/home/tester")

	assert.Equal(t, "/home/tester", ExpandHome("~"))
	assert.Equal(t, "/home/tester/x/y", ExpandHome("~/x/y"))
	assert.Equal(t, "/abs/path", ExpandHome("/abs/path"))
	assert.Equal(t, "~user/path", ExpandHome("~user/path"))
}
