package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for docmap
	EnvConfigDir = "DOCMAP_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for docmap
	EnvStateDir = "DOCMAP_STATE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

const (
	// AppDirName is the directory name used under each XDG base directory
	AppDirName = "docmap"

	// LogFileName is the name of the log file inside the state directory
	LogFileName = "docmap.log"
)

// ConfigFileNames lists the config file names looked up, in order.
var ConfigFileNames = []string{"docmap.toml", "docmap.yaml", "docmap.yml"}

// Paths exposes docmap's resolved directories.
type Paths struct {
	configDir string
	stateDir  string
}

// New resolves directories from the environment, respecting overrides.
func New() *Paths {
	p := &Paths{}

	if dir := os.Getenv(EnvConfigDir); dir != "" {
		p.configDir = ExpandHome(dir)
	} else {
		p.configDir = filepath.Join(xdg.ConfigHome, AppDirName)
	}

	// xdg caches StateHome at init, so the variable is read here directly
	switch {
	case os.Getenv(EnvStateDir) != "":
		p.stateDir = ExpandHome(os.Getenv(EnvStateDir))
	case os.Getenv("XDG_STATE_HOME") != "":
		p.stateDir = filepath.Join(os.Getenv("XDG_STATE_HOME"), AppDirName)
	default:
		p.stateDir = filepath.Join(xdg.StateHome, AppDirName)
	}

	return p
}

// ConfigDir returns the docmap config directory
func (p *Paths) ConfigDir() string {
	return p.configDir
}

// StateDir returns the docmap state directory
func (p *Paths) StateDir() string {
	return p.stateDir
}

// LogFilePath returns the path to the docmap log file
func (p *Paths) LogFilePath() string {
	return filepath.Join(p.stateDir, LogFileName)
}

// ConfigFiles returns candidate config file paths in lookup order.
func (p *Paths) ConfigFiles() []string {
	files := make([]string, 0, len(ConfigFileNames))
	for _, name := range ConfigFileNames {
		files = append(files, filepath.Join(p.configDir, name))
	}
	return files
}

// FindConfigFile returns the first existing config file, or "".
func (p *Paths) FindConfigFile() string {
	for _, candidate := range p.ConfigFiles() {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}

// ExpandHome expands ~ to the user's home directory
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	home := os.Getenv(EnvHome)
	if home == "" {
		var err error
		home, err = os.UserHomeDir()
		if err != nil {
			return path
		}
	}

	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}
