// Package paths resolves the on-disk locations docmap uses outside of the
// matching and rendering core: the log file and the default configuration
// file.
//
// # Environment Variables
//
//   - DOCMAP_CONFIG_DIR: Override XDG config directory (default: $XDG_CONFIG_HOME/docmap)
//   - DOCMAP_STATE_DIR: Override XDG state directory (default: $XDG_STATE_HOME/docmap)
//
// # Usage
//
//	p := paths.New()
//	p.LogFilePath()    // ~/.local/state/docmap/docmap.log
//	p.ConfigFiles()    // candidate docmap.toml / docmap.yaml locations
package paths
