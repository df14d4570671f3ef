// Package config loads docmap settings.
//
// Values are layered with koanf, later sources overriding earlier ones:
// the embedded defaults.toml, an optional docmap.toml or docmap.yaml file,
// DOCMAP_* environment variables and finally explicit overrides such as
// command line flags.
package config
