package config

import (
	"github.com/arthur-debert/docmap/pkg/errors"
	"github.com/arthur-debert/docmap/pkg/types"
)

// Config is the complete docmap configuration.
type Config struct {
	Logging  Logging  `koanf:"logging"`
	Selector Selector `koanf:"selector"`
	Render   Render   `koanf:"render"`

	// Source is the config file that was loaded, if any
	Source string `koanf:"-"`
}

// Logging configures log verbosity.
type Logging struct {
	Verbosity int `koanf:"verbosity"`
}

// Selector configures selector compilation.
type Selector struct {
	CacheSize int `koanf:"cache"`
}

// Render configures template rendering.
type Render struct {
	Strict bool   `koanf:"strict"`
	Format string `koanf:"format"`
}

// DefaultFormat returns the configured fallback format.
func (r Render) DefaultFormat() types.Format {
	return types.ParseFormat(r.Format)
}

// Validate checks value ranges after all layers are merged.
func (c *Config) Validate() error {
	if c.Logging.Verbosity < 0 {
		return errors.Newf(errors.ErrConfigValid, "logging.verbosity must be >= 0, got %d", c.Logging.Verbosity)
	}
	if c.Selector.CacheSize < 0 {
		return errors.Newf(errors.ErrConfigValid, "selector.cache must be >= 0, got %d", c.Selector.CacheSize)
	}
	if !c.Render.DefaultFormat().IsValid() {
		return errors.Newf(errors.ErrConfigValid, "render.format %q is not supported", c.Render.Format).
			WithDetail(errors.DetailFormat, c.Render.Format)
	}
	return nil
}
