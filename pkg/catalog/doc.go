// Package catalog stores templates by id.
//
// A catalog is usually loaded from a TOML or YAML file holding a list of
// templates:
//
//	[[templates]]
//	id = 3
//	name = "module overview"
//	format = "markdown"
//	body = "# {{symbol.name}}"
//
// Templates without a format take the catalog default. Lookups of unknown ids
// fail with TEMPLATE_NOT_FOUND.
package catalog
