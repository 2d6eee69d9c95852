// Package config loads the engine settings from YAML.
//
// Every field has a default (see Default); a YAML file only needs to name
// what it changes. Load decodes on top of the defaults and validates the
// result, so a returned *Config is always usable.
package config
