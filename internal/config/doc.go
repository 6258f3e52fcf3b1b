// Package config loads and validates papervault configuration.
//
// Configuration lives in a TOML file, by default at
// ~/.config/papervault/config.toml. Load applies defaults for absent keys,
// expands ~ in paths, and validates the result, so callers always receive a
// usable Config or an error naming the offending key.
package config
