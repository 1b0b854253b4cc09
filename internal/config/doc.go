// Package config loads and validates the TOML configuration for scriptdocs.
//
// Load resolves the config path (explicit flag, then ./scriptdocs.toml, then
// ~/.config/scriptdocs/config.toml), applies defaults for anything the file
// omits, expands ~ in every path field, and validates the result. All
// components receive the resulting Config value explicitly; nothing reads
// ambient globals.
package config
