// Package logging builds the slog loggers used across the build.
//
// Two output formats exist: a console handler printing
// "TIMESTAMP LEVEL component: message key=value" lines, and the standard JSON
// handler with stable key names. When the config leaves the format empty the
// console handler is chosen only if stdout is a terminal. A log_dir setting
// additionally appends every line to scriptdocs.log in that directory.
package logging
