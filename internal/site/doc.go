// Package site renders the documentation tree: one Markdown page per
// episode, a season index per season, a root index with
// translation-coverage lists, and the MkDocs manifest enumerating every
// page for navigation.
//
// The Builder orchestrates a full one-shot build. Output is regenerated in
// full on every run; nothing is read back or updated incrementally. A file
// lock on the docs directory keeps concurrent builds from interleaving
// writes.
package site
