// Command scriptdocs builds a static documentation site from a bilingual
// television script archive: plain-text English episodes on one side, legacy
// Chinese .doc files on the other, aligned by episode number into per-episode
// pages with season navigation and an MkDocs manifest.
package main
