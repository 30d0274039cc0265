// Package rtfm provides offline fuzzy lookup of API symbols across multiple
// documentation sources. It downloads each source's Sphinx inventory file,
// parses it into a symbol→location index, caches the index on disk, and
// ranks index entries against free-text queries using subsequence matching.
//
// This package contains domain types and pure algorithms following Ben
// Johnson's Standard Package Layout. Implementations live in subdirectories
// named after their primary dependency or concern (e.g., sphinx/, http/,
// fs/, slog/).
package rtfm
