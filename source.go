package rtfm

import (
	"context"
	"regexp"
)

// Source describes one documentation site whose Sphinx inventory can be
// indexed. Sources are immutable configuration, fixed at process start.
type Source struct {
	ID      string
	BaseURL string

	// StripPrefixes are namespace prefixes removed from index keys,
	// most specific first.
	StripPrefixes []string

	// QueryStrip optionally removes known leading namespace segments
	// from queries before matching. Capture group 1 is the remainder.
	QueryStrip *regexp.Regexp
}

// Validate returns an error if the source contains invalid fields.
func (s Source) Validate() error {
	if s.ID == "" {
		return Errorf(EINVALID, "source ID required")
	}
	if s.BaseURL == "" {
		return Errorf(EINVALID, "source base URL required")
	}
	return nil
}

// InventoryURL returns the location of the source's objects.inv payload.
func (s Source) InventoryURL() string {
	return s.BaseURL + "/objects.inv"
}

// NormalizeQuery strips the source's known leading namespace segments from
// a query, leaving the bare trailing symbol name. Sources without a
// QueryStrip pattern return the query unchanged.
func (s Source) NormalizeQuery(query string) string {
	if s.QueryStrip == nil {
		return query
	}
	if m := s.QueryStrip.FindStringSubmatch(query); m != nil {
		return m[1]
	}
	return query
}

// discordQueryStrip removes the namespaces discord.py symbols are commonly
// typed with, mirroring the key stripping applied while indexing.
var discordQueryStrip = regexp.MustCompile(`^(?:discord\.(?:ext\.)?)?(?:commands\.)?(.+)`)

// DefaultSources returns the documentation sites the tool was built for:
// the discord.py stable and latest docs plus the Python 3 standard docs.
func DefaultSources() []Source {
	discordStrip := []string{"discord.ext.commands.", "discord."}
	return []Source{
		{
			ID:            "stable",
			BaseURL:       "https://discordpy.readthedocs.io/en/stable",
			StripPrefixes: discordStrip,
			QueryStrip:    discordQueryStrip,
		},
		{
			ID:            "latest",
			BaseURL:       "https://discordpy.readthedocs.io/en/latest",
			StripPrefixes: discordStrip,
			QueryStrip:    discordQueryStrip,
		},
		{
			ID:      "python",
			BaseURL: "https://docs.python.org/3",
		},
	}
}

// Fetcher retrieves raw bytes from a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// IndexStore persists one Index per source as a durable cache record.
type IndexStore interface {
	// Load reads the cache record for a source.
	// Returns ENOTFOUND if no record exists and ECORRUPT if the record
	// cannot be decoded.
	Load(ctx context.Context, sourceID string) (Index, error)

	// Save writes the full index for a source, overwriting any prior
	// record.
	Save(ctx context.Context, sourceID string, idx Index) error

	// Clear deletes the cache records for the given sources.
	Clear(ctx context.Context, sourceIDs ...string) error
}
