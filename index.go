package rtfm

import (
	"sort"

	"github.com/cespare/xxhash/v2"
)

// Index maps normalized symbol keys to locations relative to the source's
// base URL. A location may carry a trailing #fragment.
type Index map[string]string

// Entry is one key/location pair of an Index.
type Entry struct {
	Key      string
	Location string
}

// Entries returns the index contents sorted by key.
func (idx Index) Entries() []Entry {
	entries := make([]Entry, 0, len(idx))
	for key, location := range idx {
		entries = append(entries, Entry{Key: key, Location: location})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Key < entries[j].Key
	})
	return entries
}

// Fingerprint returns a stable hash of the index contents. Two indexes with
// the same keys and locations fingerprint identically regardless of
// insertion order, so a rebuilt cache can be compared against its
// predecessor.
func (idx Index) Fingerprint() uint64 {
	d := xxhash.New()
	for _, e := range idx.Entries() {
		_, _ = d.WriteString(e.Key)
		_, _ = d.Write([]byte{0})
		_, _ = d.WriteString(e.Location)
		_, _ = d.Write([]byte{0})
	}
	return d.Sum64()
}
