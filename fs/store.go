// Package fs persists per-source symbol indexes as JSON cache records.
package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/AutonomousCat/rtfm"
)

// Ensure Store implements rtfm.IndexStore at compile time.
var _ rtfm.IndexStore = (*Store)(nil)

// Store keeps one {source_id}_cache.json record per source under a single
// directory. Saves are atomic: records are written to a temporary file and
// renamed into place. Concurrent processes sharing the directory are not
// coordinated.
type Store struct {
	dir string
}

// NewStore creates a Store rooted at dir. The directory is created on the
// first save.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) path(sourceID string) string {
	return filepath.Join(s.dir, sourceID+"_cache.json")
}

// Load reads the cache record for a source. Returns ENOTFOUND when no
// record exists and ECORRUPT when the record cannot be decoded.
func (s *Store) Load(ctx context.Context, sourceID string) (rtfm.Index, error) {
	data, err := os.ReadFile(s.path(sourceID))
	if os.IsNotExist(err) {
		return nil, rtfm.Errorf(rtfm.ENOTFOUND, "no cache record for source %q", sourceID)
	} else if err != nil {
		return nil, err
	}

	var idx rtfm.Index
	if err := json.Unmarshal(data, &idx); err != nil {
		return nil, rtfm.Errorf(rtfm.ECORRUPT, "cache record for source %q is corrupt: %v", sourceID, err)
	}
	return idx, nil
}

// Save writes the full index for a source, overwriting any prior record.
func (s *Store) Save(ctx context.Context, sourceID string, idx rtfm.Index) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return err
	}

	data, err := json.Marshal(idx)
	if err != nil {
		return err
	}

	tmp := s.path(sourceID) + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path(sourceID))
}

// Clear deletes the cache records for the given sources. Missing records
// are not an error.
func (s *Store) Clear(ctx context.Context, sourceIDs ...string) error {
	for _, id := range sourceIDs {
		if err := os.Remove(s.path(id)); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}
