package mock

import (
	"context"

	"github.com/AutonomousCat/rtfm"
)

var _ rtfm.IndexStore = (*IndexStore)(nil)

// IndexStore is a mock implementation of rtfm.IndexStore.
type IndexStore struct {
	LoadFn  func(ctx context.Context, sourceID string) (rtfm.Index, error)
	SaveFn  func(ctx context.Context, sourceID string, idx rtfm.Index) error
	ClearFn func(ctx context.Context, sourceIDs ...string) error
}

func (s *IndexStore) Load(ctx context.Context, sourceID string) (rtfm.Index, error) {
	return s.LoadFn(ctx, sourceID)
}

func (s *IndexStore) Save(ctx context.Context, sourceID string, idx rtfm.Index) error {
	return s.SaveFn(ctx, sourceID, idx)
}

func (s *IndexStore) Clear(ctx context.Context, sourceIDs ...string) error {
	return s.ClearFn(ctx, sourceIDs...)
}
