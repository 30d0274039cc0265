package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/AutonomousCat/rtfm"
)

// Ensure LoggingStore implements rtfm.IndexStore.
var _ rtfm.IndexStore = (*LoggingStore)(nil)

// LoggingStore wraps an IndexStore with debug logging.
type LoggingStore struct {
	next   rtfm.IndexStore
	logger *slog.Logger
}

// NewLoggingStore creates a new LoggingStore.
func NewLoggingStore(next rtfm.IndexStore, logger *slog.Logger) *LoggingStore {
	return &LoggingStore{next: next, logger: logger}
}

// Load delegates to the wrapped store and logs the operation.
func (s *LoggingStore) Load(ctx context.Context, sourceID string) (idx rtfm.Index, err error) {
	defer func(begin time.Time) {
		s.logger.Info("cache load",
			"source", sourceID,
			"keys", len(idx),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Load(ctx, sourceID)
}

// Save delegates to the wrapped store and logs the operation.
func (s *LoggingStore) Save(ctx context.Context, sourceID string, idx rtfm.Index) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("cache save",
			"source", sourceID,
			"keys", len(idx),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Save(ctx, sourceID, idx)
}

// Clear delegates to the wrapped store and logs the operation.
func (s *LoggingStore) Clear(ctx context.Context, sourceIDs ...string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("cache clear",
			"sources", sourceIDs,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Clear(ctx, sourceIDs...)
}
