package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/AutonomousCat/rtfm"
	"github.com/AutonomousCat/rtfm/sphinx"
)

// Outcome reports how one source fared during startup or refresh. A
// per-source error is recoverable: the source is skipped with a warning
// while the others proceed.
type Outcome struct {
	Source    rtfm.Source
	Index     rtfm.Index
	Project   string // inventory header values; empty when loaded from cache
	Version   string
	FromCache bool
	Err       error
}

// Bootstrapper loads or builds the index for every configured source.
type Bootstrapper struct {
	Sources []rtfm.Source
	Store   rtfm.IndexStore
	Fetcher rtfm.Fetcher
	Logger  *slog.Logger
}

// LoadAll resolves an index for each configured source, one source at a
// time: from the cache record when one exists, otherwise by fetching and
// building the inventory. Corrupt cache records are treated as misses.
func (b *Bootstrapper) LoadAll(ctx context.Context) []Outcome {
	outcomes := make([]Outcome, 0, len(b.Sources))
	for _, src := range b.Sources {
		outcomes = append(outcomes, b.loadOne(ctx, src))
	}
	return outcomes
}

func (b *Bootstrapper) loadOne(ctx context.Context, src rtfm.Source) Outcome {
	out := Outcome{Source: src}

	idx, err := b.Store.Load(ctx, src.ID)
	switch rtfm.ErrorCode(err) {
	case "":
		out.Index = idx
		out.FromCache = true
		return out
	case rtfm.ENOTFOUND:
		// cache miss, build from the network
	case rtfm.ECORRUPT:
		b.Logger.Warn("cache record corrupt, rebuilding", "source", src.ID, "err", err)
	default:
		out.Err = err
		return out
	}

	inv, err := b.Build(ctx, src)
	if err != nil {
		out.Err = err
		return out
	}
	out.Index = inv.Index
	out.Project = inv.Project
	out.Version = inv.Version
	return out
}

// Build fetches, parses, and persists the index for one source.
func (b *Bootstrapper) Build(ctx context.Context, src rtfm.Source) (*sphinx.Inventory, error) {
	payload, err := b.Fetcher.Fetch(ctx, src.InventoryURL())
	if err != nil {
		return nil, err
	}

	inv, err := sphinx.Build(src, payload)
	if err != nil {
		return nil, err
	}

	if err := b.Store.Save(ctx, src.ID, inv.Index); err != nil {
		return nil, err
	}
	return inv, nil
}

// Refresh deletes every source's cache record and rebuilds each from the
// network, reporting per-source outcomes.
func (b *Bootstrapper) Refresh(ctx context.Context) []Outcome {
	ids := make([]string, 0, len(b.Sources))
	for _, src := range b.Sources {
		ids = append(ids, src.ID)
	}
	if err := b.Store.Clear(ctx, ids...); err != nil {
		b.Logger.Warn("cache clear failed", "err", err)
	}

	outcomes := make([]Outcome, 0, len(b.Sources))
	for _, src := range b.Sources {
		out := Outcome{Source: src}
		if inv, err := b.Build(ctx, src); err != nil {
			out.Err = err
		} else {
			out.Index = inv.Index
			out.Project = inv.Project
			out.Version = inv.Version
		}
		outcomes = append(outcomes, out)
	}
	return outcomes
}

// describeOutcome formats a one-line load summary for the prompt.
func describeOutcome(out Outcome) string {
	if out.FromCache {
		return fmt.Sprintf("loaded %s from cache: %d symbols", out.Source.ID, len(out.Index))
	}
	if out.Project != "" {
		return fmt.Sprintf("loaded %s: %s v%s, %d symbols",
			out.Source.ID, out.Project, out.Version, len(out.Index))
	}
	return fmt.Sprintf("loaded %s: %d symbols", out.Source.ID, len(out.Index))
}
