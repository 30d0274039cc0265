package sphinx

import (
	"io"

	"github.com/AutonomousCat/rtfm"
)

// Inventory is the decoded result of one payload build.
type Inventory struct {
	Project string
	Version string
	Index   rtfm.Index
}

// Build decodes a full inventory payload into the symbol index for the
// source. Entries are consumed in stream order: later entries overwrite
// earlier ones on key collisions, except module definitions, where the
// first occurrence wins.
func Build(src rtfm.Source, payload []byte) (*Inventory, error) {
	r, err := NewReader(payload)
	if err != nil {
		return nil, err
	}

	norm := NewNormalizer(src)
	idx := make(rtfm.Index)
	for {
		line, err := r.ReadLine()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		raw, ok := ParseEntry(line)
		if !ok {
			continue
		}
		entry, ok := norm.Normalize(raw)
		if !ok {
			continue
		}
		idx[entry.Key] = entry.Location
	}

	return &Inventory{
		Project: r.Project,
		Version: r.Version,
		Index:   idx,
	}, nil
}
