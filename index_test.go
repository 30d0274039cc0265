package rtfm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AutonomousCat/rtfm"
)

func TestIndex_Entries(t *testing.T) {
	t.Parallel()

	idx := rtfm.Index{
		"b": "b.html",
		"a": "a.html",
		"c": "c.html",
	}

	got := idx.Entries()

	require.Len(t, got, 3)
	assert.Equal(t, []rtfm.Entry{
		{Key: "a", Location: "a.html"},
		{Key: "b", Location: "b.html"},
		{Key: "c", Location: "c.html"},
	}, got)
}

func TestIndex_Fingerprint(t *testing.T) {
	t.Parallel()

	t.Run("identical content fingerprints identically", func(t *testing.T) {
		t.Parallel()

		a := rtfm.Index{"x": "1", "y": "2", "z": "3"}
		b := rtfm.Index{"z": "3", "y": "2", "x": "1"}

		assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	})

	t.Run("changed location changes the fingerprint", func(t *testing.T) {
		t.Parallel()

		a := rtfm.Index{"x": "1"}
		b := rtfm.Index{"x": "2"}

		assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())
	})

	t.Run("key/value boundaries are unambiguous", func(t *testing.T) {
		t.Parallel()

		a := rtfm.Index{"ab": "c"}
		b := rtfm.Index{"a": "bc"}

		assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())
	})
}
