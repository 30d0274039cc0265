package rtfm_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AutonomousCat/rtfm"
)

func entries(keys ...string) []rtfm.Entry {
	out := make([]rtfm.Entry, 0, len(keys))
	for _, k := range keys {
		out = append(out, rtfm.Entry{Key: k, Location: k + ".html"})
	}
	return out
}

func keysOf(matches []rtfm.Match) []string {
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.Entry.Key)
	}
	return out
}

func TestFind(t *testing.T) {
	t.Parallel()

	t.Run("ranks by match offset, then key", func(t *testing.T) {
		t.Parallel()

		// "Command" and "command_error" both match "cmd" at offset 0;
		// in "abcmd" the subsequence starts at the 'c' at offset 2.
		matches := rtfm.Find("cmd", entries("abcmd", "command_error", "Command"))

		require.Len(t, matches, 3)
		assert.Equal(t, []string{"Command", "command_error", "abcmd"}, keysOf(matches))
		assert.Equal(t, 0, matches[0].Offset)
		assert.Equal(t, 0, matches[1].Offset)
		assert.Equal(t, 2, matches[2].Offset)
	})

	t.Run("discards keys without the subsequence", func(t *testing.T) {
		t.Parallel()

		matches := rtfm.Find("xyz", entries("Command", "xylophone_size", "nothing"))

		require.Len(t, matches, 1)
		assert.Equal(t, "xylophone_size", matches[0].Entry.Key)
	})

	t.Run("matches case-insensitively", func(t *testing.T) {
		t.Parallel()

		matches := rtfm.Find("BOT", entries("Bot", "robot"))

		assert.Equal(t, []string{"Bot", "robot"}, keysOf(matches))
	})

	t.Run("truncates to eight ranked results", func(t *testing.T) {
		t.Parallel()

		keys := make([]string, 0, 20)
		for i := 0; i < 20; i++ {
			keys = append(keys, fmt.Sprintf("cmd%02d", i))
		}

		matches := rtfm.Find("cmd", entries(keys...))

		require.Len(t, matches, rtfm.MaxMatches)
		assert.Equal(t, keys[:8], keysOf(matches))
	})

	t.Run("empty query matches everything at offset zero", func(t *testing.T) {
		t.Parallel()

		matches := rtfm.Find("", entries("b", "a", "c"))

		require.Len(t, matches, 3)
		assert.Equal(t, []string{"a", "b", "c"}, keysOf(matches))
		for _, m := range matches {
			assert.Equal(t, 0, m.Offset)
		}
	})

	t.Run("treats regex metacharacters literally", func(t *testing.T) {
		t.Parallel()

		matches := rtfm.Find("c.d", entries("c.d", "cxd"))

		require.Len(t, matches, 1)
		assert.Equal(t, "c.d", matches[0].Entry.Key)
	})
}
