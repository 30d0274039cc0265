package main_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AutonomousCat/rtfm"
	main "github.com/AutonomousCat/rtfm/cmd/rtfm"
	"github.com/AutonomousCat/rtfm/mock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func testSession() rtfm.Session {
	sources := map[string]rtfm.Source{}
	for _, src := range testSources() {
		sources[src.ID] = src
	}
	return rtfm.Session{
		Active:  "alpha",
		Mode:    rtfm.ModeTree,
		Sources: sources,
		Indexes: map[string]rtfm.Index{
			"alpha": {"Client.connect": "api.html#Client.connect"},
			"beta":  {"Other": "other.html"},
		},
	}
}

func TestREPL_SwitchSource(t *testing.T) {
	t.Parallel()

	t.Run("switches to a loaded source", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		repl := &main.REPL{Session: testSession(), Stdout: stdout}

		err := repl.Loop(context.Background(), strings.NewReader("beta\nquit\n"))
		require.NoError(t, err)

		assert.Contains(t, stdout.String(), "switched source to `beta`")
		assert.Equal(t, "beta", repl.Session.Active)
	})

	t.Run("refuses a source without a loaded index", func(t *testing.T) {
		t.Parallel()

		// gamma is configured but has no index in the session
		stdout := &bytes.Buffer{}
		repl := &main.REPL{Session: testSession(), Stdout: stdout}

		err := repl.Loop(context.Background(), strings.NewReader("gamma\nquit\n"))
		require.NoError(t, err)

		assert.Contains(t, stdout.String(), "source `gamma` has no loaded index")
		assert.Equal(t, "alpha", repl.Session.Active, "active source should not change")
	})
}

func TestREPL_ModeToggle(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	repl := &main.REPL{Session: testSession(), Stdout: stdout}

	err := repl.Loop(context.Background(), strings.NewReader("mode\nmode\nquit\n"))
	require.NoError(t, err)

	assert.Contains(t, stdout.String(), "render mode: flat")
	assert.Contains(t, stdout.String(), "render mode: tree")
	assert.Equal(t, rtfm.ModeTree, repl.Session.Mode)
}

func TestREPL_TreeQuery(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	repl := &main.REPL{Session: testSession(), Stdout: stdout}

	err := repl.Loop(context.Background(), strings.NewReader("connect\nquit\n"))
	require.NoError(t, err)

	// The dotted key renders as nested tree nodes.
	assert.Contains(t, stdout.String(), "Client")
	assert.Contains(t, stdout.String(), "connect")
	assert.Contains(t, stdout.String(), "api.html#Client.connect")
}

func TestREPL_Refresh(t *testing.T) {
	t.Parallel()

	newBoot := func(locations map[string]string) *main.Bootstrapper {
		return &main.Bootstrapper{
			Sources: testSources(),
			Store: &mock.IndexStore{
				SaveFn:  func(ctx context.Context, sourceID string, idx rtfm.Index) error { return nil },
				ClearFn: func(ctx context.Context, sourceIDs ...string) error { return nil },
			},
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) ([]byte, error) {
					for id, location := range locations {
						if strings.Contains(url, id) {
							return inventory(t, "proj", "Sym py:class 1 "+location+" -\n"), nil
						}
					}
					return nil, rtfm.Errorf(rtfm.EUNAVAILABLE, "fetch %s: HTTP 503", url)
				},
			},
			Logger: discardLogger(),
		}
	}

	t.Run("reports updated and failed sources", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		repl := &main.REPL{
			Session: testSession(),
			Boot:    newBoot(map[string]string{"alpha": "new.html", "beta": "other.html"}),
			Stdout:  stdout,
		}

		err := repl.Loop(context.Background(), strings.NewReader("refresh\nquit\n"))
		require.NoError(t, err)

		out := stdout.String()
		assert.Contains(t, out, "loaded alpha: proj v1.0, 1 symbols (updated)")
		assert.Contains(t, out, "loaded beta: proj v1.0, 1 symbols (updated)")
		assert.Contains(t, out, "refresh gamma failed")
		assert.Equal(t, rtfm.Index{"Sym": "new.html"}, repl.Session.Indexes["alpha"])
	})

	t.Run("reports an unchanged source", func(t *testing.T) {
		t.Parallel()

		sess := testSession()
		sess.Indexes["alpha"] = rtfm.Index{"Sym": "same.html"}

		stdout := &bytes.Buffer{}
		repl := &main.REPL{
			Session: sess,
			Boot:    newBoot(map[string]string{"alpha": "same.html"}),
			Stdout:  stdout,
		}

		err := repl.Loop(context.Background(), strings.NewReader("refresh\nquit\n"))
		require.NoError(t, err)

		assert.Contains(t, stdout.String(), "loaded alpha: proj v1.0, 1 symbols (unchanged)")
	})
}
