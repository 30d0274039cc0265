package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/AutonomousCat/rtfm"
	rtfmfs "github.com/AutonomousCat/rtfm/fs"
	rtfmhttp "github.com/AutonomousCat/rtfm/http"
	rtfmslog "github.com/AutonomousCat/rtfm/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Cache directory. Set before calling Run().
	CacheDir string

	// Documentation sources to index. Fixed for the process lifetime.
	Sources []rtfm.Source

	// Services, injectable for end-to-end testing. Run() wires the fs
	// and http implementations when these are nil.
	Store   rtfm.IndexStore
	Fetcher rtfm.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		CacheDir: defaultCacheDir(),
		Sources:  rtfm.DefaultSources(),
	}
}

// Run executes the program with the given arguments: parse flags, load or
// build the index for every source, and hand control to the interactive
// prompt.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("rtfm"),
		kong.Description("Fuzzy lookup of API symbols across documentation sources."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}
	if _, err := parser.Parse(args); err != nil {
		return err
	}

	if cli.CacheDir != "" {
		m.CacheDir = cli.CacheDir
	}

	for _, src := range m.Sources {
		if err := src.Validate(); err != nil {
			return err
		}
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if m.Store == nil {
		m.Store = rtfmfs.NewStore(m.CacheDir)
	}
	if m.Fetcher == nil {
		m.Fetcher = rtfmhttp.NewFetcher(
			rtfmhttp.WithTimeout(cli.Timeout),
			rtfmhttp.WithRateLimit(cli.RPS),
		)
	}

	boot := &Bootstrapper{
		Sources: m.Sources,
		Store:   rtfmslog.NewLoggingStore(m.Store, logger),
		Fetcher: rtfmslog.NewLoggingFetcher(m.Fetcher, logger),
		Logger:  logger,
	}

	sess := rtfm.Session{
		Mode:    rtfm.ModeTree,
		Sources: make(map[string]rtfm.Source, len(m.Sources)),
		Indexes: make(map[string]rtfm.Index, len(m.Sources)),
	}
	if cli.Flat {
		sess.Mode = rtfm.ModeFlat
	}
	for _, src := range m.Sources {
		sess.Sources[src.ID] = src
	}

	for _, out := range boot.LoadAll(ctx) {
		if out.Err != nil {
			fmt.Fprintln(stdout, warnStyle.Render("skipping "+out.Source.ID+": "+rtfm.ErrorMessage(out.Err)))
			continue
		}
		sess.Indexes[out.Source.ID] = out.Index
		fmt.Fprintln(stdout, noticeStyle.Render(describeOutcome(out)))
	}

	// Partial single-source operation is not supported.
	if len(sess.Indexes) < 2 {
		return rtfm.Errorf(rtfm.EUNAVAILABLE,
			"only %d of %d sources are available; at least two are required",
			len(sess.Indexes), len(m.Sources))
	}

	sess.Active = cli.Source
	if !sess.Loaded(sess.Active) {
		fallback := firstLoaded(m.Sources, sess)
		fmt.Fprintln(stdout, warnStyle.Render(
			"source `"+sess.Active+"` is not available, starting on `"+fallback+"`"))
		sess.Active = fallback
	}

	repl := &REPL{
		Session: sess,
		Boot:    boot,
		Stdout:  stdout,
	}
	return repl.Loop(ctx, stdin)
}

// firstLoaded returns the first configured source that has a loaded index,
// preserving configuration order.
func firstLoaded(sources []rtfm.Source, sess rtfm.Session) string {
	for _, src := range sources {
		if sess.Loaded(src.ID) {
			return src.ID
		}
	}
	return ""
}

func defaultCacheDir() string {
	if dir := os.Getenv("RTFM_CACHE_DIR"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".rtfm"
	}
	return filepath.Join(home, ".rtfm")
}
