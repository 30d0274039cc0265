package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/AutonomousCat/rtfm"
)

// REPL is the interactive command loop: free text is a query against the
// active source; `refresh`, `mode`, `quit`, and source names are commands.
type REPL struct {
	Session rtfm.Session
	Boot    *Bootstrapper
	Stdout  io.Writer
}

// Loop processes commands until quit or end of input. Warnings always
// return to the prompt; nothing in the loop terminates the process.
func (r *REPL) Loop(ctx context.Context, stdin io.Reader) error {
	scanner := bufio.NewScanner(stdin)
	for {
		fmt.Fprintln(r.Stdout, promptStyle.Render("Enter a query, a source name, `refresh`, `mode`, or `quit`"))
		fmt.Fprint(r.Stdout, "> ")

		if !scanner.Scan() {
			return scanner.Err()
		}
		input := strings.ToLower(strings.TrimSpace(scanner.Text()))

		switch {
		case input == "":
			continue
		case input == "quit":
			return nil
		case input == "refresh":
			r.refresh(ctx)
		case input == "mode":
			r.Session.Mode = r.Session.Mode.Toggle()
			fmt.Fprintln(r.Stdout, noticeStyle.Render("render mode: "+r.Session.Mode.String()))
		case r.isSource(input):
			r.switchSource(input)
		default:
			renderResult(r.Stdout, rtfm.Query(r.Session, input))
		}
	}
}

func (r *REPL) isSource(id string) bool {
	_, ok := r.Session.Sources[id]
	return ok
}

// switchSource activates a source, refusing sources without a loaded index.
func (r *REPL) switchSource(id string) {
	if !r.Session.Loaded(id) {
		fmt.Fprintln(r.Stdout, warnStyle.Render("source `"+id+"` has no loaded index"))
		return
	}
	r.Session.Active = id
	fmt.Fprintln(r.Stdout, noticeStyle.Render("switched source to `"+id+"`"))
}

// refresh rebuilds every source and reports whether each cache changed. A
// source whose rebuild fails keeps its previously loaded index.
func (r *REPL) refresh(ctx context.Context) {
	for _, out := range r.Boot.Refresh(ctx) {
		id := out.Source.ID
		if out.Err != nil {
			fmt.Fprintln(r.Stdout, warnStyle.Render("refresh "+id+" failed: "+rtfm.ErrorMessage(out.Err)))
			continue
		}

		status := "unchanged"
		if prev, ok := r.Session.Indexes[id]; !ok || prev.Fingerprint() != out.Index.Fingerprint() {
			status = "updated"
		}
		r.Session.Indexes[id] = out.Index
		fmt.Fprintln(r.Stdout, noticeStyle.Render(describeOutcome(out)+" ("+status+")"))
	}
}
