package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"

	"github.com/AutonomousCat/rtfm"
)

// Color palette for prompt output, chosen for dark terminal backgrounds.
var (
	promptStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F59E0B"))
	noticeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))
	warnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
	emptyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	keyStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3B82F6"))
	locationStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	fragmentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7C3AED"))
	branchStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)

// renderResult prints exactly one result kind: an empty notice, a grouped
// tree, or a flat link list.
func renderResult(w io.Writer, res rtfm.Result) {
	switch res := res.(type) {
	case rtfm.Empty:
		fmt.Fprintln(w, emptyStyle.Render("No results for your query."))
	case *rtfm.Tree:
		for _, root := range res.Roots {
			fmt.Fprintln(w, renderBranch(root))
		}
	case rtfm.Links:
		for _, link := range res {
			fmt.Fprintln(w, renderLink(link))
		}
	}
}

// renderBranch converts one result node into a styled lipgloss tree.
func renderBranch(n *rtfm.Node) string {
	return toBranch(n).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(branchStyle).
		String()
}

func toBranch(n *rtfm.Node) *tree.Tree {
	label := keyStyle.Render(n.Name)
	if len(n.Children) == 0 {
		label += " " + locationStyle.Render(n.Location)
	}
	branch := tree.Root(label)
	for _, child := range n.Children {
		branch.Child(toBranch(child))
	}
	return branch
}

func renderLink(l rtfm.Link) string {
	out := keyStyle.Render(l.Key) + " " + l.URL
	if l.Fragment != "" {
		out += fragmentStyle.Render("#" + l.Fragment)
	}
	return out
}
