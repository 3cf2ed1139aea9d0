package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
	"github.com/mattn/go-isatty"
	"github.com/mattsolo1/grove-core/tui/theme"

	"github.com/mattsolo1/rover/pkg/bookmarks"
)

// isInteractive reports whether both ends of the terminal are available for
// dialogs.
func isInteractive() bool {
	return isTerminal(os.Stdin) && isTerminal(os.Stderr)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func writerIsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isTerminal(f)
}

func label(n bookmarks.Node) string {
	m := n.Base()
	if m.Emojicon == "" {
		return m.Name
	}
	return m.Emojicon + " " + m.Name
}

// renderTree draws the bookmarks as a rounded tree for terminals.
func renderTree(w io.Writer, items []bookmarks.Node) {
	root := buildTree(items).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(lipgloss.NewStyle().Foreground(theme.DefaultTheme.Colors.Orange).MarginRight(1))
	fmt.Fprintln(w, root.String())
}

func buildTree(nodes []bookmarks.Node) *tree.Tree {
	t := tree.New()
	for _, n := range nodes {
		switch n := n.(type) {
		case *bookmarks.Folder:
			t.Child(buildTree(n.Children).Root(theme.DefaultTheme.Header.Render(label(n))))
		case *bookmarks.Leaf:
			t.Child(label(n) + " " + theme.DefaultTheme.Muted.Render(n.Path))
		}
	}
	return t
}

// printBookmarksTable lists every node with its position, for pipes.
func printBookmarksTable(w io.Writer, t *bookmarks.Tree) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "POSITION\tNAME\tPATH")
	err := t.Walk(func(pos bookmarks.Position, n bookmarks.Node) error {
		indent := strings.Repeat("  ", pos.Depth()-1)
		path := "/"
		if leaf, ok := n.(*bookmarks.Leaf); ok {
			path = leaf.Path
		}
		_, err := fmt.Fprintf(tw, "%s\t%s%s\t%s\n", pos, indent, label(n), path)
		return err
	})
	if err != nil {
		return err
	}
	return tw.Flush()
}

func outputJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
