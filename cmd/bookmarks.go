package cmd

import (
	"context"
	"fmt"

	grovelogging "github.com/mattsolo1/grove-core/logging"
	"github.com/spf13/cobra"

	"github.com/mattsolo1/rover/internal/tui/dialog"
	"github.com/mattsolo1/rover/pkg/bookmarks"
	"github.com/mattsolo1/rover/pkg/dnd"
	"github.com/mattsolo1/rover/pkg/service"
)

var bookmarksUlog = grovelogging.NewUnifiedLogger("rover.cmd.bookmarks")

// NewBookmarksCmd groups the bookmark tree commands. Positions are dotted
// zero-based indices from the root, e.g. "1.0" is the first child of the
// second top-level entry.
func NewBookmarksCmd(svc **service.Service) *cobra.Command {
	var noInput bool

	cmd := &cobra.Command{
		Use:     "bookmarks",
		Aliases: []string{"bm"},
		Short:   "Manage the bookmark tree",
		Long: `Manage the bookmark tree.

Examples:
  rover bookmarks ls                  # Show the tree
  rover bookmarks add notes/plan.md   # Bookmark a note at the end
  rover bookmarks mv 3 0              # Move the fourth entry to the top
  rover bookmarks nest 2 0            # Put entry 2 first inside folder 0
  rover bookmarks wrap 2 1 -n Work    # Group entries 2 and 1 in a new folder
  rover bookmarks rm 0.1              # Delete the second child of folder 0`,
	}
	cmd.PersistentFlags().BoolVar(&noInput, "no-input", false, "Never open dialogs; use flags and defaults")

	interactive := func() bool { return !noInput && isInteractive() }

	cmd.AddCommand(newBookmarksListCmd(svc))
	cmd.AddCommand(newBookmarksFindCmd(svc))
	cmd.AddCommand(newBookmarksAddCmd(svc, interactive))
	cmd.AddCommand(newBookmarksMoveCmd(svc))
	cmd.AddCommand(newBookmarksNestCmd(svc))
	cmd.AddCommand(newBookmarksWrapCmd(svc, interactive))
	cmd.AddCommand(newBookmarksRemoveCmd(svc, interactive))
	cmd.AddCommand(newBookmarksEditCmd(svc, interactive))
	return cmd
}

func newBookmarksListCmd(svc **service.Service) *cobra.Command {
	var (
		listJSON  bool
		listPlain bool
	)

	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "Show the bookmark tree",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc
			out := cmd.OutOrStdout()

			if listJSON {
				return outputJSON(out, s.Tree.Items())
			}
			if s.Tree.Len() == 0 {
				bookmarksUlog.Info("No bookmarks").
					Pretty("No bookmarks yet. Add one with 'rover bookmarks add <path>'.").
					PrettyOnly().
					Log(cmd.Context())
				return nil
			}
			if !listPlain && writerIsTerminal(out) {
				renderTree(out, s.Tree.Items())
				return nil
			}
			return printBookmarksTable(out, s.Tree)
		},
	}

	cmd.Flags().BoolVar(&listJSON, "json", false, "Output the tree in its stored JSON form")
	cmd.Flags().BoolVar(&listPlain, "plain", false, "Print a table with positions even on a terminal")
	return cmd
}

func newBookmarksFindCmd(svc **service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "find <path>",
		Short: "Print the position of the bookmark for a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc
			leaf := s.Tree.Find(args[0])
			if leaf == nil {
				return fmt.Errorf("no bookmark for %s", args[0])
			}
			pos, _ := s.Tree.Locate(leaf.ID)
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", pos, label(leaf))
			return nil
		},
	}
}

func parsePositions(args ...string) ([]bookmarks.Position, error) {
	out := make([]bookmarks.Position, len(args))
	for i, a := range args {
		pos, err := bookmarks.ParsePosition(a)
		if err != nil {
			return nil, err
		}
		out[i] = pos
	}
	return out, nil
}

// dialogsFor picks terminal dialogs when a user is present and no details
// were given on the command line.
func dialogsFor(s *service.Service, interactive bool, preset dnd.Details) dnd.Dialogs {
	if interactive && preset.Name == "" {
		return dialog.NewPrompter(s.DefaultLabel)
	}
	return dialog.Fixed{Details: preset, Label: s.DefaultLabel}
}

// dragAndDrop runs one drag of the bookmark at source through a session.
func dragAndDrop(ctx context.Context, session *dnd.Session, source bookmarks.Position, drop func(context.Context, dnd.Payload) error) error {
	payload, err := session.Start(source)
	if err != nil {
		return err
	}
	defer session.End()
	return drop(ctx, payload)
}
