package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/rover/internal/tui/dialog"
	"github.com/mattsolo1/rover/pkg/bookmarks"
	"github.com/mattsolo1/rover/pkg/dnd"
	"github.com/mattsolo1/rover/pkg/service"
)

func newBookmarksAddCmd(svc **service.Service, interactive func() bool) *cobra.Command {
	var (
		addName string
		addIcon string
		addAt   string
	)

	cmd := &cobra.Command{
		Use:   "add <path>",
		Short: "Bookmark a file",
		Long: `Bookmark a file from the vault.

Without --at the bookmark is appended to the top level. Without --name the
name comes from the note's frontmatter title or its file name.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc
			ctx := cmd.Context()
			preset := dnd.Details{Name: addName, Emojicon: addIcon}
			session := s.Session(dialogsFor(s, interactive(), preset))
			payload := dnd.FilePayload(args[0])

			if addAt == "" {
				return session.DropOnContainer(ctx, payload)
			}
			pos, err := bookmarks.ParsePosition(addAt)
			if err != nil {
				return err
			}
			return session.DropOnSpace(ctx, pos, payload)
		},
	}

	cmd.Flags().StringVarP(&addName, "name", "n", "", "Bookmark name")
	cmd.Flags().StringVarP(&addIcon, "icon", "i", "", "Bookmark emoji")
	cmd.Flags().StringVar(&addAt, "at", "", "Insert at this position instead of appending")
	return cmd
}

func newBookmarksMoveCmd(svc **service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "mv <source> <target>",
		Short: "Move a bookmark or folder to the gap at target",
		Long: `Move a bookmark or folder to the gap at target.

The target is read as it is before the move, like dropping on the gap
between two entries: "rover bookmarks mv 0 3" lands between the entries
currently at 2 and 3.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc
			pos, err := parsePositions(args...)
			if err != nil {
				return err
			}
			session := s.Session(dialog.Fixed{})
			return dragAndDrop(cmd.Context(), session, pos[0], func(ctx context.Context, p dnd.Payload) error {
				return session.DropOnSpace(ctx, pos[1], p)
			})
		},
	}
}

func newBookmarksNestCmd(svc **service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "nest <source> <folder>",
		Short: "Make a bookmark or folder the first child of a folder",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc
			pos, err := parsePositions(args...)
			if err != nil {
				return err
			}
			session := s.Session(dialog.Fixed{})
			return dragAndDrop(cmd.Context(), session, pos[0], func(ctx context.Context, p dnd.Payload) error {
				return session.DropOnFolder(ctx, pos[1], p)
			})
		},
	}
}

func newBookmarksWrapCmd(svc **service.Service, interactive func() bool) *cobra.Command {
	var (
		wrapName string
		wrapIcon string
	)

	cmd := &cobra.Command{
		Use:   "wrap <source> <target>",
		Short: "Group two entries in a new folder",
		Long: `Group two entries in a new folder.

The folder takes the target's place and holds the target followed by the
source.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc
			pos, err := parsePositions(args...)
			if err != nil {
				return err
			}
			session := s.Session(dialogsFor(s, interactive(), dnd.Details{Name: wrapName, Emojicon: wrapIcon}))
			return dragAndDrop(cmd.Context(), session, pos[0], func(ctx context.Context, p dnd.Payload) error {
				return session.DropOnItem(ctx, pos[1], p)
			})
		},
	}

	cmd.Flags().StringVarP(&wrapName, "name", "n", "", "Folder name")
	cmd.Flags().StringVarP(&wrapIcon, "icon", "i", "📁", "Folder emoji")
	return cmd
}

func newBookmarksRemoveCmd(svc **service.Service, interactive func() bool) *cobra.Command {
	var removeYes bool

	cmd := &cobra.Command{
		Use:     "rm <position>",
		Aliases: []string{"remove"},
		Short:   "Delete a bookmark or a folder with everything in it",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc
			ctx := cmd.Context()
			pos, err := bookmarks.ParsePosition(args[0])
			if err != nil {
				return err
			}
			n, err := s.Tree.At(pos)
			if err != nil {
				return err
			}

			if folder, ok := n.(*bookmarks.Folder); ok && !removeYes && interactive() {
				prompt := fmt.Sprintf("Delete folder %q and its %d entries?", folder.Name, len(folder.Children))
				ok, err := dialog.NewPrompter(nil).Confirm(ctx, prompt)
				if err != nil {
					return err
				}
				if !ok {
					return nil
				}
			}

			session := s.Session(dialog.Fixed{})
			return dragAndDrop(ctx, session, pos, session.DropOnContainer)
		},
	}

	cmd.Flags().BoolVarP(&removeYes, "yes", "y", false, "Do not ask before deleting a folder")
	return cmd
}

func newBookmarksEditCmd(svc **service.Service, interactive func() bool) *cobra.Command {
	var (
		editName string
		editIcon string
		editPath string
	)

	cmd := &cobra.Command{
		Use:   "edit <position>",
		Short: "Rename a bookmark or folder, or point a bookmark at another file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc
			ctx := cmd.Context()
			pos, err := bookmarks.ParsePosition(args[0])
			if err != nil {
				return err
			}
			n, err := s.Tree.At(pos)
			if err != nil {
				return err
			}

			if editPath == "" {
				if leaf, ok := n.(*bookmarks.Leaf); ok && editName == "" && editIcon == "" && interactive() {
					// the prompt also offers the path
					session := s.Session(dialog.NewPrompter(s.DefaultLabel))
					return session.DropOnItem(ctx, pos, dnd.FilePayload(leaf.Path))
				}
				name, icon := n.Base().Name, n.Base().Emojicon
				if editName != "" {
					name = editName
				}
				if cmd.Flags().Changed("icon") {
					icon = editIcon
				}
				if err := s.Tree.Modify(pos, name, icon, nil); err != nil {
					return err
				}
				return s.Save(ctx)
			}

			preset := dnd.Details{Name: editName, Emojicon: editIcon}
			var dialogs dnd.Dialogs = dialog.Fixed{Details: preset}
			if interactive() && editName == "" && editIcon == "" {
				dialogs = dialog.NewPrompter(s.DefaultLabel)
			}
			session := s.Session(dialogs)
			return session.DropOnItem(ctx, pos, dnd.FilePayload(editPath))
		},
	}

	cmd.Flags().StringVarP(&editName, "name", "n", "", "New name")
	cmd.Flags().StringVarP(&editIcon, "icon", "i", "", "New emoji")
	cmd.Flags().StringVarP(&editPath, "path", "p", "", "New file path (bookmarks only)")
	return cmd
}
