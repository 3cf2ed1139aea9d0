package cmd

import (
	"fmt"

	grovelogging "github.com/mattsolo1/grove-core/logging"
	"github.com/spf13/cobra"

	"github.com/mattsolo1/rover/pkg/service"
)

var recentsUlog = grovelogging.NewUnifiedLogger("rover.cmd.recents")

func NewRecentsCmd(svc **service.Service) *cobra.Command {
	var recentsJSON bool

	cmd := &cobra.Command{
		Use:   "recents",
		Short: "List recently opened files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc
			list := s.Recents.List()

			if recentsJSON {
				return outputJSON(cmd.OutOrStdout(), list)
			}
			if len(list) == 0 {
				recentsUlog.Info("No recent files").
					Pretty("No recent files").
					PrettyOnly().
					Log(cmd.Context())
				return nil
			}
			for i, path := range list {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", i+1, path)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&recentsJSON, "json", false, "Output as a JSON array")

	cmd.AddCommand(&cobra.Command{
		Use:   "open <path>",
		Short: "Record a file as opened",
		Long: `Record a file as opened. The previously opened file moves to the
front of the recents list.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc
			if err := s.OpenFile(cmd.Context(), args[0]); err != nil {
				return err
			}
			recentsUlog.Success("Recorded open").
				Field("path", args[0]).
				Field("recents", len(s.Recents.List())).
				Pretty("Opened " + args[0]).
				Log(cmd.Context())
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "mv <old> <new>",
		Short: "Follow a file or folder rename in the vault",
		Long: `Follow a file or folder rename in the vault. Bookmarks and recent
files that point at the old path, or at anything below it, are rewritten.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			changed, err := (*svc).RenameFile(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			recentsUlog.Success("Renamed path").
				Field("from", args[0]).
				Field("to", args[1]).
				Field("bookmarks", changed).
				Pretty(fmt.Sprintf("Renamed %s to %s (%d bookmarks)", args[0], args[1], changed)).
				Log(cmd.Context())
			return nil
		},
	})

	return cmd
}
