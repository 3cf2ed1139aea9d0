package cmd

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	grovelogging "github.com/mattsolo1/grove-core/logging"
	"github.com/spf13/cobra"

	"github.com/mattsolo1/rover/pkg/explorer"
	"github.com/mattsolo1/rover/pkg/service"
)

var filesUlog = grovelogging.NewUnifiedLogger("rover.cmd.files")

// errNoVault is returned when browsing is requested without vault_dir.
var errNoVault = errors.New("no vault configured: set vault_dir in the rover config")

const fileTimeLayout = "2006-01-02 15:04"

func NewFilesCmd(svc **service.Service) *cobra.Command {
	var filesJSON bool

	cmd := &cobra.Command{
		Use:   "files [dir]",
		Short: "List a folder of the vault",
		Long: `List a folder of the vault, folders first and then by name.
Notes are shown without their .md extension. Times are the last
modification of a file and the creation of a folder.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc
			if s.Files == nil {
				return errNoVault
			}
			dir := ""
			if len(args) > 0 {
				dir = args[0]
			}

			files, err := s.Files.List(dir)
			if err != nil {
				return err
			}
			if filesJSON {
				return outputJSON(cmd.OutOrStdout(), files)
			}
			if len(files) == 0 {
				filesUlog.Info("Empty folder").
					Field("dir", dir).
					Pretty("No files").
					PrettyOnly().
					Log(cmd.Context())
				return nil
			}
			return printFilesTable(cmd.OutOrStdout(), files)
		},
	}
	cmd.Flags().BoolVar(&filesJSON, "json", false, "Output as a JSON array")

	cmd.AddCommand(&cobra.Command{
		Use:   "open <path>",
		Short: "Open a vault file and record it in recents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc
			if s.Files == nil {
				return errNoVault
			}
			if err := s.OpenVaultFile(cmd.Context(), args[0]); err != nil {
				return err
			}
			filesUlog.Success("Opened file").
				Field("path", s.Recents.Active()).
				Pretty("Opened " + s.Recents.Active()).
				Log(cmd.Context())
			return nil
		},
	})

	return cmd
}

func printFilesTable(w io.Writer, files []explorer.File) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tTIME\tPATH")
	for _, f := range files {
		name := f.Name
		if f.IsFolder {
			name += "/"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", name, f.Time.Local().Format(fileTimeLayout), f.Path)
	}
	return tw.Flush()
}
