package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	grovelogging "github.com/mattsolo1/grove-core/logging"
	"github.com/mattsolo1/grove-core/version"
	"github.com/spf13/cobra"

	"github.com/mattsolo1/rover/pkg/store"
)

var versionUlog = grovelogging.NewUnifiedLogger("rover.cmd.version")

func NewVersionCmd() *cobra.Command {
	var (
		jsonOutput bool
		short      bool
	)

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long: `Print the rover build: version, commit and branch. --short prints
the version alone, for scripts.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.GetInfo()
			versionUlog.Info("Version info").
				Field("version", info.Version).
				Field("commit", info.Commit).
				Field("branch", info.Branch).
				Log(cmd.Context())

			switch {
			case short:
				_, err := fmt.Fprintln(cmd.OutOrStdout(), info.Version)
				return err
			case jsonOutput:
				return writeBuildReport(cmd.OutOrStdout(), info)
			default:
				_, err := fmt.Fprintln(cmd.OutOrStdout(), info.String())
				return err
			}
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output version information in JSON format")
	cmd.Flags().BoolVar(&short, "short", false, "Print only the version number")
	cmd.MarkFlagsMutuallyExclusive("json", "short")
	return cmd
}

// writeBuildReport prints the build info as JSON, extended with the storage
// backends this binary can open.
func writeBuildReport(w io.Writer, info any) error {
	raw, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("marshal version info: %w", err)
	}
	report := map[string]any{}
	if err := json.Unmarshal(raw, &report); err != nil {
		return fmt.Errorf("marshal version info: %w", err)
	}
	report["backends"] = []store.Backend{store.BackendJSON, store.BackendSQLite}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal version info: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
