package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mattsolo1/grove-core/cli"
	"github.com/spf13/cobra"

	"github.com/mattsolo1/rover/cmd"
	"github.com/mattsolo1/rover/cmd/config"
	"github.com/mattsolo1/rover/pkg/service"
)

var svc *service.Service

func main() {
	rootCmd := cli.NewStandardCommand(
		"rover",
		"Bookmarks and recent files for a notes vault",
	)
	config.AddGlobalFlags(rootCmd)

	rootCmd.PersistentPreRunE = func(c *cobra.Command, args []string) error {
		// version needs no store
		if c.Name() == "version" {
			return nil
		}
		config.ReadGlobalFlags(c)
		config.InitConfig()

		var err error
		svc, err = config.InitService(c.Context())
		if err != nil {
			return fmt.Errorf("failed to initialize service: %w", err)
		}
		return nil
	}
	rootCmd.PersistentPostRunE = func(c *cobra.Command, args []string) error {
		if svc == nil {
			return nil
		}
		return svc.Close()
	}

	rootCmd.AddCommand(cmd.NewBookmarksCmd(&svc))
	rootCmd.AddCommand(cmd.NewRecentsCmd(&svc))
	rootCmd.AddCommand(cmd.NewFilesCmd(&svc))
	rootCmd.AddCommand(cmd.NewVersionCmd())

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
