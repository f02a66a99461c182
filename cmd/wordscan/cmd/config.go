package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/corey/wordscan/internal/app"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show configuration",
	Long:  "Shows the resolved home directory, database path, engine, worker count, and log level.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return showConfig(application, cmd.OutOrStdout())
	},
}

func showConfig(a *app.App, out io.Writer) error {
	db := "(not created)"
	if _, err := os.Stat(a.Paths.DB); err == nil {
		db = a.Paths.DB
	}

	fmt.Fprintf(out, "%s⚡ wordscan config%s\n", colorBold, colorReset)
	fmt.Fprintf(out, "  Home:       %s\n", a.Paths.Root)
	fmt.Fprintf(out, "  DB:         %s\n", db)
	fmt.Fprintf(out, "  Engine:     %s\n", a.Config.Engine)
	fmt.Fprintf(out, "  Workers:    %d\n", a.Config.Workers)
	fmt.Fprintf(out, "  Log level:  %s\n", a.Config.LogLevel)
	return nil
}
