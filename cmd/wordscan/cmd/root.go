package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/corey/wordscan/internal/app"
)

// application is created once per invocation by the root pre-run hook.
var application *app.App

var rootCmd = &cobra.Command{
	Use:   "wordscan",
	Short: "wordscan — whole-word multi-pattern search",
	Long:  "Find every whole-word occurrence of many patterns in a single pass over the text.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := app.LoadConfig(workingDir())
		if err != nil {
			return err
		}
		application = app.New(cfg, nil)
		return nil
	},
	SilenceErrors: true,
	SilenceUsage:  true,
}

// workingDir returns the current directory.
func workingDir() string {
	dir, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	return dir
}

// Execute runs the root command and prints any error that is not an
// exit-code signal.
func Execute() error {
	err := rootCmd.Execute()
	if application != nil {
		application.Close()
	}
	if err != nil && ExitCode(err) < 0 {
		fmt.Fprintf(os.Stderr, "wordscan: %s\n", describeError(err))
	}
	return err
}

func init() {
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(setsCmd)
	rootCmd.AddCommand(configCmd)
}
