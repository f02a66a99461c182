package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/corey/wordscan/internal/app"
	"github.com/corey/wordscan/internal/ports"
)

var (
	setsPatterns []string
	setsFile     string
)

var setsCmd = &cobra.Command{
	Use:   "sets",
	Short: "Manage saved pattern sets",
}

var setsSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save patterns under a name (from -e and/or -f)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return saveSet(application, args[0], app.PatternSource{File: setsFile, Inline: setsPatterns}, cmd.OutOrStdout())
	},
}

var setsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved pattern sets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listSets(application, cmd.OutOrStdout())
	},
}

var setsShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print the patterns of a saved set",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return showSet(application, args[0], cmd.OutOrStdout())
	},
}

var setsDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a saved pattern set",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return deleteSet(application, args[0], cmd.OutOrStdout())
	},
}

func init() {
	f := setsSaveCmd.Flags()
	f.StringArrayVarP(&setsPatterns, "pattern", "e", nil, "Pattern to include (repeatable)")
	f.StringVarP(&setsFile, "patterns-file", "f", "", "Read patterns from a file (.yaml/.yml or one per line)")

	setsCmd.AddCommand(setsSaveCmd)
	setsCmd.AddCommand(setsListCmd)
	setsCmd.AddCommand(setsShowCmd)
	setsCmd.AddCommand(setsDeleteCmd)
}

func saveSet(a *app.App, name string, src app.PatternSource, out io.Writer) error {
	if src.Empty() {
		return fmt.Errorf("no patterns given (use -e or -f)")
	}
	patterns, err := a.ResolvePatterns(src)
	if err != nil {
		return err
	}
	store, err := a.Store()
	if err != nil {
		return err
	}
	if err := store.SaveSet(name, &ports.PatternSet{Patterns: patterns}); err != nil {
		return err
	}
	fmt.Fprintf(out, "⚡ saved %q (%d patterns)\n", name, len(patterns))
	return nil
}

func listSets(a *app.App, out io.Writer) error {
	store, err := a.Store()
	if err != nil {
		return err
	}
	sets, err := store.ListSets()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "⚡ %d sets\n", len(sets))
	for _, s := range sets {
		fmt.Fprintf(out, "  %-20s %4d patterns  %016x  %s\n",
			s.Name, len(s.Patterns), s.Fingerprint, s.SavedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func showSet(a *app.App, name string, out io.Writer) error {
	store, err := a.Store()
	if err != nil {
		return err
	}
	set, err := store.LoadSet(name)
	if err != nil {
		return err
	}
	for i, p := range set.Patterns {
		fmt.Fprintf(out, "%d\t%s\n", i+1, p)
	}
	return nil
}

func deleteSet(a *app.App, name string, out io.Writer) error {
	store, err := a.Store()
	if err != nil {
		return err
	}
	if err := store.DeleteSet(name); err != nil {
		return err
	}
	fmt.Fprintf(out, "⚡ deleted %q\n", name)
	return nil
}
