package internal

import (
	"fmt"
	"text/tabwriter"

	"github.com/goplus/cfgen/pkgs/flags"
	"github.com/spf13/cobra"
)

var flagsCmd = &cobra.Command{
	Use:   "flags",
	Short: "List the feature flags and the defines they set",
	Args:  cobra.NoArgs,
	RunE:  runFlags,
}

func init() {
	rootCmd.AddCommand(flagsCmd)
}

func runFlags(cmd *cobra.Command, args []string) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FLAG\tDEFINE\tDESCRIPTION")
	for _, f := range flags.Default.All() {
		fmt.Fprintf(tw, "--%s\t<PROJECT>_%s\t%s\n", f.Option(), f.Define, f.Description)
	}
	return tw.Flush()
}
