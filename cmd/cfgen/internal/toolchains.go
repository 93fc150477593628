package internal

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/goplus/cfgen/internal/config"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var toolchainsCmd = &cobra.Command{
	Use:   "toolchains",
	Short: "List the available toolchains",
	Long:  `Toolchains lists the built-in toolchains followed by those declared in .cfgen.yaml.`,
	Args:  cobra.NoArgs,
	RunE:  runToolchains,
}

func init() {
	rootCmd.AddCommand(toolchainsCmd)
}

func runToolchains(cmd *cobra.Command, args []string) error {
	dir, err := os.Getwd()
	if err != nil {
		return err
	}
	cfg, err := config.Load(dir)
	if err != nil {
		return err
	}
	catalog, err := loadCatalog(dir, cfg)
	if err != nil {
		return err
	}

	title := cases.Title(language.English)
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tPLATFORM\tGENERATOR\tDESCRIPTION")
	for _, tc := range catalog.All() {
		gen := tc.Generator
		if tc.MultiConfig {
			gen += " (multi-config)"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", tc.Name, title.String(tc.Platform.String()), gen, tc.Description)
	}
	return tw.Flush()
}
