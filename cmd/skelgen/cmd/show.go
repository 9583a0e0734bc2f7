package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"skelgen/internal/app"
)

// newShowCmd prints a layout as a tree or as a flat path list.
func newShowCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "show",
		Short: "Print the selected layout without creating anything",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := optionsFromFlags(cmd)
			if err != nil {
				return err
			}

			if paths, _ := cmd.Flags().GetBool("paths"); paths {
				entries, err := app.Entries(opts)
				if err != nil {
					return err
				}
				for _, e := range entries {
					fmt.Fprintln(cmd.OutOrStdout(), e)
				}
				return nil
			}

			noColor, _ := cmd.Flags().GetBool("no-color")
			return app.Show(opts, !noColor)
		},
	}

	addLayoutFlags(c)
	c.Flags().Bool("paths", false, "List one relative path per line instead of a tree")
	c.Flags().Bool("no-color", false, "Disable coloured directory names")

	return c
}

func init() {
	rootCmd.AddCommand(newShowCmd())
}
