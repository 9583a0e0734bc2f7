package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newVersionCmd prints the version set at link time.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the skelgen version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "skelgen %s\n", buildVersion)
		},
	}
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
}
