package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Author is the line printed by "tupl who"
const Author = "259196 Nayeong Song"

var whoCmd = &cobra.Command{
	Use:   "who",
	Short: "Print the author",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), Author)
	},
}

func init() {
	rootCmd.AddCommand(whoCmd)
}
