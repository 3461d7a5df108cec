package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/tuplang/foundation/utils/filex"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens FILE",
	Short: "Print the token stream of a TUPL program",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := filex.ReadLimited(args[0], int64(settings.MaxSourceLength))
		if err != nil {
			return err
		}
		tokens, err := engine.Tokenize(src)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), renderer.Tokens(tokens))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}
