package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/tuplang/foundation/core/error"
	"github.com/msto63/tuplang/foundation/utils/filex"
	"github.com/msto63/tuplang/tupl/ast"
)

var treeFormat string

var treeCmd = &cobra.Command{
	Use:   "tree FILE",
	Short: "Print the syntax tree of a TUPL program",
	Long: `Parses FILE and prints its syntax tree without semantic analysis.

Formats:
  text  - indented node kinds and values
  yaml  - nested mappings
  json  - nested objects`,
	Args: cobra.ExactArgs(1),
	RunE: runTree,
}

func init() {
	treeCmd.Flags().StringVar(&treeFormat, "format", "text", "output format: text, yaml or json")
	rootCmd.AddCommand(treeCmd)
}

func runTree(cmd *cobra.Command, args []string) error {
	src, err := filex.ReadLimited(args[0], int64(settings.MaxSourceLength))
	if err != nil {
		return err
	}

	prog, err := engine.Parse(src)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch treeFormat {
	case "text":
		fmt.Fprint(out, renderer.Tree(ast.Sprint(prog)))
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(ast.Dump(prog)); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(ast.Dump(prog))
	default:
		return mdwerror.Newf("unknown tree format %q", treeFormat).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("cmd.tree").
			WithDetail("format", treeFormat)
	}
	return nil
}
