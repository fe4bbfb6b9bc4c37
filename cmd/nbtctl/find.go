package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nbtkit/nbtkit/path"
)

var (
	findLittle  bool
	findCompact bool
	findPretty  bool
	findPlain   bool
	findJSON    bool
)

var findCmd = &cobra.Command{
	Use:   "find <file> <nbt-path>",
	Short: "Print only the first tag matched by an NBT path",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		srcPath, pathExpr := args[0], args[1]
		p, err := path.Parse(pathExpr)
		if err != nil {
			return fmt.Errorf("parsing path: %w", err)
		}

		f, err := openDoc(srcPath, findLittle)
		if err != nil {
			return err
		}

		tag, ok := path.Find(f.Root, p)
		if !ok {
			return fmt.Errorf("find: no match for %q", pathExpr)
		}

		out, err := render(tag, renderOpts{compact: findCompact, pretty: findPretty, plain: findPlain, asJSON: findJSON})
		if err != nil {
			return err
		}
		printInfo("%s", out)
		return nil
	},
}

func init() {
	findCmd.Flags().BoolVar(&findLittle, "little", false, "decode as little-endian")
	findCmd.Flags().BoolVar(&findCompact, "compact", false, "emit SNBT with no insignificant whitespace")
	findCmd.Flags().BoolVar(&findPretty, "pretty", false, "emit multi-line indented SNBT")
	findCmd.Flags().BoolVar(&findPlain, "plain", false, "force compact output regardless of --pretty")
	findCmd.Flags().BoolVar(&findJSON, "json", false, "emit JSON instead of SNBT")
}
