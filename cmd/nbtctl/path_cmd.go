package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nbtkit/nbtkit/path"
)

var (
	pathLittle  bool
	pathCompact bool
	pathPretty  bool
	pathPlain   bool
	pathJSON    bool
	pathDelete  bool
	pathSet     string
)

var pathCmd = &cobra.Command{
	Use:   "path <file> <nbt-path>",
	Short: "Evaluate an NBT path against a file's root and print every match",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		srcPath, pathExpr := args[0], args[1]
		p, err := path.Parse(pathExpr)
		if err != nil {
			return fmt.Errorf("parsing path: %w", err)
		}

		f, err := openDoc(srcPath, pathLittle)
		if err != nil {
			return err
		}

		opts := renderOpts{compact: pathCompact, pretty: pathPretty, plain: pathPlain, asJSON: pathJSON}
		f.Compressed = f.Compressed || writeCompressed

		switch {
		case pathDelete:
			f.Root = mustCompound(path.DeleteAll(f.Root, p))
			return finishWrite(f, srcPath, writeOut, writeInPlace)
		case pathSet != "":
			value, err := parseSNBTArg(pathSet)
			if err != nil {
				return err
			}
			f.Root = mustCompound(path.SetAll(f.Root, p, value))
			return finishWrite(f, srcPath, writeOut, writeInPlace)
		default:
			matches := path.GetAll(f.Root, p)
			printVerbose("%d match(es)", len(matches))
			for _, m := range matches {
				out, err := render(m, opts)
				if err != nil {
					return err
				}
				printInfo("%s", out)
			}
			return nil
		}
	},
}

func init() {
	pathCmd.Flags().BoolVar(&pathLittle, "little", false, "decode/encode as little-endian")
	pathCmd.Flags().BoolVar(&pathCompact, "compact", false, "emit SNBT with no insignificant whitespace")
	pathCmd.Flags().BoolVar(&pathPretty, "pretty", false, "emit multi-line indented SNBT")
	pathCmd.Flags().BoolVar(&pathPlain, "plain", false, "force compact output regardless of --pretty")
	pathCmd.Flags().BoolVar(&pathJSON, "json", false, "emit JSON instead of SNBT")
	pathCmd.Flags().BoolVar(&pathDelete, "delete", false, "delete every matched value instead of printing it")
	pathCmd.Flags().StringVar(&pathSet, "set", "", "set every matched value to this SNBT literal instead of printing it")
	pathCmd.Flags().StringVar(&writeOut, "out", "", "write the result to this path instead of the input path")
	pathCmd.Flags().BoolVar(&writeInPlace, "in-place", false, "overwrite the input file")
	pathCmd.Flags().BoolVar(&writeCompressed, "gzip", false, "gzip-compress the output")
}
