package main

import (
	"github.com/spf13/cobra"

	"github.com/nbtkit/nbtkit/container"
)

var (
	readLittle  bool
	readCompact bool
	readPretty  bool
	readPlain   bool
	readJSON    bool
	readUnpack  bool
)

var readCmd = &cobra.Command{
	Use:   "read <file>",
	Short: "Decode a file and print its root tag as SNBT or JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := openDoc(args[0], readLittle)
		if err != nil {
			return err
		}
		printVerbose("decoded %s (outer name %q, compressed=%v)", args[0], f.OuterName, f.Compressed)

		opts := renderOpts{compact: readCompact, pretty: readPretty, plain: readPlain, asJSON: readJSON}
		if readUnpack {
			return printUnpacked(f, opts)
		}
		out, err := render(f.Root, opts)
		if err != nil {
			return err
		}
		printInfo("%s", out)
		return nil
	},
}

// printUnpacked prints every top-level entry of f.Root on its own line, as
// "key: value", instead of rendering the whole compound as one structure.
func printUnpacked(f *container.File, opts renderOpts) error {
	for _, key := range f.Root.Keys() {
		v, _ := f.Root.Get(key)
		out, err := render(v, opts)
		if err != nil {
			return err
		}
		printInfo("%s: %s", key, out)
	}
	return nil
}

func init() {
	readCmd.Flags().BoolVar(&readLittle, "little", false, "decode as little-endian (Bedrock-style)")
	readCmd.Flags().BoolVar(&readCompact, "compact", false, "emit SNBT with no insignificant whitespace")
	readCmd.Flags().BoolVar(&readPretty, "pretty", false, "emit multi-line indented SNBT")
	readCmd.Flags().BoolVar(&readPlain, "plain", false, "force compact output regardless of --pretty")
	readCmd.Flags().BoolVar(&readJSON, "json", false, "emit JSON instead of SNBT")
	readCmd.Flags().BoolVar(&readUnpack, "unpack", false, "print each top-level compound entry on its own line")
}
