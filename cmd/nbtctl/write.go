package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nbtkit/nbtkit/container"
	"github.com/nbtkit/nbtkit/path"
	"github.com/nbtkit/nbtkit/snbt"
)

var (
	writeLittle     bool
	writeOut        string
	writeInPlace    bool
	writeCompressed bool
	writePath       string
)

var writeCmd = &cobra.Command{
	Use:   "write <file> <snbt-value>",
	Short: "Set every value matched by --path to a parsed SNBT literal",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		srcPath, literal := args[0], args[1]
		if writePath == "" {
			return fmt.Errorf("write: --path is required")
		}

		value, err := snbt.Parse(literal)
		if err != nil {
			return fmt.Errorf("parsing value: %w", err)
		}
		p, err := path.Parse(writePath)
		if err != nil {
			return fmt.Errorf("parsing path: %w", err)
		}

		f, err := openDoc(srcPath, writeLittle)
		if err != nil {
			return err
		}
		f.Compressed = writeCompressed

		f.Root = mustCompound(path.SetAll(f.Root, p, value))

		return finishWrite(f, srcPath, writeOut, writeInPlace)
	},
}

// finishWrite saves f to out if given, else to srcPath if inPlace is set;
// otherwise it's an error, since silently writing nowhere would discard the
// edit.
func finishWrite(f *container.File, srcPath, out string, inPlace bool) error {
	dest := srcPath
	if out != "" {
		dest = out
	}
	if !inPlace && out == "" {
		return fmt.Errorf("specify --out or --in-place")
	}
	if err := f.Save(dest); err != nil {
		return err
	}
	printInfo("wrote %s", dest)
	return nil
}

func init() {
	writeCmd.Flags().BoolVar(&writeLittle, "little", false, "decode/encode as little-endian")
	writeCmd.Flags().StringVar(&writeOut, "out", "", "write the result to this path instead of the input path")
	writeCmd.Flags().BoolVar(&writeInPlace, "in-place", false, "overwrite the input file")
	writeCmd.Flags().BoolVar(&writeCompressed, "gzip", false, "gzip-compress the output")
	writeCmd.Flags().StringVar(&writePath, "path", "", "NBT path to set (required)")
}
