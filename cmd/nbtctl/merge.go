package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nbtkit/nbtkit/merge"
)

var (
	mergeLittle     bool
	mergeOut        string
	mergeInPlace    bool
	mergeCompressed bool
)

var mergeCmd = &cobra.Command{
	Use:   "merge <base-file> <patch-file>...",
	Short: "Merge one or more NBT files' roots into a base file",
	Long: `The merge command applies the root compound of one or more patch NBT
files onto a base file's root. Compound values merge key by key,
recursing into nested compounds; any other value (including lists and
arrays) is replaced wholesale by the patch's value.

Example:
  nbtctl merge base.dat patch.dat --in-place
  nbtctl merge base.dat patch1.dat patch2.dat --out merged.dat`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		basePath := args[0]
		patchPaths := args[1:]

		base, err := openDoc(basePath, mergeLittle)
		if err != nil {
			return err
		}
		base.Compressed = mergeCompressed

		for _, patchPath := range patchPaths {
			printVerbose("merging %s into %s", patchPath, basePath)
			patch, err := openDoc(patchPath, mergeLittle)
			if err != nil {
				return fmt.Errorf("opening %s: %w", patchPath, err)
			}
			base.Root = merge.Compound(base.Root, patch.Root)
		}

		return finishWrite(base, basePath, mergeOut, mergeInPlace)
	},
}

func init() {
	mergeCmd.Flags().BoolVar(&mergeLittle, "little", false, "decode/encode as little-endian")
	mergeCmd.Flags().StringVar(&mergeOut, "out", "", "write the result to this path instead of the base path")
	mergeCmd.Flags().BoolVar(&mergeInPlace, "in-place", false, "overwrite the base file")
	mergeCmd.Flags().BoolVar(&mergeCompressed, "gzip", false, "gzip-compress the output")
}
