package cmd

import (
	"github.com/spf13/cobra"
)

var revertCmd = &cobra.Command{
	Use:     "revert [FILE...]",
	Aliases: []string{"r"},
	Short:   "Restore swapped files to their original state",
	Long: `Deletes every swapped FILE and renames FILE.fswap back to FILE. With --all
every .fswap file of the working directory is reverted, with --recursive the
arguments name directories to search.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := mode(args)
		if err != nil {
			return err
		}

		_, err = workspace(cmd, directory).Revert(m, args)
		return err
	},
}

func init() {
	selectionFlags(revertCmd)
}
