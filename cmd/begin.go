package cmd

import (
	"fmt"

	"github.com/jamesbehr/fswap/filesystem"
	"github.com/spf13/cobra"
)

var beginCmd = &cobra.Command{
	Use:     "begin SOURCE_DIR [WORKING_DIR]",
	Aliases: []string{"b"},
	Short:   "Link a working directory to a source directory",
	Long: `Creates a .fswap file in WORKING_DIR (default: the current directory) holding
the path to SOURCE_DIR. A directory can only be linked once.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) > 1 {
			dir = args[1]
		}

		link, err := workspace(cmd, dir).Begin(filesystem.MakePath(args[0]))
		if err != nil {
			return err
		}

		if !silent {
			fmt.Fprintf(cmd.OutOrStdout(), "Created '%s', with path to source '%s'.\n", link.Path(), link.Source)
		}

		return nil
	},
}
