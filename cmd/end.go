package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var endCmd = &cobra.Command{
	Use:     "end [WORKING_DIR]",
	Aliases: []string{"e"},
	Short:   "Remove the link and delete every .fswap file",
	Long: `Deletes the .fswap file of WORKING_DIR (default: the current directory) and
every file ending in .fswap below it. Swapped files are NOT reverted first: the
originals held by the .fswap files are lost. Run "fswap revert --all" before
ending a link to keep them.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) > 0 {
			dir = args[0]
		}

		ended, err := workspace(cmd, dir).End()
		if err != nil && ended.Removed == nil {
			return err
		}

		if ended.Declined {
			fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
			return nil
		}

		if !silent {
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted '%s' and %d .fswap file(s).\n", ended.Link.Path(), len(ended.Removed))
		}

		return err
	},
}
