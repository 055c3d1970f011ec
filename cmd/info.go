package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:     "info [WORKING_DIR]",
	Aliases: []string{"i"},
	Short:   "List the swapped files of a working directory",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) > 0 {
			dir = args[0]
		}

		return info(cmd, dir)
	},
}

func info(cmd *cobra.Command, dir string) error {
	result, err := workspace(cmd, dir).Info()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if result.SourceExists {
		fmt.Fprintf(out, "Linked to '%s'.\n", result.Link.Source)
	} else {
		fmt.Fprintf(out, "Linked to '%s' (missing).\n", result.Link.Source)
	}

	if len(result.Files) == 0 {
		fmt.Fprintf(out, "No fswap files in '%s'.\n", dir)
		return nil
	}

	fmt.Fprintf(out, "fswap files in '%s':\n", dir)
	for _, file := range result.Files {
		fmt.Fprintf(out, "  %s\n", file)
	}

	return nil
}
