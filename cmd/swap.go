package cmd

import (
	"errors"

	"github.com/jamesbehr/fswap/swap"
	"github.com/spf13/cobra"
)

var all bool
var recursive bool
var directory string

// mode validates the selection flags against the positional arguments.
func mode(args []string) (swap.Mode, error) {
	switch {
	case all && recursive:
		return swap.Explicit, errors.New("--all and --recursive are mutually exclusive")
	case all:
		if len(args) > 0 {
			return swap.Explicit, errors.New("--all takes no arguments")
		}

		return swap.All, nil
	case recursive:
		if len(args) == 0 {
			return swap.Explicit, errors.New("--recursive needs at least one directory")
		}

		return swap.Recursive, nil
	default:
		if len(args) == 0 {
			return swap.Explicit, errors.New("provide at least one file")
		}

		return swap.Explicit, nil
	}
}

var swapCmd = &cobra.Command{
	Use:     "swap [FILE...]",
	Aliases: []string{"s"},
	Short:   "Swap files in from the source directory",
	Long: `Renames every FILE to FILE.fswap and copies the file of the same name from the
linked source directory in its place. File names are relative to the working
directory. With --recursive the arguments name directories to search, with --all
every file of the working directory is swapped.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := mode(args)
		if err != nil {
			return err
		}

		_, err = workspace(cmd, directory).Swap(m, args)
		return err
	},
}

func selectionFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&all, "all", "a", false, "operate on every file of the working directory")
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "treat the arguments as directories to search")
	cmd.Flags().StringVarP(&directory, "directory", "C", ".", "working directory holding the .fswap file")
}

func init() {
	selectionFlags(swapCmd)
	swapCmd.Flags().BoolVar(&options.Verify, "verify", false, "check every copied file against its source")
}
