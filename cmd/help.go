package cmd

import (
	"github.com/spf13/cobra"
)

// helpCmd replaces cobra's default help command to add the "h" alias.
var helpCmd = &cobra.Command{
	Use:     "help [command]",
	Aliases: []string{"h"},
	Short:   "Help about any command",
	Run: func(c *cobra.Command, args []string) {
		target, _, err := c.Root().Find(args)
		if target == nil || err != nil {
			c.Printf("Unknown help topic %#q\n", args)
			c.Root().Usage()
			return
		}

		target.InitDefaultHelpFlag()
		target.Help()
	},
}
