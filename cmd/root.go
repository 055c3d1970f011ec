package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/jamesbehr/fswap/config"
	"github.com/jamesbehr/fswap/filesystem"
	"github.com/jamesbehr/fswap/logging"
	"github.com/jamesbehr/fswap/swap"
	"github.com/spf13/cobra"
)

var options swap.Options
var silent bool
var debug bool
var logLevel string

var rootCmd = &cobra.Command{
	Use:   "fswap",
	Short: "Temporarily swap files in a directory with files from another",
	Long: `fswap links a working directory to a source directory, then swaps files of
the working directory with the files of the same name in the source directory.
The originals are kept next to the swapped files with a .fswap suffix until they
are reverted.

Without a command, fswap shows the state of the current directory.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE: func(cmd *cobra.Command, args []string) error {
		return info(cmd, ".")
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&options.NoConfirm, "noconfirm", "n", false, "do not ask for confirmation before deleting or overwriting files")
	flags.BoolVarP(&options.Verbose, "verbose", "v", false, "print every file level action")
	flags.BoolVarP(&silent, "silent", "s", false, "suppress the summary printed by begin and end")
	flags.BoolVar(&debug, "debug", false, "log debug information to stderr")
	flags.StringVar(&logLevel, "log-level", "warn", "log level (trace, debug, info, warn, error)")

	rootCmd.AddCommand(beginCmd)
	rootCmd.AddCommand(endCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(swapCmd)
	rootCmd.AddCommand(revertCmd)

	rootCmd.SetHelpCommand(helpCmd)
}

// setup applies the config file defaults to every flag that was not given
// on the command line and configures logging.
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config %s: %w", config.Path(), err)
	}

	defaults := cfg.Defaults
	flags := cmd.Flags()

	if !flags.Changed("noconfirm") {
		options.NoConfirm = config.Bool(defaults.NoConfirm, options.NoConfirm)
	}

	if !flags.Changed("verbose") {
		options.Verbose = config.Bool(defaults.Verbose, options.Verbose)
	}

	if flags.Lookup("verify") != nil && !flags.Changed("verify") {
		options.Verify = config.Bool(defaults.Verify, options.Verify)
	}

	if !flags.Changed("log-level") {
		logLevel = config.String(defaults.LogLevel, logLevel)
	}

	if debug {
		logLevel = "debug"
	}

	if err := logging.SetupWriter(cmd.ErrOrStderr(), logLevel); err != nil {
		return err
	}

	log := logging.GetLogger("cmd")
	log.Debug().Str("command", cmd.Name()).Strs("args", args).Msg("executing command")

	return nil
}

func workspace(cmd *cobra.Command, dir string) swap.Workspace {
	return swap.Workspace{
		Dir:       filesystem.MakePath(dir),
		Options:   options,
		Confirmer: terminalConfirmer{},
		Out:       cmd.OutOrStdout(),
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, swap.ErrNoFiles) {
			fmt.Fprintln(os.Stderr, "No fswap files found.")
			return
		}

		fmt.Fprintln(os.Stderr, "ERROR:", err)
		os.Exit(1)
	}
}
