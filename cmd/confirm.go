package cmd

import (
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/jamesbehr/fswap/filesystem"
	"github.com/jamesbehr/fswap/swap"
	"github.com/mattn/go-isatty"
)

// terminalConfirmer asks on the terminal. It refuses to block on a stdin
// that is not a terminal.
type terminalConfirmer struct{}

func (terminalConfirmer) Confirm(message string) (bool, error) {
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return false, filesystem.NewError(swap.ErrConfirmationRequired, "stdin is not a terminal, rerun with --noconfirm", nil)
	}

	ok := false
	prompt := &survey.Confirm{
		Message: message,
		Default: false,
	}

	if err := survey.AskOne(prompt, &ok); err != nil {
		return false, err
	}

	return ok, nil
}
