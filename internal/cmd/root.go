package cmd

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for spellingbee
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spellingbee [-c N | --columns N] <center_letter> <letter_2> ... <letter_7>",
		Short: "Solve the NYT Spelling Bee puzzle",
		Long: `Spellingbee lists every dictionary word that can be made from the seven
letters of a Spelling Bee board.

A word is accepted when it is at least four letters long, contains the
center letter (the first argument), uses only the seven letters (repeats
allowed) and does not start with a capital letter. Pangrams, words that use
all seven letters, are listed first and shown in bold.

Configuration is loaded from .spellingbee/config.yaml (or
$SPELLINGBEE_HOME/config.yaml) if present. CLI flags override configuration
file settings.

Examples:
  # One word per line
  spellingbee a b c d e f g

  # Three columns from a custom word list
  spellingbee -c 3 --dictionary ./words.txt t o n i c a l`,
		Version: Version,
		Args:    cobra.ArbitraryArgs,
		RunE:    runSolveCommand,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
		// main prints returned errors itself
		SilenceErrors: true,
	}

	cmd.Flags().StringP("columns", "c", "1", "Number of words per row (1-9; invalid values mean 1)")
	cmd.Flags().StringP("dictionary", "d", "", "Path to the word list (default: /usr/share/dict/words)")
	cmd.Flags().String("encoding", "", "Word list encoding: utf-8 or iso-8859-1 (default: utf-8)")
	cmd.Flags().String("config", "", "Path to config file (default: .spellingbee/config.yaml)")
	cmd.Flags().String("emphasis", "", "Bold pangrams: always, auto (terminal only) or never (default: always)")
	cmd.Flags().String("log-level", "", "Diagnostic verbosity on stderr: trace, debug, info, warn, error (default: warn)")

	cmd.SetFlagErrorFunc(ignoreDanglingColumns)

	return cmd
}

// ignoreDanglingColumns lets a trailing -c or --columns with no value fall
// back to one column instead of failing the run. pflag only reports a missing
// value for the last token, so every other argument has been parsed already.
func ignoreDanglingColumns(cmd *cobra.Command, err error) error {
	var required *pflag.ValueRequiredError
	if !errors.As(err, &required) || required.GetFlag().Name != "columns" {
		return err
	}

	if help, _ := cmd.Flags().GetBool("help"); help {
		return cmd.Help()
	}
	return runSolveCommand(cmd, cmd.Flags().Args())
}
