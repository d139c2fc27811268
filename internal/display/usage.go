package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// UsageLine is the one-line synopsis shown with usage errors.
const UsageLine = "Usage: spellingbee [-c <num_columns>] <center_letter> <other_letter_1> ... <other_letter_6>"

// UsageError represents a user-facing complaint about the command line
type UsageError struct {
	Message string // What was wrong
	Usage   string // Synopsis to show after the message (optional)
}

// LetterCountError is the usage error for a board that does not have seven letters.
func LetterCountError() UsageError {
	return UsageError{
		Message: "Please provide exactly 7 letters as arguments, with or without a --columns flag.",
		Usage:   UsageLine,
	}
}

// Display writes the error to out. When colorize is set the "Error:" label
// is printed in bold red.
func (u UsageError) Display(out io.Writer, colorize bool) {
	label := color.New(color.FgRed, color.Bold)
	if colorize {
		label.EnableColor()
	} else {
		label.DisableColor()
	}

	var b strings.Builder
	b.WriteString(label.Sprint("Error:"))
	b.WriteString(" ")
	b.WriteString(u.Message)
	b.WriteString("\n")

	if u.Usage != "" {
		b.WriteString(u.Usage)
		b.WriteString("\n")
	}

	fmt.Fprint(out, b.String())
}
