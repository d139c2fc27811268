package cmd

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/harrison/spellingbee/internal/config"
)

// isTerminal reports whether w is a color-capable terminal.
// Only *os.File writers qualify; NO_COLOR disables color everywhere.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || color.NoColor {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// shouldEmphasize resolves an emphasis mode against the output writer.
func shouldEmphasize(mode string, out io.Writer) bool {
	switch mode {
	case config.EmphasisNever:
		return false
	case config.EmphasisAuto:
		f, ok := out.(*os.File)
		if !ok {
			return false
		}
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	default:
		return true
	}
}
