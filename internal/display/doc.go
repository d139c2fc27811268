// Package display renders solver results and usage errors for the terminal.
//
// # Result Layout
//
// Layout arranges the accepted words in rows of a fixed column count:
//
//	layout := display.Layout{Columns: 3, Emphasize: true}
//	if err := layout.WriteResult(os.Stdout, result); err != nil {
//	    return err
//	}
//
// Output is a summary line followed by one line per row:
//
//	Found 5 total words:
//	<ESC>[1mgfedcba   <ESC>[0mbead      faded
//	cabbage   decaf
//
// Pangrams come first. Every cell except the last in a row is padded to the
// longest word plus ColumnSpacing characters. Pangram cells are wrapped in
// BoldStart/BoldEnd after padding, so the markers never shift the columns.
// Rows carry no trailing whitespace.
//
// # Usage Errors
//
// UsageError prints a message and an optional synopsis:
//
//	display.LetterCountError().Display(os.Stderr, true)
//
// The "Error:" label is colored with fatih/color when colorize is set.
//
// All functions accept io.Writer interfaces for testability.
package display
