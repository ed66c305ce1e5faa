// Package display renders CLI output as pterm tables or JSON.
package display

import (
	"io"

	"github.com/pterm/pterm"

	"github.com/teranos/milassist/errors"
)

// Table writes rows under header.
func Table(w io.Writer, header []string, rows [][]string) error {
	data := pterm.TableData{header}
	data = append(data, rows...)
	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return errors.Wrap(err, "failed to render table")
	}
	_, err = io.WriteString(w, out+"\n")
	return err
}

// KeyValues writes a two-column table without header.
func KeyValues(w io.Writer, pairs [][2]string) error {
	data := make(pterm.TableData, len(pairs))
	for i, p := range pairs {
		data[i] = []string{pterm.LightCyan(p[0]), p[1]}
	}
	out, err := pterm.DefaultTable.WithData(data).Srender()
	if err != nil {
		return errors.Wrap(err, "failed to render table")
	}
	_, err = io.WriteString(w, out+"\n")
	return err
}

// Success prints a green confirmation line.
func Success(w io.Writer, msg string) {
	_, _ = io.WriteString(w, pterm.LightGreen("✓ ")+msg+"\n")
}

// Failure prints a red line.
func Failure(w io.Writer, msg string) {
	_, _ = io.WriteString(w, pterm.Red("✗ ")+msg+"\n")
}
