// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package report decodes lambda numbers and displays their magnitudes.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/term"

	"code.hybscloud.com/lnum"
)

// Mode selects how entries are rendered.
type Mode string

// Output modes.
const (
	ModeAuto  Mode = "auto"
	ModeText  Mode = "text"
	ModeTable Mode = "table"
	ModeJSON  Mode = "json"
)

// ParseMode converts a configuration string into a Mode.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeAuto, ModeText, ModeTable, ModeJSON:
		return m, nil
	default:
		return "", fmt.Errorf("unknown output mode %q", s)
	}
}

// Decoder turns a chain into its magnitude. *lnum.Numerals implements it.
type Decoder interface {
	Magnitude(c *lnum.Node) uint64
}

// Entry is one reported number.
type Entry struct {
	Label     string `json:"label"`
	Magnitude uint64 `json:"natural_number"`
}

// Reporter decodes chains and renders labelled magnitudes.
//
// Text mode writes each entry as it is reported. Table and JSON modes buffer
// entries until Flush.
type Reporter struct {
	w       io.Writer
	mode    Mode
	dec     Decoder
	styled  bool
	label   lipgloss.Style
	entries []Entry
}

// New creates a Reporter writing to w. ModeAuto resolves to a table when w
// is a terminal and to text otherwise.
func New(w io.Writer, mode Mode, dec Decoder) *Reporter {
	return NewWithTTY(w, mode, dec, isTerminal(w))
}

// NewWithTTY creates a Reporter with an explicit terminal state.
// Terminal text output has styled labels.
func NewWithTTY(w io.Writer, mode Mode, dec Decoder, isTTY bool) *Reporter {
	if mode == ModeAuto || mode == "" {
		mode = ModeText
		if isTTY {
			mode = ModeTable
		}
	}
	return &Reporter{
		w:      w,
		mode:   mode,
		dec:    dec,
		styled: isTTY,
		label:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
	}
}

// Mode returns the resolved output mode.
func (r *Reporter) Mode() Mode { return r.mode }

// Report decodes c now and records it under label. Later in-place
// extension of c does not change what was recorded.
func (r *Reporter) Report(label string, c *lnum.Node) error {
	e := Entry{Label: label, Magnitude: r.dec.Magnitude(c)}
	if r.mode == ModeText {
		return r.writeText(e)
	}
	r.entries = append(r.entries, e)
	return nil
}

// Entries returns the entries buffered since the last Flush.
func (r *Reporter) Entries() []Entry { return r.entries }

// Flush renders buffered entries. It is a no-op in text mode.
func (r *Reporter) Flush() error {
	defer func() { r.entries = nil }()
	switch r.mode {
	case ModeTable:
		return r.renderTable()
	case ModeJSON:
		return r.renderJSON()
	default:
		return nil
	}
}

func (r *Reporter) writeText(e Entry) error {
	label := e.Label
	if r.styled {
		label = r.label.Render(label)
	}
	_, err := fmt.Fprintf(r.w, "lnum_var_name: %s\tnatural_number: %d\n", label, e.Magnitude)
	return err
}

func (r *Reporter) renderTable() error {
	if len(r.entries) == 0 {
		_, err := fmt.Fprintln(r.w, "(0 numbers)")
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"LABEL", "NATURAL NUMBER"})
	for _, e := range r.entries {
		t.AppendRow(table.Row{e.Label, e.Magnitude})
	}
	t.Render()
	return nil
}

func (r *Reporter) renderJSON() error {
	entries := r.entries
	if entries == nil {
		entries = []Entry{}
	}
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}

// isTerminal reports whether w is a terminal file.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
