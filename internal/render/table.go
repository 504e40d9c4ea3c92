// Package render turns report rows into aligned text tables or CSV.
package render

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Align is a column's horizontal alignment.
type Align int

const (
	Left Align = iota
	Right
)

const columnGap = "  "

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#005FAF", Dark: "#5FAFFF"})
	headerStyle = lipgloss.NewStyle().Bold(true)
	footerStyle = lipgloss.NewStyle().Bold(true)
	ruleStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#808080", Dark: "#808080"})
)

// Table is a titled grid of text cells with optional footer rows.
type Table struct {
	Title   string
	Headers []string
	Align   []Align // per column; missing entries are Left
	Rows    [][]string
	Footers [][]string
}

// AddRow appends a body row.
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// AddFooter appends a totals row, printed below a rule.
func (t *Table) AddFooter(cells ...string) {
	t.Footers = append(t.Footers, cells)
}

func (t *Table) align(col int) Align {
	if col < len(t.Align) {
		return t.Align[col]
	}
	return Left
}

func (t *Table) widths() []int {
	widths := make([]int, len(t.Headers))
	measure := func(row []string) {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	measure(t.Headers)
	for _, r := range t.Rows {
		measure(r)
	}
	for _, r := range t.Footers {
		measure(r)
	}
	return widths
}

func (t *Table) line(row []string, widths []int) string {
	cells := make([]string, len(widths))
	for i, w := range widths {
		var cell string
		if i < len(row) {
			cell = row[i]
		}
		if t.align(i) == Right {
			cells[i] = runewidth.FillLeft(cell, w)
		} else {
			cells[i] = runewidth.FillRight(cell, w)
		}
	}
	return strings.TrimRight(strings.Join(cells, columnGap), " ")
}

// Render writes the table as aligned text.
func (t *Table) Render(w io.Writer) error {
	widths := t.widths()
	total := 0
	for i, cw := range widths {
		total += cw
		if i > 0 {
			total += len(columnGap)
		}
	}

	var b strings.Builder
	if t.Title != "" {
		b.WriteString(titleStyle.Render(t.Title))
		b.WriteByte('\n')
	}
	if len(t.Headers) > 0 {
		b.WriteString(headerStyle.Render(t.line(t.Headers, widths)))
		b.WriteByte('\n')
		b.WriteString(ruleStyle.Render(strings.Repeat("-", total)))
		b.WriteByte('\n')
	}
	for _, r := range t.Rows {
		b.WriteString(t.line(r, widths))
		b.WriteByte('\n')
	}
	if len(t.Footers) > 0 {
		b.WriteString(ruleStyle.Render(strings.Repeat("-", total)))
		b.WriteByte('\n')
		for _, r := range t.Footers {
			b.WriteString(footerStyle.Render(t.line(r, widths)))
			b.WriteByte('\n')
		}
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("writing table: %w", err)
	}
	return nil
}

// WriteCSV writes headers, rows and footers as CSV. The title is omitted.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if len(t.Headers) > 0 {
		if err := cw.Write(t.Headers); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}
	for i, r := range append(append([][]string{}, t.Rows...), t.Footers...) {
		if err := cw.Write(r); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
