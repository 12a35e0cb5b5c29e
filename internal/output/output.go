package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Printer writes command results for people or, with --json, for scripts.
type Printer struct {
	w      io.Writer
	errW   io.Writer
	json   bool
	styles styles
}

type styles struct {
	err     lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
	heading lipgloss.Style
	rule    lipgloss.Style
	key     lipgloss.Style
	path    lipgloss.Style
}

func newStyles(color bool) styles {
	if !color {
		plain := lipgloss.NewStyle()
		return styles{plain, plain, plain, plain, plain, plain, plain}
	}
	return styles{
		err:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		heading: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		rule:    lipgloss.NewStyle().Faint(true),
		key:     lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		path:    lipgloss.NewStyle().Underline(true),
	}
}

// NewPrinter returns a Printer writing to w. color enables lipgloss styling
// in human mode and is ignored in JSON mode.
func NewPrinter(w io.Writer, jsonMode bool, color bool) *Printer {
	return &Printer{
		w:      w,
		errW:   w,
		json:   jsonMode,
		styles: newStyles(color && !jsonMode),
	}
}

// WithStderr sends human-mode errors and warnings to w. JSON mode keeps
// everything on the main writer.
func (p *Printer) WithStderr(w io.Writer) *Printer {
	p.errW = w
	return p
}

// IsJSON reports whether the printer writes JSON.
func (p *Printer) IsJSON() bool {
	return p.json
}

// Error reports err. JSON mode writes {"error": "...", "code": N}; errors
// without an exit code are reported as user errors.
func (p *Printer) Error(err error) {
	exitErr := &ExitError{}
	if !errors.As(err, &exitErr) {
		exitErr = &ExitError{Code: ExitUserError, Message: err.Error()}
	}

	if p.json {
		_ = p.writeJSON(errorObject{Error: exitErr.Message, Code: exitErr.Code})
		return
	}
	mustWrite(fmt.Fprintf(p.errW, "%s: %s\n", p.styles.err.Render("Error"), exitErr.Message))
}

// Warn reports a non-fatal problem.
func (p *Printer) Warn(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if p.json {
		_ = p.writeJSON(map[string]string{"warning": msg})
		return
	}
	mustWrite(fmt.Fprintf(p.errW, "%s: %s\n", p.styles.warning.Render("Warning"), msg))
}

type errorObject struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

func (p *Printer) writeJSON(data any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// mustWrite panics if a write to stdout, stderr or a buffer fails.
func mustWrite(_ int, err error) {
	if err != nil {
		panic(fmt.Sprintf("write failed: %v", err))
	}
}

// section writes a heading with an underline, preceded by a blank line.
func (p *Printer) section(title string) {
	mustWrite(fmt.Fprintln(p.w))
	mustWrite(fmt.Fprintln(p.w, p.styles.heading.Render(title)))
	mustWrite(fmt.Fprintln(p.w, p.styles.rule.Render(strings.Repeat("─", len(title)))))
}

func (p *Printer) keyValue(key, value string) {
	mustWrite(fmt.Fprintf(p.w, "%s %s\n", p.styles.key.Render(key+":"), value))
}

// table writes rows padded to the widest cell of each column.
func (p *Printer) table(headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	cells := make([]string, len(headers))
	for i, h := range headers {
		cells[i] = p.styles.heading.Render(padRight(h, widths[i]))
	}
	mustWrite(fmt.Fprintln(p.w, strings.Join(cells, "  ")))
	for _, row := range rows {
		for i := range cells {
			cells[i] = ""
			if i < len(row) {
				cells[i] = padRight(row[i], widths[i])
			}
		}
		mustWrite(fmt.Fprintln(p.w, strings.Join(cells, "  ")))
	}
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
