// Package field provides a numeric text input for terminal UIs.
//
// Model wraps a bubbles textinput and keeps its value sanitized: every
// update runs the value through numeric.Filter, and Blur (or an explicit
// Commit) canonicalizes it through numeric.Reformat. The wrapped input never
// holds a character its style does not permit.
package field

import (
	"strconv"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/raphi011/numfield/internal/numeric"
	"github.com/raphi011/numfield/internal/ui/styles"
)

// Model is a numeric input field.
type Model struct {
	input textinput.Model
	style numeric.Style
}

// New creates a numeric field with the given style.
// Uses a blinking bar cursor for better visibility.
func New(style numeric.Style) Model {
	ti := textinput.New()
	ti.Placeholder = "0"
	ti.CharLimit = 64
	ti.SetWidth(24)

	s := ti.Styles()
	s.Cursor.Shape = tea.CursorBar
	s.Cursor.Blink = true
	ti.SetStyles(s)

	return Model{input: ti, style: style}
}

// Style returns the active numeric style.
func (m Model) Style() numeric.Style {
	return m.style
}

// SetStyle switches the numeric style and re-filters the current value
// so it never violates the new style.
func (m Model) SetStyle(style numeric.Style) Model {
	m.style = style
	m.setFiltered(numeric.Filter(m.input.Value(), style))
	return m
}

// Value returns the current sanitized value.
func (m Model) Value() string {
	return m.input.Value()
}

// SetValue replaces the value, filtering it first.
func (m *Model) SetValue(value string) {
	m.setFiltered(numeric.Filter(value, m.style))
}

// Focus focuses the field and starts cursor blinking.
func (m *Model) Focus() tea.Cmd {
	m.input.Focus()
	return textinput.Blink
}

// Blur removes focus and canonicalizes the value, mirroring the
// end-of-editing reformat of a focus-driven UI.
func (m *Model) Blur() {
	m.Commit()
	m.input.Blur()
}

// Focused reports whether the field has focus.
func (m Model) Focused() bool {
	return m.input.Focused()
}

// Commit reformats the current value in place and returns it.
func (m *Model) Commit() string {
	v := numeric.Reformat(m.input.Value())
	m.setFiltered(v)
	return v
}

// Update handles a message. The wrapped input edits first, then the result
// is re-sanitized so disallowed characters never survive a keystroke.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	if filtered := numeric.Filter(m.input.Value(), m.style); filtered != m.input.Value() {
		m.setFiltered(filtered)
	}

	return m, cmd
}

// setFiltered replaces the input value with an already-filtered string.
// SetValue re-homes the cursor to the end of the new value.
func (m *Model) setFiltered(v string) {
	if v == m.input.Value() {
		return
	}
	m.input.SetValue(v)
}

// OutOfRange reports whether the current value parses and falls outside the
// style's advisory range. Nothing is clamped; this is display-only.
func (m Model) OutOfRange() bool {
	if m.style.Range == nil {
		return false
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(m.input.Value(), ",", "."), 64)
	if err != nil {
		return false
	}
	return !m.style.Range.Contains(v)
}

// View renders the field, with a warning hint when the value is outside the
// advisory range.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.input.View())
	if m.OutOfRange() {
		b.WriteString("  ")
		b.WriteString(styles.WarningStyle().Render(rangeHint(m.style.Range)))
	}
	return b.String()
}

// rangeHint formats the advisory range for display.
func rangeHint(r *numeric.Range) string {
	format := func(p *float64) string {
		if p == nil {
			return "…"
		}
		return strconv.FormatFloat(*p, 'f', -1, 64)
	}
	return "out of range [" + format(r.Min) + ", " + format(r.Max) + "]"
}
