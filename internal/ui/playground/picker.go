package playground

import (
	"strings"
	"unicode"

	"github.com/sahilm/fuzzy"

	"github.com/raphi011/numfield/internal/ui/styles"
)

// preset is a named style entry in the picker.
type preset struct {
	Name string
}

// presetSource implements fuzzy.Source for the preset list.
type presetSource []preset

func (s presetSource) String(i int) string { return s[i].Name }
func (s presetSource) Len() int            { return len(s) }

// picker is a fuzzy-filterable single-select list of style presets.
type picker struct {
	presets []preset
	matches []fuzzy.Match
	cursor  int
	filter  string
}

func newPicker(names []string) *picker {
	presets := make([]preset, len(names))
	for i, name := range names {
		presets[i] = preset{Name: name}
	}
	p := &picker{presets: presets}
	p.applyFilter()
	return p
}

// applyFilter recomputes matches for the current filter text.
func (p *picker) applyFilter() {
	if p.filter == "" {
		// No filter: show everything in order with no highlights.
		p.matches = make([]fuzzy.Match, len(p.presets))
		for i, pr := range p.presets {
			p.matches[i] = fuzzy.Match{Str: pr.Name, Index: i}
		}
	} else {
		p.matches = fuzzy.FindFrom(p.filter, presetSource(p.presets))
	}
	if p.cursor >= len(p.matches) {
		p.cursor = max(0, len(p.matches)-1)
	}
}

// Type appends a printable rune to the filter.
func (p *picker) Type(r rune) {
	if !unicode.IsPrint(r) || r == ' ' {
		return
	}
	p.filter += string(r)
	p.applyFilter()
}

// Backspace removes the last filter rune.
func (p *picker) Backspace() {
	if p.filter == "" {
		return
	}
	runes := []rune(p.filter)
	p.filter = string(runes[:len(runes)-1])
	p.applyFilter()
}

func (p *picker) MoveUp() {
	if p.cursor > 0 {
		p.cursor--
	}
}

func (p *picker) MoveDown() {
	if p.cursor < len(p.matches)-1 {
		p.cursor++
	}
}

// Selected returns the preset name under the cursor, or "" when the filter
// matches nothing.
func (p *picker) Selected() string {
	if len(p.matches) == 0 {
		return ""
	}
	return p.matches[p.cursor].Str
}

// View renders the filter line and the match list with fuzzy-match
// highlighting.
func (p *picker) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle().Render("Style preset"))
	b.WriteString("\n")
	b.WriteString(styles.MutedStyle().Render("filter: "))
	b.WriteString(p.filter)
	b.WriteString("\n\n")

	if len(p.matches) == 0 {
		b.WriteString(styles.MutedStyle().Render("  no matches"))
		b.WriteString("\n")
		return b.String()
	}

	for i, m := range p.matches {
		cursor := "  "
		line := highlightMatch(m)
		if i == p.cursor {
			cursor = styles.AccentStyle().Render("> ")
		}
		b.WriteString(cursor)
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

// highlightMatch renders a match with its matched characters accented.
func highlightMatch(m fuzzy.Match) string {
	matched := make(map[int]bool, len(m.MatchedIndexes))
	for _, idx := range m.MatchedIndexes {
		matched[idx] = true
	}

	var b strings.Builder
	for i, r := range m.Str {
		if matched[i] {
			b.WriteString(styles.AccentStyle().Render(string(r)))
		} else {
			b.WriteString(string(r))
		}
	}
	return b.String()
}
