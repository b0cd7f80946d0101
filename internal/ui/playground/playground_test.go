package playground

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/raphi011/numfield/internal/config"
)

// keyMsg builds a tea.KeyPressMsg from a string key name.
func keyMsg(key string) tea.KeyPressMsg {
	switch key {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "tab":
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "backspace":
		return tea.KeyPressMsg{Code: tea.KeyBackspace}
	default:
		// Single character key
		if len(key) == 1 {
			r := rune(key[0])
			return tea.KeyPressMsg{Code: r, Text: key}
		}
		return tea.KeyPressMsg{}
	}
}

func newTestModel(t *testing.T, preset string) *Model {
	t.Helper()
	cfg := config.Default()
	m, err := New(&cfg, preset, zerolog.Nop())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	m.Init()
	return m
}

// send feeds keys to the model in order.
func send(t *testing.T, m *Model, keys ...string) *Model {
	t.Helper()
	var model tea.Model = m
	for _, k := range keys {
		model, _ = model.Update(keyMsg(k))
	}
	return model.(*Model)
}

func TestNewUnknownPreset(t *testing.T) {
	cfg := config.Default()
	if _, err := New(&cfg, "nope", zerolog.Nop()); err == nil {
		t.Fatal("expected error for unknown preset")
	}
}

func TestEditCommit(t *testing.T) {
	m := newTestModel(t, "any")
	m = send(t, m, "1", "2", "3", "4", "5", "6", "enter")

	if got := m.Committed(); got != "1.23456E+05" {
		t.Errorf("Committed() = %q, want %q", got, "1.23456E+05")
	}
}

func TestEditFiltersKeystrokes(t *testing.T) {
	m := newTestModel(t, "int")
	m = send(t, m, "1", ".", "5", "x")

	// The int preset permits no separator; the letter never gets through.
	if got := m.input.Value(); got != "15" {
		t.Errorf("input value = %q, want %q", got, "15")
	}
}

func TestPresetPicker(t *testing.T) {
	t.Run("tab opens picker", func(t *testing.T) {
		m := newTestModel(t, "any")
		m = send(t, m, "tab")
		if m.mode != modePick {
			t.Fatalf("mode = %v, want modePick", m.mode)
		}
	})

	t.Run("esc returns to edit", func(t *testing.T) {
		m := newTestModel(t, "any")
		m = send(t, m, "tab", "esc")
		if m.mode != modeEdit {
			t.Fatalf("mode = %v, want modeEdit", m.mode)
		}
	})

	t.Run("filter and select switches preset", func(t *testing.T) {
		m := newTestModel(t, "any")
		// "perc" narrows the fuzzy filter to the percent preset.
		m = send(t, m, "tab", "p", "e", "r", "c", "enter")
		if m.preset != "percent" {
			t.Fatalf("preset = %q, want %q", m.preset, "percent")
		}
		if m.mode != modeEdit {
			t.Fatalf("mode = %v, want modeEdit after selection", m.mode)
		}

		// The percent preset permits no negatives.
		m = send(t, m, "-", "5")
		if got := m.input.Value(); got != "5" {
			t.Errorf("input value = %q, want %q", got, "5")
		}
	})

	t.Run("selection refilters existing value", func(t *testing.T) {
		m := newTestModel(t, "any")
		m = send(t, m, "-", "1", ".", "5")
		m = send(t, m, "tab", "i", "n", "t", "enter")
		if m.preset != "int" {
			t.Fatalf("preset = %q, want %q", m.preset, "int")
		}
		if got := m.input.Value(); got != "-15" {
			t.Errorf("input value = %q, want %q", got, "-15")
		}
	})
}

func TestPicker(t *testing.T) {
	names := []string{"any", "decimal", "int", "percent"}

	t.Run("no filter lists everything", func(t *testing.T) {
		p := newPicker(names)
		if len(p.matches) != len(names) {
			t.Fatalf("matches = %d, want %d", len(p.matches), len(names))
		}
		if got := p.Selected(); got != "any" {
			t.Errorf("Selected() = %q, want %q", got, "any")
		}
	})

	t.Run("filter narrows matches", func(t *testing.T) {
		p := newPicker(names)
		for _, r := range "int" {
			p.Type(r)
		}
		if got := p.Selected(); got != "int" {
			t.Errorf("Selected() = %q, want %q", got, "int")
		}
	})

	t.Run("backspace widens again", func(t *testing.T) {
		p := newPicker(names)
		for _, r := range "zzz" {
			p.Type(r)
		}
		if got := p.Selected(); got != "" {
			t.Errorf("Selected() = %q, want no match", got)
		}
		p.Backspace()
		p.Backspace()
		p.Backspace()
		if len(p.matches) != len(names) {
			t.Errorf("matches after backspace = %d, want %d", len(p.matches), len(names))
		}
	})

	t.Run("cursor movement", func(t *testing.T) {
		p := newPicker(names)
		p.MoveDown()
		if got := p.Selected(); got != "decimal" {
			t.Errorf("Selected() = %q, want %q", got, "decimal")
		}
		p.MoveUp()
		p.MoveUp() // already at the top
		if got := p.Selected(); got != "any" {
			t.Errorf("Selected() = %q, want %q", got, "any")
		}
	})

	t.Run("view marks the cursor line", func(t *testing.T) {
		p := newPicker(names)
		if out := p.View(); !strings.Contains(out, "any") {
			t.Errorf("View() missing preset names:\n%s", out)
		}
	})
}
