// Package playground implements the interactive numfield TUI.
//
// The playground shows a live numeric field for a selected style preset:
// keystrokes are filtered as they arrive, enter commits (reformats) the
// value, and tab opens a fuzzy-filterable preset picker. The program renders
// to stderr so the committed value can be piped from stdout.
package playground

import (
	"fmt"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/colorprofile"
	"github.com/rs/zerolog"

	"github.com/raphi011/numfield/internal/config"
	"github.com/raphi011/numfield/internal/log"
	"github.com/raphi011/numfield/internal/ui/field"
	"github.com/raphi011/numfield/internal/ui/styles"
)

type mode int

const (
	modeEdit mode = iota
	modePick
)

// Model is the playground tea.Model.
type Model struct {
	cfg    *config.Config
	logger zerolog.Logger

	mode      mode
	preset    string
	input     field.Model
	picker    *picker
	committed string
	notice    string
	width     int
	quitting  bool
}

// New creates the playground model with the given starting preset.
func New(cfg *config.Config, preset string, logger zerolog.Logger) (*Model, error) {
	style, err := cfg.ResolveStyle(preset)
	if err != nil {
		return nil, err
	}

	return &Model{
		cfg:    cfg,
		logger: logger,
		preset: preset,
		input:  field.New(style),
		picker: newPicker(cfg.StyleNames()),
	}, nil
}

// Committed returns the last committed value.
func (m *Model) Committed() string {
	return m.committed
}

func (m *Model) Init() tea.Cmd {
	return m.input.Focus()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyPressMsg:
		if m.mode == modePick {
			return m.updatePick(msg)
		}
		return m.updateEdit(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) updateEdit(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	m.notice = ""

	switch msg.String() {
	case "ctrl+c", "esc":
		m.input.Blur()
		m.committed = m.input.Value()
		m.quitting = true
		return m, tea.Quit
	case "enter":
		raw := m.input.Value()
		m.committed = m.input.Commit()
		m.logger.Debug().
			Str("preset", m.preset).
			Str("input", raw).
			Str("committed", m.committed).
			Msg("commit")
		return m, nil
	case "tab":
		m.mode = modePick
		return m, nil
	case "c":
		// "c" can never be part of a numeric value, so it is safe as the
		// copy hotkey.
		if m.committed == "" {
			m.notice = "nothing committed yet"
			return m, nil
		}
		if err := clipboard.WriteAll(m.committed); err != nil {
			m.notice = fmt.Sprintf("clipboard failed: %v", err)
			m.logger.Warn().Err(err).Msg("clipboard write failed")
		} else {
			m.notice = "copied " + m.committed
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) updatePick(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "esc":
		m.mode = modeEdit
		return m, nil
	case "up":
		m.picker.MoveUp()
		return m, nil
	case "down":
		m.picker.MoveDown()
		return m, nil
	case "backspace":
		m.picker.Backspace()
		return m, nil
	case "enter":
		name := m.picker.Selected()
		if name == "" {
			return m, nil
		}
		style, err := m.cfg.ResolveStyle(name)
		if err != nil {
			// Picker names come from the config, lookup cannot miss.
			return m, nil
		}
		m.preset = name
		m.input = m.input.SetStyle(style)
		m.mode = modeEdit
		m.logger.Debug().Str("preset", name).Msg("preset selected")
		return m, nil
	}

	if msg.Text != "" {
		for _, r := range msg.Text {
			m.picker.Type(r)
		}
	}
	return m, nil
}

func (m *Model) View() tea.View {
	if m.quitting {
		return tea.NewView("")
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle().Render("numfield playground"))
	b.WriteString("\n\n")

	if m.mode == modePick {
		b.WriteString(m.picker.View())
		b.WriteString("\n")
		b.WriteString(styles.MutedStyle().Render("type to filter • ↑/↓ move • enter select • esc back"))
		b.WriteString("\n")
		return tea.NewView(b.String())
	}

	b.WriteString(styles.MutedStyle().Render("preset: "))
	b.WriteString(styles.AccentStyle().Render(m.preset))
	b.WriteString("\n\n")
	b.WriteString(styles.BorderStyle().Render(m.input.View()))
	b.WriteString("\n\n")

	b.WriteString(styles.MutedStyle().Render("committed: "))
	if m.committed != "" {
		b.WriteString(styles.SuccessStyle().Render(m.committed))
	} else {
		b.WriteString(styles.MutedStyle().Render("(none)"))
	}
	b.WriteString("\n")

	if m.notice != "" {
		b.WriteString(styles.InfoStyle().Render(m.notice))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.MutedStyle().Render("enter commit • tab preset • c copy • esc quit"))
	b.WriteString("\n")
	return tea.NewView(b.String())
}

// Run starts the playground and returns the committed value on exit.
func Run(cfg *config.Config, preset string) (string, error) {
	logger := zerolog.Nop()
	if cfg.LogFile != "" {
		fileLogger, closer, err := log.NewFileLogger(cfg.LogFile)
		if err != nil {
			return "", err
		}
		defer closer.Close()
		logger = fileLogger
	}

	m, err := New(cfg, preset, logger)
	if err != nil {
		return "", err
	}

	// Render to stderr so stdout stays pipeable; detect the color profile
	// for that stream (handles piped output, NO_COLOR, etc.).
	profile := colorprofile.Detect(os.Stderr, os.Environ())
	p := tea.NewProgram(m,
		tea.WithOutput(os.Stderr),
		tea.WithColorProfile(profile),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("run playground: %w", err)
	}

	return finalModel.(*Model).Committed(), nil
}
