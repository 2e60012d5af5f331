// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package launcher

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#623CE4")).Bold(true)
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#623CE4"))
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

// TUIMenu is the built-in selector. Typing filters entries, case-insensitively
// unless MatchCase is set.
type TUIMenu struct {
	// Rows caps the list height. Zero means DefaultMenuLines. The terminal
	// height still wins when it is smaller.
	Rows      int
	MatchCase bool
}

// Select implements Menu.
func (t TUIMenu) Select(ctx context.Context, catalog []byte) (string, error) {
	items := Entries(catalog)
	if len(items) == 0 {
		return "", ErrEmptyCatalog
	}

	start := newModel(items)
	if t.Rows > 0 {
		start.rows, start.maxRows = t.Rows, t.Rows
	}
	start.matchCase = t.MatchCase

	p := tea.NewProgram(start, tea.WithContext(ctx), tea.WithOutput(os.Stderr))
	m, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("menu failed: %w", err)
	}

	final := m.(model)
	if final.selected == "" {
		return "", ErrNoSelection
	}
	return final.selected, nil
}

type model struct {
	items     []string
	visible   []string
	filter    string
	cursor    int
	rows      int
	maxRows   int
	matchCase bool
	selected  string
}

func newModel(items []string) model {
	return model{items: items, visible: items, rows: DefaultMenuLines, maxRows: DefaultMenuLines}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Leave room for the prompt and help lines.
		m.rows = max(1, min(m.maxRows, msg.Height-4))

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			m.selected = ""
			return m, tea.Quit
		case tea.KeyUp, tea.KeyShiftTab:
			if m.cursor > 0 {
				m.cursor--
			}
		case tea.KeyDown, tea.KeyTab:
			if m.cursor < len(m.visible)-1 {
				m.cursor++
			}
		case tea.KeyEnter:
			if len(m.visible) > 0 {
				m.selected = m.visible[m.cursor]
				return m, tea.Quit
			}
		case tea.KeyBackspace:
			if m.filter != "" {
				r := []rune(m.filter)
				m.filter = string(r[:len(r)-1])
				m.refilter()
			}
		case tea.KeySpace:
			m.filter += " "
			m.refilter()
		case tea.KeyRunes:
			m.filter += string(msg.Runes)
			m.refilter()
		}
	}
	return m, nil
}

// refilter recomputes visible entries and clamps the cursor.
func (m *model) refilter() {
	fold := strings.ToLower
	if m.matchCase {
		fold = func(s string) string { return s }
	}
	needle := fold(m.filter)
	m.visible = make([]string, 0, len(m.items))
	for _, it := range m.items {
		if strings.Contains(fold(it), needle) {
			m.visible = append(m.visible, it)
		}
	}
	if m.cursor >= len(m.visible) {
		m.cursor = max(0, len(m.visible)-1)
	}
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(promptStyle.Render("twer> ") + m.filter + "\n\n")

	// Scroll so the cursor stays inside the window.
	start := 0
	if m.cursor >= m.rows {
		start = m.cursor - m.rows + 1
	}
	end := min(len(m.visible), start+m.rows)

	for i := start; i < end; i++ {
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("> "+m.visible[i]) + "\n")
		} else {
			b.WriteString("  " + m.visible[i] + "\n")
		}
	}
	if len(m.visible) == 0 {
		b.WriteString(dimStyle.Render("  (no matches)") + "\n")
	}

	b.WriteString("\n" + dimStyle.Render(fmt.Sprintf("%d/%d  ENTER: play, ESC: quit", len(m.visible), len(m.items))) + "\n")
	return b.String()
}
