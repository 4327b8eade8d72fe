package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jcmontoya/omnilearn/internal/ui/theme"
)

// MultiChoice is a multiple-choice selector component. Enter commits the
// highlighted option; the choice stays editable until Reveal marks the
// component as graded.
type MultiChoice struct {
	Question     string
	Options      []string
	CorrectIndex int
	Selected     int
	// Chosen is the committed option index, -1 while unanswered.
	Chosen   int
	Revealed bool
}

// NewMultiChoice creates a new multiple-choice component.
func NewMultiChoice(question string, options []string, correctIndex int) MultiChoice {
	return MultiChoice{
		Question:     question,
		Options:      options,
		CorrectIndex: correctIndex,
		Selected:     0,
		Chosen:       -1,
	}
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Revealed {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "enter":
		m.Chosen = m.Selected
	}

	return m, nil
}

// Choose commits an option directly, for letter or number key shortcuts.
func (m *MultiChoice) Choose(i int) {
	if m.Revealed || i < 0 || i >= len(m.Options) {
		return
	}
	m.Chosen = i
	m.Selected = i
}

// Reveal freezes the component and shows the correct answer.
func (m *MultiChoice) Reveal() {
	m.Revealed = true
}

// Answered returns true once an option has been committed.
func (m MultiChoice) Answered() bool {
	return m.Chosen >= 0
}

// IsCorrect returns true if the committed choice is the correct one.
func (m MultiChoice) IsCorrect() bool {
	return m.Revealed && m.Chosen == m.CorrectIndex
}

// View renders the multiple-choice component.
func (m MultiChoice) View() string {
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := questionStyle.Render(m.Question) + "\n\n"

	labels := []string{"A", "B", "C", "D"}

	for i, opt := range m.Options {
		label := ""
		if i < len(labels) {
			label = labels[i]
		}

		if m.Revealed {
			line := fmt.Sprintf("    %s)  %s", label, opt)
			if i == m.CorrectIndex {
				s += lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render("  ✓"+line[3:]) + "\n"
			} else if i == m.Chosen {
				s += lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render("  ✗"+line[3:]) + "\n"
			} else {
				s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
			}
			continue
		}

		marker := "○"
		if i == m.Chosen {
			marker = "●"
		}
		prefix := "  "
		if i == m.Selected {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s %s)  %s", prefix, marker, label, opt)

		if i == m.Selected {
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		} else if i == m.Chosen {
			s += lipgloss.NewStyle().Foreground(theme.Secondary).Render(line) + "\n"
		} else {
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	return s
}
