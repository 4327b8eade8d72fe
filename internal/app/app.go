// Package app hosts the root Bubble Tea model: it owns the screen router,
// the header and footer chrome, and global key handling.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jcmontoya/omnilearn/internal/content"
	"github.com/jcmontoya/omnilearn/internal/course"
	"github.com/jcmontoya/omnilearn/internal/router"
	"github.com/jcmontoya/omnilearn/internal/screen"
	"github.com/jcmontoya/omnilearn/internal/screens/learn"
	"github.com/jcmontoya/omnilearn/internal/screens/welcome"
	"github.com/jcmontoya/omnilearn/internal/store"
	"github.com/jcmontoya/omnilearn/internal/ui/layout"
)

// Options carries the dependencies the UI needs.
type Options struct {
	Library *course.Library
	Content *content.Service
	Events  store.EventRepo
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel starting on the welcome splash.
func newAppModel(opts Options) AppModel {
	welcomeScreen := welcome.New(func() screen.Screen {
		return learn.New(opts.Library, opts.Content, opts.Events)
	})
	return AppModel{
		router: router.New(welcomeScreen),
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Esc is left to the screens; they drive their own back navigation.
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()

	// The welcome splash renders without chrome.
	if active != nil && active.Title() == "" {
		v.SetContent(active.View(m.width, m.height))
		return v
	}

	title := ""
	context := ""
	if active != nil {
		title = active.Title()
		if cp, ok := active.(screen.ContextProvider); ok {
			context = cp.HeaderContext()
		}
	}

	header := layout.RenderHeader(title, context, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); len(hints) > 0 {
			footerHints = hints
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	body := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, body, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
