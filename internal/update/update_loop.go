package update

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/dayplan/internal/views"
)

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(typed)
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Run):
		return m.executeLine()
	case key.Matches(msg, m.keys.Dismiss):
		if m.input.Value() == "" {
			m.Notifications = nil
		}
		m.input.SetValue("")
		return m, nil
	case key.Matches(msg, m.keys.Help) && m.input.Value() == "":
		m.HelpVisible = !m.HelpVisible
		return m, nil
	}

	if msg.Type == tea.KeyRunes {
		m.input.SetValue(m.input.Value() + string(msg.Runes))
		m.input.CursorEnd()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) executeLine() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")
	if line == "" {
		return m, nil
	}
	switch strings.ToLower(strings.TrimPrefix(line, "/")) {
	case "quit", "exit":
		m.Quitting = true
		return m, tea.Quit
	case "help":
		m.HelpVisible = !m.HelpVisible
		return m, nil
	}

	res, err := m.actions(func(l Listing) { m.Listing = l }).Run(line)
	if conflicts := m.inbox.drain(); len(conflicts) > 0 {
		m.Notifications = conflicts
	}
	if err != nil {
		m.LastError = err
		m.Status = StatusBar{Text: "Error: " + err.Error(), IsError: true}
		return m, nil
	}

	m.LastError = nil
	m.Status = StatusBar{Text: res.Message}
	m.Listing = m.Listing.Refresh(m.store)
	return m, nil
}

func (m Model) View() string {
	if m.Quitting {
		return "Thank you for using dayplan!\n"
	}

	pane := m.Listing.Render()
	if m.HelpVisible {
		pane = views.RenderMarkdown(helpMarkdown, m.opts.HelpStyle)
	}

	var notes []string
	for _, n := range m.Notifications {
		notes = append(notes, views.RenderConflict(n.Message, n.Existing.String()))
	}

	return views.RenderApp(views.AppData{
		Header:       fmt.Sprintf("DAILY SCHEDULE ORGANIZER  (%d task(s))", m.store.Count()),
		SchedulePane: pane,
		Notification: strings.Join(notes, "\n"),
		InputLine:    m.input.View(),
		StatusLine:   m.Status.Text,
		StatusError:  m.Status.IsError,
		Footer:       m.helpBar.View(m.keys),
	})
}
