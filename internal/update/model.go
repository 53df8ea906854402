package update

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/log"
	"github.com/sandeepkv93/dayplan/internal/model"
	"github.com/sandeepkv93/dayplan/internal/schedule"
)

type StatusBar struct {
	Text    string
	IsError bool
}

// Notification is a conflict report captured from the store.
type Notification struct {
	Message  string
	Existing model.Task
}

type Options struct {
	DefaultPriority model.Priority
	HelpStyle       string
	Logger          *log.Logger
}

type keyMap struct {
	Run     key.Binding
	Dismiss key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Run, k.Dismiss, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Run:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run command")),
		Dismiss: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear input / dismiss")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

type Model struct {
	Listing       Listing
	Notifications []Notification
	Status        StatusBar
	HelpVisible   bool
	Quitting      bool
	LastError     error

	store   *schedule.Store
	inbox   *conflictInbox
	opts    Options
	keys    keyMap
	input   textinput.Model
	helpBar help.Model
}

// NewModel builds the TUI around store and subscribes to its conflict
// notifications.
func NewModel(store *schedule.Store, opts Options) Model {
	if !opts.DefaultPriority.IsValid() {
		opts.DefaultPriority = model.PriorityMedium
	}
	if opts.HelpStyle == "" {
		opts.HelpStyle = "dark"
	}

	in := textinput.New()
	in.Prompt = "> "
	in.Placeholder = "add 09:00 10:00 high Morning Exercise"
	in.CharLimit = 256
	in.Focus()

	inbox := &conflictInbox{}
	store.AddObserver(inbox)

	m := Model{
		store:   store,
		inbox:   inbox,
		opts:    opts,
		keys:    defaultKeyMap(),
		input:   in,
		helpBar: help.New(),
	}
	m.Listing = allTasks(store)
	return m
}

// Input returns the current command line.
func (m Model) Input() string {
	return m.input.Value()
}

func (m Model) actions(shown func(Listing)) Actions {
	return Actions{
		Store:           m.store,
		DefaultPriority: m.opts.DefaultPriority,
		Logger:          m.opts.Logger,
		Shown:           shown,
	}
}

// conflictInbox queues conflicts reported while a command runs.
type conflictInbox struct {
	pending []Notification
}

func (c *conflictInbox) OnConflict(message string, existing model.Task) error {
	c.pending = append(c.pending, Notification{Message: message, Existing: existing})
	return nil
}

func (c *conflictInbox) drain() []Notification {
	out := c.pending
	c.pending = nil
	return out
}
