package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"diarist/internal/adapters/tui/styles"
	"diarist/internal/domain"
)

// AgendaDay is one day of the agenda with its due reminders.
type AgendaDay struct {
	Date      domain.Date
	Reminders []string
}

// Agenda is a scrolling preview of upcoming reminders.
type Agenda struct {
	days     []AgendaDay
	viewport viewport.Model
	ready    bool
	width    int
	height   int
}

// NewAgenda creates the agenda model.
func NewAgenda(days []AgendaDay) *Agenda {
	return &Agenda{days: days}
}

// Init initializes the model.
func (a *Agenda) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (a *Agenda) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		headerHeight := lipgloss.Height(a.header())
		footerHeight := lipgloss.Height(a.footer())
		if !a.ready {
			a.viewport = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			a.viewport.SetContent(a.content())
			a.ready = true
		} else {
			a.viewport.Width = msg.Width
			a.viewport.Height = msg.Height - headerHeight - footerHeight
		}
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return a, tea.Quit
		}
	}

	var cmd tea.Cmd
	a.viewport, cmd = a.viewport.Update(msg)
	return a, cmd
}

// View renders the agenda.
func (a *Agenda) View() string {
	if !a.ready {
		return "loading..."
	}
	return a.header() + "\n" + a.viewport.View() + "\n" + a.footer()
}

func (a *Agenda) header() string {
	return styles.Title.Render("Agenda")
}

func (a *Agenda) footer() string {
	return styles.Help.Render("↑/↓ scroll · q quit")
}

func (a *Agenda) content() string {
	var sb strings.Builder
	for i, day := range a.days {
		if i > 0 {
			sb.WriteByte('\n')
		}
		heading := styles.DateHeading.Render(day.Date.String()) +
			" " + styles.Weekday.Render(day.Date.Weekday().String())
		sb.WriteString(heading)
		sb.WriteByte('\n')
		if len(day.Reminders) == 0 {
			sb.WriteString(styles.NoReminders.Render("no reminders"))
			sb.WriteByte('\n')
			continue
		}
		for _, reminder := range day.Reminders {
			sb.WriteString(styles.Reminder.Render(reminder))
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
