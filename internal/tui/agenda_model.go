package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mvcarvalho/clinigo/internal/dates"
	"github.com/mvcarvalho/clinigo/internal/db"
	"github.com/mvcarvalho/clinigo/internal/models"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorPrimaryText)).
			Bold(true)
	dateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorAccentMain)).
			Bold(true)
	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSecondaryText))
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorHelpText))
	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorErrorText))
	pendingCellStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorPendingText))
	paidCellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorPaidText))
	borderStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(ColorBorder))
)

// AgendaModel browses the clinic's day schedule: booked sessions on
// top, declared availability below, one date at a time.
type AgendaModel struct {
	date         string // storage form
	sessions     table.Model
	availability table.Model
	err          error
	quitting     bool
}

// NewAgendaModel creates the agenda browser positioned on date
func NewAgendaModel(date string) AgendaModel {
	sessionCols := []table.Column{
		{Title: "Start", Width: 7},
		{Title: "End", Width: 7},
		{Title: "Patient", Width: 26},
		{Title: "Therapist", Width: 22},
		{Title: "Payment", Width: 9},
	}
	availabilityCols := []table.Column{
		{Title: "Therapist", Width: 28},
		{Title: "From", Width: 7},
		{Title: "To", Width: 7},
	}

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Foreground(lipgloss.Color(ColorSecondaryText)).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		BorderBottom(true).
		Bold(false)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Background(lipgloss.Color(ColorAccentMain)).
		Bold(false)

	sessions := table.New(
		table.WithColumns(sessionCols),
		table.WithFocused(true),
		table.WithHeight(8),
	)
	sessions.SetStyles(styles)

	availability := table.New(
		table.WithColumns(availabilityCols),
		table.WithHeight(6),
	)
	availability.SetStyles(styles)

	m := AgendaModel{
		date:         date,
		sessions:     sessions,
		availability: availability,
	}
	m.reload()
	return m
}

// reload fetches both tables for the current date
func (m *AgendaModel) reload() {
	m.err = nil

	daySessions, err := db.GetSessionsByDate(m.date)
	if err != nil {
		m.err = err
		return
	}
	sessionRows := make([]table.Row, 0, len(daySessions))
	for _, session := range daySessions {
		therapistName := "-"
		if session.Therapist != nil {
			therapistName = session.Therapist.Name
		}
		payment := pendingCellStyle.Render(session.PaymentStatus)
		if session.PaymentStatus == models.PaymentPaid {
			payment = paidCellStyle.Render(session.PaymentStatus)
		}
		sessionRows = append(sessionRows, table.Row{
			session.StartTime,
			session.EndTime,
			session.Patient.Name,
			therapistName,
			payment,
		})
	}
	m.sessions.SetRows(sessionRows)

	slots, err := db.GetDayAvailability(m.date)
	if err != nil {
		m.err = err
		return
	}
	availabilityRows := make([]table.Row, 0, len(slots))
	for _, slot := range slots {
		availabilityRows = append(availabilityRows, table.Row{
			slot.TherapistName,
			slot.StartTime,
			slot.EndTime,
		})
	}
	m.availability.SetRows(availabilityRows)
}

func (m AgendaModel) Init() tea.Cmd {
	return nil
}

func (m AgendaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "left", "h":
			m.date = dates.AddDays(m.date, -1)
			m.reload()
			return m, nil
		case "right", "l":
			m.date = dates.AddDays(m.date, 1)
			m.reload()
			return m, nil
		case "t":
			m.date = dates.Today()
			m.reload()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.sessions, cmd = m.sessions.Update(msg)
	return m, cmd
}

func (m AgendaModel) View() string {
	if m.quitting {
		return ""
	}

	header := fmt.Sprintf("%s  %s",
		titleStyle.Render("Agenda"),
		dateStyle.Render(dates.ToDisplay(m.date)))

	if m.err != nil {
		return header + "\n" + errStyle.Render(fmt.Sprintf("error: %v", m.err)) + "\n"
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		header,
		sectionStyle.Render("Sessions"),
		borderStyle.Render(m.sessions.View()),
		sectionStyle.Render("Availability"),
		borderStyle.Render(m.availability.View()),
		helpStyle.Render("←/→ day · t today · q quit"),
	)
	return body + "\n"
}
