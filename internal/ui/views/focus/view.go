package focus

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	sessiondto "shiddaha/internal/modules/session/dto"
	"shiddaha/internal/platform/config"
	"shiddaha/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type SessionPort interface {
	Start(ctx context.Context, durationMinutes int) (sessiondto.SessionState, error)
	Tick(ctx context.Context) (sessiondto.TickOutput, error)
	Cancel(ctx context.Context) (sessiondto.SessionState, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type StartedMsg struct {
	State sessiondto.SessionState
	Err   error
}

type TickedMsg struct {
	Out sessiondto.TickOutput
	Err error
}

type CancelledMsg struct {
	Err error
}

// CompletedMsg bubbles up so the root model can refresh the dates balance.
type CompletedMsg struct {
	DatesEarned int
	Currency    int
}

type tickScheduleMsg time.Time

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the focus session screen: duration picker, then the live timer.
// One tea.Tick per second drives the controller; the machine never advances
// anywhere else while this screen owns it.
type Model struct {
	port SessionPort

	minutes     int
	minMinutes  int
	maxMinutes  int
	stepMinutes int

	state      sessiondto.SessionState
	active     bool
	confirming bool
	errText    string
	doneText   string
}

func New(port SessionPort, rules config.SessionRules) Model {
	minutes := 25
	if minutes < rules.MinMinutes || minutes > rules.MaxMinutes || minutes%rules.StepMinutes != 0 {
		minutes = rules.MinMinutes
	}
	return Model{
		port:        port,
		minutes:     minutes,
		minMinutes:  rules.MinMinutes,
		maxMinutes:  rules.MaxMinutes,
		stepMinutes: rules.StepMinutes,
	}
}

func (m Model) Active() bool { return m.active }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKeys(msg)

	case StartedMsg:
		if msg.Err != nil {
			m.errText = msg.Err.Error()
			return m, nil
		}
		m.active = true
		m.doneText = ""
		m.errText = ""
		m.state = msg.State
		return m, scheduleTick()

	case tickScheduleMsg:
		if !m.active {
			return m, nil
		}
		return m, m.tickCmd()

	case TickedMsg:
		if msg.Err != nil {
			// Persistence failed mid-credit; keep ticking, the controller
			// retries on the next tick.
			m.errText = msg.Err.Error()
			return m, scheduleTick()
		}
		m.errText = ""
		m.state = msg.Out.State
		if msg.Out.Completed {
			m.active = false
			m.doneText = fmt.Sprintf("session complete! +%d dates", msg.Out.DatesEarned)
			return m, func() tea.Msg {
				return CompletedMsg{DatesEarned: msg.Out.DatesEarned, Currency: msg.Out.Currency}
			}
		}
		return m, scheduleTick()

	case CancelledMsg:
		m.active = false
		m.confirming = false
		if msg.Err != nil {
			m.errText = msg.Err.Error()
		} else {
			m.doneText = "session cancelled, no dates earned"
		}
	}
	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.confirming {
		switch msg.String() {
		case "y":
			m.confirming = false
			return m, m.cancelCmd()
		case "n", "esc":
			m.confirming = false
		}
		return m, nil
	}
	if m.active {
		if msg.String() == "x" || msg.String() == "esc" {
			// "You won't earn any dates if you stop now."
			m.confirming = true
		}
		return m, nil
	}
	switch msg.String() {
	case "+", "=", "right":
		if m.minutes+m.stepMinutes <= m.maxMinutes {
			m.minutes += m.stepMinutes
		}
	case "-", "left":
		if m.minutes-m.stepMinutes >= m.minMinutes {
			m.minutes -= m.stepMinutes
		}
	case "enter":
		return m, m.startCmd()
	}
	return m, nil
}

func scheduleTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickScheduleMsg(t)
	})
}

func (m Model) startCmd() tea.Cmd {
	minutes := m.minutes
	return func() tea.Msg {
		state, err := m.port.Start(context.Background(), minutes)
		return StartedMsg{State: state, Err: err}
	}
}

func (m Model) tickCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Tick(context.Background())
		return TickedMsg{Out: out, Err: err}
	}
}

func (m Model) cancelCmd() tea.Cmd {
	return func() tea.Msg {
		_, err := m.port.Cancel(context.Background())
		return CancelledMsg{Err: err}
	}
}

func (m Model) View() string {
	var b strings.Builder
	if m.confirming {
		b.WriteString(theme.Title.Render("stop focus session?"))
		b.WriteString("\n\n")
		b.WriteString("You won't earn any dates if you stop now.")
		b.WriteString("\n\n")
		b.WriteString(theme.Muted.Render("y stop · n keep going"))
		return b.String()
	}

	if m.active {
		switch m.state.Phase {
		case "countdown":
			b.WriteString(theme.Title.Render("get ready!"))
			b.WriteString("\n\n")
			b.WriteString(theme.BigTimer.Render(formatClock(m.state.TotalSeconds)))
			b.WriteString("\n")
			b.WriteString(theme.Muted.Render(fmt.Sprintf("starting in %d...", m.state.CountdownRemaining)))
		default:
			b.WriteString(theme.Title.Render("time left"))
			b.WriteString("\n\n")
			b.WriteString(theme.BigTimer.Render(formatClock(m.state.RemainingSeconds)))
			b.WriteString("\n")
			b.WriteString(theme.Muted.Render("mind your business!"))
		}
		b.WriteString("\n\n")
		b.WriteString(theme.Muted.Render("x stop focus"))
	} else {
		b.WriteString(theme.Title.Render("focus session"))
		b.WriteString("\n\n")
		b.WriteString(theme.BigTimer.Render(formatDuration(m.minutes)))
		b.WriteString("\n")
		b.WriteString(theme.Muted.Render("-/+ adjust · enter start"))
	}
	if m.doneText != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Good.Render(m.doneText))
	}
	if m.errText != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Danger.Render(m.errText))
	}
	return b.String()
}

// formatClock renders seconds as MM:SS, the running timer format.
func formatClock(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// formatDuration renders whole minutes as HH:MM, the picker format.
func formatDuration(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
