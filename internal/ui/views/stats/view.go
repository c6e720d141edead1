package stats

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	sessiondto "shiddaha/internal/modules/session/dto"
	"shiddaha/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type StatsPort interface {
	Weekly(ctx context.Context) (sessiondto.WeeklyOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type WeeklyLoadedMsg struct {
	Out sessiondto.WeeklyOutput
	Err error
}

// ─── model ───────────────────────────────────────────────────────────────────

var dayNames = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Model renders the weekly focus progress chart: one bar of palms per day,
// today highlighted.
type Model struct {
	port    StatsPort
	weekly  sessiondto.WeeklyOutput
	loaded  bool
	errText string
}

func New(port StatsPort) Model {
	return Model{port: port}
}

func (m Model) Init() tea.Cmd {
	return m.loadCmd()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case WeeklyLoadedMsg:
		if msg.Err != nil {
			m.errText = msg.Err.Error()
			return m, nil
		}
		m.weekly = msg.Out
		m.loaded = true
		m.errText = ""
	case tea.KeyMsg:
		if msg.String() == "r" {
			return m, m.loadCmd()
		}
	}
	return m, nil
}

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Weekly(context.Background())
		return WeeklyLoadedMsg{Out: out, Err: err}
	}
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Weekly Focus Progress"))
	b.WriteString("\n\n")
	if m.errText != "" {
		b.WriteString(theme.Danger.Render(m.errText))
		return b.String()
	}
	if !m.loaded {
		b.WriteString(theme.Muted.Render("loading..."))
		return b.String()
	}
	for idx, minutes := range m.weekly.DailyMinutes {
		name := dayNames[idx]
		line := fmt.Sprintf("%s %4dm %s", name, minutes, strings.Repeat("🌴", bars(minutes)))
		if idx == m.weekly.Today {
			b.WriteString(theme.Good.Render(line))
		} else {
			b.WriteString(theme.Muted.Render(line))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("total this week: %s", theme.Dates.Render(fmt.Sprintf("%dm", m.weekly.TotalMinutes))))
	b.WriteString("\n\n")
	b.WriteString(theme.Muted.Render("r refresh"))
	return b.String()
}

// bars maps minutes to palm icons, one per half hour, capped at a row.
func bars(minutes int) int {
	n := minutes / 30
	if n > 12 {
		return 12
	}
	return n
}
