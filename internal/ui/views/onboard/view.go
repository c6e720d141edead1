package onboard

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	profiledto "shiddaha/internal/modules/profile/dto"
	"shiddaha/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type ProfilePort interface {
	Create(ctx context.Context, characterID, name string) (profiledto.ProfileOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type CreatedMsg struct {
	Profile profiledto.ProfileOutput
	Err     error
}

// ─── model ───────────────────────────────────────────────────────────────────

var characters = []string{"char_boy", "char_girl"}

type step int

const (
	stepChoose step = iota
	stepName
)

// Model is the two-step onboarding flow: pick a character, then name it.
type Model struct {
	port     ProfilePort
	step     step
	selected int
	name     textinput.Model
	errText  string
}

func New(port ProfilePort) Model {
	name := textinput.New()
	name.Placeholder = "name your character"
	name.CharLimit = 24
	name.Width = 24
	return Model{port: port, name: name}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.step {
		case stepChoose:
			switch msg.String() {
			case "left", "h":
				if m.selected > 0 {
					m.selected--
				}
			case "right", "l":
				if m.selected < len(characters)-1 {
					m.selected++
				}
			case "enter":
				m.step = stepName
				m.errText = ""
				return m, m.name.Focus()
			}
		case stepName:
			switch msg.String() {
			case "esc":
				m.step = stepChoose
				m.name.Reset()
				m.errText = ""
				return m, nil
			case "enter":
				if strings.TrimSpace(m.name.Value()) == "" {
					m.errText = "a name is required"
					return m, nil
				}
				return m, m.createCmd(characters[m.selected], m.name.Value())
			}
			var cmd tea.Cmd
			m.name, cmd = m.name.Update(msg)
			return m, cmd
		}

	case CreatedMsg:
		if msg.Err != nil {
			m.errText = msg.Err.Error()
		}
	}
	return m, nil
}

func (m Model) createCmd(characterID, name string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Create(context.Background(), characterID, name)
		return CreatedMsg{Profile: out, Err: err}
	}
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("choose your character"))
	b.WriteString("\n\n")

	if m.step == stepChoose {
		cards := make([]string, 0, len(characters))
		for idx, id := range characters {
			style := theme.Panel
			if idx == m.selected {
				style = theme.PanelActive
			}
			cards = append(cards, style.Render(id))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
		b.WriteString("\n\n")
		b.WriteString(theme.Muted.Render("←/→ choose · enter confirm"))
	} else {
		b.WriteString(theme.Panel.Render(characters[m.selected]))
		b.WriteString("\n\n")
		b.WriteString(m.name.View())
		b.WriteString("\n\n")
		b.WriteString(theme.Muted.Render("enter save · esc back"))
	}
	if m.errText != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Danger.Render(m.errText))
	}
	return b.String()
}
