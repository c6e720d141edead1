package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	profiledto "shiddaha/internal/modules/profile/dto"
	"shiddaha/internal/platform/config"
	apperrors "shiddaha/internal/platform/errors"
	"shiddaha/internal/ui/theme"
	focusview "shiddaha/internal/ui/views/focus"
	onboardview "shiddaha/internal/ui/views/onboard"
	shopview "shiddaha/internal/ui/views/shop"
	statsview "shiddaha/internal/ui/views/stats"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type profilePort interface {
	onboardview.ProfilePort
	Get(ctx context.Context) (profiledto.ProfileOutput, error)
}

type sessionPort interface {
	focusview.SessionPort
	statsview.StatsPort
}

// ─── screens ─────────────────────────────────────────────────────────────────

type screenID int

const (
	screenOnboard screenID = iota
	screenHome
	screenFocus
	screenShop
	screenStats
)

// ─── async messages ──────────────────────────────────────────────────────────

type profileLoadedMsg struct {
	profile profiledto.ProfileOutput
	err     error
}

// ─── key bindings ────────────────────────────────────────────────────────────

type keyMap struct {
	Home  key.Binding
	Focus key.Binding
	Shop  key.Binding
	Stats key.Binding
	Help  key.Binding
	Quit  key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Home:  key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "home")),
		Focus: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "focus")),
		Shop:  key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "shop")),
		Stats: key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "progress")),
		Help:  key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Home, k.Focus, k.Shop, k.Stats, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Home, k.Focus, k.Shop, k.Stats},
		{k.Help, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns screen routing and the profile
// snapshot shown in the header; all business logic is behind the ports, all
// screen rendering behind the sub-views.
type Model struct {
	profile profilePort

	onboardView onboardview.Model
	focusView   focusview.Model
	shopView    shopview.Model
	statsView   statsview.Model

	screen     screenID
	current    profiledto.ProfileOutput
	hasProfile bool
	keys       keyMap
	help       help.Model
	showHelp   bool
	status     string
	width      int
	height     int
}

func NewModel(profile profilePort, session sessionPort, shop shopview.ShopPort, rules config.SessionRules) Model {
	return Model{
		profile:     profile,
		onboardView: onboardview.New(profile),
		focusView:   focusview.New(session, rules),
		shopView:    shopview.New(shop),
		statsView:   statsview.New(session),
		screen:      screenHome,
		keys:        defaultKeys(),
		help:        help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return m.loadProfileCmd()
}

func (m Model) loadProfileCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.profile.Get(context.Background())
		return profileLoadedMsg{profile: out, err: err}
	}
}

// ─── update ──────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.shopView.SetSize(msg.Width-4, msg.Height-6)

	case profileLoadedMsg:
		if msg.err != nil {
			if errors.Is(msg.err, apperrors.ErrNoProfile) {
				m.screen = screenOnboard
				m.hasProfile = false
				return m, nil
			}
			m.status = "load profile: " + msg.err.Error()
			return m, nil
		}
		m.hasProfile = true
		m.current = msg.profile
		if m.screen == screenOnboard {
			m.screen = screenHome
		}
		return m, nil

	case onboardview.CreatedMsg:
		if msg.Err == nil {
			m.hasProfile = true
			m.current = msg.Profile
			m.screen = screenHome
			m.status = "welcome, " + msg.Profile.CharacterName
			return m, nil
		}

	case focusview.CompletedMsg:
		m.current.Currency = msg.Currency
		m.current.TotalMinutesStudied += msg.DatesEarned
		m.status = fmt.Sprintf("+%d dates", msg.DatesEarned)

	case shopview.BoughtMsg:
		if msg.Err == nil {
			// Ownership changed too; re-read the whole snapshot.
			var cmd tea.Cmd
			m.shopView, cmd = m.shopView.Update(msg)
			return m, tea.Batch(cmd, m.loadProfileCmd())
		}

	case shopview.SelectedMsg:
		if msg.Err == nil {
			var cmd tea.Cmd
			m.shopView, cmd = m.shopView.Update(msg)
			return m, tea.Batch(cmd, m.loadProfileCmd())
		}

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if m.screen != screenOnboard && !m.focusView.Active() {
			switch {
			case key.Matches(msg, m.keys.Help):
				m.showHelp = !m.showHelp
				return m, nil
			case key.Matches(msg, m.keys.Home):
				m.screen = screenHome
				return m, nil
			case key.Matches(msg, m.keys.Focus):
				m.screen = screenFocus
				return m, nil
			case key.Matches(msg, m.keys.Shop):
				m.screen = screenShop
				return m, tea.Batch(m.shopView.Init(), m.loadProfileCmd())
			case key.Matches(msg, m.keys.Stats):
				m.screen = screenStats
				return m, m.statsView.Init()
			}
		}
	}

	return m.routeToScreen(msg)
}

// routeToScreen forwards a message to the sub-view owning it. Focus timer
// messages are delivered even when another screen is shown so a session
// keeps ticking in the background.
func (m Model) routeToScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg.(type) {
	case focusview.StartedMsg, focusview.TickedMsg, focusview.CancelledMsg:
		m.focusView, cmd = m.focusView.Update(msg)
		return m, cmd
	case onboardview.CreatedMsg:
		m.onboardView, cmd = m.onboardView.Update(msg)
		return m, cmd
	case shopview.ItemsLoadedMsg, shopview.BoughtMsg, shopview.SelectedMsg:
		m.shopView, cmd = m.shopView.Update(msg)
		return m, cmd
	case statsview.WeeklyLoadedMsg:
		m.statsView, cmd = m.statsView.Update(msg)
		return m, cmd
	}

	switch m.screen {
	case screenOnboard:
		m.onboardView, cmd = m.onboardView.Update(msg)
	case screenFocus:
		m.focusView, cmd = m.focusView.Update(msg)
	case screenShop:
		m.shopView, cmd = m.shopView.Update(msg)
	case screenStats:
		m.statsView, cmd = m.statsView.Update(msg)
	}
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	var body string
	switch m.screen {
	case screenOnboard:
		body = m.onboardView.View()
	case screenHome:
		body = m.homeView()
	case screenFocus:
		body = m.focusView.View()
	case screenShop:
		body = m.shopView.View()
	case screenStats:
		body = m.statsView.View()
	}

	sections := []string{m.headerView(), body}
	if m.showHelp {
		sections = append(sections, m.help.FullHelpView(m.keys.FullHelp()))
	} else {
		sections = append(sections, m.help.ShortHelpView(m.keys.ShortHelp()))
	}
	if m.status != "" {
		sections = append(sections, theme.Muted.Render(m.status))
	}
	return theme.App.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) headerView() string {
	title := theme.Title.Render("Shiddaha")
	if !m.hasProfile {
		return title
	}
	balance := theme.Dates.Render(fmt.Sprintf("%d dates", m.current.Currency))
	return lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", theme.Muted.Render(m.current.CharacterName), "  ", balance)
}

func (m Model) homeView() string {
	var b strings.Builder
	b.WriteString(theme.Panel.Render(fmt.Sprintf("⛺ %s", m.current.SelectedTentID)))
	b.WriteString("\n")
	b.WriteString(theme.Panel.Render(fmt.Sprintf("%s the %s", m.current.CharacterName, m.current.CharacterImageID)))
	b.WriteString("\n\n")
	b.WriteString(theme.Muted.Render(fmt.Sprintf("lifetime focus: %dm", m.current.TotalMinutesStudied)))
	return b.String()
}
