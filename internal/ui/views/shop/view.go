package shop

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	shopdto "shiddaha/internal/modules/shop/dto"
	"shiddaha/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type ShopPort interface {
	List(ctx context.Context, category string) ([]shopdto.ItemView, error)
	Buy(ctx context.Context, itemID string) (shopdto.PurchaseOutput, error)
	Select(ctx context.Context, itemID string) (shopdto.ItemView, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type ItemsLoadedMsg struct {
	Items []shopdto.ItemView
	Err   error
}

// BoughtMsg bubbles up so the root model can refresh the dates balance.
type BoughtMsg struct {
	Out shopdto.PurchaseOutput
	Err error
}

type SelectedMsg struct {
	Item shopdto.ItemView
	Err  error
}

// ─── list item ───────────────────────────────────────────────────────────────

type shopItem struct {
	item shopdto.ItemView
}

func (i shopItem) Title() string {
	switch {
	case i.item.Selected:
		return i.item.ID + " ✓"
	case i.item.Owned:
		return i.item.ID + " (owned)"
	default:
		return i.item.ID
	}
}

func (i shopItem) Description() string {
	if i.item.Owned {
		return "tap to equip"
	}
	return fmt.Sprintf("%d dates", i.item.Price)
}

func (i shopItem) FilterValue() string { return i.item.ID }

// ─── model ───────────────────────────────────────────────────────────────────

var categories = []string{"tents", "characters"}

type Model struct {
	port     ShopPort
	list     list.Model
	category int
	status   string
	width    int
	height   int
}

func New(port ShopPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.PalmGold).BorderForeground(theme.PalmGold)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sand).BorderForeground(theme.PalmGold)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "THE STORE"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	return Model{port: port, list: l}
}

func (m Model) Init() tea.Cmd {
	return m.loadItemsCmd()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetSize(width, max(height-4, 4))
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "c":
			m.category = (m.category + 1) % len(categories)
			return m, m.loadItemsCmd()
		case "enter":
			selected, ok := m.list.SelectedItem().(shopItem)
			if !ok {
				return m, nil
			}
			if selected.item.Owned {
				return m, m.selectCmd(selected.item.ID)
			}
			return m, m.buyCmd(selected.item.ID)
		}

	case ItemsLoadedMsg:
		if msg.Err != nil {
			m.status = msg.Err.Error()
			return m, nil
		}
		items := make([]list.Item, 0, len(msg.Items))
		for _, item := range msg.Items {
			items = append(items, shopItem{item: item})
		}
		return m, m.list.SetItems(items)

	case BoughtMsg:
		if msg.Err != nil {
			m.status = msg.Err.Error()
			return m, nil
		}
		m.status = fmt.Sprintf("bought %s, balance %d dates", msg.Out.Item.ID, msg.Out.Currency)
		return m, m.loadItemsCmd()

	case SelectedMsg:
		if msg.Err != nil {
			m.status = msg.Err.Error()
			return m, nil
		}
		m.status = "equipped " + msg.Item.ID
		return m, m.loadItemsCmd()
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) loadItemsCmd() tea.Cmd {
	category := categories[m.category]
	return func() tea.Msg {
		items, err := m.port.List(context.Background(), category)
		return ItemsLoadedMsg{Items: items, Err: err}
	}
}

func (m Model) buyCmd(itemID string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Buy(context.Background(), itemID)
		return BoughtMsg{Out: out, Err: err}
	}
}

func (m Model) selectCmd(itemID string) tea.Cmd {
	return func() tea.Msg {
		item, err := m.port.Select(context.Background(), itemID)
		return SelectedMsg{Item: item, Err: err}
	}
}

func (m Model) View() string {
	var b strings.Builder
	tabs := make([]string, 0, len(categories))
	for idx, c := range categories {
		if idx == m.category {
			tabs = append(tabs, theme.Title.Render(c))
		} else {
			tabs = append(tabs, theme.Muted.Render(c))
		}
	}
	b.WriteString(strings.Join(tabs, "  "))
	b.WriteString("\n")
	b.WriteString(m.list.View())
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(theme.Muted.Render(m.status))
	}
	return b.String()
}
