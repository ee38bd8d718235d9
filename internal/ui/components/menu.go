package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/signaura/signaura/internal/ui/theme"
)

// MenuItem is one selectable entry. Key, when set, activates the item
// directly; Hint is shown next to the selected item.
type MenuItem struct {
	Label  string
	Hint   string
	Key    string
	Action func() tea.Cmd
}

// Menu is a vertical list that wraps around at both ends.
type Menu struct {
	Items    []MenuItem
	Selected int
}

func NewMenu(items []MenuItem) Menu {
	return Menu{Items: items}
}

func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || len(m.Items) == 0 {
		return m, nil
	}

	n := len(m.Items)
	switch key := kmsg.String(); key {
	case "up", "k":
		m.Selected = (m.Selected - 1 + n) % n
	case "down", "j":
		m.Selected = (m.Selected + 1) % n
	case "home":
		m.Selected = 0
	case "end":
		m.Selected = n - 1
	case "enter":
		return m, m.activate(m.Selected)
	default:
		for i, item := range m.Items {
			if item.Key != "" && item.Key == key {
				m.Selected = i
				return m, m.activate(i)
			}
		}
	}
	return m, nil
}

func (m Menu) activate(i int) tea.Cmd {
	if i < 0 || i >= len(m.Items) || m.Items[i].Action == nil {
		return nil
	}
	return m.Items[i].Action()
}

func (m Menu) View() string {
	var b strings.Builder
	for i, item := range m.Items {
		key := "   "
		if item.Key != "" {
			key = "[" + item.Key + "]"
		}
		if i == m.Selected {
			b.WriteString(theme.Selected.Render("▸ " + key + " " + item.Label))
			if item.Hint != "" {
				b.WriteString("  " + theme.Hint.Render(item.Hint))
			}
		} else {
			b.WriteString(theme.Unselected.Render("  " + key + " " + item.Label))
		}
		b.WriteString("\n")
	}
	return b.String()
}
