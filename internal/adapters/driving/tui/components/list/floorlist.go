// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/floorcopy/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/floorcopy/internal/core/domain"
)

// Item is one selectable floor with the context shown next to it.
type Item struct {
	Floor    domain.Floor
	Level    string
	Openings int
}

// FloorList displays floors in a navigable list.
type FloorList struct {
	items    []Item
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewFloorList creates a new floor list component.
func NewFloorList(s *styles.Styles) *FloorList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &FloorList{
		styles: s,
		width:  80,
		height: 10,
	}
}

// Update handles list navigation messages.
func (l *FloorList) Update(msg tea.Msg) (*FloorList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			l.MoveUp()
		case "down", "j":
			l.MoveDown()
		case "home", "g":
			l.selected = 0
		case "end", "G":
			if len(l.items) > 0 {
				l.selected = len(l.items) - 1
			}
		}
	}
	return l, nil
}

// View renders the visible window of the list.
func (l *FloorList) View() string {
	if len(l.items) == 0 {
		return l.styles.Muted.Render("No floors")
	}

	visible := l.height
	if visible < 1 {
		visible = 1
	}
	start := 0
	if l.selected >= visible {
		start = l.selected - visible + 1
	}
	end := start + visible
	if end > len(l.items) {
		end = len(l.items)
	}

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		lines = append(lines, l.renderItem(i, &l.items[i]))
	}
	return strings.Join(lines, "\n")
}

func (l *FloorList) renderItem(index int, item *Item) string {
	indicator := "  "
	if index == l.selected {
		indicator = "> "
	}

	name := item.Floor.Name
	if name == "" {
		name = "(unnamed)"
	}
	maxName := l.width - 40
	if maxName < 10 {
		maxName = 10
	}
	if len(name) > maxName {
		name = name[:maxName-3] + "..."
	}

	label := fmt.Sprintf("%s%-*s", indicator, maxName, name)
	if index == l.selected {
		label = l.styles.Selected.Render(label)
	} else {
		label = l.styles.Normal.Render(label)
	}

	line := label + "  " + l.styles.Level.Render(item.Level) +
		l.styles.Muted.Render(fmt.Sprintf("  %d openings", item.Openings))
	if item.Floor.Temporary {
		line += "  " + l.styles.Temporary.Render("temporary")
	}
	return line
}

// SetItems replaces the list contents and resets the selection.
func (l *FloorList) SetItems(items []Item) {
	l.items = items
	l.selected = 0
}

// Items returns the current items.
func (l *FloorList) Items() []Item {
	return l.items
}

// Selected returns the index of the highlighted item.
func (l *FloorList) Selected() int {
	return l.selected
}

// SetSelected sets the highlighted index.
func (l *FloorList) SetSelected(index int) {
	if index >= 0 && index < len(l.items) {
		l.selected = index
	}
}

// SelectedItem returns the highlighted item, or nil if the list is empty.
func (l *FloorList) SelectedItem() *Item {
	if len(l.items) == 0 {
		return nil
	}
	return &l.items[l.selected]
}

// MoveUp moves the highlight up.
func (l *FloorList) MoveUp() {
	if l.selected > 0 {
		l.selected--
	}
}

// MoveDown moves the highlight down.
func (l *FloorList) MoveDown() {
	if l.selected < len(l.items)-1 {
		l.selected++
	}
}

// SetDimensions sets the width and the number of visible rows.
func (l *FloorList) SetDimensions(width, height int) {
	l.width = width
	l.height = height
}

// Count returns the number of items.
func (l *FloorList) Count() int {
	return len(l.items)
}
