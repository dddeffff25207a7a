// Package tui provides the interactive terminal floor picker.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/floorcopy/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/floorcopy/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/floorcopy/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/floorcopy/internal/core/domain"
	"github.com/custodia-labs/floorcopy/internal/core/ports/driven"
)

// Ensure Picker implements the interface.
var _ driven.Selection = (*Picker)(nil)

// FloorSource is the part of the model the picker reads.
type FloorSource interface {
	ListFloors(ctx context.Context) ([]domain.Floor, error)
	Openings(ctx context.Context, floorID domain.ElementID) ([]domain.Opening, error)
	Level(ctx context.Context, id domain.ElementID) (*domain.Level, error)
}

// Picker lets the user choose a floor in a full-screen list.
type Picker struct {
	source FloorSource
	styles *styles.Styles
	keys   *keymap.KeyMap
	opts   []tea.ProgramOption
}

// NewPicker creates a picker over source. Program options are passed to
// bubbletea, which lets tests supply input and output.
func NewPicker(source FloorSource, opts ...tea.ProgramOption) *Picker {
	return &Picker{
		source: source,
		styles: styles.DefaultStyles(),
		keys:   keymap.DefaultKeyMap(),
		opts:   opts,
	}
}

// Pick shows the floors accepted by filter and returns the chosen one.
func (p *Picker) Pick(ctx context.Context, filter domain.ElementFilter, prompt string) (domain.ElementID, error) {
	items, err := p.items(ctx, filter)
	if err != nil {
		return "", err
	}
	if len(items) == 0 {
		return "", fmt.Errorf("no selectable floors: %w", domain.ErrNotFound)
	}

	m := newModel(prompt, items, p.styles, p.keys)
	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, p.opts...)
	final, err := tea.NewProgram(m, opts...).Run()
	if ctx.Err() != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrSelectionCancelled, ctx.Err())
	}
	if err != nil {
		return "", fmt.Errorf("run picker: %w", err)
	}

	res, ok := final.(*model)
	if !ok || res.cancelled || res.chosen == "" {
		return "", domain.ErrSelectionCancelled
	}
	return res.chosen, nil
}

func (p *Picker) items(ctx context.Context, filter domain.ElementFilter) ([]list.Item, error) {
	floors, err := p.source.ListFloors(ctx)
	if err != nil {
		return nil, fmt.Errorf("list floors: %w", err)
	}

	items := make([]list.Item, 0, len(floors))
	for i := range floors {
		f := floors[i]
		if filter != nil && !filter(f.Element()) {
			continue
		}
		openings, err := p.source.Openings(ctx, f.ID)
		if err != nil {
			return nil, fmt.Errorf("list openings of %s: %w", f.ID, err)
		}
		level := string(f.LevelID)
		if l, err := p.source.Level(ctx, f.LevelID); err == nil {
			level = l.Name
		}
		items = append(items, list.Item{Floor: f, Level: level, Openings: len(openings)})
	}
	return items, nil
}

// model is the bubbletea model behind Pick.
type model struct {
	prompt    string
	list      *list.FloorList
	keys      *keymap.KeyMap
	help      help.Model
	styles    *styles.Styles
	chosen    domain.ElementID
	cancelled bool
}

func newModel(prompt string, items []list.Item, s *styles.Styles, keys *keymap.KeyMap) *model {
	l := list.NewFloorList(s)
	l.SetItems(items)
	return &model{
		prompt: prompt,
		list:   l,
		keys:   keys,
		help:   help.New(),
		styles: s,
	}
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		// Title, frame borders and help take six rows.
		m.list.SetDimensions(msg.Width-4, max(1, msg.Height-6))
		return m, nil

	case tea.KeyMsg:
		k := msg.String()
		switch {
		case keymap.Matches(k, m.keys.Cancel):
			m.cancelled = true
			return m, tea.Quit
		case keymap.Matches(k, m.keys.Select):
			if item := m.list.SelectedItem(); item != nil {
				m.chosen = item.Floor.ID
			}
			return m, tea.Quit
		case keymap.Matches(k, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
		m.list.Update(msg)
	}
	return m, nil
}

func (m *model) View() string {
	if m.chosen != "" || m.cancelled {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.styles.Title.Render(m.prompt))
	b.WriteString("\n")
	b.WriteString(m.styles.Frame.Render(m.list.View()))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}
