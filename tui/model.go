// Package tui draws the keyboard in a terminal and feeds mouse clicks to a
// keyboard.Controller.
package tui

import (
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rivo/uniseg"

	"github.com/seqsense/vkeyboard/keyboard"
)

const (
	keyWidth  = 5
	keyGap    = 1
	keysTop   = 2
	rowStride = 2

	defaultShiftLabel     = "Shift"
	defaultBackspaceLabel = "Back"
	spaceLabel            = "Space"
)

func DefaultLayout() keyboard.Layout {
	return keyboard.Layout{
		Rows: [][]string{
			strings.Split("1234567890", ""),
			strings.Split("qwertyuiop", ""),
			strings.Split("asdfghjkl", ""),
			strings.Split("zxcvbnm", ""),
			{spaceLabel},
		},
		Shift:     defaultShiftLabel,
		Backspace: defaultBackspaceLabel,
	}
}

type Model struct {
	kb  *keyboard.Controller
	cfg keyboard.Config

	rows     [][]*control
	controls []*control
	display  *surface

	width int
}

// New lays out the controls of cfg.Layout, or of DefaultLayout when it has
// no rows, and initializes a controller on them.
func New(cfg keyboard.Config, logger *slog.Logger) (*Model, error) {
	layout := cfg.Layout
	if len(layout.Rows) == 0 {
		layout = DefaultLayout()
		if _, ok := cfg.Aliases[spaceLabel]; !ok {
			aliases := map[string]string{spaceLabel: " "}
			for k, v := range cfg.Aliases {
				aliases[k] = v
			}
			cfg.Aliases = aliases
		}
	}
	if layout.Shift == "" {
		layout.Shift = defaultShiftLabel
	}
	if layout.Backspace == "" {
		layout.Backspace = defaultBackspaceLabel
	}

	m := &Model{
		cfg: cfg,
		display: &surface{
			classes: map[string]bool{},
		},
	}
	for _, cl := range selectorClasses(cfg.Display) {
		m.display.classes[cl] = true
	}

	keyClasses := selectorClasses(cfg.Keys)
	wide := 2*keyWidth + keyGap
	y := keysTop
	for _, labels := range layout.Rows {
		var row []*control
		x := 0
		for _, label := range labels {
			w := keyWidth
			if uniseg.StringWidth(label) > keyWidth-2 {
				w = wide
			}
			row = append(row, newControl(label, keyClasses, x, y, w))
			x += w + keyGap
		}
		m.addRow(row)
		y += rowStride
	}
	m.addRow([]*control{
		newControl(layout.Shift, selectorClasses(cfg.Shift), 0, y, wide),
		newControl(layout.Backspace, selectorClasses(cfg.Backspace), wide+keyGap, y, wide),
	})

	m.kb = keyboard.New(m, keyboard.WithConfig(cfg), keyboard.WithLogger(logger))
	if err := m.kb.Initialize(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Model) addRow(row []*control) {
	m.rows = append(m.rows, row)
	m.controls = append(m.controls, row...)
}

func (m *Model) Text() string {
	return m.display.text
}

func (m *Model) Controller() *keyboard.Controller {
	return m.kb
}

func (m *Model) QuerySelectorAll(selector string) []keyboard.Control {
	classes := selectorClasses(selector)
	var cs []keyboard.Control
	for _, c := range m.controls {
		if c.matches(classes) {
			cs = append(cs, c)
		}
	}
	return cs
}

func (m *Model) QuerySelector(selector string) (keyboard.Control, bool) {
	classes := selectorClasses(selector)
	for _, c := range m.controls {
		if c.matches(classes) {
			return c, true
		}
	}
	return nil, false
}

func (m *Model) Surface(selector string) (keyboard.Surface, bool) {
	if !matchClasses(m.display.classes, selectorClasses(selector)) {
		return nil, false
	}
	return m.display, true
}

func (m *Model) controlAt(x, y int) *control {
	for _, c := range m.controls {
		if c.hit(x, y) {
			return c
		}
	}
	return nil
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		}
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			break
		}
		if c := m.controlAt(msg.X, msg.Y); c != nil {
			c.activate()
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}
