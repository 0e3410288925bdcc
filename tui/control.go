package tui

import (
	"strings"

	"github.com/seqsense/vkeyboard/keyboard"
)

// control is a key drawn at a fixed terminal cell range.
type control struct {
	label   string
	classes map[string]bool

	x, y, width int

	fns []func(keyboard.Control)
}

func newControl(label string, classes []string, x, y, width int) *control {
	c := &control{
		label:   label,
		classes: map[string]bool{},
		x:       x,
		y:       y,
		width:   width,
	}
	for _, cl := range classes {
		c.classes[cl] = true
	}
	return c
}

func (c *control) Label() string {
	return c.label
}

func (c *control) ToggleClass(class string) bool {
	c.classes[class] = !c.classes[class]
	return c.classes[class]
}

func (c *control) OnActivate(fn func(keyboard.Control)) {
	c.fns = append(c.fns, fn)
}

func (c *control) activate() {
	for _, fn := range c.fns {
		fn(c)
	}
}

func (c *control) hit(x, y int) bool {
	return y == c.y && x >= c.x && x < c.x+c.width
}

func (c *control) matches(classes []string) bool {
	return matchClasses(c.classes, classes)
}

type surface struct {
	text    string
	classes map[string]bool
}

func (s *surface) Text() string {
	return s.text
}

func (s *surface) SetText(text string) {
	s.text = text
}

// selectorClasses extracts the class names of a CSS selector. The terminal
// has no element tree, so ".screen .text" selects anything carrying both
// classes and tag or id parts are ignored.
func selectorClasses(selector string) []string {
	var classes []string
	for _, compound := range strings.Fields(selector) {
		parts := strings.Split(compound, ".")
		for _, p := range parts[1:] {
			if p != "" {
				classes = append(classes, p)
			}
		}
	}
	return classes
}

func matchClasses(has map[string]bool, want []string) bool {
	if len(want) == 0 {
		return false
	}
	for _, cl := range want {
		if !has[cl] {
			return false
		}
	}
	return true
}
