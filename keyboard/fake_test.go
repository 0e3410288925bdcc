package keyboard

import "strings"

type fakeControl struct {
	label     string
	classes   map[string]bool
	listeners []func(Control)
}

func newFakeControl(label string) *fakeControl {
	return &fakeControl{label: label, classes: map[string]bool{}}
}

func (c *fakeControl) Label() string { return c.label }

func (c *fakeControl) ToggleClass(class string) bool {
	c.classes[class] = !c.classes[class]
	return c.classes[class]
}

func (c *fakeControl) OnActivate(fn func(Control)) {
	c.listeners = append(c.listeners, fn)
}

func (c *fakeControl) activate() {
	for _, fn := range c.listeners {
		fn(c)
	}
}

type fakeSurface struct {
	text   string
	writes int
}

func (s *fakeSurface) Text() string { return s.text }

func (s *fakeSurface) SetText(text string) {
	s.text = text
	s.writes++
}

type fakeDocument struct {
	keys      []*fakeControl
	shift     *fakeControl
	backspace *fakeControl
	display   *fakeSurface
}

func newFakeDocument(labels string) *fakeDocument {
	d := &fakeDocument{
		shift:     newFakeControl("Maj"),
		backspace: newFakeControl("←"),
		display:   &fakeSurface{},
	}
	for _, l := range strings.Split(labels, "") {
		d.keys = append(d.keys, newFakeControl(l))
	}
	return d
}

func (d *fakeDocument) key(label string) *fakeControl {
	for _, k := range d.keys {
		if k.label == label {
			return k
		}
	}
	return nil
}

func (d *fakeDocument) QuerySelectorAll(selector string) []Control {
	if selector != defaultKeysSelector {
		return nil
	}
	var cs []Control
	for _, k := range d.keys {
		cs = append(cs, k)
	}
	return cs
}

func (d *fakeDocument) QuerySelector(selector string) (Control, bool) {
	switch {
	case selector == defaultShiftSelector && d.shift != nil:
		return d.shift, true
	case selector == defaultBackspaceSelector && d.backspace != nil:
		return d.backspace, true
	}
	return nil, false
}

func (d *fakeDocument) Surface(selector string) (Surface, bool) {
	if selector != defaultDisplaySelector || d.display == nil {
		return nil, false
	}
	return d.display, true
}
