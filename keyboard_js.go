package main

import (
	"github.com/seqsense/vkeyboard/dom"
	"github.com/seqsense/vkeyboard/keyboard"
)

type domControl struct {
	el dom.Element
}

func (c domControl) Label() string {
	return c.el.TextContent()
}

func (c domControl) ToggleClass(class string) bool {
	return c.el.ClassList().Toggle(class)
}

// OnActivate passes the element the listener is attached to, so that a
// click on a child of the key still reports the key itself.
func (c domControl) OnActivate(fn func(keyboard.Control)) {
	c.el.OnClick(func(e dom.MouseEvent) {
		if e.Button != dom.MouseButtonMain && e.Button != dom.MouseButtonNull {
			return
		}
		e.PreventDefault()
		fn(domControl{el: e.CurrentTarget()})
	})
}

type domSurface struct {
	el dom.Element
}

func (s domSurface) Text() string {
	return s.el.TextContent()
}

func (s domSurface) SetText(text string) {
	s.el.SetTextContent(text)
}

type domDocument struct {
	doc dom.Document
}

func (d domDocument) QuerySelectorAll(selector string) []keyboard.Control {
	els := d.doc.QuerySelectorAll(selector)
	cs := make([]keyboard.Control, 0, len(els))
	for _, el := range els {
		cs = append(cs, domControl{el: el})
	}
	return cs
}

func (d domDocument) QuerySelector(selector string) (keyboard.Control, bool) {
	el, ok := d.doc.QuerySelector(selector)
	if !ok {
		return nil, false
	}
	return domControl{el: el}, true
}

func (d domDocument) Surface(selector string) (keyboard.Surface, bool) {
	el, ok := d.doc.QuerySelector(selector)
	if !ok {
		return nil, false
	}
	return domSurface{el: el}, true
}
