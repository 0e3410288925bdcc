package dom

import (
	"syscall/js"
)

type Element js.Value

// IsNull reports whether e refers to no element, as returned by a failed
// query.
func (e Element) IsNull() bool {
	v := js.Value(e)
	return v.IsNull() || v.IsUndefined()
}

func (e Element) TextContent() string {
	return js.Value(e).Get("textContent").String()
}

func (e Element) SetTextContent(s string) {
	js.Value(e).Set("textContent", s)
}

func (e Element) InnerHTML() string {
	return js.Value(e).Get("innerHTML").String()
}

func (e Element) SetInnerHTML(s string) {
	js.Value(e).Set("innerHTML", s)
}

func (e Element) Attribute(name string) (string, bool) {
	v := js.Value(e).Call("getAttribute", name)
	if v.IsNull() {
		return "", false
	}
	return v.String(), true
}

func (e Element) ClassList() ClassList {
	return ClassList(js.Value(e).Get("classList"))
}

func (e Element) OnClick(cb func(MouseEvent)) {
	e.onMouse("click", cb)
}

func (e Element) onMouse(name string, cb func(MouseEvent)) {
	js.Value(e).Call("addEventListener", name,
		js.FuncOf(func(this js.Value, args []js.Value) interface{} {
			cb(parseMouseEvent(args[0]))
			return nil
		}),
	)
}

type ClassList js.Value

// Toggle flips the class and reports whether it is present afterwards.
func (c ClassList) Toggle(name string) bool {
	return js.Value(c).Call("toggle", name).Bool()
}

func querySelector(root js.Value, selector string) (Element, bool) {
	el := Element(root.Call("querySelector", selector))
	if el.IsNull() {
		return Element{}, false
	}
	return el, true
}

func querySelectorAll(root js.Value, selector string) []Element {
	list := root.Call("querySelectorAll", selector)
	n := list.Get("length").Int()
	els := make([]Element, 0, n)
	for i := 0; i < n; i++ {
		els = append(els, Element(list.Call("item", i)))
	}
	return els
}
