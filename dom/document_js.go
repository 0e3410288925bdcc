package dom

import (
	"syscall/js"
)

type Document js.Value

func Global() Document {
	return Document(js.Global().Get("document"))
}

func (d Document) Body() Element {
	return Element(js.Value(d).Get("body"))
}

func (d Document) ReadyState() string {
	return js.Value(d).Get("readyState").String()
}

func (d Document) GetElementByID(id string) (Element, bool) {
	el := Element(js.Value(d).Call("getElementById", id))
	if el.IsNull() {
		return Element{}, false
	}
	return el, true
}

func (d Document) QuerySelector(selector string) (Element, bool) {
	return querySelector(js.Value(d), selector)
}

func (d Document) QuerySelectorAll(selector string) []Element {
	return querySelectorAll(js.Value(d), selector)
}

func (d Document) DispatchEvent(ev Event) {
	js.Value(d).Call("dispatchEvent", ev.event)
}

// OnDOMContentLoaded calls cb once the document is parsed. If it already
// is, cb is called immediately.
func (d Document) OnDOMContentLoaded(cb func()) {
	if d.ReadyState() != "loading" {
		cb()
		return
	}
	var fn js.Func
	fn = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		fn.Release()
		cb()
		return nil
	})
	js.Value(d).Call("addEventListener", "DOMContentLoaded", fn,
		map[string]interface{}{"once": true},
	)
}
