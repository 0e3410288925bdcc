package dom

import (
	"syscall/js"
)

type UIEvent struct {
	Event
}

type Event struct {
	event js.Value
}

func (e Event) PreventDefault() {
	e.event.Call("preventDefault")
}

// CurrentTarget is the element the listener is attached to.
func (e Event) CurrentTarget() Element {
	return Element(e.event.Get("currentTarget"))
}

func NewEvent(typ string) Event {
	return Event{
		event: js.Global().Get("Event").New(typ),
	}
}
