package dom

import (
	"syscall/js"
)

type MouseButton int

const (
	MouseButtonNull MouseButton = -1
	MouseButtonMain MouseButton = 0
)

// MouseEvent carries the pressed button. Synthetic events dispatched as a
// plain Event have no button and report MouseButtonNull.
type MouseEvent struct {
	UIEvent
	Button MouseButton
}

func parseMouseEvent(event js.Value) MouseEvent {
	b := MouseButtonNull
	if button := event.Get("button"); button.Type() == js.TypeNumber {
		b = MouseButton(button.Int())
	}
	return MouseEvent{
		UIEvent: UIEvent{
			Event: Event{
				event: event,
			},
		},
		Button: b,
	}
}
