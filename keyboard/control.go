package keyboard

// Control is an activatable element carrying a text label, such as a key,
// the shift toggle or the backspace button.
type Control interface {
	Label() string
	// ToggleClass flips a presentation marker and reports whether it is set
	// after the call.
	ToggleClass(class string) bool
	// OnActivate registers fn to be called with the activated control.
	OnActivate(fn func(source Control))
}

// Surface is a mutable text region.
type Surface interface {
	Text() string
	SetText(text string)
}

// Document discovers the controls and the display surface provided by
// the host markup.
type Document interface {
	QuerySelectorAll(selector string) []Control
	QuerySelector(selector string) (Control, bool)
	Surface(selector string) (Surface, bool)
}
