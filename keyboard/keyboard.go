// Package keyboard implements the controller of an on-screen keyboard.
//
// The controller wires key, shift and backspace controls found in a
// Document to a display Surface. All methods are expected to be called from
// a single goroutine, the host's UI event loop.
package keyboard

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/rivo/uniseg"
)

type Controller struct {
	doc Document
	cfg Config
	log *slog.Logger

	upper func(string) string

	shift     Control
	shiftOn   bool
	initiated bool
}

type Option func(*Controller)

func WithConfig(cfg Config) Option {
	return func(c *Controller) {
		c.cfg = cfg
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

func New(doc Document, opts ...Option) *Controller {
	c := &Controller{
		doc: doc,
		cfg: DefaultConfig(),
		log: slog.New(slog.DiscardHandler),
	}
	for _, o := range opts {
		o(c)
	}
	upper, err := upperFunc(c.cfg.Locale)
	if err != nil {
		c.log.Warn("falling back to simple case mapping", "error", err)
		upper = strings.ToUpper
	}
	c.upper = upper
	return c
}

// Initialize discovers the controls and attaches the activation handlers.
// It must be called once, after the document content is available.
func (c *Controller) Initialize() error {
	if c.initiated {
		return ErrAlreadyInitialized
	}
	if err := c.cfg.Validate(); err != nil {
		return err
	}

	keys := c.doc.QuerySelectorAll(c.cfg.Keys)
	shift, hasShift := c.doc.QuerySelector(c.cfg.Shift)
	backspace, hasBackspace := c.doc.QuerySelector(c.cfg.Backspace)
	_, hasDisplay := c.doc.Surface(c.cfg.Display)

	var missing []error
	for _, e := range []struct {
		found    bool
		role     Role
		selector string
	}{
		{len(keys) > 0, RoleKey, c.cfg.Keys},
		{hasShift, RoleShift, c.cfg.Shift},
		{hasBackspace, RoleBackspace, c.cfg.Backspace},
		{hasDisplay, RoleDisplay, c.cfg.Display},
	} {
		if !e.found {
			missing = append(missing, &MissingElementError{Role: e.role, Selector: e.selector})
		}
	}
	if len(missing) > 0 {
		if c.cfg.Strict {
			return errors.Join(missing...)
		}
		for _, err := range missing {
			c.log.Warn("listener not attached", "error", err)
		}
	}

	for _, k := range keys {
		k.OnActivate(c.KeyActivated)
	}
	if hasShift {
		shift.OnActivate(c.ShiftToggled)
		c.shift = shift
	}
	if hasBackspace {
		backspace.OnActivate(func(Control) {
			c.BackspaceActivated()
		})
	}
	c.initiated = true

	c.log.Info("keyboard initialized",
		"keys", len(keys), "shift", hasShift, "backspace", hasBackspace, "display", hasDisplay)
	return nil
}

func (c *Controller) KeyActivated(source Control) {
	label := source.Label()
	if alias, ok := c.cfg.Aliases[label]; ok {
		label = alias
	}
	c.AppendLetter(label)
}

// ShiftToggled flips the shift state and toggles the pressed marker on
// source, the control which received the activation.
func (c *Controller) ShiftToggled(source Control) {
	c.shiftOn = !c.shiftOn
	if source != nil {
		source.ToggleClass(c.cfg.PressedClass)
	}
	c.log.Debug("shift toggled", "on", c.shiftOn)
}

// BackspaceActivated removes the last character of the display text.
// Nothing happens on an empty display.
func (c *Controller) BackspaceActivated() {
	d, ok := c.surface()
	if !ok {
		c.log.Error("backspace without display surface")
		return
	}
	d.SetText(trimLastCharacter(d.Text()))
}

func (c *Controller) AppendLetter(letter string) {
	d, ok := c.surface()
	if !ok {
		c.log.Error("append without display surface", "letter", letter)
		return
	}
	if c.shiftOn {
		letter = c.upper(letter)
	}
	d.SetText(d.Text() + letter)
}

func (c *Controller) Shift() bool {
	return c.shiftOn
}

// ShiftControl returns the shift toggle found by Initialize.
func (c *Controller) ShiftControl() (Control, bool) {
	return c.shift, c.shift != nil
}

func (c *Controller) Display() (Surface, bool) {
	return c.surface()
}

// surface queries the display on every use, so markup which replaces the
// element after Initialize is written to instead of the detached node.
func (c *Controller) surface() (Surface, bool) {
	if !c.initiated {
		return nil, false
	}
	return c.doc.Surface(c.cfg.Display)
}

// trimLastCharacter drops the last grapheme cluster of s.
func trimLastCharacter(s string) string {
	last := 0
	rest := s
	state := -1
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		last = len(s) - len(rest) - len(cluster)
	}
	return s[:last]
}
