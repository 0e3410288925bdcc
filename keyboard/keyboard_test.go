package keyboard

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInitialized(t *testing.T, doc *fakeDocument, opts ...Option) *Controller {
	t.Helper()
	c := New(doc, opts...)
	require.NoError(t, c.Initialize())
	return c
}

func TestController_Scenario(t *testing.T) {
	doc := newFakeDocument("helow")
	newInitialized(t, doc)

	for _, l := range []string{"h", "e", "l", "l", "o"} {
		doc.key(l).activate()
	}
	assert.Equal(t, "hello", doc.display.text)

	doc.shift.activate()
	doc.key("w").activate()
	assert.Equal(t, "helloW", doc.display.text)

	doc.backspace.activate()
	assert.Equal(t, "hello", doc.display.text)
}

func TestController_Casing(t *testing.T) {
	testCases := map[string]struct {
		actions  string
		expected string
	}{
		"ShiftOff":         {actions: "abc", expected: "abc"},
		"ShiftOn":          {actions: "^abc", expected: "ABC"},
		"ShiftMidSequence": {actions: "ab^cd^ef", expected: "abCDef"},
		"ShiftTwice":       {actions: "^^a", expected: "a"},
		"AuthoredUpper":    {actions: "A^A", expected: "AA"},
	}
	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			doc := newFakeDocument("abcdefA")
			newInitialized(t, doc)
			for _, a := range strings.Split(tt.actions, "") {
				if a == "^" {
					doc.shift.activate()
					continue
				}
				doc.key(a).activate()
			}
			if doc.display.text != tt.expected {
				t.Errorf("Expected: %q, got: %q", tt.expected, doc.display.text)
			}
		})
	}
}

func TestController_ShiftToggleMarker(t *testing.T) {
	doc := newFakeDocument("a")
	c := newInitialized(t, doc)

	assert.False(t, c.Shift())
	doc.shift.activate()
	assert.True(t, c.Shift())
	assert.True(t, doc.shift.classes[defaultPressedClass])

	doc.shift.activate()
	assert.False(t, c.Shift())
	assert.False(t, doc.shift.classes[defaultPressedClass])
}

func TestController_ShiftToggledMarksSource(t *testing.T) {
	doc := newFakeDocument("a")
	c := newInitialized(t, doc)

	other := newFakeControl("Maj")
	c.ShiftToggled(other)
	assert.True(t, other.classes[defaultPressedClass])
	assert.False(t, doc.shift.classes[defaultPressedClass])

	c.ShiftToggled(nil)
	assert.False(t, c.Shift())
}

func TestController_Backspace(t *testing.T) {
	testCases := map[string]struct {
		text     string
		expected string
	}{
		"Empty":      {text: "", expected: ""},
		"Single":     {text: "a", expected: ""},
		"ASCII":      {text: "abc", expected: "ab"},
		"Multibyte":  {text: "été", expected: "ét"},
		"Combining":  {text: "ae\u0301", expected: "a"},
		"FlagEmoji":  {text: "a\U0001F1EB\U0001F1F7", expected: "a"},
		"FamilyZWJ":  {text: "x\U0001F469\u200D\U0001F469\u200D\U0001F467", expected: "x"},
		"CRLF":       {text: "a\r\n", expected: "a"},
		"TrailSpace": {text: "a ", expected: "a"},
	}
	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			doc := newFakeDocument("a")
			doc.display.text = tt.text
			newInitialized(t, doc)

			doc.backspace.activate()
			assert.Equal(t, tt.expected, doc.display.text)
		})
	}
}

func TestController_BackspaceEmptyRepeated(t *testing.T) {
	doc := newFakeDocument("a")
	newInitialized(t, doc)

	for i := 0; i < 3; i++ {
		doc.backspace.activate()
	}
	assert.Equal(t, "", doc.display.text)
}

func TestController_ReadsDisplayEveryTime(t *testing.T) {
	doc := newFakeDocument("b")
	newInitialized(t, doc)

	doc.display.text = "external "
	doc.key("b").activate()
	assert.Equal(t, "external b", doc.display.text)
	assert.Equal(t, 1, doc.display.writes)
}

func TestController_DisplayReplaced(t *testing.T) {
	doc := newFakeDocument("ab")
	c := newInitialized(t, doc)

	doc.key("a").activate()
	old := doc.display
	doc.display = &fakeSurface{text: "new "}

	doc.key("b").activate()
	assert.Equal(t, "a", old.text)
	assert.Equal(t, "new b", doc.display.text)

	doc.backspace.activate()
	assert.Equal(t, "new ", doc.display.text)

	d, ok := c.Display()
	require.True(t, ok)
	assert.Same(t, doc.display, d)

	// A display removed from the markup makes activations no-ops.
	doc.display = nil
	doc.key("a").activate()
	_, ok = c.Display()
	assert.False(t, ok)
}

func TestController_BeforeInitialize(t *testing.T) {
	doc := newFakeDocument("a")
	c := New(doc)

	c.AppendLetter("a")
	c.BackspaceActivated()
	assert.Equal(t, 0, doc.display.writes)
	_, ok := c.Display()
	assert.False(t, ok)
}

func TestController_MultiCharacterLabel(t *testing.T) {
	doc := newFakeDocument("")
	doc.keys = []*fakeControl{newFakeControl("Space"), newFakeControl("ab")}

	cfg := DefaultConfig()
	cfg.Aliases = map[string]string{"Space": " "}
	newInitialized(t, doc, WithConfig(cfg))

	doc.keys[1].activate()
	doc.keys[0].activate()
	doc.shift.activate()
	doc.keys[1].activate()
	assert.Equal(t, "ab AB", doc.display.text)
}

func TestController_Locale(t *testing.T) {
	testCases := map[string]struct {
		locale   string
		expected string
	}{
		"Simple":  {locale: "", expected: "I"},
		"Turkish": {locale: "tr", expected: "İ"},
		"English": {locale: "en-US", expected: "I"},
	}
	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			doc := newFakeDocument("i")
			cfg := DefaultConfig()
			cfg.Locale = tt.locale
			newInitialized(t, doc, WithConfig(cfg))

			doc.shift.activate()
			doc.key("i").activate()
			assert.Equal(t, tt.expected, doc.display.text)
		})
	}
}

func TestController_Initialize(t *testing.T) {
	t.Run("Twice", func(t *testing.T) {
		doc := newFakeDocument("a")
		c := newInitialized(t, doc)

		assert.ErrorIs(t, c.Initialize(), ErrAlreadyInitialized)
		assert.Len(t, doc.key("a").listeners, 1)
		assert.Len(t, doc.shift.listeners, 1)
		assert.Len(t, doc.backspace.listeners, 1)
	})

	missing := map[string]struct {
		modify func(*fakeDocument)
		role   Role
	}{
		"NoKeys":      {modify: func(d *fakeDocument) { d.keys = nil }, role: RoleKey},
		"NoShift":     {modify: func(d *fakeDocument) { d.shift = nil }, role: RoleShift},
		"NoBackspace": {modify: func(d *fakeDocument) { d.backspace = nil }, role: RoleBackspace},
		"NoDisplay":   {modify: func(d *fakeDocument) { d.display = nil }, role: RoleDisplay},
	}
	for name, tt := range missing {
		tt := tt
		t.Run("Strict"+name, func(t *testing.T) {
			doc := newFakeDocument("a")
			tt.modify(doc)
			c := New(doc)

			err := c.Initialize()
			require.ErrorIs(t, err, ErrMissingElement)
			var me *MissingElementError
			require.True(t, errors.As(err, &me))
			assert.Equal(t, tt.role, me.Role)

			for _, k := range doc.keys {
				assert.Empty(t, k.listeners)
			}
			// A failed initialization can be retried.
			tt.modify(doc)
			assert.ErrorIs(t, c.Initialize(), ErrMissingElement)
		})
	}

	t.Run("StrictReportsAllMissing", func(t *testing.T) {
		doc := newFakeDocument("a")
		doc.shift, doc.backspace = nil, nil
		err := New(doc).Initialize()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "shift element not found")
		assert.Contains(t, err.Error(), "backspace element not found")
	})

	t.Run("LenientSkips", func(t *testing.T) {
		doc := newFakeDocument("a")
		doc.shift = nil
		cfg := DefaultConfig()
		cfg.Strict = false
		c := newInitialized(t, doc, WithConfig(cfg))

		_, ok := c.ShiftControl()
		assert.False(t, ok)
		doc.key("a").activate()
		doc.backspace.activate()
		doc.key("a").activate()
		assert.Equal(t, "a", doc.display.text)
	})

	t.Run("LenientWithoutDisplay", func(t *testing.T) {
		doc := newFakeDocument("a")
		doc.display = nil
		cfg := DefaultConfig()
		cfg.Strict = false
		c := newInitialized(t, doc, WithConfig(cfg))

		_, ok := c.Display()
		assert.False(t, ok)
		doc.key("a").activate()
		doc.backspace.activate()
	})

	t.Run("InvalidConfig", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Keys = ""
		err := New(newFakeDocument("a"), WithConfig(cfg)).Initialize()
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})
}
