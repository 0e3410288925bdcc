package main

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/seqsense/vkeyboard/keyboard"
)

type console struct {
	kb *keyboard.Controller
}

var errArgumentNumber = errors.New("invalid number of arguments")
var errInvalidCommand = errors.New("invalid command")
var errNoShift = errors.New("shift toggle is not available")
var errNoDisplay = errors.New("display is not available")

// labelControl is a key which only exists in a console command.
type labelControl string

func (l labelControl) Label() string { return string(l) }

func (labelControl) ToggleClass(string) bool { return false }

func (labelControl) OnActivate(func(keyboard.Control)) {}

var consoleCommands = map[string]func(kb *keyboard.Controller, arg string) (string, error){
	"press": func(kb *keyboard.Controller, arg string) (string, error) {
		if arg == "" {
			return "", errArgumentNumber
		}
		kb.KeyActivated(labelControl(arg))
		return displayText(kb)
	},
	"shift": func(kb *keyboard.Controller, arg string) (string, error) {
		if arg != "" {
			return "", errArgumentNumber
		}
		s, ok := kb.ShiftControl()
		if !ok {
			return "", errNoShift
		}
		kb.ShiftToggled(s)
		return formatBool(kb.Shift()), nil
	},
	"shift_state": func(kb *keyboard.Controller, arg string) (string, error) {
		if arg != "" {
			return "", errArgumentNumber
		}
		return formatBool(kb.Shift()), nil
	},
	"backspace": func(kb *keyboard.Controller, arg string) (string, error) {
		if arg != "" {
			return "", errArgumentNumber
		}
		kb.BackspaceActivated()
		return displayText(kb)
	},
	"text": func(kb *keyboard.Controller, arg string) (string, error) {
		if arg != "" {
			return "", errArgumentNumber
		}
		return displayText(kb)
	},
	"reset": func(kb *keyboard.Controller, arg string) (string, error) {
		if arg != "" {
			return "", errArgumentNumber
		}
		d, ok := kb.Display()
		if !ok {
			return "", errNoDisplay
		}
		d.SetText("")
		return "", nil
	},
}

// Run executes one command line. The command name ends at the first
// whitespace character. The argument of press is the verbatim rest of the
// line, so "press  " presses a key labelled with a space.
func (c *console) Run(line string) (string, error) {
	line = strings.TrimLeftFunc(line, unicode.IsSpace)
	if line == "" {
		return "", nil
	}
	name, arg := line, ""
	if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
		_, n := utf8.DecodeRuneInString(line[i:])
		name, arg = line[:i], line[i+n:]
	}
	fn, ok := consoleCommands[name]
	if !ok {
		return "", errInvalidCommand
	}
	if name != "press" {
		arg = strings.TrimSpace(arg)
	}
	return fn(c.kb, arg)
}

func displayText(kb *keyboard.Controller) (string, error) {
	d, ok := kb.Display()
	if !ok {
		return "", errNoDisplay
	}
	return d.Text(), nil
}

func formatBool(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
