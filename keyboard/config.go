package keyboard

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

const (
	defaultKeysSelector      = ".key"
	defaultShiftSelector     = ".maj"
	defaultBackspaceSelector = ".return"
	defaultDisplaySelector   = ".screen .text"
	defaultPressedClass      = "pressed"
)

type Config struct {
	Keys         string `yaml:"keys"`
	Shift        string `yaml:"shift"`
	Backspace    string `yaml:"backspace"`
	Display      string `yaml:"display"`
	PressedClass string `yaml:"pressed_class"`

	// Strict makes Initialize fail when an element is missing instead of
	// skipping its listener.
	Strict bool `yaml:"strict"`

	// Locale is a BCP 47 tag used for upper-casing. Empty selects the
	// locale-insensitive simple mapping.
	Locale string `yaml:"locale"`

	// Aliases maps a key label to the text it emits.
	Aliases map[string]string `yaml:"aliases"`

	// Layout is read by hosts which draw the keys themselves.
	Layout Layout `yaml:"layout"`
}

type Layout struct {
	Rows      [][]string `yaml:"rows"`
	Shift     string     `yaml:"shift"`
	Backspace string     `yaml:"backspace"`
}

func DefaultConfig() Config {
	return Config{
		Keys:         defaultKeysSelector,
		Shift:        defaultShiftSelector,
		Backspace:    defaultBackspaceSelector,
		Display:      defaultDisplaySelector,
		PressedClass: defaultPressedClass,
		Strict:       true,
	}
}

// ParseConfig decodes YAML on top of DefaultConfig.
func ParseConfig(b []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse keyboard config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func LoadConfig(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load keyboard config: %w", err)
	}
	return ParseConfig(b)
}

func (c Config) Validate() error {
	for _, f := range []struct {
		name, value string
	}{
		{"keys", c.Keys},
		{"shift", c.Shift},
		{"backspace", c.Backspace},
		{"display", c.Display},
		{"pressed_class", c.PressedClass},
	} {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s is empty", ErrInvalidConfig, f.name)
		}
	}
	if _, err := upperFunc(c.Locale); err != nil {
		return err
	}
	for i, row := range c.Layout.Rows {
		for j, label := range row {
			if label == "" {
				return fmt.Errorf("%w: layout row %d key %d has no label", ErrInvalidConfig, i, j)
			}
		}
	}
	return nil
}

func upperFunc(locale string) (func(string) string, error) {
	if locale == "" {
		return strings.ToUpper, nil
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("%w: locale %q: %v", ErrInvalidConfig, locale, err)
	}
	return cases.Upper(tag).String, nil
}
