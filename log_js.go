package main

import (
	"html"
	"strings"

	"github.com/seqsense/vkeyboard/dom"
)

// logWriter appends log lines to a page element.
type logWriter struct {
	el dom.Element
}

func (w logWriter) Write(p []byte) (int, error) {
	lines := strings.Split(strings.TrimRight(string(p), "\n"), "\n")
	var b strings.Builder
	b.WriteString(w.el.InnerHTML())
	for _, l := range lines {
		b.WriteString(html.EscapeString(l))
		b.WriteString("<br/>")
	}
	w.el.SetInnerHTML(b.String())
	return len(p), nil
}
