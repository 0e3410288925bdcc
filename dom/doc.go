// Package dom wraps the parts of the browser DOM used by the keyboard
// through syscall/js.
package dom
