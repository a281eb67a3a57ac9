// Package notify is the fire-and-forget notification boundary. Core
// services report human-readable success and failure messages through it;
// they never depend on how (or whether) the messages are shown.
package notify

import (
	"fmt"
	"io"
)

// Notifier receives a title and a one-line detail for each notable event.
// Implementations must not fail: notifications are advisory.
type Notifier interface {
	Notify(title, detail string)
}

// Func adapts a function to the Notifier interface.
type Func func(title, detail string)

func (f Func) Notify(title, detail string) { f(title, detail) }

// NewWriter returns a Notifier that prints each message to w.
func NewWriter(w io.Writer) Notifier {
	return Func(func(title, detail string) {
		if detail == "" {
			fmt.Fprintln(w, title)
			return
		}
		fmt.Fprintf(w, "%s: %s\n", title, detail)
	})
}

// Discard swallows all notifications.
var Discard Notifier = Func(func(string, string) {})

// Recorder captures notifications for tests.
type Recorder struct {
	Messages []Message
}

// Message is one recorded notification.
type Message struct {
	Title  string
	Detail string
}

func (r *Recorder) Notify(title, detail string) {
	r.Messages = append(r.Messages, Message{Title: title, Detail: detail})
}

// Has reports whether a notification with the given title was recorded.
func (r *Recorder) Has(title string) bool {
	for _, m := range r.Messages {
		if m.Title == title {
			return true
		}
	}
	return false
}
