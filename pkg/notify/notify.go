// Package notify carries user-facing messages from controllers to whatever
// surface displays them, without blocking the caller.
package notify

import "sync"

// Level is the severity of a Notice.
type Level string

const (
	Info    Level = "info"
	Success Level = "success"
	Error   Level = "error"
)

// Notice is a single message for the user.
type Notice struct {
	Level Level
	Text  string
}

// Notifier receives notices.
type Notifier interface {
	Notify(Notice)
}

// Func adapts a function to a Notifier.
type Func func(Notice)

// Notify implements Notifier.
func (f Func) Notify(n Notice) {
	if f != nil {
		f(n)
	}
}

// Discard drops every notice.
var Discard Notifier = Func(nil)

// Or returns n, or Discard when n is nil.
func Or(n Notifier) Notifier {
	if n == nil {
		return Discard
	}
	return n
}

// Recorder keeps every notice it receives.
type Recorder struct {
	mu      sync.Mutex
	notices []Notice
}

// Notify implements Notifier.
func (r *Recorder) Notify(n Notice) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, n)
}

// Notices returns a copy of the recorded notices.
func (r *Recorder) Notices() []Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notice, len(r.notices))
	copy(out, r.notices)
	return out
}

// Last returns the most recent notice.
func (r *Recorder) Last() (Notice, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.notices) == 0 {
		return Notice{}, false
	}
	return r.notices[len(r.notices)-1], true
}
