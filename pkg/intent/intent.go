// Package intent models the boundary toward a backend: a validated user action
// becomes an Intent handed to a Sink, and the Sink's answer decides the next
// UI transition.
package intent

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Action names a user action the backend would serve.
type Action string

const (
	Login         Action = "login"
	Signup        Action = "signup"
	SocialLogin   Action = "social-login"
	Logout        Action = "logout"
	CreateProject Action = "create-project"
	Donate        Action = "donate"
	CancelProject Action = "cancel-project"
	DeleteAccount Action = "delete-account"
	ReportProject Action = "report-project"
	ReportComment Action = "report-comment"
	AddCategory   Action = "add-category"
	RateProject   Action = "rate-project"
	OpenProject   Action = "open-project"
	Search        Action = "search"
)

// ErrRejected is returned by sinks that refuse an intent.
var ErrRejected = errors.New("intent: rejected")

// Intent is an action plus its payload.
type Intent struct {
	ID      string            `json:"id"`
	Action  Action            `json:"action"`
	Payload map[string]string `json:"payload,omitempty"`
	Created time.Time         `json:"created"`
}

// New stamps a fresh intent.
func New(action Action, payload map[string]string) Intent {
	if payload == nil {
		payload = map[string]string{}
	}
	return Intent{
		ID:      uuid.NewString(),
		Action:  action,
		Payload: payload,
		Created: time.Now(),
	}
}

// Describe renders the intent for logs, with payload keys in stable order.
// Fields named like secrets are masked.
func (i Intent) Describe() string {
	keys := make([]string, 0, len(i.Payload))
	for k := range i.Payload {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		v := i.Payload[k]
		if isSecret(k) {
			v = mask
		}
		parts = append(parts, fmt.Sprintf("%s=%q", k, v))
	}
	return fmt.Sprintf("action:%q %s", i.Action, strings.Join(parts, " "))
}

// Redacted returns a copy whose secret payload values are replaced by a mask.
// Anything written to disk goes through it.
func (i Intent) Redacted() Intent {
	out := i
	out.Payload = make(map[string]string, len(i.Payload))
	for k, v := range i.Payload {
		if isSecret(k) {
			v = mask
		}
		out.Payload[k] = v
	}
	return out
}

const mask = "***"

func isSecret(key string) bool {
	key = strings.ToLower(key)
	return strings.Contains(key, "password") || strings.Contains(key, "confirm")
}

// Sink receives intents and reports whether the backend accepted them.
type Sink interface {
	Emit(ctx context.Context, in Intent) error
}

// Func adapts a function to a Sink.
type Func func(ctx context.Context, in Intent) error

// Emit implements Sink.
func (f Func) Emit(ctx context.Context, in Intent) error {
	if f == nil {
		return nil
	}
	return f(ctx, in)
}

// Recorder accepts every intent and keeps it. Set Reject to make Emit fail for
// chosen actions.
type Recorder struct {
	Reject func(Intent) error

	mu      sync.Mutex
	intents []Intent
}

// Emit implements Sink.
func (r *Recorder) Emit(_ context.Context, in Intent) error {
	if r.Reject != nil {
		if err := r.Reject(in); err != nil {
			return err
		}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.intents = append(r.intents, in)
	return nil
}

// Intents returns a copy of the accepted intents.
func (r *Recorder) Intents() []Intent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Intent, len(r.intents))
	copy(out, r.intents)
	return out
}

// Actions lists the accepted actions in order.
func (r *Recorder) Actions() []Action {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Action, len(r.intents))
	for i, in := range r.intents {
		out[i] = in.Action
	}
	return out
}
