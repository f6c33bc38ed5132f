// Package notify holds transient user-facing messages, decoupled from
// step logic. Messages auto-expire on independent timers.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
	KindWarning Kind = "warning"
)

type Message struct {
	ID       string        `json:"id"`
	Scope    string        `json:"-"`
	Kind     Kind          `json:"type"`
	Text     string        `json:"message"`
	PostedAt time.Time     `json:"postedAt"`
	Duration time.Duration `json:"-"`
}

// Center is an append-only queue of scoped messages. Each message
// expires after its own duration; removal is idempotent. Close stops
// every pending timer so nothing fires against a torn-down Center.
type Center struct {
	defaultTTL time.Duration

	mu     sync.Mutex
	msgs   []Message
	timers map[string]*time.Timer
	closed bool
}

func NewCenter(defaultTTL time.Duration) *Center {
	if defaultTTL <= 0 {
		defaultTTL = 4 * time.Second
	}
	return &Center{
		defaultTTL: defaultTTL,
		timers:     map[string]*time.Timer{},
	}
}

func (c *Center) Post(scope string, kind Kind, text string) string {
	return c.PostWithDuration(scope, kind, text, c.defaultTTL)
}

func (c *Center) PostWithDuration(scope string, kind Kind, text string, d time.Duration) string {
	if d <= 0 {
		d = c.defaultTTL
	}
	m := Message{
		ID:       uuid.NewString(),
		Scope:    scope,
		Kind:     kind,
		Text:     text,
		PostedAt: time.Now(),
		Duration: d,
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return m.ID
	}
	c.msgs = append(c.msgs, m)
	c.timers[m.ID] = time.AfterFunc(d, func() { c.Remove(m.ID) })
	return m.ID
}

// Remove drops a message by ID. Removing an already-removed ID is a
// no-op.
func (c *Center) Remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if t, ok := c.timers[id]; ok {
		t.Stop()
		delete(c.timers, id)
	}
	for i, m := range c.msgs {
		if m.ID == id {
			c.msgs = append(c.msgs[:i], c.msgs[i+1:]...)
			return
		}
	}
}

// List returns the live messages for a scope in insertion order.
func (c *Center) List(scope string) []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []Message
	for _, m := range c.msgs {
		if m.Scope == scope {
			out = append(out, m)
		}
	}
	return out
}

// Close stops all pending expiry timers and drops every message.
func (c *Center) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	for id, t := range c.timers {
		t.Stop()
		delete(c.timers, id)
	}
	c.msgs = nil
}

// Success and Error satisfy the flow's notifier port.

func (c *Center) Success(scope, text string) { c.Post(scope, KindSuccess, text) }
func (c *Center) Error(scope, text string)   { c.Post(scope, KindError, text) }
