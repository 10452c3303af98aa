// Package notifytest provides an in-memory notify.Notifier for tests.
package notifytest

import (
	"context"
	"strings"
	"sync"

	"github.com/aussiebroadwan/accounts/internal/accounts/notify"
)

// Outbox records every message. After Fail, Notify returns that error and
// records nothing.
type Outbox struct {
	mu       sync.Mutex
	messages []notify.Message
	err      error
}

func (o *Outbox) Notify(ctx context.Context, m notify.Message) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.err != nil {
		return o.err
	}
	o.messages = append(o.messages, m)
	return nil
}

func (o *Outbox) Fail(err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.err = err
}

func (o *Outbox) Messages() []notify.Message {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]notify.Message(nil), o.messages...)
}

// Last returns the most recent message, ok is false when empty.
func (o *Outbox) Last() (notify.Message, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if len(o.messages) == 0 {
		return notify.Message{}, false
	}
	return o.messages[len(o.messages)-1], true
}

// LastToken extracts the token from the last message's action link.
func (o *Outbox) LastToken() string {
	m, ok := o.Last()
	if !ok {
		return ""
	}
	return m.ActionURL[strings.LastIndex(m.ActionURL, "/")+1:]
}
