package cart

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/multierr"
)

// Notifier announces that a session's cart changed. The service fires it once
// per cart mutation, after the write commits, carrying the session's current
// line count.
type Notifier interface {
	CartUpdated(ctx context.Context, sessionID string, lineCount int) error
}

type publisher interface {
	Publish(ctx context.Context, channel string, payload any) error
}

// CartUpdatedEvent is the payload published on the cart channel.
type CartUpdatedEvent struct {
	SessionID string    `json:"session_id"`
	LineCount int       `json:"line_count"`
	At        time.Time `json:"at"`
}

// RedisNotifier publishes cart-updated events on a Redis pub/sub channel.
type RedisNotifier struct {
	pub     publisher
	channel string
}

// NewRedisNotifier builds a notifier bound to the given channel.
func NewRedisNotifier(pub publisher, channel string) (*RedisNotifier, error) {
	if pub == nil {
		return nil, fmt.Errorf("publisher required")
	}
	if channel == "" {
		return nil, fmt.Errorf("channel required")
	}
	return &RedisNotifier{pub: pub, channel: channel}, nil
}

func (n *RedisNotifier) CartUpdated(ctx context.Context, sessionID string, lineCount int) error {
	event := CartUpdatedEvent{
		SessionID: sessionID,
		LineCount: lineCount,
		At:        time.Now().UTC(),
	}
	return n.pub.Publish(ctx, n.channel, event)
}

// FanoutNotifier delivers to every registered notifier and collects failures.
type FanoutNotifier []Notifier

func (f FanoutNotifier) CartUpdated(ctx context.Context, sessionID string, lineCount int) error {
	var err error
	for _, n := range f {
		if n == nil {
			continue
		}
		err = multierr.Append(err, n.CartUpdated(ctx, sessionID, lineCount))
	}
	return err
}
