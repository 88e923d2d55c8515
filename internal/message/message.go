// internal/message/message.go
//
// Launchpad – Messaging stub.
//
// Context
//   The signup path enqueues a welcome email for each new subscriber.
//   Until the real queue/worker pool is finished, this stub logs the
//   payload and returns nil so callers proceed without blocking.
//
//   Replace the body of EnqueueEmail with code that publishes to your
//   queue of choice (e.g., Redis, NATS, SQS) when ready.
//
// Style
//   Two-space sentence spacing, Oxford comma, concise inline notes.
//
//------------------------------------------------------------------------------

package message

import (
	"context"

	"go.uber.org/zap"
)

// Email represents a basic outbound email job.
type Email struct {
	To      []string
	Subject string
	Text    string
	HTML    string // optional – not used by stub
}

// EnqueueEmail logs the email payload.  Swap with real queue publisher later.
func EnqueueEmail(_ context.Context, msg Email) error {
	zap.S().Infow("queue email",
		"to", msg.To,
		"subject", msg.Subject,
		"text_len", len(msg.Text),
	)
	return nil
}
