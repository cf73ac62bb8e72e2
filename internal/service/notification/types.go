package notification

import "context"

// Service delivers a pre-formatted message to an external channel.
// Delivery is fire-and-forget: callers log failures and move on.
type Service interface {
	Send(ctx context.Context, text string) error
}
