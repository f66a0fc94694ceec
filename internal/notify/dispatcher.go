package notify

import (
	"context"

	"go.uber.org/zap"

	"github.com/agence-menage/service-leads/internal/domain/lead"
)

// Dispatcher hands a finalized booking summary to one external channel.
// Channels are advisory: a failed dispatch is logged, never surfaced to the
// requester, and never rolls back the already-finalized booking.
type Dispatcher interface {
	Name() string
	Dispatch(ctx context.Context, booking *lead.Booking, summary string) error
}

// Fanout delivers to every configured channel, best effort, one attempt each.
type Fanout struct {
	channels []Dispatcher
	logger   *zap.Logger
}

// NewFanout creates a Fanout over the given channels.
func NewFanout(logger *zap.Logger, channels ...Dispatcher) *Fanout {
	return &Fanout{channels: channels, logger: logger}
}

// Dispatch sends the summary to all channels. Errors are logged and swallowed;
// the caller has already committed to an optimistic success.
func (f *Fanout) Dispatch(ctx context.Context, booking *lead.Booking, summary string) {
	for _, ch := range f.channels {
		if err := ch.Dispatch(ctx, booking, summary); err != nil {
			f.logger.Error("dispatch failed",
				zap.String("channel", ch.Name()),
				zap.String("reference", booking.Reference()),
				zap.Error(err),
			)
			continue
		}
		f.logger.Info("dispatched booking summary",
			zap.String("channel", ch.Name()),
			zap.String("reference", booking.Reference()),
		)
	}
}

// Channels returns the number of wired channels.
func (f *Fanout) Channels() int {
	return len(f.channels)
}
