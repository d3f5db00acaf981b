// Package delivery turns simulation outcomes into something a reader
// sees. The daemon writes rendered outcomes to its log; the console shows
// them in the terminal UI. Both go through the same renderer.
package delivery

import (
	"context"

	"github.com/google/uuid"

	"github.com/whiskerworks/adventure-engine/pkg/outcome"
)

// Sink receives one outcome per simulation tick.
type Sink interface {
	Deliver(ctx context.Context, partyID uuid.UUID, out outcome.Outcome) error
}
