package storage

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/whiskerworks/adventure-engine/pkg/actor"
)

// ErrNotFound is returned when a party or adventure does not exist.
var ErrNotFound = errors.New("storage: not found")

// Storage persists parties and their adventures. Adventure state is an
// opaque blob owned by the simulation; storage never inspects it.
type Storage interface {
	Ping(ctx context.Context) error
	Close() error

	// Adventure blobs, keyed by party.
	SaveAdventure(ctx context.Context, partyID uuid.UUID, blob []byte) error
	LoadAdventure(ctx context.Context, partyID uuid.UUID) ([]byte, error)
	DeleteAdventure(ctx context.Context, partyID uuid.UUID) error

	// Party rosters.
	SaveParty(ctx context.Context, partyID uuid.UUID, cats []*actor.Cat) error
	LoadParty(ctx context.Context, partyID uuid.UUID) ([]*actor.Cat, error)
	ListParties(ctx context.Context) ([]uuid.UUID, error)
}
