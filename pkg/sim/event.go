// Package sim is the adventure simulation core: the event state machine
// that drives the party's travels and fights. One external stimulus runs
// exactly one update on the current event, mutating the shared GameState
// and producing one outcome.
package sim

import (
	"log/slog"
	"math/rand/v2"

	"github.com/whiskerworks/adventure-engine/pkg/actor"
	"github.com/whiskerworks/adventure-engine/pkg/outcome"
)

// Probabilities is the tuning configuration the simulation consumes.
type Probabilities struct {
	// Chance that something happens at a location on a tick, instead of
	// the party moving on.
	Happening float64
	// Chance that a location event advances the current quest.
	QuestEncounter float64
	// Chance of a random bonus die on a roll. Applied twice,
	// independently, for up to two bonus dice of each kind.
	BonusDie float64
}

// DefaultProbabilities are the stock tuning values.
var DefaultProbabilities = Probabilities{
	Happening:      0.6,
	QuestEncounter: 0.4,
	BonusDie:       0.2,
}

// Env is everything an event update needs besides the GameState itself:
// the party roster, the shared random source, tuning and a logger. The
// caller owns the Env and guarantees updates for one party never overlap.
type Env struct {
	Cats   []*actor.Cat
	Rand   *rand.Rand
	Log    *slog.Logger
	Config Probabilities
}

// Event is an ongoing activity of the party. Exactly one event is current
// in a GameState at any time; an update may replace it (ending the event)
// before returning.
type Event interface {
	// EventType is the stable type name used for tagged serialization.
	EventType() string
	// GenerateUpdate produces one happening, potentially ending this event.
	GenerateUpdate(state *GameState, env *Env) outcome.Outcome
}
