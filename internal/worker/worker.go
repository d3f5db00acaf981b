// Package worker drives the simulation clock: on every tick it advances
// each party's adventure by one event and delivers the outcome.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/whiskerworks/adventure-engine/internal/delivery"
	"github.com/whiskerworks/adventure-engine/internal/logger"
	"github.com/whiskerworks/adventure-engine/internal/storage"
	"github.com/whiskerworks/adventure-engine/pkg/outcome"
	"github.com/whiskerworks/adventure-engine/pkg/sim"
)

// Worker advances adventures on a fixed interval. All ticks run on the
// worker's own goroutine, so the shared random source needs no locking.
type Worker struct {
	storage  storage.Storage
	sink     delivery.Sink
	log      *slog.Logger
	rand     *rand.Rand
	probs    sim.Probabilities
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc
}

// New creates a worker. The random source is seeded from the clock.
func New(st storage.Storage, sink delivery.Sink, log *slog.Logger, probs sim.Probabilities, interval time.Duration) *Worker {
	ctx, cancel := context.WithCancel(context.Background())
	now := time.Now()
	return &Worker{
		storage:  st,
		sink:     sink,
		log:      log,
		rand:     rand.New(rand.NewPCG(uint64(now.UnixNano()), uint64(now.Unix()))),
		probs:    probs,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start runs the tick loop until Stop is called. The first pass over the
// parties happens after one full interval.
func (w *Worker) Start() error {
	w.log.Info("Worker starting", "tick_interval", w.interval)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			w.log.Info("Worker shutting down")
			return nil
		case <-ticker.C:
			if err := w.TickAll(w.ctx); err != nil {
				logger.WithError(w.log, err).Error("Tick pass failed")
			}
		}
	}
}

// Stop requests a graceful shutdown.
func (w *Worker) Stop() {
	w.log.Info("Worker stop requested")
	w.cancel()
}

// TickAll advances every stored party by one event.
func (w *Worker) TickAll(ctx context.Context) error {
	parties, err := w.storage.ListParties(ctx)
	if err != nil {
		return fmt.Errorf("failed to list parties: %w", err)
	}

	for _, partyID := range parties {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		out, err := w.Tick(ctx, partyID)
		if err != nil {
			logger.WithError(w.log, err).Error("Tick failed", "party_id", partyID)
			continue
		}
		if err := w.sink.Deliver(ctx, partyID, out); err != nil {
			logger.WithError(w.log, err).Error("Delivery failed", "party_id", partyID)
		}
	}
	return nil
}

// Tick advances one party's adventure by exactly one event and persists
// the new state. A missing or unreadable adventure blob starts a fresh
// adventure rather than failing the party forever.
func (w *Worker) Tick(ctx context.Context, partyID uuid.UUID) (outcome.Outcome, error) {
	log := logger.WithParty(w.log, partyID.String())

	cats, err := w.storage.LoadParty(ctx, partyID)
	if err != nil {
		return outcome.Outcome{}, fmt.Errorf("failed to load party: %w", err)
	}
	if len(cats) == 0 {
		return outcome.Outcome{}, fmt.Errorf("party %s has no cats", partyID)
	}

	gs := w.loadOrStartAdventure(ctx, partyID, log)

	env := &sim.Env{
		Cats:   cats,
		Rand:   w.rand,
		Log:    log,
		Config: w.probs,
	}
	out := gs.CurrentEvent.GenerateUpdate(gs, env)

	blob, err := sim.Encode(gs)
	if err != nil {
		return outcome.Outcome{}, fmt.Errorf("failed to encode adventure: %w", err)
	}
	if err := w.storage.SaveAdventure(ctx, partyID, blob); err != nil {
		return outcome.Outcome{}, fmt.Errorf("failed to save adventure: %w", err)
	}

	return out, nil
}

func (w *Worker) loadOrStartAdventure(ctx context.Context, partyID uuid.UUID, log *slog.Logger) *sim.GameState {
	blob, err := w.storage.LoadAdventure(ctx, partyID)
	if err != nil {
		log.Info("No stored adventure, starting fresh", "reason", err)
		return sim.NewGameState()
	}
	gs, err := sim.Decode(blob)
	if err != nil {
		logger.WithError(log, err).Warn("Stored adventure is unreadable, starting fresh")
		return sim.NewGameState()
	}
	return gs
}
