package worker

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/whiskerworks/adventure-engine/internal/storage"
	"github.com/whiskerworks/adventure-engine/pkg/actor"
	"github.com/whiskerworks/adventure-engine/pkg/outcome"
	"github.com/whiskerworks/adventure-engine/pkg/sim"
)

type captureSink struct {
	mu       sync.Mutex
	outcomes map[uuid.UUID][]outcome.Outcome
}

func newCaptureSink() *captureSink {
	return &captureSink{outcomes: map[uuid.UUID][]outcome.Outcome{}}
}

func (s *captureSink) Deliver(ctx context.Context, partyID uuid.UUID, out outcome.Outcome) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.outcomes[partyID] = append(s.outcomes[partyID], out)
	return nil
}

func newTestWorker(t *testing.T) (*Worker, *storage.MockStorage, *captureSink) {
	t.Helper()
	st := storage.NewMockStorage()
	sink := newCaptureSink()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	w := New(st, sink, log, sim.DefaultProbabilities, time.Minute)
	return w, st, sink
}

func testParty() []*actor.Cat {
	return []*actor.Cat{
		{ID: 1, Name: "Biscuit", Chonk: 70, PurrVolume: 60},
		{ID: 2, Name: "Pickles", Zoomies: 50, Fluff: 40},
	}
}

func TestTickStartsAndPersistsAdventure(t *testing.T) {
	w, st, _ := newTestWorker(t)
	ctx := context.Background()
	partyID := uuid.New()

	if err := st.SaveParty(ctx, partyID, testParty()); err != nil {
		t.Fatalf("save party failed: %v", err)
	}

	out, err := w.Tick(ctx, partyID)
	if err != nil {
		t.Fatalf("tick failed: %v", err)
	}
	if out.Text == "" {
		t.Error("tick produced no narration")
	}

	blob, err := st.LoadAdventure(ctx, partyID)
	if err != nil {
		t.Fatalf("adventure was not persisted: %v", err)
	}
	if _, err := sim.Decode(blob); err != nil {
		t.Errorf("persisted blob does not decode: %v", err)
	}
}

func TestTickResumesStoredAdventure(t *testing.T) {
	w, st, _ := newTestWorker(t)
	ctx := context.Background()
	partyID := uuid.New()

	if err := st.SaveParty(ctx, partyID, testParty()); err != nil {
		t.Fatalf("save party failed: %v", err)
	}

	// Run a stretch of ticks; every one must decode the previous blob and
	// produce a new one.
	for i := 0; i < 30; i++ {
		if _, err := w.Tick(ctx, partyID); err != nil {
			t.Fatalf("tick %d failed: %v", i, err)
		}
	}
}

func TestTickRecoversFromCorruptBlob(t *testing.T) {
	w, st, _ := newTestWorker(t)
	ctx := context.Background()
	partyID := uuid.New()

	if err := st.SaveParty(ctx, partyID, testParty()); err != nil {
		t.Fatalf("save party failed: %v", err)
	}
	if err := st.SaveAdventure(ctx, partyID, []byte("not json")); err != nil {
		t.Fatalf("save adventure failed: %v", err)
	}

	if _, err := w.Tick(ctx, partyID); err != nil {
		t.Fatalf("tick should recover from corrupt state, got: %v", err)
	}

	blob, err := st.LoadAdventure(ctx, partyID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if _, err := sim.Decode(blob); err != nil {
		t.Errorf("blob after recovery does not decode: %v", err)
	}
}

func TestTickRequiresParty(t *testing.T) {
	w, _, _ := newTestWorker(t)
	if _, err := w.Tick(context.Background(), uuid.New()); err == nil {
		t.Error("expected error for unknown party")
	}
}

func TestTickAllDeliversToEveryParty(t *testing.T) {
	w, st, sink := newTestWorker(t)
	ctx := context.Background()

	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	for _, id := range ids {
		if err := st.SaveParty(ctx, id, testParty()); err != nil {
			t.Fatalf("save party failed: %v", err)
		}
	}

	if err := w.TickAll(ctx); err != nil {
		t.Fatalf("tick pass failed: %v", err)
	}

	for _, id := range ids {
		if len(sink.outcomes[id]) != 1 {
			t.Errorf("party %s received %d outcomes, want 1", id, len(sink.outcomes[id]))
		}
	}
}

func TestStartStop(t *testing.T) {
	w, _, _ := newTestWorker(t)
	done := make(chan error, 1)
	go func() { done <- w.Start() }()

	w.Stop()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Start returned %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop")
	}
}
