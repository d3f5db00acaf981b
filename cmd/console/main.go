// Command console runs a local adventure in the terminal: it generates a
// party, keeps the adventure in memory and advances it one event per
// keypress. Useful for trying out the simulation without Redis or the
// daemon.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/whiskerworks/adventure-engine/internal/storage"
	"github.com/whiskerworks/adventure-engine/internal/worker"
	"github.com/whiskerworks/adventure-engine/pkg/actor"
	"github.com/whiskerworks/adventure-engine/pkg/outcome"
	"github.com/whiskerworks/adventure-engine/pkg/sim"
)

// dropSink discards outcomes; the console reads them from Tick directly.
type dropSink struct{}

func (dropSink) Deliver(context.Context, uuid.UUID, outcome.Outcome) error { return nil }

func main() {
	partySize := 3
	if raw := os.Getenv("PARTY_SIZE"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			fmt.Fprintf(os.Stderr, "Invalid PARTY_SIZE %q\n", raw)
			os.Exit(1)
		}
		partySize = n
	}

	now := time.Now()
	r := rand.New(rand.NewPCG(uint64(now.UnixNano()), uint64(now.Unix())))

	cats := make([]*actor.Cat, partySize)
	for i := range cats {
		cats[i] = actor.Generate(r, i+1)
	}

	st := storage.NewMockStorage()
	partyID := uuid.New()
	if err := st.SaveParty(context.Background(), partyID, cats); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up party: %v\n", err)
		os.Exit(1)
	}

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	w := worker.New(st, dropSink{}, log, sim.DefaultProbabilities, time.Minute)

	ui := newConsoleUI(w, partyID, cats)
	if _, err := tea.NewProgram(ui, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running console: %v\n", err)
		os.Exit(1)
	}
}
