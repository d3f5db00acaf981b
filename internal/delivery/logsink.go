package delivery

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"

	"github.com/whiskerworks/adventure-engine/pkg/outcome"
)

// WriterSink renders each outcome and writes it to an io.Writer. It is the
// daemon's default sink, pointed at stdout.
type WriterSink struct {
	mu sync.Mutex
	w  io.Writer
}

var _ Sink = (*WriterSink)(nil)

// NewWriterSink creates a sink writing rendered outcomes to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

func (s *WriterSink) Deliver(ctx context.Context, partyID uuid.UUID, out outcome.Outcome) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := fmt.Fprintf(s.w, "[party %s]\n%s\n\n", partyID, Render(out)); err != nil {
		return fmt.Errorf("failed to write outcome: %w", err)
	}
	return nil
}
