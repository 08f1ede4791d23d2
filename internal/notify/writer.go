package notify

import (
	"context"
	"fmt"
	"io"
	"sync"

	"mwtrack/internal/domain"
)

// Writer prints notifications as text lines.
type Writer struct {
	mu sync.Mutex
	w  io.Writer
}

var _ domain.Notifier = (*Writer)(nil)

// NewWriter returns a Writer printing to w.
func NewWriter(w io.Writer) *Writer { return &Writer{w: w} }

// Notify writes n as "title: body".
func (n *Writer) Notify(_ context.Context, msg domain.Notification) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	_, err := fmt.Fprintf(n.w, "%s: %s\n", msg.Title, msg.Body)
	return err
}
