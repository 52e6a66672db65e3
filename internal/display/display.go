package display

import (
	"fmt"
	"io"
	"sync"
)

// Writer is a StatusDisplay that writes every status to an io.Writer as one line.
// Each new line supersedes the previous one.
type Writer struct {
	mu  sync.Mutex
	out io.Writer
}

// NewWriter creates a Writer that outputs to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{out: w}
}

// SetText writes the message followed by a newline.
// Write errors are dropped: a status display has no error channel.
func (w *Writer) SetText(message string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	fmt.Fprintln(w.out, message) //nolint:errcheck
}

// Recorder is a StatusDisplay that remembers the current status only.
type Recorder struct {
	mu   sync.RWMutex
	text string
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// SetText replaces the current status.
func (r *Recorder) SetText(message string) {
	r.mu.Lock()
	r.text = message
	r.mu.Unlock()
}

// Text returns the current status.
func (r *Recorder) Text() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.text
}
