package pixconv

import (
	"fmt"
	"io"
	"sync"
)

// Sink receives per-pixel diagnostics from a Converter.
//
// Visit is called once for every pixel processed, from whichever worker
// processed it. Implementations must be safe for concurrent use.
type Sink interface {
	Visit(worker int)
}

// SinkFunc adapts an ordinary function to the Sink interface.
// The function must be safe for concurrent use.
type SinkFunc func(worker int)

// Visit calls f(worker).
func (f SinkFunc) Visit(worker int) { f(worker) }

// WriterSink writes one "worker N" line per visit to an io.Writer.
//
// Each line is written under a mutex so lines from different workers never
// interleave. The lock covers the write only.
type WriterSink struct {
	mu  sync.Mutex
	w   io.Writer
	err error
}

// NewWriterSink returns a sink that writes worker lines to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Visit writes the worker line. After the first write error, further visits
// are dropped. Visit on a nil *WriterSink does nothing.
func (s *WriterSink) Visit(worker int) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return
	}
	if _, err := fmt.Fprintf(s.w, "worker %d\n", worker); err != nil {
		s.err = err
	}
}

// Err returns the first write error, if any.
func (s *WriterSink) Err() error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}
