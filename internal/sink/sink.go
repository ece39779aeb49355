// Package sink is an explicit replacement for a process-wide output-sink
// selector. The C implementation this is ported from keeps exactly one
// global selector (standard output, or a single growable buffer) and
// requires callers to serialize around it; here that becomes an io.Writer
// passed explicitly through the call chain, with a package-level default
// kept only for parity with the CLI's single-invocation model.
package sink

import (
	"bytes"
	"io"
	"os"
)

// Sink is anything the renderer can write proto3 text into.
type Sink interface {
	io.Writer
}

// Stdout returns a Sink that writes directly to standard output.
func Stdout() Sink { return os.Stdout }

// Buffer is a growable in-memory Sink. The zero value is ready to use.
type Buffer struct {
	buf bytes.Buffer
}

func (b *Buffer) Write(p []byte) (int, error) { return b.buf.Write(p) }

// Bytes returns the buffer's current contents.
func (b *Buffer) Bytes() []byte { return b.buf.Bytes() }

// String returns the buffer's current contents as a string.
func (b *Buffer) String() string { return b.buf.String() }

// NewBuffer returns a ready-to-use in-memory Sink.
func NewBuffer() *Buffer { return &Buffer{} }

var defaultSink Sink = os.Stdout

// Default returns the process-wide default sink, selected with SetDefault.
// Re-entrant translation must serialize around this value: it is shared
// process-wide state, not per-call.
func Default() Sink { return defaultSink }

// SetDefault selects the process-wide default sink.
func SetDefault(s Sink) { defaultSink = s }
