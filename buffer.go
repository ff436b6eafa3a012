package shapes

import "fmt"

// Buffer is the GPU buffer primitive a StreamBuffer drives. Backends
// supply one per vertex attribute stream.
type Buffer interface {
	// Realloc gives the buffer a fresh backing store of the given byte
	// size. In-flight reads of the old store are left undisturbed.
	Realloc(capacity int)
	// Upload copies data into the current store starting at offset zero.
	Upload(data []byte)
}

// DefaultBufferCapacity is the initial stream buffer capacity in bytes.
const DefaultBufferCapacity = 4096

// StreamBuffer manages the streaming lifecycle of one vertex attribute
// buffer: grow geometrically, orphan before every write, never shrink.
// Orphaning swaps in a fresh backing store so the CPU never overwrites
// bytes a queued draw call is still reading.
type StreamBuffer struct {
	store    Buffer
	capacity int
}

// NewStreamBuffer wraps store and allocates its initial backing storage.
// A non-positive capacity uses DefaultBufferCapacity.
func NewStreamBuffer(store Buffer, capacity int) *StreamBuffer {
	if capacity <= 0 {
		capacity = DefaultBufferCapacity
	}
	b := &StreamBuffer{store: store, capacity: capacity}
	store.Realloc(capacity)
	return b
}

// Capacity returns the current backing store size in bytes.
func (b *StreamBuffer) Capacity() int { return b.capacity }

// Orphan replaces the backing store with a fresh one of at least the
// requested size. Passing zero keeps the current capacity. Capacity
// never shrinks; requests below the current capacity reallocate at the
// current size.
func (b *StreamBuffer) Orphan(capacity int) {
	if capacity < b.capacity {
		capacity = b.capacity
	}
	b.capacity = capacity
	b.store.Realloc(capacity)
}

// GrowToFit doubles the capacity until required bytes fit, orphaning at
// each step. When no growth is needed it orphans once at the current
// capacity, so every draw that calls GrowToFit writes into a fresh
// store.
func (b *StreamBuffer) GrowToFit(required int) {
	grown := false
	for required > b.capacity {
		b.Orphan(b.capacity * 2)
		grown = true
	}
	if grown {
		Logger().Debug("stream buffer grown",
			"capacity", b.capacity, "required", required)
		return
	}
	b.Orphan(0)
}

// Write uploads data at offset zero of the current store. Data larger
// than the capacity is rejected with ErrWriteOverflow.
func (b *StreamBuffer) Write(data []byte) error {
	if len(data) > b.capacity {
		return fmt.Errorf("%w: %d bytes into %d", ErrWriteOverflow, len(data), b.capacity)
	}
	b.store.Upload(data)
	return nil
}
