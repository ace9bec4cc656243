package secure

import (
	"runtime"
	"sync"
)

// Buffer holds sensitive bytes (a secret, a passphrase, share data before
// encoding). The backing memory is locked against swapping when the
// platform supports it and zeroed on Destroy.
type Buffer struct {
	mu     sync.Mutex
	data   []byte
	locked bool
}

// NewBuffer allocates a Buffer of the given size.
func NewBuffer(size int) *Buffer {
	b := &Buffer{data: make([]byte, size)}
	b.locked = b.lock()

	// Clear the memory even if the caller forgets Destroy.
	runtime.SetFinalizer(b, func(b *Buffer) { b.Destroy() })
	return b
}

// BufferFrom copies data into a new Buffer.
func BufferFrom(data []byte) *Buffer {
	b := NewBuffer(len(data))
	copy(b.data, data)
	return b
}

// Bytes returns the underlying slice, or nil after Destroy.
func (b *Buffer) Bytes() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.data
}

// Locked reports whether the backing memory is pinned against swapping.
func (b *Buffer) Locked() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.locked
}

// Destroy zeroes and releases the backing memory. Safe to call twice.
func (b *Buffer) Destroy() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.data == nil {
		return
	}
	Wipe(b.data)
	if b.locked {
		b.unlock()
		b.locked = false
	}
	b.data = nil
	runtime.SetFinalizer(b, nil)
}
