//go:build windows

package secure

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// lock pins the buffer's backing memory via VirtualLock so secret
// material cannot be paged out. Failure degrades to zeroing only.
func (b *Buffer) lock() bool {
	if len(b.data) == 0 {
		return false
	}
	addr := uintptr(unsafe.Pointer(&b.data[0]))
	return windows.VirtualLock(addr, uintptr(len(b.data))) == nil
}

// unlock releases the pin. Called only under b.mu with b.locked set.
func (b *Buffer) unlock() {
	addr := uintptr(unsafe.Pointer(&b.data[0]))
	_ = windows.VirtualUnlock(addr, uintptr(len(b.data)))
}
