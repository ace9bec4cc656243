//go:build !windows

package secure

import "golang.org/x/sys/unix"

// lock pins the buffer's backing memory so secret material cannot be
// paged to swap. A refused lock (RLIMIT_MEMLOCK, unprivileged container)
// is not fatal: the buffer degrades to zeroing only, which Locked exposes
// for callers that want to warn.
func (b *Buffer) lock() bool {
	if len(b.data) == 0 {
		return false
	}
	return unix.Mlock(b.data) == nil
}

// unlock releases the pin before the memory is returned to the allocator.
// Called only under b.mu with b.locked set.
func (b *Buffer) unlock() {
	_ = unix.Munlock(b.data)
}
