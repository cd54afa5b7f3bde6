//go:build unix

package source

import (
	"fmt"
	"io"

	"golang.org/x/sys/unix"
)

// FD reads directly from a file descriptor with read(2), bypassing os.File
// and the runtime poller. It suits descriptors inherited from a parent
// process, such as a pipe on fd 0.
type FD struct {
	fd int
}

// NewFD wraps fd. The caller keeps ownership of the descriptor.
func NewFD(fd int) *FD {
	return &FD{fd: fd}
}

// Read implements io.Reader. EINTR is retried; a zero-length read is io.EOF.
func (f *FD) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	for {
		n, err := unix.Read(f.fd, p)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return 0, fmt.Errorf("source: read fd %d: %w", f.fd, err)
		}
		if n == 0 {
			return 0, io.EOF
		}
		return n, nil
	}
}

// Fd returns the wrapped descriptor.
func (f *FD) Fd() int { return f.fd }
