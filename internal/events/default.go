package events

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"log"
	"time"

	"golang.org/x/sys/unix"
)

// compile-time interface compliance test
var _ Stream = new(DefaultStream)

var eventSize = binary.Size(Event{})

// EVIOCGRAB = _IOW('E', 0x90, int); x/sys/unix does not export the
// EVIOC* requests, so encode it here: dir<<30 | size<<16 | 'E'<<8 | nr.
const eviocgrab = 1<<30 | 4<<16 | 'E'<<8 | 0x90

// DefaultStream reads a key event character device without blocking, so
// a drained device reports ErrDrained instead of suspending the caller.
type DefaultStream struct {
	// Debug logs every decoded event.
	Debug bool

	fd  int
	buf []byte
}

func Open(device string) (*DefaultStream, error) {
	fd, err := unix.Open(device, unix.O_RDONLY|unix.O_NONBLOCK, 0)
	if nil != err {
		return nil, fmt.Errorf("unable to open input device %v: %w", device, err)
	}
	return &DefaultStream{fd: fd, buf: make([]byte, eventSize)}, nil
}

func (s *DefaultStream) Grab() error {
	if err := unix.IoctlSetInt(s.fd, eviocgrab, 1); nil != err {
		return fmt.Errorf("unable to grab input device: %w", err)
	}
	return nil
}

func (s *DefaultStream) Poll(timeout time.Duration) (Readiness, error) {
	fds := []unix.PollFd{{Fd: int32(s.fd), Events: unix.POLLIN | unix.POLLPRI}}
	n, err := unix.Poll(fds, int(timeout.Milliseconds()))
	if nil != err {
		return Timeout, fmt.Errorf("unable to poll input device: %w", err)
	}
	if n == 0 {
		return Timeout, nil
	}
	return Ready, nil
}

func (s *DefaultStream) Next() (*Event, error) {
	n, err := unix.Read(s.fd, s.buf)
	if err == unix.EAGAIN {
		return nil, ErrDrained
	}
	if nil != err {
		return nil, fmt.Errorf("unable to read input event: %w", err)
	}
	if n < eventSize {
		return nil, fmt.Errorf("short input event record: %v of %v bytes", n, eventSize)
	}
	var ev Event
	if err := binary.Read(bytes.NewReader(s.buf), binary.LittleEndian, &ev); nil != err {
		return nil, fmt.Errorf("unable to decode input event: %w", err)
	}
	if s.Debug {
		log.Printf("event type: %v; code: %v; value: %v", ev.Type, ev.Code, ev.Value)
	}
	return &ev, nil
}

func (s *DefaultStream) Close() error {
	// Releasing the grab on a dead fd is harmless
	_ = unix.IoctlSetInt(s.fd, eviocgrab, 0)
	return unix.Close(s.fd)
}
