package events

import (
	"errors"
	"syscall"
	"time"

	evdev "github.com/holoplot/go-evdev"
)

// ErrDrained marks the end of the currently available events. It is a
// normal condition, not a failure.
var ErrDrained = errors.New("no input events available")

// Event mirrors the kernel input_event record.
// https://github.com/torvalds/linux/blob/master/include/uapi/linux/input.h
type Event struct {
	Time  syscall.Timeval
	Type  uint16
	Code  uint16
	Value int32
}

func (e *Event) Key() bool  { return e.Type == uint16(evdev.EV_KEY) }
func (e *Event) Down() bool { return e.Value == 1 }
func (e *Event) Up() bool   { return e.Value == 0 }

type Readiness int

const (
	Timeout Readiness = iota
	Ready
)

// Stream is a lazy, restartable sequence of raw input events.
type Stream interface {
	// Grab takes exclusive ownership of the device until Close.
	Grab() error
	// Poll waits up to timeout for an event to become available.
	Poll(timeout time.Duration) (Readiness, error)
	// Next returns the next available event, or ErrDrained once the
	// device has nothing more to deliver right now.
	Next() (*Event, error)
	Close() error
}
