package session

import (
	"errors"
	"fmt"
	"log"
	"time"

	"git.lost.host/meutraa/scan/internal/events"
	"git.lost.host/meutraa/scan/internal/keymap"
	"git.lost.host/meutraa/scan/internal/trigger"
	evdev "github.com/holoplot/go-evdev"
)

// MaxCode is the scan buffer size; a code holds at most MaxCode-1 characters.
const MaxCode = 64

type Outcome int

const (
	// Exhausted means every try ran out without a completed code.
	Exhausted Outcome = iota
	// Scanned means a code was read to completion.
	Scanned
)

// Session owns one scan loop over a single scanner. Each try energizes the
// trigger pin, waits for the event device to become readable, drains the
// available events into the code buffer, then de-energizes and settles.
type Session struct {
	stream events.Stream
	trig   trigger.Trigger
	pin    uint8
	poll   time.Duration
	settle time.Duration

	shift bool
	code  []byte
}

func New(stream events.Stream, trig trigger.Trigger, pin uint8, poll, settle time.Duration) *Session {
	return &Session{
		stream: stream,
		trig:   trig,
		pin:    pin,
		poll:   poll,
		settle: settle,
		code:   make([]byte, 0, MaxCode-1),
	}
}

// Run performs up to tries trigger/poll/settle cycles and returns the first
// completed code. The trigger pin is left low on every return path that
// follows an energize.
func (s *Session) Run(tries uint64) (string, Outcome, error) {
	if err := s.stream.Grab(); nil != err {
		return "", Exhausted, err
	}
	if err := s.trig.Output(s.pin); nil != err {
		return "", Exhausted, err
	}

	for try := uint64(0); try < tries; try++ {
		if err := s.trig.Write(s.pin, trigger.High); nil != err {
			s.off()
			return "", Exhausted, err
		}

		ready, err := s.stream.Poll(s.poll)
		if nil != err {
			s.off()
			return "", Exhausted, fmt.Errorf("unable to poll scanner: %w", err)
		}

		if ready == events.Ready {
			code, done, err := s.read()
			if nil != err {
				s.off()
				return "", Exhausted, fmt.Errorf("unable to read scan: %w", err)
			}
			if done {
				s.off()
				return code, Scanned, nil
			}
		}

		s.off()
		time.Sleep(s.settle)
	}
	return "", Exhausted, nil
}

// read drains the events available right now. done is true once an Enter
// press or a full buffer completes the code; a drain without either leaves
// the try to be retried.
func (s *Session) read() (string, bool, error) {
	s.code = s.code[:0]
	s.shift = false

	for {
		ev, err := s.stream.Next()
		if errors.Is(err, events.ErrDrained) {
			return "", false, nil
		}
		if nil != err {
			return "", false, err
		}
		if !ev.Key() {
			continue
		}

		key := evdev.EvCode(ev.Code)
		switch {
		case ev.Up() && keymap.Shift(key):
			s.shift = false
		case ev.Down():
			if len(s.code) == MaxCode-1 || key == evdev.KEY_ENTER {
				return string(s.code), true, nil
			}
			if keymap.Shift(key) {
				s.shift = true
				continue
			}
			if c, ok := keymap.Map(key, s.shift); ok {
				s.code = append(s.code, c)
				if len(s.code) == MaxCode-1 {
					return string(s.code), true, nil
				}
			}
		}
	}
}

func (s *Session) off() {
	if err := s.trig.Write(s.pin, trigger.Low); nil != err {
		log.Println("unable to de-energize trigger pin:", err)
	}
}
