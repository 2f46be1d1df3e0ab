package trigger

import (
	"fmt"

	"github.com/stianeikeland/go-rpio/v4"
)

// compile-time interface compliance test
var _ Trigger = new(DefaultTrigger)

// DefaultTrigger drives the pin through /dev/gpiomem, BCM numbering.
type DefaultTrigger struct{}

func (t *DefaultTrigger) Init() error {
	if err := rpio.Open(); nil != err {
		return fmt.Errorf("unable to open gpio memory: %w", err)
	}
	return nil
}

func (t *DefaultTrigger) Output(pin uint8) error {
	rpio.Pin(pin).Output()
	return nil
}

func (t *DefaultTrigger) Write(pin uint8, level Level) error {
	if level == High {
		rpio.Pin(pin).High()
	} else {
		rpio.Pin(pin).Low()
	}
	return nil
}

func (t *DefaultTrigger) Close() error {
	return rpio.Close()
}
