package trigger

import (
	"fmt"

	"github.com/warthog618/gpiod"
)

// compile-time interface compliance test
var _ Trigger = new(GpiodTrigger)

// GpiodTrigger drives the pin through the gpio character device, for
// systems without /dev/gpiomem.
type GpiodTrigger struct {
	name string
	chip *gpiod.Chip
	line *gpiod.Line
}

func NewGpiod(chip string) *GpiodTrigger {
	return &GpiodTrigger{name: chip}
}

func (t *GpiodTrigger) Init() error {
	chip, err := gpiod.NewChip(t.name)
	if nil != err {
		return fmt.Errorf("unable to open gpio chip %v: %w", t.name, err)
	}
	t.chip = chip
	return nil
}

func (t *GpiodTrigger) Output(pin uint8) error {
	line, err := t.chip.RequestLine(int(pin), gpiod.AsOutput(0))
	if nil != err {
		return fmt.Errorf("unable to request gpio line %v: %w", pin, err)
	}
	t.line = line
	return nil
}

func (t *GpiodTrigger) Write(pin uint8, level Level) error {
	if nil == t.line {
		return fmt.Errorf("gpio line %v not requested", pin)
	}
	return t.line.SetValue(int(level))
}

func (t *GpiodTrigger) Close() error {
	var err error
	if nil != t.line {
		err = t.line.Close()
	}
	if nil != t.chip {
		if cerr := t.chip.Close(); nil == err {
			err = cerr
		}
	}
	return err
}
