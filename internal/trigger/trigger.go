package trigger

type Level uint8

const (
	Low Level = iota
	High
)

// Trigger drives the GPIO line powering the scanner.
type Trigger interface {
	Init() error
	// Output configures pin as an output line.
	Output(pin uint8) error
	Write(pin uint8, level Level) error
	Close() error
}
