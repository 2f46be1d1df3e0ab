package config

import (
	"math"
	"strconv"

	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	tries           = kingpin.Arg("tries", "Number of one second scan attempts before giving up").String()
	Device          = kingpin.Flag("device", "Key event device of the scanner").Default("/dev/input/by-id/usb-WIT_Electron_Company_WIT_122-UFS_V2.03-event-kbd").Short('d').String()
	Pin             = kingpin.Flag("pin", "BCM pin powering the scanner").Default("25").Short('p').Uint8()
	Poll            = kingpin.Flag("poll", "Wait for a scan this long before restarting the scanner").Default("800ms").Duration()
	Settle          = kingpin.Flag("settle", "Pause for the scanner to reset between tries").Default("200ms").Short('s').Duration()
	Backend         = kingpin.Flag("gpio", "GPIO backend").Default("rpio").Enum("rpio", "gpiod")
	Chip            = kingpin.Flag("chip", "GPIO character device for the gpiod backend").Default("gpiochip0").String()
	ExhaustedStatus = kingpin.Flag("exhausted-status", "Exit status when no code is scanned").Default("0").Int()
	Debug           = kingpin.Flag("debug", "Log every input event").Bool()
)

// Tries returns the requested try count. An absent or non-numeric argument
// means scan until a code is read.
func Tries() uint64 {
	return tryCount(*tries)
}

func tryCount(s string) uint64 {
	n, err := strconv.ParseUint(s, 10, 32)
	if nil != err {
		return math.MaxInt32
	}
	return n
}
