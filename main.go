package main

import (
	"fmt"
	"log"
	"os"

	"git.lost.host/meutraa/scan/internal/config"
	"git.lost.host/meutraa/scan/internal/events"
	"git.lost.host/meutraa/scan/internal/session"
	"git.lost.host/meutraa/scan/internal/trigger"
	"gopkg.in/alecthomas/kingpin.v2"
)

func main() {
	kingpin.Version("0.2.0")
	kingpin.Parse()

	status, err := run()
	if nil != err {
		log.Fatalln(err)
	}
	os.Exit(status)
}

func run() (int, error) {
	stream, err := events.Open(*config.Device)
	if nil != err {
		return 0, err
	}
	defer func() {
		if err := stream.Close(); nil != err {
			log.Println("unable to close input device:", err)
		}
	}()
	stream.Debug = *config.Debug

	// Ensure our concrete backend is used as the Trigger interface
	var trig trigger.Trigger = &trigger.DefaultTrigger{}
	if *config.Backend == "gpiod" {
		trig = trigger.NewGpiod(*config.Chip)
	}
	if err := trig.Init(); nil != err {
		return 0, err
	}
	defer func() {
		if err := trig.Close(); nil != err {
			log.Println("unable to release gpio:", err)
		}
	}()

	s := session.New(stream, trig, *config.Pin, *config.Poll, *config.Settle)
	code, outcome, err := s.Run(config.Tries())
	if nil != err {
		return 0, err
	}
	if outcome == session.Exhausted {
		return *config.ExhaustedStatus, nil
	}

	fmt.Println(code)
	return 0, nil
}
