// Copyright 2014 Google Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-tty"
	"github.com/pkg/errors"

	"rvmm/boot"
	"rvmm/firmware"
	"rvmm/loader"
	"rvmm/machine"
	"rvmm/platform"
)

// Machine parameters.
var mem = flag.Uint("mem", 16, "ram size (MiB)")
var sysmap_path = flag.String("sysmap", "", "system map with the layout symbols")

// Guest parameters.
var quiet = flag.Bool("quiet", false, "suppress the demonstration banner")

// Console parameters.
var use_tty = flag.Bool("tty", false, "feed raw keystrokes to the console input")

func buildLayout(ram_size uint32) (machine.Layout, error) {

	if *sysmap_path == "" {
		// No map given; use the built-in layout.
		return machine.DefaultLayout(ram_size), nil
	}

	file, err := os.Open(*sysmap_path)
	if err != nil {
		return machine.Layout{}, errors.Wrap(err, "opening system map")
	}
	defer file.Close()

	sysmap, err := loader.ParseMap(file)
	if err != nil {
		return machine.Layout{}, err
	}
	layout, err := sysmap.Layout()
	if err != nil {
		return machine.Layout{}, err
	}
	if err := layout.Validate(ram_size); err != nil {
		return machine.Layout{}, errors.Wrapf(err, "validating %s", *sysmap_path)
	}

	return layout, nil
}

// consoleInput pumps raw keystrokes into the console fifo and
// wakes the parked hart for each one.
func consoleInput(hart *platform.Hart, console *machine.Console) error {

	term, err := tty.Open()
	if err != nil {
		return errors.Wrap(err, "opening tty")
	}
	defer term.Close()

	for {
		r, err := term.ReadRune()
		if err != nil {
			return err
		}
		if r == 0 || r > 0xff {
			continue
		}
		console.Push(byte(r))
		hart.Interrupt()
	}
}

func main() {
	// Parse all command-line options.
	flag.Parse()

	ram_size := uint32(*mem) * 1024 * 1024

	// Create the machine.
	model, err := machine.NewModel(ram_size, os.Stdout)
	if err != nil {
		log.Fatal("Problem creating machine: ", err)
	}

	// Resolve the layout symbols.
	layout, err := buildLayout(ram_size)
	if err != nil {
		log.Fatal("Problem resolving layout: ", err)
	}

	// Create the hart and bind the firmware.
	hart := platform.NewHart()
	hart.Bind(firmware.New(model))

	kernel := boot.NewKernel(hart, model, layout)
	kernel.Quiet = *quiet

	// Power the hart down on a shutdown signal.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		hart.Stop()
	}()

	if *use_tty {
		go func() {
			err := consoleInput(hart, model.Console())
			if err != nil {
				log.Print("Console input stopped: ", err)
			}
		}()
	}

	// Transfer control to the reset vector.
	// This returns only once the hart has been powered down.
	log.Print("Hart running...")
	kernel.Boot()
	log.Print("Hart stopped.")
}
