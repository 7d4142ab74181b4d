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

package machine

import (
	"io"

	"rvmm/platform"
)

// Model ties the machine together: one bank of ram at RamBase
// and the console device.
type Model struct {
	// Physical memory.
	ram *Ram

	// The character device.
	console *Console
}

func NewModel(ram_size uint32, console_out io.Writer) (*Model, error) {

	if ram_size == 0 {
		return nil, MemoryInvalid
	}
	if ram_size%platform.PageSize != 0 {
		return nil, MemoryUnaligned
	}

	// Create our model object.
	model := new(Model)
	model.ram = NewRam(int(ram_size))
	model.console = NewConsole(console_out)

	// We're set.
	return model, nil
}

func (model *Model) Ram() *Ram {
	return model.ram
}

func (model *Model) Console() *Console {
	return model.console
}

func (model *Model) RamSize() uint32 {
	return uint32(model.ram.Size())
}

// Fill writes value over the physical range [start, end), left to
// right, and returns start. An empty range writes nothing. The
// range lying inside ram is a caller-guaranteed precondition.
func (model *Model) Fill(start platform.Paddr, end platform.Paddr, value byte) platform.Paddr {
	offset := int(start.OffsetFrom(RamBase))
	length := int(end.OffsetFrom(start))
	model.ram.Fill(offset, length, value)
	return start
}

func (model *Model) Get8(addr platform.Paddr) uint8 {
	return model.ram.Get8(int(addr.OffsetFrom(RamBase)))
}

func (model *Model) Set8(addr platform.Paddr, value uint8) {
	model.ram.Set8(int(addr.OffsetFrom(RamBase)), value)
}

func (model *Model) Get32(addr platform.Paddr) uint32 {
	return model.ram.Get32(int(addr.OffsetFrom(RamBase)))
}

func (model *Model) Set32(addr platform.Paddr, value uint32) {
	model.ram.Set32(int(addr.OffsetFrom(RamBase)), value)
}
