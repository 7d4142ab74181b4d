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

package boot

import (
	"rvmm/machine"
	"rvmm/platform"
)

// Kernel is the guest side of the machine: the supervisor-mode
// program that takes control at reset. It owns nothing but the
// hart it runs on, the machine's memory, and the three addresses
// the link step resolved for it.
type Kernel struct {
	hart   *platform.Hart
	model  *machine.Model
	layout machine.Layout

	// Skip the demonstration banner?
	Quiet bool
}

func NewKernel(hart *platform.Hart, model *machine.Model, layout machine.Layout) *Kernel {
	kernel := new(Kernel)
	kernel.hart = hart
	kernel.model = model
	kernel.layout = layout
	return kernel
}

// Memset fills [start, end) with value and returns start.
// An empty range writes nothing. The range being valid ram is a
// precondition the caller guarantees; nothing here checks it.
func (kernel *Kernel) Memset(start platform.Paddr, end platform.Paddr, value byte) platform.Paddr {
	return kernel.model.Fill(start, end, value)
}
