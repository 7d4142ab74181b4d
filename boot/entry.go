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
	"rvmm/platform"
)

// Boot is the reset vector. It runs before any invariant holds --
// no stack, no zeroed statics -- so its only act is to write the
// boot-stack-top into sp and transfer to Main. It never returns.
func (kernel *Kernel) Boot() {
	kernel.hart.SetRegister(platform.SP,
		platform.RegisterValue(uint32(kernel.layout.StackTop)))
	kernel.Main()
}

// Main is the startup routine. It runs with a valid stack but a
// not-yet-zeroed bss; the order below matters.
func (kernel *Kernel) Main() {

	// Zero the bss before anything reads a variable that relies
	// on zero-initialization. An empty region is a no-op.
	kernel.Memset(kernel.layout.BssStart, kernel.layout.BssEnd, 0)

	if !kernel.Quiet {
		kernel.banner()
	}

	// Nothing left to run.
	kernel.Idle()
}

func (kernel *Kernel) banner() {
	kernel.Puts("\n\nHello World!\n")
	kernel.Printf("\n\nHello %s\n", "World!")
	kernel.Printf("1 + 2 = %d, %x\n", 1+2, uint32(0x1234abcd))
}

// Idle parks the hart in the wait-for-interrupt loop. With no
// interrupt handling installed this is the permanent terminal
// state; a wakeup just re-enters the wait. The loop ends only
// when the monitor powers the hart down.
func (kernel *Kernel) Idle() {
	for kernel.hart.Wfi() {
	}
}
