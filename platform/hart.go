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

package platform

import (
	"sync"
)

// The handler on the privileged side of the ecall boundary.
//
// When the hart executes Ecall(), control transfers here with the
// argument registers (a0-a7) holding whatever the caller put in them.
// The handler reads those registers, may touch machine memory
// arbitrarily, and leaves its status in a0 and its value in a1
// before returning. The hart itself gives the call no meaning.
type EcallHandler interface {
	Ecall(hart *Hart)
}

// The value left in a0 when no handler is bound.
// This matches the SBI "not supported" status in two's complement,
// so an unbound hart behaves like firmware with no extensions.
const EcallUnbound = RegisterValue(0xfffffffe)

type Hart struct {
	// The integer register file.
	registers [RegisterCount]RegisterValue

	// The bound ecall handler, if any.
	handler EcallHandler

	// Pending wakeup for Wfi().
	// Posting is non-blocking; at most one wakeup is held.
	wakeup chan struct{}

	// Closed exactly once when the hart is stopped.
	stopped   chan struct{}
	stop_once sync.Once

	// Is the hart currently parked in Wfi()?
	parked bool

	// Protects parked.
	sync.Mutex
}

func NewHart() *Hart {
	hart := new(Hart)
	hart.wakeup = make(chan struct{}, 1)
	hart.stopped = make(chan struct{})
	return hart
}

// Bind attaches the privileged handler.
// There is exactly one firmware on the other side of the trap;
// rebinding replaces it.
func (hart *Hart) Bind(handler EcallHandler) {
	hart.handler = handler
}

func (hart *Hart) SetRegister(reg Register, val RegisterValue) {
	if reg == Zero {
		// Writes to x0 are discarded.
		return
	}
	hart.registers[reg] = val
}

func (hart *Hart) GetRegister(reg Register) RegisterValue {
	if reg == Zero {
		return 0
	}
	return hart.registers[reg]
}

// Ecall executes one synchronous privileged trap.
//
// The boundary is opaque: the handler may have performed I/O or
// modified machine memory by the time this returns, so callers must
// re-read any register they care about (a0/a1 for the result) rather
// than assume values survived the call.
func (hart *Hart) Ecall() {
	if hart.handler == nil {
		// No firmware bound.
		hart.SetRegister(A0, EcallUnbound)
		hart.SetRegister(A1, 0)
		return
	}
	hart.handler.Ecall(hart)
}

// Interrupt posts one external wakeup for a parked hart.
// Delivery is fire-and-forget; if a wakeup is already pending
// the two collapse into one.
func (hart *Hart) Interrupt() {
	select {
	case hart.wakeup <- struct{}{}:
	default:
	}
}

// Stop powers the hart down.
// Any current or future Wfi() returns false. Idempotent.
func (hart *Hart) Stop() {
	hart.stop_once.Do(func() {
		close(hart.stopped)
	})
}

func (hart *Hart) Stopped() bool {
	select {
	case <-hart.stopped:
		return true
	default:
		return false
	}
}

// Wfi parks the hart until an external wakeup or a stop.
// Returns true on a wakeup, false once the hart is stopped.
// With nothing on the other end this never returns -- that is the
// intended terminal state of a system with no scheduler.
func (hart *Hart) Wfi() bool {
	hart.Lock()
	hart.parked = true
	hart.Unlock()

	defer func() {
		hart.Lock()
		hart.parked = false
		hart.Unlock()
	}()

	select {
	case <-hart.wakeup:
		return true
	case <-hart.stopped:
		return false
	}
}

func (hart *Hart) Parked() bool {
	hart.Lock()
	defer hart.Unlock()
	return hart.parked
}
