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

// Ret is the two-register result of a supervisor call:
// a0 holds the status code, a1 the return value.
type Ret struct {
	Error int32
	Value uint32
}

// SbiCall issues one synchronous supervisor call.
//
// The register layout is a hard ABI contract with the firmware on
// the other side of the trap:
//
//	a7: extension id (eid)
//	a6: function id (fid)
//	a0..a5: call arguments, in order
//
// returns: a0 = error code, a1 = return value.
//
// All eight registers are written immediately before the trap and
// the result registers are read back immediately after it; the trap
// is an opaque boundary that may have touched memory or performed
// I/O, so no value is assumed to survive it. A nonzero status is
// returned as data, never acted on here.
func (kernel *Kernel) SbiCall(
	arg0 uint32,
	arg1 uint32,
	arg2 uint32,
	arg3 uint32,
	arg4 uint32,
	arg5 uint32,
	fid uint32,
	eid uint32) Ret {

	hart := kernel.hart

	hart.SetRegister(platform.A0, platform.RegisterValue(arg0))
	hart.SetRegister(platform.A1, platform.RegisterValue(arg1))
	hart.SetRegister(platform.A2, platform.RegisterValue(arg2))
	hart.SetRegister(platform.A3, platform.RegisterValue(arg3))
	hart.SetRegister(platform.A4, platform.RegisterValue(arg4))
	hart.SetRegister(platform.A5, platform.RegisterValue(arg5))
	hart.SetRegister(platform.A6, platform.RegisterValue(fid))
	hart.SetRegister(platform.A7, platform.RegisterValue(eid))

	hart.Ecall()

	// Read the result back from the registers themselves.
	return Ret{
		Error: int32(hart.GetRegister(platform.A0)),
		Value: uint32(hart.GetRegister(platform.A1)),
	}
}
