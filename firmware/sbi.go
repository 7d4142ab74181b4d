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

package firmware

import (
	"rvmm/machine"
	"rvmm/platform"
)

// SBI extension ids (a7).
const (
	ExtLegacyPutchar  = uint32(0x01)
	ExtLegacyGetchar  = uint32(0x02)
	ExtLegacyShutdown = uint32(0x08)
	ExtBase           = uint32(0x10)
)

// Base extension function ids (a6).
const (
	BaseGetSpecVersion = uint32(0)
	BaseGetImplId      = uint32(1)
	BaseGetImplVersion = uint32(2)
	BaseProbeExtension = uint32(3)
	BaseGetMvendorid   = uint32(4)
	BaseGetMarchid     = uint32(5)
	BaseGetMimpid      = uint32(6)
)

// SBI status codes, returned to the caller in a0.
const (
	Success         = int32(0)
	ErrFailed       = int32(-1)
	ErrNotSupported = int32(-2)
	ErrInvalidParam = int32(-3)
)

// Reported by the base extension.
const (
	SpecVersion = uint32(0x2) // v0.2: major 0, minor 2.
	ImplId      = uint32(0x52564d)
	ImplVersion = uint32(0x1)
)

// Sbi is the privileged handler on the far side of the trap.
// It reads the call from the hart's argument registers, acts on
// the machine, and leaves (status, value) in (a0, a1). It never
// raises anything toward the caller: failures are data.
type Sbi struct {
	model *machine.Model
}

func New(model *machine.Model) *Sbi {
	sbi := new(Sbi)
	sbi.model = model
	return sbi
}

func (sbi *Sbi) Ecall(hart *platform.Hart) {

	eid := uint32(hart.GetRegister(platform.A7))
	fid := uint32(hart.GetRegister(platform.A6))
	arg0 := uint32(hart.GetRegister(platform.A0))

	status := Success
	value := uint32(0)

	switch eid {
	case ExtLegacyPutchar:
		// Legacy extensions carry their operation in the eid;
		// the function id is ignored (platforms disagree on
		// whether it is 0 or 1).
		sbi.model.Console().Putc(byte(arg0))

	case ExtLegacyGetchar:
		if ch, ok := sbi.model.Console().Poll(); ok {
			value = uint32(ch)
		} else {
			// Nothing buffered.
			status = ErrFailed
		}

	case ExtLegacyShutdown:
		// Power the hart down. The guest observes this as its
		// idle wait ending; no status reaches it in practice.
		hart.Stop()

	case ExtBase:
		status, value = sbi.base(fid, arg0)

	default:
		status = ErrNotSupported
	}

	hart.SetRegister(platform.A0, platform.RegisterValue(uint32(status)))
	hart.SetRegister(platform.A1, platform.RegisterValue(value))
}

func (sbi *Sbi) base(fid uint32, arg0 uint32) (int32, uint32) {

	switch fid {
	case BaseGetSpecVersion:
		return Success, SpecVersion
	case BaseGetImplId:
		return Success, ImplId
	case BaseGetImplVersion:
		return Success, ImplVersion
	case BaseProbeExtension:
		switch arg0 {
		case ExtLegacyPutchar, ExtLegacyGetchar, ExtLegacyShutdown, ExtBase:
			return Success, 1
		}
		return Success, 0
	case BaseGetMvendorid, BaseGetMarchid, BaseGetMimpid:
		// A simulated hart has none.
		return Success, 0
	}

	return ErrNotSupported, 0
}
