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

// RV32 platform constants.
const (
	PageSize = 4096
	WordSize = 4
)

// Our general purpose registers.
//
// These are the RV32I integer registers under their ABI names.
// Zero (x0) is hardwired: writes are discarded, reads return 0.
type Register int
type RegisterValue uint32

const (
	Zero Register = iota
	RA
	SP
	GP
	TP
	T0
	T1
	T2
	S0
	S1
	A0
	A1
	A2
	A3
	A4
	A5
	A6
	A7
	S2
	S3
	S4
	S5
	S6
	S7
	S8
	S9
	S10
	S11
	T3
	T4
	T5
	T6
)

const RegisterCount = 32

var registerNames = map[Register]string{
	Zero: "zero",
	RA:   "ra",
	SP:   "sp",
	GP:   "gp",
	TP:   "tp",
	T0:   "t0",
	T1:   "t1",
	T2:   "t2",
	S0:   "s0",
	S1:   "s1",
	A0:   "a0",
	A1:   "a1",
	A2:   "a2",
	A3:   "a3",
	A4:   "a4",
	A5:   "a5",
	A6:   "a6",
	A7:   "a7",
	S2:   "s2",
	S3:   "s3",
	S4:   "s4",
	S5:   "s5",
	S6:   "s6",
	S7:   "s7",
	S8:   "s8",
	S9:   "s9",
	S10:  "s10",
	S11:  "s11",
	T3:   "t3",
	T4:   "t4",
	T5:   "t5",
	T6:   "t6",
}

func (register Register) String() string {
	name, ok := registerNames[register]
	if !ok {
		return "x?"
	}
	return name
}
