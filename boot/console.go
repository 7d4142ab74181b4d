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

// The legacy console extension.
const (
	eidConsolePutchar = uint32(1)
	eidConsoleGetchar = uint32(2)

	// Legacy firmwares disagree on whether putchar is function 0
	// or 1; this is a constant of the firmware convention targeted,
	// not something to infer. Ours ignores the fid for legacy
	// extensions, as common implementations do.
	fidConsolePutchar = uint32(0)
)

// Putchar emits one character through the legacy console call:
// the character in a0, every other argument zero. Output is
// best-effort by policy -- the result is deliberately dropped.
func (kernel *Kernel) Putchar(ch byte) {
	kernel.SbiCall(uint32(ch), 0, 0, 0, 0, 0, fidConsolePutchar, eidConsolePutchar)
}

// Getchar polls the legacy console for one character.
// Returns -1 when nothing is buffered.
func (kernel *Kernel) Getchar() int32 {
	ret := kernel.SbiCall(0, 0, 0, 0, 0, 0, 0, eidConsoleGetchar)
	if ret.Error != 0 {
		return -1
	}
	return int32(ret.Value)
}

// Puts emits a string one character at a time.
func (kernel *Kernel) Puts(s string) {
	for i := 0; i < len(s); i++ {
		kernel.Putchar(s[i])
	}
}
