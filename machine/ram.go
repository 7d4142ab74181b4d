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
	"encoding/binary"
)

// Ram is the machine's physical memory, offset-addressed.
// RISC-V is little-endian, so the multi-byte accessors are
// fixed to little-endian regardless of the host.
type Ram struct {
	Data []byte
}

func NewRam(size int) *Ram {
	ram := new(Ram)
	ram.Data = make([]byte, size, size)
	return ram
}

func (ram *Ram) Size() int {
	return len(ram.Data)
}

func (ram *Ram) Set8(offset int, data uint8) {
	ram.Data[offset] = byte(data)
}

func (ram *Ram) Get8(offset int) uint8 {
	return ram.Data[offset]
}

func (ram *Ram) Set16(offset int, data uint16) {
	binary.LittleEndian.PutUint16(ram.Data[offset:], data)
}

func (ram *Ram) Get16(offset int) uint16 {
	return binary.LittleEndian.Uint16(ram.Data[offset:])
}

func (ram *Ram) Set32(offset int, data uint32) {
	binary.LittleEndian.PutUint32(ram.Data[offset:], data)
}

func (ram *Ram) Get32(offset int) uint32 {
	return binary.LittleEndian.Uint32(ram.Data[offset:])
}

// Fill writes value to every byte in [offset, offset+length),
// left to right, and returns the starting offset. A zero-length
// fill performs no writes. The range lying inside the ram is a
// precondition, not a checked error.
func (ram *Ram) Fill(offset int, length int, value byte) int {
	for i := offset; i < offset+length; i++ {
		ram.Data[i] = value
	}
	return offset
}
