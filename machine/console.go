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
)

const (
	ConsoleBufferSize = 64
)

// Console is the machine's character device: a fire-and-forget
// output stream and a small polled input fifo. Output has no
// backpressure or acknowledgment; that is the device's contract,
// not a shortcut.
type Console struct {
	out io.Writer

	// Our input fifo.
	buffer chan byte
}

func NewConsole(out io.Writer) *Console {
	console := new(Console)
	if out == nil {
		out = io.Discard
	}
	console.out = out
	console.buffer = make(chan byte, ConsoleBufferSize)
	return console
}

// Putc emits one character on the output stream.
func (console *Console) Putc(value byte) {
	// Ignore return value.
	console.out.Write([]byte{value})
}

// Push queues one input byte. Returns false (dropping the byte)
// when the fifo is full.
func (console *Console) Push(value byte) bool {
	select {
	case console.buffer <- value:
		return true
	default:
		return false
	}
}

// Poll takes the next input byte without blocking.
func (console *Console) Poll() (byte, bool) {
	select {
	case value := <-console.buffer:
		return value, true
	default:
		return 0, false
	}
}
