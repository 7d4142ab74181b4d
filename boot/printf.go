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

const hexDigits = "0123456789abcdef"

// Printf emits format with %d (signed decimal), %x (lowercase hex,
// no leading zeros), %s and %% substituted, one character at a time
// through the console sink. A directive/argument count or type
// mismatch is a precondition violation with an undefined result,
// exactly as in a minimal libc printf; it is not detected here.
func (kernel *Kernel) Printf(format string, args ...interface{}) {
	next := 0
	for i := 0; i < len(format); i++ {
		ch := format[i]
		if ch != '%' || i == len(format)-1 {
			kernel.Putchar(ch)
			continue
		}
		i++
		switch format[i] {
		case 'd':
			kernel.printInt(toInt32(args[next]))
			next++
		case 'x':
			kernel.printHex(toUint32(args[next]))
			next++
		case 's':
			s, _ := args[next].(string)
			kernel.Puts(s)
			next++
		case '%':
			kernel.Putchar('%')
		default:
			// Unknown directive: emit it literally.
			kernel.Putchar('%')
			kernel.Putchar(format[i])
		}
	}
}

func (kernel *Kernel) printInt(value int32) {
	magnitude := uint32(value)
	if value < 0 {
		kernel.Putchar('-')
		// Negate in unsigned space so the minimum value survives.
		magnitude = -magnitude
	}

	var buf [10]byte
	i := 0
	for {
		buf[i] = byte(magnitude%10) + '0'
		i++
		magnitude /= 10
		if magnitude == 0 {
			break
		}
	}
	for i--; i >= 0; i-- {
		kernel.Putchar(buf[i])
	}
}

func (kernel *Kernel) printHex(value uint32) {
	var buf [8]byte
	i := 0
	for {
		buf[i] = hexDigits[value&0xf]
		i++
		value >>= 4
		if value == 0 {
			break
		}
	}
	for i--; i >= 0; i-- {
		kernel.Putchar(buf[i])
	}
}

func toInt32(arg interface{}) int32 {
	switch value := arg.(type) {
	case int:
		return int32(value)
	case int32:
		return value
	case uint32:
		return int32(value)
	}
	return 0
}

func toUint32(arg interface{}) uint32 {
	switch value := arg.(type) {
	case int:
		return uint32(value)
	case int32:
		return uint32(value)
	case uint32:
		return value
	}
	return 0
}
