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
	"rvmm/platform"
)

// Physical memory layout.
//
// The machine follows the qemu-virt convention: firmware jumps to
// RamBase with the kernel loaded there, and everything above is RAM.
const (
	RamBase = platform.Paddr(0x80000000)
)

type MemoryRegion struct {
	Start platform.Paddr
	Size  uint32
}

func (region *MemoryRegion) End() platform.Paddr {
	return region.Start.After(region.Size)
}

func (region *MemoryRegion) Contains(start platform.Paddr, size uint32) bool {
	return region.Start <= start && region.End() >= start.After(size)
}

// Layout holds the linker-provided symbols the startup code consumes:
// the bounds of the uninitialized-data region and the top of the boot
// stack. They are opaque addresses resolved by an external link step
// (see the loader package); nothing here derives them.
type Layout struct {
	// The uninitialized-data region, end-exclusive.
	// BssEnd >= BssStart; an empty region is valid.
	BssStart platform.Paddr
	BssEnd   platform.Paddr

	// The boot stack, growing down from StackTop.
	StackTop platform.Paddr
}

func (layout *Layout) BssSize() uint32 {
	return layout.BssEnd.OffsetFrom(layout.BssStart)
}

// DefaultLayout places a page of bss just above the base and the
// boot stack at the very top of ram, for runs without a map file.
func DefaultLayout(ram_size uint32) Layout {
	return Layout{
		BssStart: RamBase.After(platform.PageSize),
		BssEnd:   RamBase.After(2 * platform.PageSize),
		StackTop: RamBase.After(ram_size),
	}
}

func (layout *Layout) Validate(ram_size uint32) error {
	if layout.BssEnd < layout.BssStart {
		return LayoutInvalid
	}
	ram := MemoryRegion{Start: RamBase, Size: ram_size}
	if layout.BssSize() > 0 &&
		!ram.Contains(layout.BssStart, layout.BssSize()) {
		return LayoutNotContained
	}
	if layout.StackTop < RamBase || layout.StackTop > ram.End() {
		return LayoutNotContained
	}
	return nil
}
