package platform

// Address types.
//
// The machine is a 32-bit target; every address and every
// register value fits a single 32-bit word.
type Paddr uint32

func (paddr Paddr) OffsetFrom(base Paddr) uint32 {
	return uint32(paddr) - uint32(base)
}

func (paddr Paddr) After(length uint32) Paddr {
	return Paddr(uint32(paddr) + length)
}

func Align(addr uint32, alignment uint, up bool) uint32 {

	// Aligned already?
	if addr%uint32(alignment) == 0 {
		return addr
	}

	// Give the closest aligned address.
	addr = addr - (addr % uint32(alignment))

	if up {
		// Should we align up?
		return addr + uint32(alignment)
	}
	return addr
}

func (paddr Paddr) Align(alignment uint, up bool) Paddr {
	return Paddr(Align(uint32(paddr), alignment, up))
}
