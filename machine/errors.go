package machine

import (
	"errors"
)

// Memory errors.
var MemoryInvalid = errors.New("Memory size is invalid!")
var MemoryUnaligned = errors.New("Memory not aligned!")

// Layout errors.
var LayoutInvalid = errors.New("Bss region ends before it starts?")
var LayoutNotContained = errors.New("Layout symbol outside of ram!")
