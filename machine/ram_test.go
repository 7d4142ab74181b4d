package machine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rvmm/platform"
)

func TestRamFill(t *testing.T) {
	ram := NewRam(16)
	for i := range ram.Data {
		ram.Data[i] = 0xee
	}

	start := ram.Fill(4, 8, 0xab)
	assert.Equal(t, 4, start)

	for i := 0; i < 4; i++ {
		assert.Equal(t, byte(0xee), ram.Data[i], "byte %d below range modified", i)
	}
	for i := 4; i < 12; i++ {
		assert.Equal(t, byte(0xab), ram.Data[i], "byte %d not filled", i)
	}
	for i := 12; i < 16; i++ {
		assert.Equal(t, byte(0xee), ram.Data[i], "byte %d above range modified", i)
	}
}

func TestRamFillEmpty(t *testing.T) {
	ram := NewRam(8)
	for i := range ram.Data {
		ram.Data[i] = 0xee
	}

	start := ram.Fill(3, 0, 0x00)
	assert.Equal(t, 3, start)

	for i := range ram.Data {
		assert.Equal(t, byte(0xee), ram.Data[i])
	}
}

func TestRamAccessors(t *testing.T) {
	ram := NewRam(16)

	ram.Set8(0, 0x12)
	assert.Equal(t, uint8(0x12), ram.Get8(0))

	ram.Set16(2, 0x3456)
	assert.Equal(t, uint16(0x3456), ram.Get16(2))

	ram.Set32(4, 0x789abcde)
	assert.Equal(t, uint32(0x789abcde), ram.Get32(4))

	// Little-endian in memory.
	assert.Equal(t, byte(0xde), ram.Data[4])
	assert.Equal(t, byte(0xbc), ram.Data[5])
	assert.Equal(t, byte(0x9a), ram.Data[6])
	assert.Equal(t, byte(0x78), ram.Data[7])
}

func TestModelFill(t *testing.T) {
	model, err := NewModel(platform.PageSize, nil)
	assert.NoError(t, err)

	start := RamBase.After(16)
	end := RamBase.After(32)
	got := model.Fill(start, end, 0x5a)
	assert.Equal(t, start, got)

	for addr := start; addr < end; addr++ {
		assert.Equal(t, uint8(0x5a), model.Get8(addr))
	}
	assert.Equal(t, uint8(0), model.Get8(RamBase.After(15)))
	assert.Equal(t, uint8(0), model.Get8(end))
}

func TestModelErrors(t *testing.T) {
	_, err := NewModel(0, nil)
	assert.Equal(t, MemoryInvalid, err)

	_, err = NewModel(platform.PageSize+1, nil)
	assert.Equal(t, MemoryUnaligned, err)
}
