package loader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rvmm/machine"
	"rvmm/platform"
)

const sampleMap = `
# produced by the link step
80000000 T boot
80001000 B __bss
80002000 B __bss_end
80010000 D __stack_top
`

func TestParseMap(t *testing.T) {
	sysmap, err := ParseMap(strings.NewReader(sampleMap))
	require.NoError(t, err)
	assert.Len(t, sysmap, 4)

	addr, err := sysmap.Lookup("boot")
	require.NoError(t, err)
	assert.Equal(t, platform.Paddr(0x80000000), addr)
}

func TestParseMapTwoColumns(t *testing.T) {
	sysmap, err := ParseMap(strings.NewReader("80001000 __bss\n"))
	require.NoError(t, err)

	addr, err := sysmap.Lookup("__bss")
	require.NoError(t, err)
	assert.Equal(t, platform.Paddr(0x80001000), addr)
}

func TestParseMapErrors(t *testing.T) {
	_, err := ParseMap(strings.NewReader("one two three four\n"))
	assert.Error(t, err)

	_, err = ParseMap(strings.NewReader("gggggggg __bss\n"))
	assert.Error(t, err)
}

func TestLayout(t *testing.T) {
	sysmap, err := ParseMap(strings.NewReader(sampleMap))
	require.NoError(t, err)

	layout, err := sysmap.Layout()
	require.NoError(t, err)

	expected := machine.Layout{
		BssStart: 0x80001000,
		BssEnd:   0x80002000,
		StackTop: 0x80010000,
	}
	assert.Equal(t, expected, layout)
}

func TestLayoutMissingSymbol(t *testing.T) {
	sysmap, err := ParseMap(strings.NewReader("80001000 B __bss\n"))
	require.NoError(t, err)

	_, err = sysmap.Layout()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "__bss_end")
}

func TestLookupMissing(t *testing.T) {
	sysmap := SystemMap{}
	_, err := sysmap.Lookup("nope")
	assert.Error(t, err)
}
