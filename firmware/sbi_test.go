package firmware

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rvmm/machine"
	"rvmm/platform"
)

func newTestRig(t *testing.T) (*platform.Hart, *machine.Model, *bytes.Buffer) {
	var out bytes.Buffer
	model, err := machine.NewModel(platform.PageSize, &out)
	require.NoError(t, err)
	hart := platform.NewHart()
	hart.Bind(New(model))
	return hart, model, &out
}

func call(hart *platform.Hart, eid uint32, fid uint32, arg0 uint32) (int32, uint32) {
	hart.SetRegister(platform.A0, platform.RegisterValue(arg0))
	hart.SetRegister(platform.A1, 0)
	hart.SetRegister(platform.A2, 0)
	hart.SetRegister(platform.A3, 0)
	hart.SetRegister(platform.A4, 0)
	hart.SetRegister(platform.A5, 0)
	hart.SetRegister(platform.A6, platform.RegisterValue(fid))
	hart.SetRegister(platform.A7, platform.RegisterValue(eid))
	hart.Ecall()
	return int32(hart.GetRegister(platform.A0)), uint32(hart.GetRegister(platform.A1))
}

func TestLegacyPutchar(t *testing.T) {
	hart, _, out := newTestRig(t)

	status, _ := call(hart, ExtLegacyPutchar, 0, uint32('A'))
	assert.Equal(t, Success, status)

	// The function id is ignored for legacy extensions.
	status, _ = call(hart, ExtLegacyPutchar, 1, uint32('B'))
	assert.Equal(t, Success, status)

	assert.Equal(t, "AB", out.String())
}

func TestLegacyGetchar(t *testing.T) {
	hart, model, _ := newTestRig(t)

	status, _ := call(hart, ExtLegacyGetchar, 0, 0)
	assert.Equal(t, ErrFailed, status)

	model.Console().Push('x')
	status, value := call(hart, ExtLegacyGetchar, 0, 0)
	assert.Equal(t, Success, status)
	assert.Equal(t, uint32('x'), value)
}

func TestLegacyShutdown(t *testing.T) {
	hart, _, _ := newTestRig(t)

	require.False(t, hart.Stopped())
	status, _ := call(hart, ExtLegacyShutdown, 0, 0)
	assert.Equal(t, Success, status)
	assert.True(t, hart.Stopped())
}

func TestBaseExtension(t *testing.T) {
	hart, _, _ := newTestRig(t)

	status, value := call(hart, ExtBase, BaseGetSpecVersion, 0)
	assert.Equal(t, Success, status)
	assert.Equal(t, SpecVersion, value)

	status, value = call(hart, ExtBase, BaseGetImplId, 0)
	assert.Equal(t, Success, status)
	assert.Equal(t, ImplId, value)

	status, value = call(hart, ExtBase, BaseProbeExtension, ExtLegacyPutchar)
	assert.Equal(t, Success, status)
	assert.Equal(t, uint32(1), value)

	status, value = call(hart, ExtBase, BaseProbeExtension, 0x99)
	assert.Equal(t, Success, status)
	assert.Equal(t, uint32(0), value)

	status, _ = call(hart, ExtBase, 0x42, 0)
	assert.Equal(t, ErrNotSupported, status)
}

func TestUnknownExtension(t *testing.T) {
	hart, _, _ := newTestRig(t)

	status, value := call(hart, 0x0a0a0a0a, 0, 7)
	assert.Equal(t, ErrNotSupported, status)
	assert.Equal(t, uint32(0), value)
}
