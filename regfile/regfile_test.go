package regfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterZeroAlwaysReadsZero(t *testing.T) {
	r := New()
	r.Set(0, 0xFFFFFFFF)
	assert.Equal(t, uint32(0), r.Get(0))
}

func TestSetAndGetRoundTrip(t *testing.T) {
	r := New()
	r.Set(8, 0x12345678)
	assert.Equal(t, uint32(0x12345678), r.Get(8))
}

func TestGetSignedInterpretsTopBit(t *testing.T) {
	r := New()
	r.Set(8, 0xFFFFFFFF)
	assert.Equal(t, int32(-1), r.GetSigned(8))
}

func TestHiLoIndependentOfGPRs(t *testing.T) {
	r := New()
	r.SetHILO(1, 2)
	assert.Equal(t, uint32(1), r.HI())
	assert.Equal(t, uint32(2), r.LO())
}

func TestSnapshotIsACopy(t *testing.T) {
	r := New()
	r.Set(5, 42)
	snap := r.Snapshot()
	r.Set(5, 99)
	assert.Equal(t, uint32(42), snap[5])
	assert.Equal(t, uint32(99), r.Get(5))
}

func TestResetZeroesEverything(t *testing.T) {
	r := New()
	r.Set(5, 42)
	r.SetHILO(1, 2)
	r.Reset()
	assert.Equal(t, uint32(0), r.Get(5))
	assert.Equal(t, uint32(0), r.HI())
}
