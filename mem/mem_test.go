package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrelasm/mips68/errs"
)

func TestSegmentOf(t *testing.T) {
	assert.Equal(t, Text, SegmentOf(TextStart))
	assert.Equal(t, Text, SegmentOf(TextEnd-1))
	assert.Equal(t, Data, SegmentOf(DataStart))
	assert.Equal(t, Stack, SegmentOf(InitialStackPointer))
	assert.Equal(t, None, SegmentOf(0))
	assert.Equal(t, Data, SegmentOf(TextEnd))
}

func TestStoreLoadWordRoundTrip(t *testing.T) {
	m := New()
	require.NoError(t, m.StoreWord(TextStart, 0xDEADBEEF))
	v, err := m.LoadWord(TextStart)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xDEADBEEF), v)
}

func TestWordMisalignmentRejected(t *testing.T) {
	m := New()
	_, err := m.LoadWord(TextStart + 1)
	assert.ErrorIs(t, err, errs.ErrMisaligned)
}

func TestUnmappedBytesReadAsZero(t *testing.T) {
	m := New()
	b, err := m.LoadByte(DataStart + 100)
	require.NoError(t, err)
	assert.Equal(t, byte(0), b)
}

func TestOutOfBoundsAddressRejected(t *testing.T) {
	m := New()
	_, err := m.LoadByte(StackEnd)
	assert.Error(t, err)
}

func TestAccessStraddlingSegmentBoundaryRejected(t *testing.T) {
	m := New()
	// A word starting three bytes before the end of the text segment
	// would straddle into the data segment and must be rejected (the
	// alignment check already refuses it).
	_, err := m.LoadWord(TextEnd - 4 + 1)
	assert.Error(t, err)
}

func TestHalfWordRoundTripBigEndian(t *testing.T) {
	m := New()
	require.NoError(t, m.StoreHalf(DataStart, 0xABCD))
	hi, err := m.LoadByte(DataStart)
	require.NoError(t, err)
	lo, err := m.LoadByte(DataStart + 1)
	require.NoError(t, err)
	assert.Equal(t, byte(0xAB), hi)
	assert.Equal(t, byte(0xCD), lo)
}

func TestDumpReturnsSortedMappedAddresses(t *testing.T) {
	m := New()
	require.NoError(t, m.StoreByte(DataStart+10, 1))
	require.NoError(t, m.StoreByte(DataStart+2, 1))
	require.NoError(t, m.StoreByte(DataStart+50, 1))
	addrs := m.Dump(Data)
	assert.Equal(t, []uint32{DataStart + 2, DataStart + 10, DataStart + 50}, addrs)
}

func TestResetClearsAllMappedBytes(t *testing.T) {
	m := New()
	require.NoError(t, m.StoreByte(DataStart, 7))
	m.Reset()
	b, err := m.LoadByte(DataStart)
	require.NoError(t, err)
	assert.Equal(t, byte(0), b)
}
