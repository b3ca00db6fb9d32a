package ring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/fake"
	"github.com/momentics/hioload-ring/pool"
)

func newByteRing(t *testing.T, arr []byte) *Bytes {
	t.Helper()
	r, err := New(arr)
	require.NoError(t, err)
	return r
}

func TestInit(t *testing.T) {
	arr := make([]byte, 256)
	for i := range arr {
		arr[i] = 0xAA
	}
	r := newByteRing(t, arr)

	assert.Equal(t, 256, r.Cap())
	assert.Equal(t, 255, r.Free())
	assert.Equal(t, 0, r.Len())
	assert.Equal(t, 0, r.WriteCursor())
	assert.Equal(t, 0, r.ReadCursor())
	assert.Equal(t, api.Borrowed, r.Ownership())
	assert.Equal(t, make([]byte, 256), arr, "init zero-fills storage")
	assert.Same(t, &arr[0], &r.slots[0])
}

func TestInitWithNull(t *testing.T) {
	var r Bytes
	assert.ErrorIs(t, r.Init(nil), api.ErrNoPointer)

	var nilRing *Bytes
	assert.ErrorIs(t, nilRing.Init(make([]byte, 256)), api.ErrNoPointer)
}

func TestInitWithNoSize(t *testing.T) {
	var r Bytes
	err := r.Init([]byte{})
	assert.ErrorIs(t, err, api.ErrNoData)
	assert.Equal(t, api.StatusNoData, api.StatusOf(err))
}

func TestInitAllocated(t *testing.T) {
	alloc := pool.NewHeapAllocator[uint32]()
	r, err := NewAllocated[uint32](16, alloc)
	require.NoError(t, err)
	assert.Equal(t, 16, r.Cap())
	assert.Equal(t, 15, r.Free())
	assert.Equal(t, api.Owned, r.Ownership())
	assert.Equal(t, int64(1), alloc.Stats().InUse)

	require.NoError(t, r.Close())
	assert.Equal(t, int64(0), alloc.Stats().InUse)
	assert.Equal(t, 0, r.Cap())
	assert.ErrorIs(t, r.WriteOne(1), api.ErrNoPointer)
}

func TestInitAllocatedFailure(t *testing.T) {
	alloc := &fake.FailingAllocator[byte]{}
	_, err := NewAllocated[byte](10, alloc)
	assert.ErrorIs(t, err, api.ErrNoPointer)
	assert.ErrorIs(t, err, fake.ErrAllocFailed)
	assert.Nil(t, api.ErrNoPointer.Cause)
	assert.Equal(t, 1, alloc.Calls())

	_, err = NewAllocated[byte](0, nil)
	assert.ErrorIs(t, err, api.ErrNoData)
}

func TestInitAllocatedPages(t *testing.T) {
	alloc := pool.NewPageAllocator()
	r, err := NewAllocated[byte](100, alloc)
	require.NoError(t, err)
	require.NoError(t, r.WriteMany([]byte{1, 2, 3}))
	out := make([]byte, 3)
	require.NoError(t, r.ReadMany(out))
	assert.Equal(t, []byte{1, 2, 3}, out)
	require.NoError(t, r.Close())
	assert.Equal(t, api.AllocStats{TotalAlloc: 1, TotalFree: 1}, alloc.Stats())
}

func TestCloseBorrowedKeepsStorage(t *testing.T) {
	arr := make([]byte, 4)
	r := newByteRing(t, arr)
	require.NoError(t, r.WriteOne(7))
	require.NoError(t, r.Close())
	assert.Equal(t, byte(7), arr[0])
}

func TestWriteByte(t *testing.T) {
	arr := make([]byte, 10)
	r := newByteRing(t, arr)

	require.NoError(t, r.WriteOne(10))
	assert.Equal(t, byte(10), arr[0])
	assert.Equal(t, 1, r.WriteCursor())
	assert.Equal(t, 8, r.Free())
	assert.Equal(t, 1, r.Len())
}

func TestWriteToNullRing(t *testing.T) {
	var r *Bytes
	assert.ErrorIs(t, r.WriteOne(10), api.ErrNoPointer)
	assert.ErrorIs(t, r.WriteMany([]byte{1, 2, 3}), api.ErrNoPointer)
	_, err := r.ReadOne()
	assert.ErrorIs(t, err, api.ErrNoPointer)
	_, err = r.PeekLast()
	assert.ErrorIs(t, err, api.ErrNoPointer)
	assert.Equal(t, 0, r.Len())
}

func TestWriteOneUntilFull(t *testing.T) {
	r := newByteRing(t, make([]byte, 10))
	for i := 0; i < 9; i++ {
		require.NoError(t, r.WriteOne(byte(i)), "write %d", i)
	}
	assert.True(t, r.IsFull())
	before := r.Stats()
	assert.ErrorIs(t, r.WriteOne(9), api.ErrNoPlace)
	assert.Equal(t, before, r.Stats())
}

func TestWriteMultipleBytes(t *testing.T) {
	arr := make([]byte, 10)
	r := newByteRing(t, arr)
	values := []byte{1, 2, 3, 4, 5}

	require.NoError(t, r.WriteMany(values))
	assert.Equal(t, values, arr[:5])
	assert.Equal(t, 4, r.Free())
}

func TestWriteMultipleBytesInvalid(t *testing.T) {
	r := newByteRing(t, make([]byte, 10))
	assert.ErrorIs(t, r.WriteMany(nil), api.ErrNoPointer)
	assert.ErrorIs(t, r.WriteMany([]byte{}), api.ErrNoData)
}

func TestWriteMultipleBytesOverlap(t *testing.T) {
	arr := make([]byte, 10)
	r := newByteRing(t, arr)
	r.write, r.read = 8, 8

	require.NoError(t, r.WriteMany([]byte{1, 2, 3, 4, 5}))
	assert.Equal(t, []byte{3, 4, 5, 0, 0, 0, 0, 0, 1, 2}, arr)
	assert.Equal(t, 3, r.WriteCursor())
	assert.Equal(t, 5, r.Len())

	out := make([]byte, 5)
	require.NoError(t, r.ReadMany(out))
	assert.Equal(t, []byte{1, 2, 3, 4, 5}, out)
	assert.Equal(t, 3, r.ReadCursor())
	assert.True(t, r.IsEmpty())
}

func TestWriteMultipleBytesToExactEnd(t *testing.T) {
	arr := make([]byte, 10)
	r := newByteRing(t, arr)
	r.write, r.read = 7, 7

	require.NoError(t, r.WriteMany([]byte{1, 2, 3}))
	assert.Equal(t, 0, r.WriteCursor())
	assert.Equal(t, []byte{1, 2, 3}, arr[7:])
}

func TestWriteMultipleBytesNoPlace(t *testing.T) {
	arr := make([]byte, 10)
	r := newByteRing(t, arr)
	values := []byte{1, 2, 3, 4, 5, 6}

	require.NoError(t, r.WriteMany(values))
	for _, n := range []int{6, 5, 4} {
		before := append([]byte(nil), arr...)
		stats := r.Stats()
		assert.ErrorIs(t, r.WriteMany(values[:n]), api.ErrNoPlace, "len %d", n)
		assert.Equal(t, before, arr)
		assert.Equal(t, stats, r.Stats())
	}
	require.NoError(t, r.WriteMany(values[:3]))
	assert.ErrorIs(t, r.WriteMany(values[:1]), api.ErrNoPlace)
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 1, 2, 3, 0}, arr)
}

func TestReadByteAfterInit(t *testing.T) {
	r := newByteRing(t, make([]byte, 10))
	_, err := r.ReadOne()
	assert.ErrorIs(t, err, api.ErrNoData)
}

func TestReadBytesToEmpty(t *testing.T) {
	r := newByteRing(t, make([]byte, 10))
	values := []byte{1, 2, 3, 4, 5, 6}

	require.NoError(t, r.WriteMany(values))
	for i, want := range values {
		got, err := r.ReadOne()
		require.NoError(t, err, "read %d", i)
		assert.Equal(t, want, got)
	}
	_, err := r.ReadOne()
	assert.ErrorIs(t, err, api.ErrNoData)
	assert.Equal(t, 9, r.Free())
}

func TestReadOneWraps(t *testing.T) {
	r := newByteRing(t, make([]byte, 4))
	r.write, r.read = 3, 3
	require.NoError(t, r.WriteMany([]byte{9, 8}))
	v, err := r.ReadOne()
	require.NoError(t, err)
	assert.Equal(t, byte(9), v)
	assert.Equal(t, 0, r.ReadCursor())
}

func TestReadManyRejectsOverLength(t *testing.T) {
	r := newByteRing(t, make([]byte, 10))
	require.NoError(t, r.WriteMany([]byte{1, 2, 3}))
	stats := r.Stats()

	err := r.ReadMany(make([]byte, 4))
	assert.ErrorIs(t, err, api.ErrNoData)
	assert.Equal(t, stats, r.Stats())

	assert.ErrorIs(t, r.ReadMany(nil), api.ErrNoPointer)
	assert.ErrorIs(t, r.ReadMany([]byte{}), api.ErrNoData)
}

func TestReadManyEmpty(t *testing.T) {
	r := newByteRing(t, make([]byte, 10))
	assert.ErrorIs(t, r.ReadMany(make([]byte, 1)), api.ErrNoData)
}

func TestReadAvailable(t *testing.T) {
	r := newByteRing(t, make([]byte, 8))
	r.write, r.read = 6, 6
	require.NoError(t, r.WriteMany([]byte{1, 2, 3, 4}))

	out := make([]byte, 16)
	n, err := r.ReadAvailable(out)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, []byte{1, 2, 3, 4}, out[:n])

	_, err = r.ReadAvailable(out)
	assert.ErrorIs(t, err, api.ErrNoData)
}

func TestPeekLast(t *testing.T) {
	r := newByteRing(t, make([]byte, 5))
	_, err := r.PeekLast()
	assert.ErrorIs(t, err, api.ErrNoData)

	for i := byte(1); i <= 4; i++ {
		require.NoError(t, r.WriteOne(i))
		stats := r.Stats()
		v, err := r.PeekLast()
		require.NoError(t, err)
		assert.Equal(t, i, v)
		assert.Equal(t, stats, r.Stats())
	}

	// write cursor now at 4; drain and write once more so it sits at 0.
	require.NoError(t, r.ReadMany(make([]byte, 4)))
	require.NoError(t, r.WriteOne(42))
	assert.Equal(t, 0, r.WriteCursor())
	v, err := r.PeekLast()
	require.NoError(t, err)
	assert.Equal(t, byte(42), v)
}

func TestSnapshotAndReset(t *testing.T) {
	arr := make([]byte, 6)
	r := newByteRing(t, arr)
	r.write, r.read = 4, 4
	require.NoError(t, r.WriteMany([]byte{1, 2, 3}))

	assert.Equal(t, []byte{1, 2, 3}, r.Snapshot())
	assert.Equal(t, 3, r.Len())

	r.Reset()
	assert.Nil(t, r.Snapshot())
	assert.Equal(t, Stats{Cap: 6, Free: 5}, r.Stats())
	assert.Equal(t, make([]byte, 6), arr)
}

func TestCapacityOne(t *testing.T) {
	r := newByteRing(t, make([]byte, 1))
	assert.Equal(t, 0, r.Free())
	assert.ErrorIs(t, r.WriteOne(1), api.ErrNoPlace)
	assert.ErrorIs(t, r.WriteMany([]byte{1}), api.ErrNoPlace)
}

type record struct {
	ID    uint16
	Value float64
	Tag   string
}

func TestTypedRecords(t *testing.T) {
	r, err := New(make([]record, 4))
	require.NoError(t, err)
	in := []record{{1, 0.5, "a"}, {2, 1.5, "b"}, {3, 2.5, "c"}}
	require.NoError(t, r.WriteMany(in))
	assert.ErrorIs(t, r.WriteOne(record{}), api.ErrNoPlace)

	last, err := r.PeekLast()
	require.NoError(t, err)
	assert.Equal(t, in[2], last)

	out := make([]record, 3)
	require.NoError(t, r.ReadMany(out))
	assert.Equal(t, in, out)
}

func TestInitAllocatedShortRegion(t *testing.T) {
	_, err := NewAllocated[byte](8, fake.ShortAllocator[byte]{})
	assert.ErrorIs(t, err, api.ErrNoPointer)
}

func TestReinitReleasesOwnedStorage(t *testing.T) {
	alloc := pool.NewHeapAllocator[byte]()
	var r Bytes
	require.NoError(t, r.InitAllocated(8, alloc))
	require.NoError(t, r.WriteOne(1))

	arr := make([]byte, 4)
	require.NoError(t, r.Init(arr))
	assert.Equal(t, int64(0), alloc.Stats().InUse)
	assert.Equal(t, 4, r.Cap())
	assert.True(t, r.IsEmpty())
}
