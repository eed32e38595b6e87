package container

import (
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	name string
	data []byte
}

func build(t *testing.T, pageSize int, mod time.Time, files ...fixture) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.SetPageSize(pageSize)
	for _, f := range files {
		require.NoError(t, w.Create(f.name, mod, mod, f.data))
	}
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func open(t *testing.T, data []byte) *Reader {
	t.Helper()
	r, err := NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	return r
}

func readAll(t *testing.T, r *Reader, e Entry) []byte {
	t.Helper()
	body, err := r.Open(e)
	require.NoError(t, err)
	data, err := io.ReadAll(body)
	require.NoError(t, err)
	return data
}

func TestRoundTrip(t *testing.T) {
	mod := time.Date(2024, 3, 15, 10, 30, 0, 500000, time.UTC)
	files := []fixture{
		{`1c\Accounting\3_0_150_1\1cv8.cf`, bytes.Repeat([]byte{0xAB}, 5000)},
		{`1cv8.mft`, []byte("Vendor=1C\r\nName=Accounting\r\n")},
		{`Шаблоны\описание.txt`, []byte("текст")},
		{`empty.bin`, nil},
	}

	for _, pageSize := range []int{0, 7, 512} {
		data := build(t, pageSize, mod, files...)
		r := open(t, data)

		hdr := r.ReadHeader()
		assert.EqualValues(t, EndMarker, hdr.FirstFreeBlock)
		assert.EqualValues(t, DefaultPageSize, hdr.DefaultPageSize)

		entries := r.Entries()
		require.Len(t, entries, len(files), "page size %d", pageSize)
		for i, f := range files {
			assert.Equal(t, f.name, entries[i].Name)
			assert.EqualValues(t, len(f.data), entries[i].Size)
			assert.True(t, mod.Equal(entries[i].Modified), "modified %v", entries[i].Modified)
			assert.Equal(t, len(f.data), len(readAll(t, r, entries[i])))
			if len(f.data) > 0 {
				assert.Equal(t, f.data, readAll(t, r, entries[i]))
			}
		}
	}
}

func TestEmptyContainer(t *testing.T) {
	r := open(t, build(t, 0, time.Time{}))
	assert.Empty(t, r.Entries())
}

func TestZeroTimestamps(t *testing.T) {
	r := open(t, build(t, 0, time.Time{}, fixture{"a.txt", []byte("a")}))
	e := r.Entries()[0]
	assert.True(t, e.Created.IsZero())
	assert.True(t, e.Modified.IsZero())
}

func TestTicks(t *testing.T) {
	assert.True(t, TimeFromTicks(0).IsZero())
	assert.Zero(t, TicksFromTime(time.Time{}))

	ts := time.Date(2023, 12, 31, 23, 59, 59, 999900000, time.UTC)
	assert.True(t, ts.Equal(TimeFromTicks(TicksFromTime(ts))))

	unix := time.Unix(0, 0).UTC()
	assert.EqualValues(t, uint64(epochOffset)*ticksPerSecond, TicksFromTime(unix))
}

func TestTooSmall(t *testing.T) {
	_, err := NewReader(bytes.NewReader([]byte{1, 2, 3}), 3)
	assert.ErrorIs(t, err, ErrInvalidSignature)
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestBadBlockHeader(t *testing.T) {
	data := build(t, 0, time.Time{}, fixture{"a", []byte("a")})
	data[HeaderSize] = 'X'

	_, err := NewReader(bytes.NewReader(data), int64(len(data)))
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestNotAContainer(t *testing.T) {
	data := bytes.Repeat([]byte("not a container at all "), 10)
	_, err := NewReader(bytes.NewReader(data), int64(len(data)))
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

// Layout with page size 16 and one entry "a" holding 40 bytes:
// toc @16 (1 page), header @63 (2 pages), body @157 (3 pages).
const loopBodyAddr = 157

func TestChainLoop(t *testing.T) {
	data := build(t, 16, time.Time{}, fixture{"a", bytes.Repeat([]byte{'x'}, 40)})
	copy(data[loopBodyAddr+20:], []byte("0000009d"))

	r := open(t, data)
	body, err := r.Open(r.Entries()[0])
	require.NoError(t, err)
	_, err = io.ReadAll(body)
	assert.ErrorIs(t, err, ErrCorruptBlock)
}

func TestTruncatedBody(t *testing.T) {
	data := build(t, 16, time.Time{}, fixture{"a", bytes.Repeat([]byte{'x'}, 40)})
	data = data[:loopBodyAddr+BlockHeaderSize+20]

	r := open(t, data)
	body, err := r.Open(r.Entries()[0])
	require.NoError(t, err)
	_, err = io.ReadAll(body)
	assert.ErrorIs(t, err, ErrAddressOutOfRange)
}

func TestBodyAddressOutOfRange(t *testing.T) {
	data := build(t, 0, time.Time{}, fixture{"a", []byte("a")})
	// First TOC record starts right after the TOC block header.
	rec := HeaderSize + BlockHeaderSize
	copy(data[rec+4:rec+8], []byte{0x00, 0x00, 0x00, 0x10})

	_, err := NewReader(bytes.NewReader(data), int64(len(data)))
	assert.ErrorIs(t, err, ErrCorruptTOC)
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestWriterClosed(t *testing.T) {
	w := NewWriter(io.Discard)
	require.NoError(t, w.Close())
	assert.Error(t, w.Create("a", time.Time{}, time.Time{}, nil))
	assert.Error(t, w.Close())
}
