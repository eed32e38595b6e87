// Package container reads and writes 1C:Enterprise v8 containers, the storage
// format inside EFD supply files.
//
// A container starts with a 16 byte header followed by documents. A document
// is a chain of blocks; every block starts with a 31 byte ASCII header
// "\r\n%08x %08x %08x \r\n" holding the document size, the page size of the
// block and the address of the next block. The first document (at offset 16)
// is the table of contents, a list of (header address, body address, reserved)
// triples. Entry headers store two timestamps and a UTF-16LE file name.
package container

import (
	"encoding/binary"
	"errors"
	"fmt"
	"time"
)

const (
	HeaderSize      = 16
	BlockHeaderSize = 31
	EndMarker       = 0x7FFFFFFF
	DefaultPageSize = 512

	tocRecordSize   = 12
	entryHeaderSize = 20
)

var (
	// ErrInvalidFormat is wrapped by every format error of this package
	ErrInvalidFormat = errors.New("invalid container format")

	ErrInvalidSignature  = fmt.Errorf("%w: bad container header", ErrInvalidFormat)
	ErrCorruptBlock      = fmt.Errorf("%w: corrupt block", ErrInvalidFormat)
	ErrCorruptTOC        = fmt.Errorf("%w: corrupt table of contents", ErrInvalidFormat)
	ErrAddressOutOfRange = fmt.Errorf("%w: address out of range", ErrInvalidFormat)
)

// Header is the fixed container header
type Header struct {
	FirstFreeBlock  uint32
	DefaultPageSize uint32
	StorageVersion  uint32
	Reserved        uint32
}

func parseHeader(b []byte) Header {
	return Header{
		FirstFreeBlock:  binary.LittleEndian.Uint32(b[0:4]),
		DefaultPageSize: binary.LittleEndian.Uint32(b[4:8]),
		StorageVersion:  binary.LittleEndian.Uint32(b[8:12]),
		Reserved:        binary.LittleEndian.Uint32(b[12:16]),
	}
}

func (h Header) bytes() []byte {
	b := make([]byte, HeaderSize)
	binary.LittleEndian.PutUint32(b[0:4], h.FirstFreeBlock)
	binary.LittleEndian.PutUint32(b[4:8], h.DefaultPageSize)
	binary.LittleEndian.PutUint32(b[8:12], h.StorageVersion)
	binary.LittleEndian.PutUint32(b[12:16], h.Reserved)
	return b
}

// Entry is a file stored in the container
type Entry struct {
	Name     string    `json:"name"`
	Size     int64     `json:"size"`
	Created  time.Time `json:"created,omitempty"`
	Modified time.Time `json:"modified,omitempty"`

	headerAddr uint32
	bodyAddr   uint32
}

// 1C timestamps count 100µs ticks since 0001-01-01 UTC.
const (
	ticksPerSecond = 10000
	nanosPerTick   = 100000
	epochOffset    = 62135596800 // seconds between 0001-01-01 and 1970-01-01
)

// TimeFromTicks converts a 1C timestamp; zero yields the zero time.
func TimeFromTicks(ticks uint64) time.Time {
	if ticks == 0 {
		return time.Time{}
	}
	secs := int64(ticks / ticksPerSecond)
	rem := int64(ticks % ticksPerSecond)
	return time.Unix(secs-epochOffset, rem*nanosPerTick).UTC()
}

// TicksFromTime converts t to a 1C timestamp; the zero time yields zero.
func TicksFromTime(t time.Time) uint64 {
	if t.IsZero() {
		return 0
	}
	secs := t.Unix() + epochOffset
	if secs < 0 {
		return 0
	}
	return uint64(secs)*ticksPerSecond + uint64(t.Nanosecond()/nanosPerTick)
}
