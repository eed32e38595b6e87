package container

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"strconv"

	"golang.org/x/text/encoding/unicode"
)

// Reader gives random access to the entries of a container
type Reader struct {
	r       io.ReaderAt
	size    int64
	header  Header
	entries []Entry
}

type blockHeader struct {
	DocSize  uint32
	PageSize uint32
	NextPage uint32
}

// NewReader validates the container header and parses the table of contents.
func NewReader(r io.ReaderAt, size int64) (*Reader, error) {
	if size < HeaderSize+BlockHeaderSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidSignature, size)
	}

	buf := make([]byte, HeaderSize)
	if _, err := r.ReadAt(buf, 0); err != nil {
		return nil, fmt.Errorf("read container header: %w", err)
	}

	c := &Reader{
		r:      r,
		size:   size,
		header: parseHeader(buf),
	}

	if _, err := c.readBlockHeader(HeaderSize); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	if err := c.parseTOC(); err != nil {
		return nil, err
	}
	return c, nil
}

// ReadHeader returns the container header
func (c *Reader) ReadHeader() Header {
	return c.header
}

// Entries returns the entries in table of contents order
func (c *Reader) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Open streams the body of e
func (c *Reader) Open(e Entry) (io.Reader, error) {
	if e.bodyAddr == EndMarker {
		return bytes.NewReader(nil), nil
	}
	return c.newDocReader(e.bodyAddr)
}

func (c *Reader) parseTOC() error {
	toc, err := c.readDocument(HeaderSize)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCorruptTOC, err)
	}

	count := len(toc) / tocRecordSize
	c.entries = make([]Entry, 0, count)

	for i := 0; i < count; i++ {
		rec := toc[i*tocRecordSize : (i+1)*tocRecordSize]
		headerAddr := binary.LittleEndian.Uint32(rec[0:4])
		bodyAddr := binary.LittleEndian.Uint32(rec[4:8])
		if headerAddr == EndMarker {
			continue
		}

		entry, err := c.readEntry(headerAddr, bodyAddr)
		if err != nil {
			return fmt.Errorf("%w: entry %d: %v", ErrCorruptTOC, i, err)
		}
		c.entries = append(c.entries, entry)
	}
	return nil
}

func (c *Reader) readEntry(headerAddr, bodyAddr uint32) (Entry, error) {
	hdr, err := c.readDocument(headerAddr)
	if err != nil {
		return Entry{}, err
	}
	if len(hdr) < entryHeaderSize {
		return Entry{}, fmt.Errorf("entry header too short: %d bytes", len(hdr))
	}

	name, err := decodeName(hdr[entryHeaderSize:])
	if err != nil {
		return Entry{}, err
	}

	entry := Entry{
		Name:       name,
		Created:    TimeFromTicks(binary.LittleEndian.Uint64(hdr[0:8])),
		Modified:   TimeFromTicks(binary.LittleEndian.Uint64(hdr[8:16])),
		headerAddr: headerAddr,
		bodyAddr:   bodyAddr,
	}

	if bodyAddr != EndMarker {
		bh, err := c.readBlockHeader(int64(bodyAddr))
		if err != nil {
			return Entry{}, err
		}
		entry.Size = int64(bh.DocSize)
	}
	return entry, nil
}

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

func decodeName(raw []byte) (string, error) {
	if len(raw)%2 == 1 {
		raw = raw[:len(raw)-1]
	}
	// The name is NUL terminated; anything after the terminator is padding.
	for i := 0; i+1 < len(raw); i += 2 {
		if raw[i] == 0 && raw[i+1] == 0 {
			raw = raw[:i]
			break
		}
	}
	name, err := utf16le.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("decode entry name: %w", err)
	}
	return string(name), nil
}

func encodeName(name string) ([]byte, error) {
	return utf16le.NewEncoder().Bytes([]byte(name))
}

func (c *Reader) readBlockHeader(addr int64) (blockHeader, error) {
	if addr < 0 || addr+BlockHeaderSize > c.size {
		return blockHeader{}, fmt.Errorf("%w: block at %#x", ErrAddressOutOfRange, addr)
	}

	buf := make([]byte, BlockHeaderSize)
	if _, err := c.r.ReadAt(buf, addr); err != nil && err != io.EOF {
		return blockHeader{}, fmt.Errorf("read block header at %#x: %w", addr, err)
	}
	return parseBlockHeader(buf, addr)
}

func parseBlockHeader(b []byte, addr int64) (blockHeader, error) {
	if b[0] != '\r' || b[1] != '\n' || b[10] != ' ' || b[19] != ' ' || b[28] != ' ' || b[29] != '\r' || b[30] != '\n' {
		return blockHeader{}, fmt.Errorf("%w: bad block header at %#x", ErrCorruptBlock, addr)
	}

	var fields [3]uint32
	for i, start := range []int{2, 11, 20} {
		v, err := strconv.ParseUint(string(b[start:start+8]), 16, 32)
		if err != nil {
			return blockHeader{}, fmt.Errorf("%w: bad block header at %#x: %v", ErrCorruptBlock, addr, err)
		}
		fields[i] = uint32(v)
	}

	return blockHeader{
		DocSize:  fields[0],
		PageSize: fields[1],
		NextPage: fields[2],
	}, nil
}

func (c *Reader) readDocument(addr uint32) ([]byte, error) {
	dr, err := c.newDocReader(addr)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, dr.remaining)
	if _, err := io.ReadFull(dr, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// docReader follows a block chain lazily
type docReader struct {
	c         *Reader
	next      uint32
	pos       int64
	pageLeft  int64
	remaining int64
	visited   map[uint32]struct{}
}

func (c *Reader) newDocReader(addr uint32) (*docReader, error) {
	d := &docReader{
		c:       c,
		visited: make(map[uint32]struct{}),
	}

	bh, err := d.load(addr)
	if err != nil {
		return nil, err
	}
	if int64(bh.DocSize) > c.size {
		return nil, fmt.Errorf("%w: document at %#x claims %d bytes", ErrCorruptBlock, addr, bh.DocSize)
	}
	d.remaining = int64(bh.DocSize)
	d.pageLeft = min(int64(bh.PageSize), d.remaining)
	return d, d.checkPage()
}

// load reads the block header at addr and positions the reader on its data.
func (d *docReader) load(addr uint32) (blockHeader, error) {
	if _, seen := d.visited[addr]; seen {
		return blockHeader{}, fmt.Errorf("%w: block chain loops at %#x", ErrCorruptBlock, addr)
	}
	d.visited[addr] = struct{}{}

	bh, err := d.c.readBlockHeader(int64(addr))
	if err != nil {
		return blockHeader{}, err
	}
	d.pos = int64(addr) + BlockHeaderSize
	d.next = bh.NextPage
	return bh, nil
}

func (d *docReader) checkPage() error {
	if d.pos+d.pageLeft > d.c.size {
		return fmt.Errorf("%w: page at %#x overruns container", ErrAddressOutOfRange, d.pos)
	}
	return nil
}

func (d *docReader) advance() error {
	if d.next == EndMarker {
		return fmt.Errorf("%w: chain ends with %d bytes missing", ErrCorruptBlock, d.remaining)
	}
	bh, err := d.load(d.next)
	if err != nil {
		return err
	}
	if bh.PageSize == 0 {
		return fmt.Errorf("%w: empty page at %#x", ErrCorruptBlock, d.pos-BlockHeaderSize)
	}
	d.pageLeft = min(int64(bh.PageSize), d.remaining)
	return d.checkPage()
}

func (d *docReader) Read(p []byte) (int, error) {
	if d.remaining == 0 {
		return 0, io.EOF
	}
	if len(p) == 0 {
		return 0, nil
	}
	if d.pageLeft == 0 {
		if err := d.advance(); err != nil {
			return 0, err
		}
	}

	n := min(int64(len(p)), d.pageLeft)
	m, err := d.c.r.ReadAt(p[:n], d.pos)
	d.pos += int64(m)
	d.pageLeft -= int64(m)
	d.remaining -= int64(m)

	if err != nil {
		if err == io.EOF && int64(m) == n {
			return m, nil
		}
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return m, err
	}
	return m, nil
}
