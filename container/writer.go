package container

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"time"
)

var errWriterClosed = errors.New("container writer is closed")

// Writer builds a container. Entries are buffered in memory and the
// container is written out on Close.
type Writer struct {
	w        io.Writer
	pageSize int
	entries  []pendingEntry
	closed   bool
}

type pendingEntry struct {
	header []byte
	body   []byte
}

// NewWriter returns a Writer that stores every document in a single block.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// SetPageSize splits documents into chains of n byte pages. Zero restores
// single block documents.
func (cw *Writer) SetPageSize(n int) {
	if n < 0 {
		n = 0
	}
	cw.pageSize = n
}

// Create adds a file to the container
func (cw *Writer) Create(name string, created, modified time.Time, data []byte) error {
	if cw.closed {
		return errWriterClosed
	}

	encoded, err := encodeName(name)
	if err != nil {
		return fmt.Errorf("encode entry name %q: %w", name, err)
	}

	header := make([]byte, entryHeaderSize, entryHeaderSize+len(encoded)+4)
	binary.LittleEndian.PutUint64(header[0:8], TicksFromTime(created))
	binary.LittleEndian.PutUint64(header[8:16], TicksFromTime(modified))
	header = append(header, encoded...)
	header = append(header, 0, 0, 0, 0)

	cw.entries = append(cw.entries, pendingEntry{header: header, body: data})
	return nil
}

// Close writes the container to the underlying writer
func (cw *Writer) Close() error {
	if cw.closed {
		return errWriterClosed
	}
	cw.closed = true

	docs := make([][]byte, 0, 1+2*len(cw.entries))
	docs = append(docs, make([]byte, tocRecordSize*len(cw.entries)))
	for _, e := range cw.entries {
		docs = append(docs, e.header, e.body)
	}

	addrs := make([]uint32, len(docs))
	offset := int64(HeaderSize)
	for i, doc := range docs {
		if offset > EndMarker {
			return fmt.Errorf("container exceeds %d bytes", EndMarker)
		}
		addrs[i] = uint32(offset)
		offset += cw.span(len(doc))
	}

	toc := docs[0]
	for i := range cw.entries {
		rec := toc[i*tocRecordSize:]
		binary.LittleEndian.PutUint32(rec[0:4], addrs[1+2*i])
		binary.LittleEndian.PutUint32(rec[4:8], addrs[2+2*i])
		binary.LittleEndian.PutUint32(rec[8:12], EndMarker)
	}

	bw := bufio.NewWriter(cw.w)
	header := Header{
		FirstFreeBlock:  EndMarker,
		DefaultPageSize: DefaultPageSize,
	}
	if _, err := bw.Write(header.bytes()); err != nil {
		return err
	}
	for i, doc := range docs {
		if err := cw.writeDocument(bw, addrs[i], doc); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func (cw *Writer) pages(n int) (pageSize, count int) {
	if cw.pageSize == 0 {
		return max(n, DefaultPageSize), 1
	}
	count = (n + cw.pageSize - 1) / cw.pageSize
	return cw.pageSize, max(count, 1)
}

func (cw *Writer) span(n int) int64 {
	pageSize, count := cw.pages(n)
	return int64(count) * int64(BlockHeaderSize+pageSize)
}

func (cw *Writer) writeDocument(w io.Writer, addr uint32, doc []byte) error {
	pageSize, count := cw.pages(len(doc))
	blockSpan := uint32(BlockHeaderSize + pageSize)

	for i := 0; i < count; i++ {
		docSize := 0
		if i == 0 {
			docSize = len(doc)
		}
		next := uint32(EndMarker)
		if i+1 < count {
			next = addr + uint32(i+1)*blockSpan
		}
		if _, err := fmt.Fprintf(w, "\r\n%08x %08x %08x \r\n", docSize, pageSize, next); err != nil {
			return err
		}

		page := make([]byte, pageSize)
		start := i * pageSize
		if start < len(doc) {
			copy(page, doc[start:])
		}
		if _, err := w.Write(page); err != nil {
			return err
		}
	}
	return nil
}
