package unpacker

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"
	"hash"
	"io"
	"os"
	"runtime"
	"time"
)

// ErrVerifyMismatch is returned when a written file differs from its entry
var ErrVerifyMismatch = errors.New("written file does not match container entry")

// digestReader hashes everything read through it
type digestReader struct {
	r io.Reader
	h hash.Hash
	n int64
}

func newDigestReader(r io.Reader) *digestReader {
	return &digestReader{r: r, h: sha256.New()}
}

func (d *digestReader) Read(p []byte) (int, error) {
	n, err := d.r.Read(p)
	if n > 0 {
		d.h.Write(p[:n])
		d.n += int64(n)
	}
	return n, err
}

func (d *digestReader) Sum() []byte {
	return d.h.Sum(nil)
}

// verifyFileWithRetry re-hashes path and compares it with want. Windows gets
// a few attempts because scanners may hold freshly written files open.
func verifyFileWithRetry(path string, size int64, want []byte, buf []byte) error {
	maxRetries := 1
	if runtime.GOOS == "windows" {
		maxRetries = 3
	}

	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(time.Duration(attempt*100) * time.Millisecond)
		}
		lastErr = verifyFile(path, size, want, buf)
		if lastErr == nil || errors.Is(lastErr, ErrVerifyMismatch) {
			return lastErr
		}
	}
	return lastErr
}

func verifyFile(path string, size int64, want []byte, buf []byte) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	h := sha256.New()
	n, err := io.CopyBuffer(h, f, buf)
	if err != nil {
		return err
	}
	if n != size {
		return fmt.Errorf("%w: size %d, expected %d", ErrVerifyMismatch, n, size)
	}

	if got := h.Sum(nil); !bytes.Equal(got, want) {
		return fmt.Errorf("%w: sha256 %x, expected %x", ErrVerifyMismatch, got, want)
	}
	return nil
}
