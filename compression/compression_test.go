package compression

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	assert.Equal(t, TypeNone, Detect([]byte{0xFF, 0xFF, 0xFF, 0x7F, 0x00}))
	assert.Equal(t, TypeDeflate, Detect([]byte{0xEC, 0xBD, 0x07}))
	assert.Equal(t, TypeDeflate, Detect(nil))
}

func TestDeflateRoundTrip(t *testing.T) {
	payload := bytes.Repeat([]byte("1C:Enterprise template "), 1000)

	var buf bytes.Buffer
	w, err := NewDeflateCompressor(9).NewWriter(&buf)
	require.NoError(t, err)
	_, err = w.Write(payload)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	assert.Less(t, buf.Len(), len(payload))

	m := NewDecompressorManager()
	r, err := m.NewReader(TypeDeflate, &buf)
	require.NoError(t, err)
	defer r.Close()

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestStoredPassThrough(t *testing.T) {
	m := NewDecompressorManager()
	r, err := m.NewReader(TypeNone, bytes.NewReader([]byte("raw")))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "raw", string(got))
}

func TestManagerInfo(t *testing.T) {
	m := NewDecompressorManager()
	assert.Equal(t, []CompressionType{TypeNone, TypeDeflate}, m.GetSupportedTypes())
	assert.Contains(t, m.GetImplementationInfo()[TypeDeflate], "klauspost")

	_, err := m.GetDecompressor(CompressionType(42))
	assert.Error(t, err)
}

func TestCorruptDeflate(t *testing.T) {
	r, err := NewDeflateDecompressor().NewReader(bytes.NewReader([]byte{0xFF, 0xFE, 0xFD, 0xFC}))
	require.NoError(t, err)
	_, err = io.ReadAll(r)
	assert.Error(t, err)
}
