// Package compression provides unified decompression interfaces for EFD supply files.
package compression

import (
	"bytes"
	"fmt"
	"io"
	"runtime"
	"sort"
)

type CompressionType int

const (
	TypeNone CompressionType = iota
	TypeDeflate
)

// ContainerSignature opens every uncompressed 1C v8 container
var ContainerSignature = []byte{0xFF, 0xFF, 0xFF, 0x7F}

// String returns the string representation of compression type
func (t CompressionType) String() string {
	switch t {
	case TypeDeflate:
		return "Deflate"
	default:
		return "None"
	}
}

// Detect guesses the compression of a supply file from its first bytes.
// Supply files are raw deflate streams, so anything that is not already a
// container is assumed to be deflated.
func Detect(head []byte) CompressionType {
	if bytes.HasPrefix(head, ContainerSignature) {
		return TypeNone
	}
	return TypeDeflate
}

// Decompressor is the interface for decompression operations
type Decompressor interface {
	NewReader(r io.Reader) (io.ReadCloser, error)
	Type() CompressionType
	Implementation() string
}

// Compressor is the interface for compression operations
type Compressor interface {
	NewWriter(w io.Writer) (io.WriteCloser, error)
	Type() CompressionType
}

type DecompressorManager struct {
	decompressors map[CompressionType]Decompressor
}

// NewDecompressorManager creates a new decompressor manager with all available decompressors
func NewDecompressorManager() *DecompressorManager {
	manager := &DecompressorManager{
		decompressors: make(map[CompressionType]Decompressor),
	}

	manager.decompressors[TypeNone] = storedDecompressor{}
	manager.decompressors[TypeDeflate] = NewDeflateDecompressor()

	return manager
}

// NewReader wraps r with the decompressor registered for compType
func (m *DecompressorManager) NewReader(compType CompressionType, r io.Reader) (io.ReadCloser, error) {
	decompressor, err := m.GetDecompressor(compType)
	if err != nil {
		return nil, err
	}
	return decompressor.NewReader(r)
}

// GetDecompressor returns the decompressor for the specified type
func (m *DecompressorManager) GetDecompressor(compType CompressionType) (Decompressor, error) {
	decompressor, exists := m.decompressors[compType]
	if !exists {
		return nil, fmt.Errorf("unsupported compression type: %s", compType.String())
	}
	return decompressor, nil
}

// GetSupportedTypes returns all supported compression types
func (m *DecompressorManager) GetSupportedTypes() []CompressionType {
	types := make([]CompressionType, 0, len(m.decompressors))
	for t := range m.decompressors {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// GetImplementationInfo returns information about the implementation of each decompressor
func (m *DecompressorManager) GetImplementationInfo() map[CompressionType]string {
	info := make(map[CompressionType]string)
	for t, d := range m.decompressors {
		info[t] = d.Implementation()
	}
	return info
}

// GetBuildInfo returns build information about compression support
func GetBuildInfo() map[string]interface{} {
	return map[string]interface{}{
		"go_version": runtime.Version(),
		"goos":       runtime.GOOS,
		"goarch":     runtime.GOARCH,
	}
}

type storedDecompressor struct{}

func (storedDecompressor) NewReader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(r), nil
}

func (storedDecompressor) Type() CompressionType {
	return TypeNone
}

func (storedDecompressor) Implementation() string {
	return "Stored"
}
