// Package file provides abstractions for reading supply files and their inflated spools.
package file

import (
	"io"
	"os"
)

// Reader interface for reading supply files
type Reader interface {
	io.ReaderAt
	io.Closer
	Size() int64
	Read(offset int64, size int) ([]byte, error)
}

// LocalFile implements Reader interface for local files
type LocalFile struct {
	file *os.File
	size int64
}

// NewLocalFile opens a local file for reading.
// The file must exist and be readable.
// Returns a LocalFile that implements the Reader interface.
func NewLocalFile(path string) (*LocalFile, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	stat, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}

	return &LocalFile{
		file: file,
		size: stat.Size(),
	}, nil
}

func (f *LocalFile) ReadAt(p []byte, off int64) (n int, err error) {
	return f.file.ReadAt(p, off)
}

func (f *LocalFile) Close() error {
	return f.file.Close()
}

func (f *LocalFile) Size() int64 {
	return f.size
}

func (f *LocalFile) Read(offset int64, size int) ([]byte, error) {
	return readRange(f.file, f.size, offset, size)
}

// Section returns a sequential reader over the whole file
func (f *LocalFile) Section() io.Reader {
	return io.NewSectionReader(f.file, 0, f.size)
}

// SpoolFile is a temporary file that is filled once and then read randomly.
// The file is removed from disk on Close.
type SpoolFile struct {
	file *os.File
	size int64
}

// NewSpoolFile copies src into a new temporary file in dir ("" means os.TempDir).
func NewSpoolFile(dir string, src io.Reader) (*SpoolFile, error) {
	tmp, err := os.CreateTemp(dir, "efd-spool-*")
	if err != nil {
		return nil, err
	}

	n, err := io.Copy(tmp, src)
	if err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return nil, err
	}

	return &SpoolFile{
		file: tmp,
		size: n,
	}, nil
}

func (f *SpoolFile) ReadAt(p []byte, off int64) (n int, err error) {
	return f.file.ReadAt(p, off)
}

func (f *SpoolFile) Size() int64 {
	return f.size
}

func (f *SpoolFile) Read(offset int64, size int) ([]byte, error) {
	return readRange(f.file, f.size, offset, size)
}

// Name returns the path of the temporary file
func (f *SpoolFile) Name() string {
	return f.file.Name()
}

func (f *SpoolFile) Close() error {
	name := f.file.Name()
	err := f.file.Close()
	if rmErr := os.Remove(name); rmErr != nil && err == nil && !os.IsNotExist(rmErr) {
		err = rmErr
	}
	return err
}

func readRange(r io.ReaderAt, total, offset int64, size int) ([]byte, error) {
	if size <= 0 || offset >= total {
		return []byte{}, nil
	}
	if remain := total - offset; int64(size) > remain {
		size = int(remain)
	}
	data := make([]byte, size)
	n, err := r.ReadAt(data, offset)
	if err != nil && err != io.EOF {
		return nil, err
	}
	return data[:n], nil
}
