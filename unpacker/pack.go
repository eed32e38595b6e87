package unpacker

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/flate"

	"github.com/xishang0128/efd-unpacker-go/compression"
	"github.com/xishang0128/efd-unpacker-go/container"
)

// PackOptions configures Pack
type PackOptions struct {
	// Store writes the container without DEFLATE
	Store bool
	// Level is the DEFLATE level (0 means flate.BestCompression)
	Level int
}

// PackResult summarizes a packed supply file
type PackResult struct {
	Files int
	Bytes int64
}

// Pack builds a supply file at outPath from the regular files below srcDir.
// Entry names use \ as separator.
func Pack(srcDir, outPath string, opts PackOptions) (*PackResult, error) {
	info, err := os.Stat(srcDir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s: not a directory", srcDir)
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	out, err := os.Create(outPath)
	if err != nil {
		return nil, err
	}

	self, err := out.Stat()
	if err != nil {
		out.Close()
		os.Remove(outPath)
		return nil, err
	}

	result, err := pack(srcDir, out, self, opts)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(outPath)
		return nil, err
	}
	return result, nil
}

// pack writes the files below srcDir to out. skip is the output file itself,
// which is left out when it lies inside srcDir.
func pack(srcDir string, out io.Writer, skip fs.FileInfo, opts PackOptions) (*PackResult, error) {
	var sink io.WriteCloser = nopWriteCloser{out}
	if !opts.Store {
		level := opts.Level
		if level == 0 {
			level = flate.BestCompression
		}
		w, err := compression.NewDeflateCompressor(level).NewWriter(out)
		if err != nil {
			return nil, err
		}
		sink = w
	}

	cw := container.NewWriter(sink)
	result := &PackResult{}

	err := filepath.WalkDir(srcDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		if skip != nil && os.SameFile(info, skip) {
			return nil
		}
		rel, err := filepath.Rel(srcDir, p)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		name := strings.ReplaceAll(filepath.ToSlash(rel), "/", `\`)
		if err := cw.Create(name, info.ModTime(), info.ModTime(), data); err != nil {
			return err
		}
		result.Files++
		result.Bytes += int64(len(data))
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := cw.Close(); err != nil {
		return nil, err
	}
	if err := sink.Close(); err != nil {
		return nil, err
	}
	return result, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
