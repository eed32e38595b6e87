// Package unpacker extracts the files of EFD supply files.
package unpacker

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/xishang0128/efd-unpacker-go/common/file"
	"github.com/xishang0128/efd-unpacker-go/compression"
	"github.com/xishang0128/efd-unpacker-go/container"
)

// Unpacker handles the extraction of one supply file
type Unpacker struct {
	source      *file.LocalFile
	spool       *file.SpoolFile
	container   *container.Reader
	compression compression.CompressionType
	opts        *Options
}

// Open reads the supply file at path. Deflated input is inflated into a
// spool file first so the container can be read randomly.
func Open(path string, opts *Options) (*Unpacker, error) {
	opts = opts.normalize()

	source, err := file.NewLocalFile(path)
	if err != nil {
		return nil, err
	}

	u := &Unpacker{
		source: source,
		opts:   opts,
	}

	head, err := source.Read(0, len(compression.ContainerSignature))
	if err != nil {
		u.Close()
		return nil, fmt.Errorf("read supply header: %w", err)
	}
	u.compression = compression.Detect(head)

	var data file.Reader = source
	if u.compression != compression.TypeNone {
		rc, err := compression.NewDecompressorManager().NewReader(u.compression, source.Section())
		if err != nil {
			u.Close()
			return nil, err
		}
		u.spool, err = file.NewSpoolFile(opts.SpoolDir, rc)
		rc.Close()
		if err != nil {
			u.Close()
			return nil, fmt.Errorf("inflate supply file: %w", err)
		}
		data = u.spool
	}

	u.container, err = container.NewReader(data, data.Size())
	if err != nil {
		u.Close()
		return nil, err
	}
	return u, nil
}

// Close releases the source file and removes the spool
func (u *Unpacker) Close() error {
	if u == nil {
		return nil
	}
	var err error
	if u.spool != nil {
		err = u.spool.Close()
		u.spool = nil
	}
	if u.source != nil {
		if cerr := u.source.Close(); err == nil {
			err = cerr
		}
		u.source = nil
	}
	return err
}

// Compression returns the detected compression of the supply file
func (u *Unpacker) Compression() compression.CompressionType {
	return u.compression
}

// Entries lists the files of the supply file
func (u *Unpacker) Entries() []EntryInfo {
	entries := u.container.Entries()
	out := make([]EntryInfo, 0, len(entries))
	for _, e := range entries {
		rel, err := EntryPath(e.Name)
		out = append(out, EntryInfo{
			Name:         e.Name,
			Path:         rel,
			Size:         e.Size,
			SizeReadable: formatSize(e.Size),
			Modified:     e.Modified,
			Unsafe:       err != nil,
		})
	}
	return out
}

// Unpack writes every entry below outputDir. Failures of single entries are
// recorded in the result; the returned error is reserved for problems that
// stop the whole run (output directory, cancellation).
func (u *Unpacker) Unpack(ctx context.Context, outputDir string, progressCallback ProgressCallback) (*Result, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	entries := u.container.Entries()
	result := &Result{
		OutputDir:  outputDir,
		Items:      make([]ItemResult, len(entries)),
		FilesTotal: len(entries),
	}

	var bytesTotal int64
	for i, e := range entries {
		bytesTotal += e.Size
		result.Items[i] = ItemResult{Name: e.Name, Size: e.Size}
	}

	workers := min(u.opts.Workers, max(len(entries), 1))
	jobs := make(chan int, workers*2)

	var (
		wg         sync.WaitGroup
		progressMu sync.Mutex
		filesDone  int
		bytesDone  int64
	)

	report := func(i int) {
		progressMu.Lock()
		defer progressMu.Unlock()

		item := result.Items[i]
		filesDone++
		if item.Err == nil {
			bytesDone += item.Size
		}
		if progressCallback != nil {
			progressCallback(ProgressInfo{
				EntryName:    item.Name,
				FilesTotal:   len(entries),
				FilesDone:    filesDone,
				BytesTotal:   bytesTotal,
				BytesDone:    bytesDone,
				SizeReadable: formatSize(item.Size),
				Failed:       item.Err != nil,
			})
		}
	}

	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			buf := globalBufferPool.Get()
			defer globalBufferPool.Put(buf)

			for i := range jobs {
				path, err := u.extract(entries[i], outputDir, buf)
				result.Items[i].Path = path
				result.Items[i].Err = err
				if err != nil && u.opts.Verbose {
					log.Printf("[unpacker] %s: %v", entries[i].Name, err)
				}
				report(i)
			}
		}()
	}

	dispatched := 0
dispatch:
	for i := range entries {
		if ctx.Err() != nil {
			break
		}
		select {
		case <-ctx.Done():
			break dispatch
		case jobs <- i:
			dispatched++
		}
	}
	close(jobs)
	wg.Wait()

	for i := dispatched; i < len(entries); i++ {
		result.Items[i].Err = ctx.Err()
	}

	for _, item := range result.Items {
		if item.Err == nil {
			result.FilesWritten++
			result.BytesWritten += item.Size
		}
	}

	if err := ctx.Err(); err != nil {
		return result, err
	}
	return result, nil
}

func (u *Unpacker) extract(e container.Entry, outputDir string, buf []byte) (string, error) {
	rel, err := EntryPath(e.Name)
	if err != nil {
		return "", err
	}
	target := filepath.Join(outputDir, rel)

	if isDirEntry(e.Name) {
		return target, os.MkdirAll(target, 0755)
	}

	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return target, err
	}

	body, err := u.container.Open(e)
	if err != nil {
		return target, err
	}

	var digest *digestReader
	if u.opts.Verify {
		digest = newDigestReader(body)
		body = digest
	}

	if err := writeFile(target, body, buf); err != nil {
		return target, err
	}

	if digest != nil {
		if err := verifyFileWithRetry(target, digest.n, digest.Sum(), buf); err != nil {
			return target, err
		}
	}

	if u.opts.KeepTimes && !e.Modified.IsZero() {
		if err := os.Chtimes(target, e.Modified, e.Modified); err != nil {
			return target, err
		}
	}
	return target, nil
}

// writeFile copies r into a sibling temporary file and renames it over target.
func writeFile(target string, r io.Reader, buf []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(target), "."+filepath.Base(target)+".part-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := io.CopyBuffer(tmp, r, buf); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, target); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
