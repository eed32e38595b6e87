package unpacker

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// Options configures opening and unpacking a supply file
type Options struct {
	// Workers is the number of concurrent file writers.
	// Default: runtime.NumCPU()
	Workers int

	// SpoolDir holds the inflated container while unpacking ("" means os.TempDir).
	SpoolDir string

	// KeepTimes restores entry modification times on written files
	KeepTimes bool

	// Verify re-reads every written file and compares its SHA-256 with the
	// bytes read from the container
	Verify bool

	// Verbose logs every failed item
	Verbose bool
}

// DefaultOptions returns options with sensible defaults
func DefaultOptions() *Options {
	return &Options{
		Workers:   runtime.NumCPU(),
		KeepTimes: true,
	}
}

func (o *Options) normalize() *Options {
	if o == nil {
		return DefaultOptions()
	}
	out := *o
	if out.Workers <= 0 {
		out.Workers = runtime.NumCPU()
	}
	return &out
}

// EntryInfo describes a file stored in a supply file
type EntryInfo struct {
	Name         string    `json:"name"`
	Path         string    `json:"path"`
	Size         int64     `json:"size"`
	SizeReadable string    `json:"size_readable"`
	Modified     time.Time `json:"modified,omitempty"`
	Unsafe       bool      `json:"unsafe,omitempty"`
}

// ItemResult is the outcome of writing one entry
type ItemResult struct {
	Name string `json:"name"`
	Path string `json:"path,omitempty"`
	Size int64  `json:"size"`
	Err  error  `json:"-"`
}

// Result contains statistics about the unpack operation
type Result struct {
	OutputDir    string
	Items        []ItemResult
	FilesTotal   int
	FilesWritten int
	BytesWritten int64
}

// Success returns true if every entry was written
func (r *Result) Success() bool {
	return r.FilesWritten == r.FilesTotal && r.Err() == nil
}

// Failed returns the items that could not be written
func (r *Result) Failed() []ItemResult {
	var out []ItemResult
	for _, item := range r.Items {
		if item.Err != nil {
			out = append(out, item)
		}
	}
	return out
}

// Err joins the errors of all failed items into one single-line error
func (r *Result) Err() error {
	var errs itemErrors
	for _, item := range r.Items {
		if item.Err != nil {
			errs = append(errs, &ItemError{Name: item.Name, Err: item.Err})
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

type itemErrors []error

func (e itemErrors) Error() string {
	parts := make([]string, len(e))
	for i, err := range e {
		parts[i] = err.Error()
	}
	return strings.Join(parts, "; ")
}

func (e itemErrors) Unwrap() []error {
	return e
}

// ItemError ties an error to the entry it happened on
type ItemError struct {
	Name string
	Err  error
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("%q: %v", e.Name, e.Err)
}

func (e *ItemError) Unwrap() error {
	return e.Err
}

// ProgressInfo represents progress information for unpacking
type ProgressInfo struct {
	EntryName    string `json:"entry_name"`
	FilesTotal   int    `json:"files_total"`
	FilesDone    int    `json:"files_done"`
	BytesTotal   int64  `json:"bytes_total"`
	BytesDone    int64  `json:"bytes_done"`
	SizeReadable string `json:"size_readable"`
	Failed       bool   `json:"failed,omitempty"`
}

// ProgressCallback is a function type for receiving progress updates.
// Calls are serialized.
type ProgressCallback func(progress ProgressInfo)

func formatSize(bytes int64) string {
	if bytes < 0 {
		bytes = 0
	}
	return humanize.IBytes(uint64(bytes))
}
