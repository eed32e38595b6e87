package main

import (
	"sync"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
	"github.com/xishang0128/efd-unpacker-go/common/i18n"
	"github.com/xishang0128/efd-unpacker-go/unpacker"
)

// progressView renders unpack progress as a files bar and a bytes bar
type progressView struct {
	progress *mpb.Progress
	mu       sync.Mutex
	files    *mpb.Bar
	bytes    *mpb.Bar
}

func newProgressView() *progressView {
	return &progressView{
		progress: mpb.New(mpb.WithWidth(60), mpb.WithRefreshRate(100)),
	}
}

// Update is an unpacker.ProgressCallback
func (v *progressView) Update(pi unpacker.ProgressInfo) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.files == nil {
		v.files = v.progress.AddBar(int64(pi.FilesTotal),
			mpb.PrependDecorators(
				decor.Name(i18n.I18nMsg.MainWindow.UnpackingProgress, decor.WC{C: decor.DindentRight | decor.DextraSpace}),
				decor.CountersNoUnit("%d / %d", decor.WCSyncWidth),
			),
			mpb.AppendDecorators(
				decor.Percentage(decor.WC{W: 5}),
				decor.AverageETA(decor.ET_STYLE_GO, decor.WC{W: 6}, decor.WCSyncSpace),
			),
			mpb.BarPriority(1000),
		)
		if pi.BytesTotal > 0 {
			v.bytes = v.progress.AddBar(pi.BytesTotal,
				mpb.PrependDecorators(
					decor.CountersKibiByte("% .1f / % .1f", decor.WC{W: 18}),
				),
				mpb.AppendDecorators(
					decor.AverageSpeed(decor.SizeB1024(0), "% .1f", decor.WC{W: 12}),
				),
			)
		}
	}

	v.files.SetCurrent(int64(pi.FilesDone))
	if v.bytes != nil {
		v.bytes.SetCurrent(pi.BytesDone)
	}
}

// Wait flushes the bars. Incomplete bars (failed or cancelled entries) are
// aborted so the container can shut down.
func (v *progressView) Wait() {
	if v == nil {
		return
	}
	v.mu.Lock()
	for _, bar := range []*mpb.Bar{v.files, v.bytes} {
		if bar != nil && !bar.Completed() {
			bar.Abort(false)
		}
	}
	v.mu.Unlock()
	v.progress.Wait()
}
