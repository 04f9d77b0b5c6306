package monitoring

import (
	"sync"
	"time"

	"github.com/rasterlab/scanstream/sim"
	"github.com/rasterlab/scanstream/video"
)

// A ProgressBar is a tracker of the progress of a long-running activity.
type ProgressBar struct {
	sync.Mutex
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	StartTime time.Time `json:"start_time"`
	Total     uint64    `json:"total"`
	Finished  uint64    `json:"finished"`
}

// IncrementFinished adds a certain amount to the finished elements.
func (b *ProgressBar) IncrementFinished(amount uint64) {
	b.Lock()
	defer b.Unlock()

	b.Finished += amount
}

// A FrameProgressHook advances a progress bar each time a sink completes a
// frame.
type FrameProgressHook struct {
	bar *ProgressBar
}

// NewFrameProgressHook creates a hook that advances bar by one per frame.
func NewFrameProgressHook(bar *ProgressBar) *FrameProgressHook {
	return &FrameProgressHook{bar: bar}
}

// Func advances the bar on frame completion.
func (h *FrameProgressHook) Func(ctx sim.HookCtx) {
	if ctx.Pos != video.HookPosFrameDone {
		return
	}

	h.bar.IncrementFinished(1)
}
