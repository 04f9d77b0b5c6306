package datarecording

import (
	"github.com/rasterlab/scanstream/sim"
	"github.com/rasterlab/scanstream/video"
)

// FrameStats is one recorded row per completed frame.
type FrameStats struct {
	Frame     uint64
	Elements  int
	StartTime float64
	EndTime   float64
}

// FrameStatsTable is the table frame statistics are recorded into.
const FrameStatsTable = "frame_stats"

// A FrameHook records a FrameStats row every time a sink completes a
// frame. Attach it to a sink with AcceptHook.
type FrameHook struct {
	recorder DataRecorder
}

// NewFrameHook creates a FrameHook writing to the given recorder.
func NewFrameHook(recorder DataRecorder) *FrameHook {
	recorder.CreateTable(FrameStatsTable, FrameStats{})

	return &FrameHook{recorder: recorder}
}

// Func records completed frames and ignores every other hook position.
func (h *FrameHook) Func(ctx sim.HookCtx) {
	if ctx.Pos != video.HookPosFrameDone {
		return
	}

	frame := ctx.Item.(*video.Frame)

	h.recorder.InsertData(FrameStatsTable, FrameStats{
		Frame:     frame.Index,
		Elements:  len(frame.Elements),
		StartTime: float64(frame.Start),
		EndTime:   float64(frame.End),
	})
}
