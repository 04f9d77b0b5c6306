package video

import (
	"log"

	"github.com/rasterlab/scanstream/sim"
)

// HookPosFrameDone marks when the sink retires the last element of a frame.
// The hook item is the completed *Frame.
var HookPosFrameDone = &sim.HookPos{Name: "Frame Done"}

// Comp is the sink: the fixed-rate consumer at the end of the signal path.
// It retires one element per pacing cycle from a small FIFO and assembles
// the element stream back into frames.
//
// The FIFO is the backpressure mechanism: when it is full the transfer
// engine's sends fail and the engine stalls until the sink catches up. A
// stall is not an error.
type Comp struct {
	*sim.TickingComponent

	// InPort accepts ElementMsgs. Its incoming buffer capacity is the FIFO
	// depth.
	InPort sim.Port

	geom        Geometry
	frameBudget uint64

	frameCount uint64
	current    *Frame
	lastFrame  *Frame
}

// Tick retires at most one element per cycle.
func (c *Comp) Tick() bool {
	if c.frameBudget > 0 && c.FrameCount() >= c.frameBudget {
		// Out of budget: the sink stops accepting and the upstream engine
		// stalls, which drains the simulation.
		return false
	}

	item := c.InPort.RetrieveIncoming()
	if item == nil {
		return false
	}

	msg, ok := item.(*ElementMsg)
	if !ok {
		log.Panicf("sink cannot process message %s", item.Meta().ID)
	}

	c.retire(msg.Data)

	return true
}

func (c *Comp) retire(elem byte) {
	now := c.CurrentTime()

	if c.current == nil {
		c.current = &Frame{
			Geometry: c.geom,
			Index:    c.frameCount,
			Elements: make([]byte, 0, c.geom.ElementsPerFrame()),
			Start:    now,
		}
	}

	c.current.Elements = append(c.current.Elements, elem)

	if len(c.current.Elements) == c.geom.ElementsPerFrame() {
		c.current.End = now

		c.Lock()
		c.frameCount++
		c.lastFrame = c.current
		c.Unlock()

		c.InvokeHook(sim.HookCtx{
			Domain: c,
			Pos:    HookPosFrameDone,
			Item:   c.current,
		})

		c.current = nil
	}
}

// FrameCount returns the number of frames the sink has fully retired.
func (c *Comp) FrameCount() uint64 {
	c.Lock()
	defer c.Unlock()

	return c.frameCount
}

// LastFrame returns the most recently completed frame, or nil if no frame
// has completed yet.
func (c *Comp) LastFrame() *Frame {
	c.Lock()
	defer c.Unlock()

	return c.lastFrame
}

// Geometry returns the geometry the sink assembles frames with.
func (c *Comp) Geometry() Geometry {
	return c.geom
}

// SinkBuilder can build sinks.
type SinkBuilder struct {
	engine      sim.Engine
	freq        sim.Freq
	geom        Geometry
	fifoDepth   int
	frameBudget uint64
}

// MakeSinkBuilder creates a SinkBuilder with default parameters.
func MakeSinkBuilder() SinkBuilder {
	return SinkBuilder{
		fifoDepth: 8,
	}
}

// WithEngine sets the event engine the sink uses.
func (b SinkBuilder) WithEngine(e sim.Engine) SinkBuilder {
	b.engine = e
	return b
}

// WithFreq sets the pacing frequency: one element retires per cycle.
func (b SinkBuilder) WithFreq(f sim.Freq) SinkBuilder {
	b.freq = f
	return b
}

// WithGeometry sets the frame geometry.
func (b SinkBuilder) WithGeometry(g Geometry) SinkBuilder {
	b.geom = g
	return b
}

// WithFIFODepth sets the depth of the element FIFO.
func (b SinkBuilder) WithFIFODepth(depth int) SinkBuilder {
	b.fifoDepth = depth
	return b
}

// WithFrameBudget makes the sink stop retiring elements after the given
// number of frames so that a finite run can drain. The steady-state
// pipeline itself never stops; a budget of 0 means unbounded.
func (b SinkBuilder) WithFrameBudget(frames uint64) SinkBuilder {
	b.frameBudget = frames
	return b
}

// Build creates a sink.
func (b SinkBuilder) Build(name string) *Comp {
	b.geom.MustValidate()

	c := new(Comp)
	c.TickingComponent = sim.NewTickingComponent(name, b.engine, b.freq, c)
	c.geom = b.geom
	c.frameBudget = b.frameBudget

	c.InPort = sim.NewPort(c, b.fifoDepth, 1, name+".Pixel")
	c.AddPort("Pixel", c.InPort)

	return c
}
