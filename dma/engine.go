package dma

import (
	"log"

	"github.com/rasterlab/scanstream/sim"
	"github.com/rasterlab/scanstream/video"
)

// Comp is the transfer engine. It runs two cooperating stages:
//
//   - Stage A moves one element per pacing cycle from the working source to
//     the sink port, stalling without data loss whenever the sink cannot
//     accept more.
//   - Stage B reloads the working registers from the next descriptor in the
//     cycle Stage A finishes its count, so no idle element slot ever
//     appears between segments. When the chain is exhausted the
//     RestartTrigger supplies the first descriptor again.
//
// After Arm and the start barrier the loop runs with no further software
// participation.
type Comp struct {
	*sim.TickingComponent

	DataPort sim.Port

	sinkPort sim.RemotePort
	chain    *Chain
	restart  *RestartTrigger

	dataChannel int
	ctrlChannel int

	// Stage A working registers.
	armed     bool
	cfg       TransferConfig
	src       []byte
	fill      byte
	offset    int
	remaining int

	// Stage B loader state.
	cursor int

	elementsSent uint64
}

// Arm loads the chain's first descriptor into the working registers. It
// must complete before the start barrier; arming a running engine is a
// configuration error.
func (c *Comp) Arm() {
	if c.armed {
		log.Panic("engine already armed")
	}

	c.cursor = 0
	c.loadRegisters(c.chain.Descriptor(0))
	c.armed = true
}

// Tick runs Stage A for one pacing cycle.
func (c *Comp) Tick() bool {
	return c.transferElement()
}

func (c *Comp) transferElement() bool {
	if !c.armed {
		return false
	}

	elem := c.fill
	if c.cfg.SrcIncrement {
		elem = c.src[c.offset]
	}

	msg := video.ElementMsgBuilder{}.
		WithSrc(c.DataPort.AsRemote()).
		WithDst(c.sinkPort).
		WithData(elem).
		Build()

	err := c.DataPort.Send(msg)
	if err != nil {
		// Sink not ready. Stall; the element is retried untouched once the
		// port frees up.
		return false
	}

	c.offset++
	c.remaining--
	c.elementsSent++

	if c.remaining == 0 {
		c.loadNext()
	}

	return true
}

// loadNext is Stage B: it hands the next descriptor to Stage A within the
// same cycle the previous one completed.
func (c *Comp) loadNext() {
	next := c.cfg.ChainTo

	var d Descriptor
	if next == ChainToRestart {
		c.cursor, d = c.restart.OnLoaderExhausted()
	} else {
		c.cursor = next
		d = c.chain.Descriptor(next)
	}

	c.loadRegisters(d)
}

func (c *Comp) loadRegisters(d Descriptor) {
	c.cfg = d.Config
	c.src = d.Src
	c.fill = d.Fill
	c.offset = 0
	c.remaining = d.Count
}

// Cursor returns the chain slot of the descriptor currently in Stage A.
func (c *Comp) Cursor() int {
	return c.cursor
}

// Restarts returns how many times the chain has been re-armed.
func (c *Comp) Restarts() uint64 {
	return c.restart.Restarts()
}

// ElementsSent returns the number of elements accepted by the sink path so
// far.
func (c *Comp) ElementsSent() uint64 {
	return c.elementsSent
}

// DataChannel returns the claimed data channel number.
func (c *Comp) DataChannel() int {
	return c.dataChannel
}

// ControlChannel returns the claimed reconfiguration channel number.
func (c *Comp) ControlChannel() int {
	return c.ctrlChannel
}

// Builder can build transfer engines.
type Builder struct {
	engine   sim.Engine
	freq     sim.Freq
	chain    *Chain
	sinkPort sim.RemotePort
	pool     *ChannelPool
}

// MakeBuilder creates a Builder with default parameters.
func MakeBuilder() Builder {
	return Builder{}
}

// WithEngine sets the event engine the component uses.
func (b Builder) WithEngine(e sim.Engine) Builder {
	b.engine = e
	return b
}

// WithFreq sets the element pacing frequency.
func (b Builder) WithFreq(f sim.Freq) Builder {
	b.freq = f
	return b
}

// WithChain sets the descriptor chain to stream.
func (b Builder) WithChain(chain *Chain) Builder {
	b.chain = chain
	return b
}

// WithSinkPort sets the sink's fixed write port.
func (b Builder) WithSinkPort(p sim.RemotePort) Builder {
	b.sinkPort = p
	return b
}

// WithChannelPool sets the pool the engine claims its two channels from:
// one for element data, one for the restart reconfiguration.
func (b Builder) WithChannelPool(pool *ChannelPool) Builder {
	b.pool = pool
	return b
}

// Build creates a transfer engine. Claiming fails the process if the pool
// cannot provide two channels.
func (b Builder) Build(name string) *Comp {
	if b.chain == nil {
		log.Panic("transfer engine needs a descriptor chain")
	}

	if b.sinkPort == "" {
		log.Panic("transfer engine needs a sink port")
	}

	c := new(Comp)
	c.TickingComponent = sim.NewTickingComponent(name, b.engine, b.freq, c)
	c.chain = b.chain
	c.sinkPort = b.sinkPort
	c.restart = NewRestartTrigger(b.chain)

	c.dataChannel = -1
	c.ctrlChannel = -1
	if b.pool != nil {
		c.dataChannel = b.pool.ClaimUnused(true)
		c.ctrlChannel = b.pool.ClaimUnused(true)
	}

	c.DataPort = sim.NewPort(c, 1, 1, name+".Data")
	c.AddPort("Data", c.DataPort)

	return c
}
