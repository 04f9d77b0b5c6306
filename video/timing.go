package video

import (
	"log"

	"github.com/rasterlab/scanstream/sim"
)

// A PinRole identifies an output pin driven by the timing generator.
type PinRole int

// The pin roles of the output signal path.
const (
	PinCSync PinRole = iota
	PinRed
	PinGreen
	PinBlue
)

func (r PinRole) String() string {
	switch r {
	case PinCSync:
		return "csync"
	case PinRed:
		return "red"
	case PinGreen:
		return "green"
	case PinBlue:
		return "blue"
	}

	return "invalid"
}

// SyncGenerator stands in for the external unit that produces the
// synchronization waveform. Its internal sequencing is not modeled; it
// exposes pin configuration, the start-together contract, and its scan
// position. The pipeline is only geometrically correct if the generator
// and the transfer engine begin in the same pacing cycle, so the only way
// to start it is through StartTogether.
type SyncGenerator struct {
	*sim.TickingComponent

	geom        Geometry
	pins        map[PinRole]int
	frameBudget uint64

	started bool
	elem    int
	line    int
	frames  uint64
}

// Configure assigns an output pin to a role. All configuration must happen
// before the start barrier.
func (g *SyncGenerator) Configure(role PinRole, pin int) {
	if g.started {
		log.Panic("cannot configure the timing generator after start")
	}

	if _, taken := g.pins[role]; taken {
		log.Panicf("pin role %s configured twice", role)
	}

	g.pins[role] = pin
}

// Tick advances the scan position by one element.
func (g *SyncGenerator) Tick() bool {
	if g.frameBudget > 0 && g.frames >= g.frameBudget {
		return false
	}

	g.started = true
	g.elem++

	if g.elem == g.geom.ElementsPerLine() {
		g.elem = 0
		g.line++
	}

	if g.line == g.geom.TotalLines() {
		g.line = 0
		g.frames++
	}

	return true
}

// Scanline returns the scanline the generator is currently pacing.
func (g *SyncGenerator) Scanline() int {
	return g.line
}

// FrameCount returns the number of frames the generator has paced.
func (g *SyncGenerator) FrameCount() uint64 {
	return g.frames
}

// SyncGeneratorBuilder can build sync generators.
type SyncGeneratorBuilder struct {
	engine      sim.Engine
	freq        sim.Freq
	geom        Geometry
	frameBudget uint64
}

// MakeSyncGeneratorBuilder creates a builder with default parameters.
func MakeSyncGeneratorBuilder() SyncGeneratorBuilder {
	return SyncGeneratorBuilder{}
}

// WithEngine sets the event engine the generator uses.
func (b SyncGeneratorBuilder) WithEngine(e sim.Engine) SyncGeneratorBuilder {
	b.engine = e
	return b
}

// WithFreq sets the element pacing frequency.
func (b SyncGeneratorBuilder) WithFreq(f sim.Freq) SyncGeneratorBuilder {
	b.freq = f
	return b
}

// WithGeometry sets the signal geometry.
func (b SyncGeneratorBuilder) WithGeometry(g Geometry) SyncGeneratorBuilder {
	b.geom = g
	return b
}

// WithFrameBudget bounds the generator for finite runs. 0 means unbounded.
func (b SyncGeneratorBuilder) WithFrameBudget(
	frames uint64,
) SyncGeneratorBuilder {
	b.frameBudget = frames
	return b
}

// Build creates a SyncGenerator.
func (b SyncGeneratorBuilder) Build(name string) *SyncGenerator {
	b.geom.MustValidate()

	g := new(SyncGenerator)
	g.TickingComponent = sim.NewTickingComponent(name, b.engine, b.freq, g)
	g.geom = b.geom
	g.frameBudget = b.frameBudget
	g.pins = make(map[PinRole]int)

	return g
}

// A Startable unit can have its first pacing cycle scheduled.
type Startable interface {
	TickLater()
}

// StartTogether begins all the given units in the same pacing cycle. This
// is the one-time startup barrier: configuration must be complete before
// the call, and starting the timing generator and the transfer engine
// separately would skew the border boundaries against the sync waveform
// without any software-visible failure.
func StartTogether(units ...Startable) {
	for _, u := range units {
		u.TickLater()
	}
}
