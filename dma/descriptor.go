package dma

// ChainToRestart is the ChainTo value of the final descriptor in a chain.
// Completing it hands control to the RestartTrigger instead of another
// descriptor.
const ChainToRestart = -1

// A TransferConfig holds the static transfer parameters of one descriptor.
type TransferConfig struct {
	// ElemBytes is the width of one transferred element. The sink consumes
	// one packed byte per element.
	ElemBytes int

	// SrcIncrement selects whether the source address advances after each
	// element. Border segments stream a constant and do not increment.
	SrcIncrement bool

	// DstIncrement is always false: every element goes to the sink's single
	// fixed write port.
	DstIncrement bool

	// ChainTo is the slot of the descriptor to load when this one
	// completes, or ChainToRestart.
	ChainTo int
}

// A Descriptor describes one contiguous segment of the output stream: a
// transfer configuration, a source, and an element count. The destination
// is implicit; every descriptor targets the sink port the engine was built
// with.
type Descriptor struct {
	Config TransferConfig

	// Src backs incrementing transfers. The engine reads it directly while
	// application code keeps writing to it.
	Src []byte

	// Fill is the constant element for non-incrementing transfers.
	Fill byte

	Count int
}

// ElementAt returns the element the descriptor emits at position i.
func (d Descriptor) ElementAt(i int) byte {
	if d.Config.SrcIncrement {
		return d.Src[i]
	}

	return d.Fill
}
