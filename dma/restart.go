package dma

import "sync/atomic"

// A RestartTrigger closes the descriptor loop. It keeps a reference to the
// chain and the fixed reload payload (the four fields of the chain's first
// descriptor), and reissues that payload every time the loader exhausts
// the chain. It has no other state.
type RestartTrigger struct {
	chain   *Chain
	payload Descriptor

	restarts atomic.Uint64
}

// NewRestartTrigger creates a trigger for the given chain.
func NewRestartTrigger(chain *Chain) *RestartTrigger {
	return &RestartTrigger{
		chain:   chain,
		payload: chain.Descriptor(0),
	}
}

// OnLoaderExhausted is invoked exactly once per completed pass through the
// chain. It returns the slot to re-prime the loader with and the reload
// payload for the engine's working registers.
func (t *RestartTrigger) OnLoaderExhausted() (slot int, payload Descriptor) {
	t.restarts.Add(1)
	return 0, t.payload
}

// Restarts returns how many times the trigger has re-armed the chain.
func (t *RestartTrigger) Restarts() uint64 {
	return t.restarts.Load()
}
