// Package dma implements the autonomous scatter-gather streaming engine: a
// three-descriptor chain that emits the top border, the active pixel
// region, and the bottom border, and re-arms itself forever without
// per-scanline software involvement.
package dma

import (
	"log"
	"sync"
)

// A ChannelPool holds the fixed set of transfer channels a platform
// provides. Engines claim channels at configuration time; running out of
// channels is a startup-time fatal condition, never a runtime one.
type ChannelPool struct {
	mu      sync.Mutex
	claimed []bool
}

// NewChannelPool creates a pool with n channels, all unclaimed.
func NewChannelPool(n int) *ChannelPool {
	return &ChannelPool{
		claimed: make([]bool, n),
	}
}

// ClaimUnused claims the lowest-numbered free channel. When required is
// true and no channel is free the process must not proceed past
// initialization, so it panics. When required is false it returns -1
// instead.
func (p *ChannelPool) ClaimUnused(required bool) int {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i, taken := range p.claimed {
		if !taken {
			p.claimed[i] = true
			return i
		}
	}

	if required {
		log.Panic("no free transfer channel")
	}

	return -1
}
