package dma

import (
	"log"

	"github.com/rasterlab/scanstream/video"
)

// A Chain is the fixed, ordered descriptor sequence composing one frame:
// top border, active region, bottom border. It is built once at startup
// and immutable afterwards; only the pixel bytes the active descriptor
// points into keep changing.
type Chain struct {
	descs [3]Descriptor

	elementsPerFrame int
}

// BuildChain constructs the three-descriptor chain for the given geometry.
// src is the packed active-region buffer; fill is the constant border
// element (two packed border pixels).
func BuildChain(geom video.Geometry, src []byte, fill byte) *Chain {
	geom.MustValidate()

	if len(src) != geom.ActiveElements() {
		log.Panicf("active buffer holds %d elements, geometry needs %d",
			len(src), geom.ActiveElements())
	}

	c := &Chain{
		descs: [3]Descriptor{
			{
				Config: TransferConfig{
					ElemBytes: 1,
					ChainTo:   1,
				},
				Fill:  fill,
				Count: geom.TopElements(),
			},
			{
				Config: TransferConfig{
					ElemBytes:    1,
					SrcIncrement: true,
					ChainTo:      2,
				},
				Src:   src,
				Count: geom.ActiveElements(),
			},
			{
				Config: TransferConfig{
					ElemBytes: 1,
					ChainTo:   ChainToRestart,
				},
				Fill:  fill,
				Count: geom.BottomElements(),
			},
		},
		elementsPerFrame: geom.ElementsPerFrame(),
	}

	c.mustBeConsistent()

	return c
}

// Len returns the number of descriptors in the chain.
func (c *Chain) Len() int {
	return len(c.descs)
}

// Descriptor returns the descriptor at the given slot.
func (c *Chain) Descriptor(slot int) Descriptor {
	return c.descs[slot]
}

// ElementsPerFrame returns the fixed total element count of one pass
// through the chain.
func (c *Chain) ElementsPerFrame() int {
	return c.elementsPerFrame
}

func (c *Chain) mustBeConsistent() {
	sum := 0
	for _, d := range c.descs {
		sum += d.Count
	}

	if sum != c.elementsPerFrame {
		log.Panicf("descriptor counts sum to %d, frame needs %d",
			sum, c.elementsPerFrame)
	}
}
