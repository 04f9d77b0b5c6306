package video

import (
	"github.com/rasterlab/scanstream/sim"
)

// An ElementMsg carries one packed element (two pixels) from the transfer
// engine to the sink.
type ElementMsg struct {
	sim.MsgMeta

	Data byte
}

// Meta returns the meta data of the message.
func (m *ElementMsg) Meta() *sim.MsgMeta {
	return &m.MsgMeta
}

// Clone returns a cloned ElementMsg with a different ID.
func (m *ElementMsg) Clone() sim.Msg {
	cloneMsg := *m
	cloneMsg.ID = sim.GetIDGenerator().Generate()

	return &cloneMsg
}

// ElementMsgBuilder can build element messages.
type ElementMsgBuilder struct {
	src, dst sim.RemotePort
	data     byte
}

// WithSrc sets the source of the message.
func (b ElementMsgBuilder) WithSrc(src sim.RemotePort) ElementMsgBuilder {
	b.src = src
	return b
}

// WithDst sets the destination of the message.
func (b ElementMsgBuilder) WithDst(dst sim.RemotePort) ElementMsgBuilder {
	b.dst = dst
	return b
}

// WithData sets the packed element the message carries.
func (b ElementMsgBuilder) WithData(data byte) ElementMsgBuilder {
	b.data = data
	return b
}

// Build creates a new ElementMsg.
func (b ElementMsgBuilder) Build() *ElementMsg {
	m := &ElementMsg{
		MsgMeta: sim.MsgMeta{
			ID:           sim.GetIDGenerator().Generate(),
			Src:          b.src,
			Dst:          b.dst,
			TrafficClass: "video.ElementMsg",
			TrafficBytes: 1,
		},
		Data: b.data,
	}

	return m
}
