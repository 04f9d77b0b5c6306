package directconnection

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rasterlab/scanstream/sim"
)

type agent struct {
	*sim.ComponentBase
}

func newAgent(name string) *agent {
	return &agent{ComponentBase: sim.NewComponentBase(name)}
}

func (a *agent) Handle(_ sim.Event) error { return nil }

func (a *agent) NotifyRecv(_ sim.Port) {}

func (a *agent) NotifyPortFree(_ sim.Port) {}

type testMsg struct {
	sim.MsgMeta
}

func (m *testMsg) Meta() *sim.MsgMeta {
	return &m.MsgMeta
}

func (m *testMsg) Clone() sim.Msg {
	cloneMsg := *m
	cloneMsg.ID = sim.GetIDGenerator().Generate()

	return &cloneMsg
}

var _ = Describe("DirectConnection", func() {
	var (
		engine *sim.SerialEngine
		conn   *Comp
		portA  sim.Port
		portB  sim.Port
	)

	BeforeEach(func() {
		engine = sim.NewSerialEngine()
		conn = MakeBuilder().
			WithEngine(engine).
			WithFreq(1 * sim.GHz).
			Build("Conn")

		portA = sim.NewPort(newAgent("AgentA"), 2, 2, "AgentA.Port")
		portB = sim.NewPort(newAgent("AgentB"), 1, 2, "AgentB.Port")

		conn.PlugIn(portA, 1)
		conn.PlugIn(portB, 1)
	})

	makeMsg := func(src, dst sim.Port) *testMsg {
		msg := &testMsg{}
		msg.Src = src.AsRemote()
		msg.Dst = dst.AsRemote()
		return msg
	}

	It("should forward a message to the destination port", func() {
		msg := makeMsg(portA, portB)

		err := portA.Send(msg)
		Expect(err).To(BeNil())

		_ = engine.Run()

		Expect(portB.RetrieveIncoming()).To(BeIdenticalTo(msg))
		Expect(portA.PeekOutgoing()).To(BeNil())
	})

	It("should hold messages back while the destination is full", func() {
		msg1 := makeMsg(portA, portB)
		msg2 := makeMsg(portA, portB)

		Expect(portA.Send(msg1)).To(BeNil())
		Expect(portA.Send(msg2)).To(BeNil())

		_ = engine.Run()

		// Incoming capacity of portB is 1, so msg2 waits at the source side.
		Expect(portA.PeekOutgoing()).To(BeIdenticalTo(msg2))

		Expect(portB.RetrieveIncoming()).To(BeIdenticalTo(msg1))

		_ = engine.Run()

		Expect(portB.RetrieveIncoming()).To(BeIdenticalTo(msg2))
	})

	It("should panic when the destination is not plugged in", func() {
		stray := sim.NewPort(newAgent("AgentC"), 1, 1, "AgentC.Port")
		msg := makeMsg(portA, stray)

		Expect(portA.Send(msg)).To(BeNil())

		Expect(func() { _ = engine.Run() }).To(Panic())
	})
})
