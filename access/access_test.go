package access_test

import (
	"math/big"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/cycleharness/access"
	"github.com/sarchlab/cycleharness/simerr"
)

var _ = Describe("Checker", func() {
	var (
		sim     *fakeSim
		threads *fakeThreads
		names   []string
		isOut   map[string]bool
		comb    map[string][]string
	)

	BeforeEach(func() {
		sim = newFakeSim()
		threads = newFakeThreads()
		names = []string{"a", "b", "z"}
		isOut = map[string]bool{"z": true}
		comb = map[string][]string{"z": {"a", "b"}}
	})

	It("rejects poking a read-only output", func() {
		c := access.New(sim, threads, names, isOut, comb)
		err := c.Poke("z", big.NewInt(1))
		Expect(err).To(HaveOccurred())
		var unpokeable *simerr.UnpokeableSignal
		Expect(err).To(BeAssignableToTypeOf(unpokeable))
	})

	It("reports unknown symbols", func() {
		c := access.New(sim, threads, names, isOut, comb)
		_, err := c.PeekValue("nope")
		Expect(err).To(HaveOccurred())
		var unknown *simerr.UnknownSymbol
		Expect(err).To(BeAssignableToTypeOf(unknown))
	})

	It("coalesces a repeated poke of the same value", func() {
		c := access.New(sim, threads, names, isOut, comb)
		Expect(c.Poke("a", big.NewInt(5))).To(Succeed())
		Expect(sim.pokeCalls).To(Equal(1))
		Expect(c.Poke("a", big.NewInt(5))).To(Succeed())
		Expect(sim.pokeCalls).To(Equal(1), "same-value poke must not reach the simulator twice")
		Expect(c.Poke("a", big.NewInt(6))).To(Succeed())
		Expect(sim.pokeCalls).To(Equal(2))
	})

	It("allows same-thread peek after poke on the same step", func() {
		c := access.New(sim, threads, names, isOut, comb)
		threads.activeID = 0
		threads.step = 3
		Expect(c.Poke("a", big.NewInt(1))).To(Succeed())
		_, err := c.PeekValue("a")
		Expect(err).NotTo(HaveOccurred())
	})

	It("rejects a cross-thread peek-after-poke in the same step", func() {
		c := access.New(sim, threads, names, isOut, comb)
		threads.step = 3
		threads.activeID = 1
		Expect(c.Poke("a", big.NewInt(1))).To(Succeed())

		threads.activeID = 2 // unrelated thread, same step
		_, err := c.PeekValue("a")
		Expect(err).To(HaveOccurred())
		var conflict *simerr.ThreadOrderDependent
		Expect(err).To(BeAssignableToTypeOf(conflict))
	})

	It("allows a descendant to observe its ancestor's access", func() {
		// spec.md §4.F's conflict predicate is single-direction: the
		// active thread must be a descendant of lastAccessThread, not
		// the reverse.
		c := access.New(sim, threads, names, isOut, comb)
		threads.parents[2] = 1
		threads.step = 3
		threads.activeID = 1
		Expect(c.Poke("a", big.NewInt(1))).To(Succeed())

		threads.activeID = 2
		_, err := c.PeekValue("a")
		Expect(err).NotTo(HaveOccurred())
	})

	It("rejects an ancestor observing its descendant's access", func() {
		c := access.New(sim, threads, names, isOut, comb)
		threads.parents[2] = 1
		threads.step = 3
		threads.activeID = 2
		Expect(c.Poke("a", big.NewInt(1))).To(Succeed())

		threads.activeID = 1
		_, err := c.PeekValue("a")
		Expect(err).To(HaveOccurred())
		var conflict *simerr.ThreadOrderDependent
		Expect(err).To(BeAssignableToTypeOf(conflict))
	})

	It("rejects peeking an output whose combinational source was poked by an unrelated thread this step", func() {
		c := access.New(sim, threads, names, isOut, comb)
		threads.step = 5
		threads.activeID = 1
		Expect(c.Poke("a", big.NewInt(9))).To(Succeed())

		threads.activeID = 2
		_, err := c.PeekValue("z")
		Expect(err).To(HaveOccurred())
		var conflict *simerr.ThreadOrderDependent
		Expect(err).To(BeAssignableToTypeOf(conflict))
	})

	It("does not conflict across different steps", func() {
		c := access.New(sim, threads, names, isOut, comb)
		threads.step = 1
		threads.activeID = 1
		Expect(c.Poke("a", big.NewInt(1))).To(Succeed())

		threads.step = 2
		threads.activeID = 2
		_, err := c.PeekValue("a")
		Expect(err).NotTo(HaveOccurred())
	})

	It("raises Timeout once idle cycles reach the configured budget", func() {
		c := access.New(sim, threads, names, isOut, comb)
		c.SetTimeout(4)
		_, err := c.SimulationStep(0, 2)
		Expect(err).NotTo(HaveOccurred())
		Expect(c.IdleCycles()).To(Equal(2))
		_, err = c.SimulationStep(2, 2)
		Expect(err).To(HaveOccurred())
		var timeout *simerr.Timeout
		Expect(err).To(BeAssignableToTypeOf(timeout))
	})

	It("resets the idle counter on a value-changing poke", func() {
		c := access.New(sim, threads, names, isOut, comb)
		c.SetTimeout(4)
		_, err := c.SimulationStep(0, 3)
		Expect(err).NotTo(HaveOccurred())
		Expect(c.Poke("a", big.NewInt(1))).To(Succeed())
		Expect(c.IdleCycles()).To(Equal(0))
	})
})
