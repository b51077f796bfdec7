package access_test

import (
	"math/big"

	gomock "github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/cycleharness/access"
)

var _ = Describe("Checker against a gomock Simulator", func() {
	var (
		mockCtrl *gomock.Controller
		sim      *MockSimulator
		threads  *fakeThreads
		names    []string
		isOut    map[string]bool
		comb     map[string][]string
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		sim = NewMockSimulator(mockCtrl)
		threads = newFakeThreads()
		names = []string{"a", "z"}
		isOut = map[string]bool{"z": true}
		comb = map[string][]string{"z": {"a"}}
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("forwards exactly one PokeByName call for a repeated same-value poke", func() {
		sim.EXPECT().PokeByName("a", big.NewInt(5)).Return(true).Times(1)

		c := access.New(sim, threads, names, isOut, comb)
		Expect(c.Poke("a", big.NewInt(5))).To(Succeed())
		Expect(c.Poke("a", big.NewInt(5))).To(Succeed())
	})

	It("delegates SimulationStep to the underlying Simulator.Step with the requested cycle count", func() {
		sim.EXPECT().Step(3).Return(access.StepResult{Ok: true, After: 3}).Times(1)

		c := access.New(sim, threads, names, isOut, comb)
		delta, err := c.SimulationStep(0, 3)
		Expect(err).NotTo(HaveOccurred())
		Expect(delta).To(Equal(3))
	})
})
