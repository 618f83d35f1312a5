package state_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"starksnap/internal/state"
)

var _ = Describe("NetworkStateManager", func() {
	var (
		ctx     context.Context
		manager *state.NetworkStateManager
	)

	BeforeEach(func() {
		ctx = context.Background()
		defaults := state.DefaultNetworks("https://mainnet.node", "https://sepolia.node")
		manager = state.NewNetworkStateManager(state.NewMemoryStore(), state.NewStoreLock(), defaults, state.SepoliaChainID)
	})

	It("falls back to the default network when none is selected", func() {
		network, err := manager.GetCurrentNetwork(ctx, nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(network.ChainID).To(Equal(state.SepoliaChainID))
		Expect(network.NodeURL).To(Equal("https://sepolia.node"))
	})

	It("returns a supported selected network", func() {
		mainnet, err := manager.GetNetwork(ctx, state.MainnetChainID, nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(manager.SetCurrentNetwork(ctx, mainnet)).To(Succeed())

		network, err := manager.GetCurrentNetwork(ctx, nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(network.ChainID).To(Equal(state.MainnetChainID))
	})

	It("ignores an unsupported selected network", func() {
		Expect(manager.SetCurrentNetwork(ctx, &state.Network{Name: "devnet", ChainID: "0x1234"})).To(Succeed())

		network, err := manager.GetCurrentNetwork(ctx, nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(network.ChainID).To(Equal(state.SepoliaChainID))
	})

	It("adds, updates and lists networks", func() {
		devnet := &state.Network{Name: "devnet", ChainID: "0x1234"}
		Expect(manager.AddNetwork(ctx, devnet)).To(Succeed())
		Expect(manager.AddNetwork(ctx, devnet)).To(MatchError(state.ErrAlreadyExists))

		Expect(manager.UpdateNetwork(ctx, &state.Network{Name: "local", ChainID: "0x1234"})).To(Succeed())
		Expect(manager.UpdateNetwork(ctx, &state.Network{Name: "x", ChainID: "0x99"})).To(MatchError(state.ErrNotFound))

		networks, err := manager.ListNetworks(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(networks).To(HaveLen(3))
		Expect(networks[0].Name).To(Equal("local"))
	})

	It("seeds the defaults once", func() {
		Expect(manager.SeedDefaults(ctx)).To(Succeed())
		Expect(manager.SeedDefaults(ctx)).To(Succeed())

		st, err := manager.Get(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(st.Networks).To(HaveLen(2))
	})
})
