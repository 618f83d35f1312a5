package state_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"starksnap/internal/state"
)

var _ = Describe("TokenStateManager", func() {
	var (
		ctx     context.Context
		manager *state.TokenStateManager
		token   *state.Erc20Token
	)

	BeforeEach(func() {
		ctx = context.Background()
		manager = state.NewTokenStateManager(state.NewMemoryStore(), state.NewStoreLock())
		token = &state.Erc20Token{
			Address:  "0x0123",
			Name:     "Token",
			Symbol:   "TKN",
			Decimals: 6,
			ChainID:  state.SepoliaChainID,
		}
	})

	It("returns an added token unchanged", func() {
		Expect(manager.AddToken(ctx, token)).To(Succeed())

		stored, err := manager.GetToken(ctx, token.Address, token.ChainID, nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(stored).To(Equal(token))
	})

	It("matches addresses by value", func() {
		Expect(manager.AddToken(ctx, token)).To(Succeed())

		stored, err := manager.GetToken(ctx, "0x123", token.ChainID, nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(stored).NotTo(BeNil())
	})

	It("rejects a second add", func() {
		Expect(manager.AddToken(ctx, token)).To(Succeed())
		Expect(manager.AddToken(ctx, token)).To(MatchError(state.ErrAlreadyExists))
	})

	It("rejects invalid metadata", func() {
		token.Symbol = ""
		Expect(manager.AddToken(ctx, token)).To(MatchError(state.ErrInvalidTokenMetadata))

		token.Symbol = "TKN"
		token.Decimals = -1
		Expect(manager.UpsertToken(ctx, token)).To(MatchError(state.ErrInvalidTokenMetadata))
	})

	It("fails to update a missing token", func() {
		Expect(manager.UpdateToken(ctx, token)).To(MatchError(state.ErrNotFound))
	})

	It("updates and removes a token", func() {
		Expect(manager.AddToken(ctx, token)).To(Succeed())

		renamed := *token
		renamed.Name = "Renamed"
		Expect(manager.UpdateToken(ctx, &renamed)).To(Succeed())

		list, err := manager.ListTokens(ctx, state.SepoliaChainID)
		Expect(err).NotTo(HaveOccurred())
		Expect(list).To(HaveLen(1))
		Expect(list[0].Name).To(Equal("Renamed"))

		Expect(manager.RemoveToken(ctx, token.Address, token.ChainID)).To(Succeed())
		Expect(manager.RemoveToken(ctx, token.Address, token.ChainID)).To(MatchError(state.ErrNotFound))
	})

	It("knows the preset fee tokens", func() {
		eth, err := manager.GetEthToken(ctx, state.MainnetChainID)
		Expect(err).NotTo(HaveOccurred())
		Expect(eth.Symbol).To(Equal("ETH"))
		Expect(eth.Decimals).To(Equal(18))

		strk, err := manager.GetStrkToken(ctx, state.SepoliaChainID)
		Expect(err).NotTo(HaveOccurred())
		Expect(strk.Symbol).To(Equal("STRK"))

		unknown, err := manager.GetEthToken(ctx, "0x1")
		Expect(err).NotTo(HaveOccurred())
		Expect(unknown).To(BeNil())
	})
})
