package state_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"starksnap/internal/state"
)

var _ = Describe("TransactionRequestStateManager", func() {
	var (
		ctx     context.Context
		manager *state.TransactionRequestStateManager
		req     *state.TransactionRequest
	)

	BeforeEach(func() {
		ctx = context.Background()
		manager = state.NewTransactionRequestStateManager(state.NewMemoryStore(), state.NewStoreLock())
		req = &state.TransactionRequest{
			InterfaceID: "interface-1",
			Type:        "invoke",
			Signer:      "0x0123",
			ChainID:     state.SepoliaChainID,
			MaxFee:      "1000",
		}
	})

	Describe("CreateTransactionRequest", func() {
		It("assigns an id and the default fee token", func() {
			created, err := manager.CreateTransactionRequest(ctx, req)
			Expect(err).NotTo(HaveOccurred())
			Expect(created.ID).NotTo(BeEmpty())
			Expect(created.SelectedFeeToken).To(Equal(state.FeeTokenETH))

			stored, err := manager.GetTransactionRequest(ctx, state.TransactionRequestQuery{ID: created.ID}, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored).To(Equal(created))
		})

		It("rejects a duplicate id", func() {
			req.ID = "fixed"
			_, err := manager.CreateTransactionRequest(ctx, req)
			Expect(err).NotTo(HaveOccurred())

			_, err = manager.CreateTransactionRequest(ctx, &state.TransactionRequest{ID: "fixed"})
			Expect(err).To(MatchError(state.ErrAlreadyExists))
		})
	})

	Describe("GetTransactionRequest", func() {
		BeforeEach(func() {
			_, err := manager.CreateTransactionRequest(ctx, req)
			Expect(err).NotTo(HaveOccurred())
		})

		It("finds a request by interface id", func() {
			stored, err := manager.GetTransactionRequest(ctx, state.TransactionRequestQuery{InterfaceID: "interface-1"}, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.ID).To(Equal(req.ID))
		})

		It("returns nothing for an empty query", func() {
			stored, err := manager.GetTransactionRequest(ctx, state.TransactionRequestQuery{}, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored).To(BeNil())
		})

		It("requires both ids to match when both are given", func() {
			stored, err := manager.GetTransactionRequest(ctx, state.TransactionRequestQuery{ID: req.ID, InterfaceID: "other"}, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored).To(BeNil())
		})
	})

	Describe("SelectFeeToken", func() {
		It("updates the fee token and the estimate in place", func() {
			created, err := manager.CreateTransactionRequest(ctx, req)
			Expect(err).NotTo(HaveOccurred())

			bounds := map[string]state.ResourceBound{
				"l1_gas": {MaxAmount: "0x10", MaxPricePerUnit: "0x20"},
			}
			Expect(manager.SelectFeeToken(ctx, created.ID, state.FeeTokenSTRK, "2000", bounds)).To(Succeed())

			stored, err := manager.GetTransactionRequest(ctx, state.TransactionRequestQuery{ID: created.ID}, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.SelectedFeeToken).To(Equal(state.FeeTokenSTRK))
			Expect(stored.MaxFee).To(Equal("2000"))
			Expect(stored.ResourceBounds).To(Equal(bounds))
		})

		It("fails for an unknown request", func() {
			err := manager.SelectFeeToken(ctx, "missing", state.FeeTokenSTRK, "1", nil)
			Expect(err).To(MatchError(state.ErrNotFound))
		})
	})

	Describe("UpsertTransactionRequest", func() {
		It("replaces an existing request", func() {
			created, err := manager.CreateTransactionRequest(ctx, req)
			Expect(err).NotTo(HaveOccurred())

			Expect(manager.UpsertTransactionRequest(ctx, &state.TransactionRequest{
				ID:            created.ID,
				InterfaceID:   "interface-2",
				IncludeDeploy: true,
			})).To(Succeed())

			stored, err := manager.GetTransactionRequest(ctx, state.TransactionRequestQuery{ID: created.ID}, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.InterfaceID).To(Equal("interface-2"))
			Expect(stored.IncludeDeploy).To(BeTrue())
		})
	})

	Describe("RemoveTransactionRequest", func() {
		It("removes the request", func() {
			created, err := manager.CreateTransactionRequest(ctx, req)
			Expect(err).NotTo(HaveOccurred())

			Expect(manager.RemoveTransactionRequest(ctx, created.ID)).To(Succeed())

			stored, err := manager.GetTransactionRequest(ctx, state.TransactionRequestQuery{ID: created.ID}, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored).To(BeNil())
		})

		It("fails for an unknown request", func() {
			Expect(manager.RemoveTransactionRequest(ctx, "missing")).To(MatchError(state.ErrNotFound))
		})
	})
})
