package state_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"starksnap/internal/state"
	"starksnap/internal/state/fake"
)

// slowStore delays reads like a database round trip would.
type slowStore struct {
	*state.MemoryStore
	delay time.Duration
}

func (s *slowStore) Get(ctx context.Context) (*state.SnapState, error) {
	time.Sleep(s.delay)
	return s.MemoryStore.Get(ctx)
}

var _ = Describe("StateManager", func() {
	var (
		fakeStore *fake.Store
		ctx       context.Context
		manager   *state.StateManager[*state.Account]
		current   *state.SnapState
		fakeErr   error
	)

	accounts := func(st *state.SnapState) *[]*state.Account { return &st.AccContracts }

	BeforeEach(func() {
		fakeStore = new(fake.Store)
		ctx = context.Background()
		fakeErr = errors.New("fake error")

		current = state.NewSnapState()
		current.AccContracts = append(current.AccContracts, &state.Account{Address: "0x1", ChainID: state.SepoliaChainID})
		fakeStore.GetReturns(current, nil)

		manager = state.NewStateManager(fakeStore, state.NewStoreLock(), accounts)
	})

	Describe("Get", func() {
		When("the stored document has no collections", func() {
			BeforeEach(func() {
				fakeStore.GetReturns(&state.SnapState{}, nil)
			})

			It("initialises them empty", func() {
				st, err := manager.Get(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(st.AccContracts).NotTo(BeNil())
				Expect(st.Transactions).NotTo(BeNil())
				Expect(st.RemovedAccounts).NotTo(BeNil())
				Expect(st.CurrentAccount).NotTo(BeNil())
			})
		})

		When("the store returns nothing", func() {
			BeforeEach(func() {
				fakeStore.GetReturns(nil, nil)
			})

			It("returns an empty document", func() {
				st, err := manager.Get(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(st.AccContracts).To(BeEmpty())
			})
		})
	})

	Describe("Find and List", func() {
		BeforeEach(func() {
			current.AccContracts = append(current.AccContracts,
				&state.Account{Address: "0x3", ChainID: state.SepoliaChainID, AddressIndex: 2},
				&state.Account{Address: "0x2", ChainID: state.MainnetChainID, AddressIndex: 1},
			)
		})

		It("finds the first match", func() {
			acc, err := manager.Find(ctx, nil, state.AccountChainIDFilter(state.MainnetChainID))
			Expect(err).NotTo(HaveOccurred())
			Expect(acc.Address).To(Equal("0x2"))
		})

		It("returns nil when nothing matches", func() {
			acc, err := manager.Find(ctx, nil, state.AddressFilter("0x99"))
			Expect(err).NotTo(HaveOccurred())
			Expect(acc).To(BeNil())
		})

		It("lists every match in the requested order", func() {
			list, err := manager.List(ctx, nil, func(a, b *state.Account) bool {
				return a.AddressIndex > b.AddressIndex
			}, state.AccountChainIDFilter(state.SepoliaChainID))
			Expect(err).NotTo(HaveOccurred())
			Expect(list).To(HaveLen(2))
			Expect(list[0].Address).To(Equal("0x3"))
			Expect(list[1].Address).To(Equal("0x1"))
		})

		It("requires every filter to match", func() {
			list, err := manager.List(ctx, nil, nil,
				state.AccountChainIDFilter(state.SepoliaChainID),
				state.AddressFilter("0x2"),
			)
			Expect(err).NotTo(HaveOccurred())
			Expect(list).To(BeEmpty())
		})

		It("reads from the given document without loading", func() {
			st := state.NewSnapState()
			st.AccContracts = append(st.AccContracts, &state.Account{Address: "0x7", ChainID: state.SepoliaChainID})

			acc, err := manager.Find(ctx, st, state.AddressFilter("0x7"))
			Expect(err).NotTo(HaveOccurred())
			Expect(acc).NotTo(BeNil())
			Expect(fakeStore.GetCallCount()).To(Equal(0))
		})
	})

	Describe("Update", func() {
		var err error

		JustBeforeEach(func() {
			err = manager.Update(ctx, func(st *state.SnapState) error {
				st.AccContracts = append(st.AccContracts, &state.Account{Address: "0x2", ChainID: state.SepoliaChainID})
				return nil
			})
		})

		It("reloads, mutates and persists the document", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeStore.GetCallCount()).To(Equal(1))
			Expect(fakeStore.SetCallCount()).To(Equal(1))
			_, saved := fakeStore.SetArgsForCall(0)
			Expect(saved.AccContracts).To(HaveLen(2))
		})

		When("loading fails", func() {
			BeforeEach(func() {
				fakeStore.GetReturns(nil, fakeErr)
			})

			It("returns a state manager error", func() {
				var sme *state.StateManagerError
				Expect(errors.As(err, &sme)).To(BeTrue())
				Expect(err).To(MatchError(fakeErr))
				Expect(err.Error()).To(ContainSubstring(fakeErr.Error()))
				Expect(fakeStore.SetCallCount()).To(Equal(0))
			})
		})

		When("persisting fails", func() {
			BeforeEach(func() {
				fakeStore.SetReturns(fakeErr)
			})

			It("returns a state manager error", func() {
				var sme *state.StateManagerError
				Expect(errors.As(err, &sme)).To(BeTrue())
				Expect(err).To(MatchError(fakeErr))
			})
		})

		When("the context is already cancelled", func() {
			BeforeEach(func() {
				cancelled, cancel := context.WithCancel(ctx)
				cancel()
				ctx = cancelled
			})

			It("does not touch the store", func() {
				Expect(err).To(MatchError(context.Canceled))
				Expect(fakeStore.GetCallCount()).To(Equal(0))
			})
		})
	})

	Describe("WithTransaction", func() {
		var (
			err  error
			body func(ctx context.Context, txn *state.Txn) error
		)

		JustBeforeEach(func() {
			err = manager.WithTransaction(ctx, body)
		})

		When("nested updates run inside the transaction", func() {
			BeforeEach(func() {
				body = func(ctx context.Context, txn *state.Txn) error {
					Expect(manager.InTransaction()).To(BeTrue())
					for _, addr := range []string{"0x2", "0x3"} {
						addr := addr
						if err := manager.Update(ctx, func(st *state.SnapState) error {
							st.AccContracts = append(st.AccContracts, &state.Account{Address: addr, ChainID: state.SepoliaChainID})
							return nil
						}); err != nil {
							return err
						}
					}
					return nil
				}
			})

			It("writes the working copy once at the end", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeStore.GetCallCount()).To(Equal(1))
				Expect(fakeStore.SetCallCount()).To(Equal(1))
				_, saved := fakeStore.SetArgsForCall(0)
				Expect(saved.AccContracts).To(HaveLen(3))
				Expect(manager.InTransaction()).To(BeFalse())
			})
		})

		When("the body fails before committing", func() {
			BeforeEach(func() {
				body = func(ctx context.Context, txn *state.Txn) error {
					txn.State().AccContracts = nil
					return fakeErr
				}
			})

			It("persists nothing", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeStore.SetCallCount()).To(Equal(0))
			})
		})

		When("the body fails after committing", func() {
			BeforeEach(func() {
				body = func(ctx context.Context, txn *state.Txn) error {
					txn.State().AccContracts = append(txn.State().AccContracts, &state.Account{Address: "0x2"})
					if err := txn.Commit(ctx); err != nil {
						return err
					}
					return fakeErr
				}
			})

			It("restores the snapshot", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeStore.SetCallCount()).To(Equal(2))
				_, committed := fakeStore.SetArgsForCall(0)
				Expect(committed.AccContracts).To(HaveLen(2))
				_, restored := fakeStore.SetArgsForCall(1)
				Expect(restored.AccContracts).To(HaveLen(1))
				Expect(restored.AccContracts[0].Address).To(Equal("0x1"))
			})

			When("the rollback fails too", func() {
				var rollbackErr error

				BeforeEach(func() {
					rollbackErr = errors.New("rollback error")
					fakeStore.SetReturnsOnCall(1, rollbackErr)
				})

				It("reports both failures", func() {
					Expect(err).To(MatchError(state.ErrRollback))
					Expect(err).To(MatchError(fakeErr))
					Expect(err).To(MatchError(rollbackErr))
				})
			})
		})

		When("a nested transaction runs on the same context", func() {
			BeforeEach(func() {
				body = func(ctx context.Context, txn *state.Txn) error {
					return manager.WithTransaction(ctx, func(ctx context.Context, inner *state.Txn) error {
						Expect(inner.State()).To(BeIdenticalTo(txn.State()))
						return nil
					})
				}
			})

			It("joins the open transaction", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeStore.SetCallCount()).To(Equal(1))
			})
		})
	})

	Describe("concurrent updates", func() {
		It("loses no update", func() {
			store := state.NewMemoryStore()
			accountManager := state.NewStateManager(store, state.NewStoreLock(), accounts)

			var wg sync.WaitGroup
			for i := 0; i < 25; i++ {
				wg.Add(1)
				go func(i int) {
					defer GinkgoRecover()
					defer wg.Done()
					err := accountManager.Update(ctx, func(st *state.SnapState) error {
						st.AccContracts = append(st.AccContracts, &state.Account{Address: fmt.Sprintf("0x%x", i+1)})
						return nil
					})
					Expect(err).NotTo(HaveOccurred())
				}(i)
			}
			wg.Wait()

			st, err := store.Get(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(st.AccContracts).To(HaveLen(25))
		})

		It("keeps the writes of different managers sharing a store", func() {
			store := &slowStore{MemoryStore: state.NewMemoryStore(), delay: 20 * time.Millisecond}
			lock := state.NewStoreLock()
			tokens := state.NewTokenStateManager(store, lock)
			txns := state.NewTransactionStateManager(store, lock)

			var wg sync.WaitGroup
			wg.Add(2)
			go func() {
				defer GinkgoRecover()
				defer wg.Done()
				Expect(tokens.AddToken(ctx, &state.Erc20Token{
					Address:  "0x0123",
					Name:     "Token",
					Symbol:   "TKN",
					Decimals: 6,
					ChainID:  state.SepoliaChainID,
				})).To(Succeed())
			}()
			go func() {
				defer GinkgoRecover()
				defer wg.Done()
				Expect(txns.AddTransaction(ctx, &state.Transaction{
					TxnHash:        fmt.Sprintf("0x%064x", 1),
					ChainID:        state.SepoliaChainID,
					FinalityStatus: state.FinalityStatusReceived,
				})).To(Succeed())
			}()
			wg.Wait()

			st, err := store.MemoryStore.Get(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(st.Erc20Tokens).To(HaveLen(1))
			Expect(st.Transactions).To(HaveLen(1))
		})

		It("lets another manager join an open transaction", func() {
			store := state.NewMemoryStore()
			lock := state.NewStoreLock()
			tokens := state.NewTokenStateManager(store, lock)
			txns := state.NewTransactionStateManager(store, lock)

			err := tokens.WithTransaction(ctx, func(ctx context.Context, txn *state.Txn) error {
				Expect(txns.InTransaction()).To(BeTrue())
				return txns.AddTransaction(ctx, &state.Transaction{
					TxnHash: fmt.Sprintf("0x%064x", 2),
					ChainID: state.SepoliaChainID,
				})
			})
			Expect(err).NotTo(HaveOccurred())

			st, err := store.Get(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(st.Transactions).To(HaveLen(1))
		})
	})
})
