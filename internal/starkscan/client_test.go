package starkscan_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"starksnap/internal/starkscan"
	"starksnap/internal/state"
)

const account = "0x05a98ec74a40383cf99896bfea2ec5e6aad16c7eed50025a5f569d585ebb13a2"

func hashOf(n int) string {
	return fmt.Sprintf("0x%064x", n)
}

func invokeRecord(n int, block int64, timestamp int64) map[string]any {
	return map[string]any{
		"transaction_hash":             fmt.Sprintf("0x%x", n),
		"block_number":                 block,
		"transaction_finality_status":  "ACCEPTED_ON_L2",
		"transaction_execution_status": "SUCCEEDED",
		"transaction_type":             "INVOKE_FUNCTION",
		"timestamp":                    timestamp,
		"sender_address":               account,
		"contract_address":             nil,
		"max_fee":                      "1000",
		"actual_fee":                   "900",
		"revert_error":                 nil,
		"version":                      1,
		"account_calls": []map[string]any{
			{
				"contract_address": "0x049d36570d4e46f48e99674bd3fcc84644ddd6b96f7c741b1562b82f9e004dc7",
				"selector_name":    "transfer",
				"calldata":         []string{"0xrecipient", "0x64", "0x0"},
			},
		},
	}
}

func deployRecord(n int, block int64, timestamp int64) map[string]any {
	return map[string]any{
		"transaction_hash":             fmt.Sprintf("0x%x", n),
		"block_number":                 block,
		"transaction_finality_status":  "ACCEPTED_ON_L1",
		"transaction_execution_status": "SUCCEEDED",
		"transaction_type":             "DEPLOY_ACCOUNT",
		"timestamp":                    timestamp,
		"sender_address":               nil,
		"contract_address":             account,
		"max_fee":                      nil,
		"actual_fee":                   "10",
		"revert_error":                 nil,
		"version":                      1,
		"account_calls":                []map[string]any{},
	}
}

var _ = Describe("Client", func() {
	var (
		ctx      context.Context
		server   *httptest.Server
		client   *starkscan.Client
		handler  http.HandlerFunc
		requests []*url.URL
		apiKeys  []string
	)

	respond := func(w http.ResponseWriter, data []map[string]any, next string) {
		body := map[string]any{"data": data, "next_url": nil}
		if next != "" {
			body["next_url"] = next
		}
		w.Header().Set("Content-Type", "application/json")
		Expect(json.NewEncoder(w).Encode(body)).To(Succeed())
	}

	BeforeEach(func() {
		ctx = context.Background()
		requests = nil
		apiKeys = nil
		handler = func(w http.ResponseWriter, r *http.Request) {
			respond(w, []map[string]any{}, "")
		}
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests = append(requests, r.URL)
			apiKeys = append(apiKeys, r.Header.Get("x-api-key"))
			handler(w, r)
		}))

		client = starkscan.NewClient(zap.NewNop().Sugar(), server.Client(), starkscan.Config{
			BaseURL:  server.URL,
			APIKey:   "secret",
			ChainID:  state.SepoliaChainID,
			PageSize: 3,
		})
	})

	AfterEach(func() {
		server.Close()
	})

	Describe("GetTransactions", func() {
		var (
			page   starkscan.Page
			cursor *starkscan.Cursor
			err    error
		)

		BeforeEach(func() {
			cursor = nil
		})

		JustBeforeEach(func() {
			page, err = client.GetTransactions(ctx, account, cursor)
		})

		When("no cursor is given", func() {
			BeforeEach(func() {
				handler = func(w http.ResponseWriter, r *http.Request) {
					respond(w, []map[string]any{
						invokeRecord(3, 30, 300),
						invokeRecord(2, 20, 200),
						deployRecord(1, 10, 100),
					}, "next")
				}
			})

			It("requests the newest transactions of the address", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(requests).To(HaveLen(1))
				Expect(requests[0].Path).To(Equal("/transactions"))
				Expect(requests[0].Query().Get("contract_address")).To(Equal(account))
				Expect(requests[0].Query().Get("order_by")).To(Equal("desc"))
				Expect(requests[0].Query().Get("limit")).To(Equal("3"))
				Expect(requests[0].Query().Has("to_block")).To(BeFalse())
				Expect(apiKeys[0]).To(Equal("secret"))
			})

			It("normalises every record", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(page.Transactions).To(HaveLen(3))

				invoke := page.Transactions[0]
				Expect(invoke.TxnHash).To(Equal(hashOf(3)))
				Expect(invoke.TxnType).To(Equal(state.TransactionTypeInvoke))
				Expect(invoke.ChainID).To(Equal(state.SepoliaChainID))
				Expect(invoke.SenderAddress).To(Equal(account))
				Expect(invoke.ContractAddress).To(BeEmpty())
				Expect(invoke.FailureReason).To(BeEmpty())
				Expect(invoke.Version).To(Equal("1"))
				Expect(invoke.DataVersion).To(Equal(state.DataVersionV2))

				calls := invoke.AccountCalls["0x049d36570d4e46f48e99674bd3fcc84644ddd6b96f7c741b1562b82f9e004dc7"]
				Expect(calls).To(HaveLen(1))
				Expect(calls[0].ContractFuncName).To(Equal("transfer"))
				Expect(calls[0].Recipient).To(Equal("0xrecipient"))
				Expect(calls[0].Amount).To(Equal("0x64"))

				deploy := page.Transactions[2]
				Expect(deploy.TxnType).To(Equal(state.TransactionTypeDeployAccount))
				Expect(deploy.SenderAddress).To(Equal(account))
				Expect(deploy.ContractAddress).To(Equal(account))
				Expect(deploy.MaxFee).To(BeEmpty())
			})

			It("returns a cursor at the last record", func() {
				Expect(page.HasMore).To(BeTrue())
				Expect(page.Cursor).To(Equal(&starkscan.Cursor{BlockNumber: 10, TxnHash: hashOf(1)}))
			})
		})

		When("resuming from a cursor", func() {
			BeforeEach(func() {
				cursor = &starkscan.Cursor{BlockNumber: 20, TxnHash: hashOf(5)}
				handler = func(w http.ResponseWriter, r *http.Request) {
					respond(w, []map[string]any{
						invokeRecord(6, 20, 210),
						invokeRecord(5, 20, 205),
						invokeRecord(4, 19, 190),
					}, "")
				}
			})

			It("emits only the records after the cursor", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(requests[0].Query().Get("to_block")).To(Equal("20"))
				Expect(page.Transactions).To(HaveLen(1))
				Expect(page.Transactions[0].TxnHash).To(Equal(hashOf(4)))
				Expect(page.HasMore).To(BeFalse())
			})
		})

		When("the cursor is not in the batch", func() {
			BeforeEach(func() {
				cursor = &starkscan.Cursor{BlockNumber: 20, TxnHash: hashOf(99)}
				handler = func(w http.ResponseWriter, r *http.Request) {
					respond(w, []map[string]any{
						invokeRecord(6, 20, 210),
						invokeRecord(4, 19, 190),
					}, "")
				}
			})

			It("emits the whole batch", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(page.Transactions).To(HaveLen(2))
			})
		})

		When("the indexer answers with an error status", func() {
			BeforeEach(func() {
				handler = func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusTooManyRequests)
					_, _ = w.Write([]byte("slow down"))
				}
			})

			It("returns a data client error", func() {
				var dcErr *starkscan.DataClientError
				Expect(errors.As(err, &dcErr)).To(BeTrue())
				Expect(dcErr.StatusCode).To(Equal(http.StatusTooManyRequests))
				Expect(err.Error()).To(ContainSubstring("slow down"))
			})
		})

		When("the body is not json", func() {
			BeforeEach(func() {
				handler = func(w http.ResponseWriter, r *http.Request) {
					_, _ = w.Write([]byte("<html>"))
				}
			})

			It("returns a data client error", func() {
				var dcErr *starkscan.DataClientError
				Expect(errors.As(err, &dcErr)).To(BeTrue())
			})
		})

		When("the body does not have the expected shape", func() {
			BeforeEach(func() {
				handler = func(w http.ResponseWriter, r *http.Request) {
					respond(w, []map[string]any{
						{"transaction_hash": "not-a-hash", "transaction_type": "INVOKE_FUNCTION"},
					}, "")
				}
			})

			It("returns a data client error", func() {
				var dcErr *starkscan.DataClientError
				Expect(errors.As(err, &dcErr)).To(BeTrue())
				Expect(err.Error()).To(ContainSubstring("validate response"))
			})
		})

		When("data is missing", func() {
			BeforeEach(func() {
				handler = func(w http.ResponseWriter, r *http.Request) {
					_, _ = w.Write([]byte(`{"next_url": null}`))
				}
			})

			It("returns a data client error", func() {
				var dcErr *starkscan.DataClientError
				Expect(errors.As(err, &dcErr)).To(BeTrue())
			})
		})
	})

	Describe("GetDeployTransaction", func() {
		It("looks for the oldest deploy record", func() {
			handler = func(w http.ResponseWriter, r *http.Request) {
				respond(w, []map[string]any{
					deployRecord(1, 10, 100),
					invokeRecord(2, 20, 200),
				}, "")
			}

			txn, err := client.GetDeployTransaction(ctx, account)
			Expect(err).NotTo(HaveOccurred())
			Expect(txn).NotTo(BeNil())
			Expect(txn.TxnHash).To(Equal(hashOf(1)))
			Expect(requests[0].Query().Get("order_by")).To(Equal("asc"))
		})

		It("returns nil when the account was never deployed", func() {
			txn, err := client.GetDeployTransaction(ctx, account)
			Expect(err).NotTo(HaveOccurred())
			Expect(txn).To(BeNil())
		})
	})

	Describe("GetTransactionsSince", func() {
		BeforeEach(func() {
			handler = func(w http.ResponseWriter, r *http.Request) {
				switch {
				case r.URL.Query().Get("order_by") == "asc":
					respond(w, []map[string]any{deployRecord(1, 1, 10)}, "")
				case r.URL.Query().Get("to_block") == "":
					respond(w, []map[string]any{
						invokeRecord(7, 70, 700),
						invokeRecord(6, 60, 600),
						invokeRecord(5, 50, 500),
					}, "next")
				case r.URL.Query().Get("to_block") == "50":
					respond(w, []map[string]any{
						invokeRecord(5, 50, 500),
						invokeRecord(4, 40, 400),
						invokeRecord(3, 30, 300),
					}, "next")
				default:
					respond(w, []map[string]any{
						invokeRecord(2, 20, 200),
					}, "")
				}
			}
		})

		It("stops at the first page reaching past the cutoff", func() {
			txns, err := client.GetTransactionsSince(ctx, account, 350)
			Expect(err).NotTo(HaveOccurred())

			hashes := make([]string, len(txns))
			for i, txn := range txns {
				hashes[i] = txn.TxnHash
			}
			Expect(hashes).To(Equal([]string{hashOf(7), hashOf(6), hashOf(5), hashOf(4), hashOf(1)}))
			Expect(requests).To(HaveLen(3))
		})

		It("keeps a deploy older than the cutoff found on the first page", func() {
			handler = func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Query().Get("order_by") == "asc" {
					respond(w, []map[string]any{deployRecord(1, 1, 10)}, "")
					return
				}
				respond(w, []map[string]any{
					invokeRecord(3, 30, 700),
					invokeRecord(2, 20, 600),
					deployRecord(1, 1, 10),
				}, "")
			}

			txns, err := client.GetTransactionsSince(ctx, account, 350)
			Expect(err).NotTo(HaveOccurred())

			hashes := make([]string, len(txns))
			for i, txn := range txns {
				hashes[i] = txn.TxnHash
			}
			Expect(hashes).To(Equal([]string{hashOf(3), hashOf(2), hashOf(1)}))
			Expect(requests).To(HaveLen(1))
		})

		It("reads until the indexer runs out", func() {
			txns, err := client.GetTransactionsSince(ctx, account, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(txns).To(HaveLen(7))
		})

		It("propagates indexer failures", func() {
			handler = func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			}

			_, err := client.GetTransactionsSince(ctx, account, 0)
			var dcErr *starkscan.DataClientError
			Expect(errors.As(err, &dcErr)).To(BeTrue())
		})
	})

	Describe("BaseURL", func() {
		It("knows both supported chains", func() {
			Expect(starkscan.BaseURL(state.MainnetChainID)).To(Equal(starkscan.MainnetBaseURL))
			Expect(starkscan.BaseURL(state.SepoliaChainID)).To(Equal(starkscan.SepoliaBaseURL))
			Expect(starkscan.BaseURL("0x1")).To(BeEmpty())
		})
	})
})
