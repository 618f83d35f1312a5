package handler_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"starksnap/internal/http/handler"
	"starksnap/internal/http/handler/fake"
	"starksnap/internal/http/payload"
	"starksnap/internal/wallet"
)

var _ = Describe("WalletHandler", func() {
	var (
		wh            *handler.WalletHandler
		fakeWallet    *fake.WalletService
		fakeSessions  *fake.SessionService
		fakeValidator *fake.RequestValidator
		w             *httptest.ResponseRecorder
		req           *http.Request
		fakeErr       error
	)

	BeforeEach(func() {
		fakeErr = errors.New("fake-error")
		fakeWallet = new(fake.WalletService)
		fakeSessions = new(fake.SessionService)
		fakeValidator = new(fake.RequestValidator)
		fakeValidator.DecodeJSONPayloadStub = payload.Decoder{}.DecodeJSONPayload

		w = httptest.NewRecorder()
		wh = handler.NewWalletHandler(zap.NewNop().Sugar(), fakeValidator, fakeWallet, fakeSessions)
	})

	Describe("HandleConnect", func() {
		BeforeEach(func() {
			req = httptest.NewRequest(http.MethodPost, "/wallet/connect", strings.NewReader(`{"origin":"https://dapp.example"}`))
			fakeSessions.ConnectReturns("test-token", nil)
		})

		JustBeforeEach(func() {
			wh.HandleConnect(w, req)
		})

		It("returns a session token", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(MatchJSON(`{"token":"test-token"}`))

			_, msg := fakeSessions.ConnectArgsForCall(0)
			Expect(msg.Origin).To(Equal("https://dapp.example"))
		})

		When("the payload is invalid", func() {
			BeforeEach(func() {
				fakeValidator.DecodeJSONPayloadReturns(fakeErr)
			})

			It("responds with bad request", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeSessions.ConnectCallCount()).To(Equal(0))
			})
		})

		When("the session cannot be issued", func() {
			BeforeEach(func() {
				fakeSessions.ConnectReturns("", fakeErr)
			})

			It("hides the cause", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).NotTo(ContainSubstring("fake-error"))
			})
		})
	})

	Describe("HandleRequest", func() {
		var body string

		BeforeEach(func() {
			body = `{"type":"wallet_switchStarknetChain","params":{"chainId":"0x534e5f4d41494e"}}`
		})

		JustBeforeEach(func() {
			req = httptest.NewRequest(http.MethodPost, "/wallet/request", strings.NewReader(body))
			wh.HandleRequest(w, req)
		})

		When("the wallet answers", func() {
			BeforeEach(func() {
				fakeWallet.RequestReturns(false, nil)
			})

			It("returns the result even when it is falsy", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(MatchJSON(`{"result":false}`))

				_, msg := fakeWallet.RequestArgsForCall(0)
				Expect(msg.Type).To(Equal("wallet_switchStarknetChain"))
				Expect(string(msg.Params)).To(MatchJSON(`{"chainId":"0x534e5f4d41494e"}`))
			})
		})

		When("the body has no method", func() {
			BeforeEach(func() {
				body = `{"params":{}}`
			})

			It("responds with bad request", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeWallet.RequestCallCount()).To(Equal(0))
			})
		})

		DescribeTable("maps wallet errors to statuses",
			func(err error, status int, expected string) {
				fakeWallet.RequestReturns(nil, err)
				req = httptest.NewRequest(http.MethodPost, "/wallet/request", strings.NewReader(body))
				w = httptest.NewRecorder()

				wh.HandleRequest(w, req)

				Expect(w.Code).To(Equal(status))
				var resp map[string]any
				Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
				Expect(resp).To(HaveKey(expected))
			},
			Entry("validation", &wallet.ValidationError{Method: "m", Err: errors.New("bad")}, http.StatusBadRequest, "error"),
			Entry("not authorized", wallet.ErrNotAuthorized, http.StatusUnauthorized, "error"),
			Entry("unsupported", fmt.Errorf("%w: m", wallet.ErrMethodNotSupported), http.StatusNotFound, "error"),
			Entry("wallet error", wallet.NewWalletRpcError(wallet.CodeUserRefusedOp, errors.New("no")), http.StatusOK, "error"),
			Entry("unexpected", errors.New("boom"), http.StatusInternalServerError, "message"),
		)

		When("the user refuses the operation", func() {
			BeforeEach(func() {
				fakeWallet.RequestReturns(nil, wallet.NewWalletRpcError(wallet.CodeUserRefusedOp, errors.New("declined in dialog")))
			})

			It("answers a JSON-RPC style error", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(MatchJSON(`{
					"result": null,
					"error": {"code": 113, "message": "An error occurred (USER_REFUSED_OP)"}
				}`))
			})
		})
	})

	Describe("HandleMethods", func() {
		It("lists the wallet methods", func() {
			fakeWallet.MethodsReturns([]string{"wallet_requestAccounts", "wallet_requestChainId"})

			wh.HandleMethods(w, httptest.NewRequest(http.MethodGet, "/wallet/methods", nil))

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(MatchJSON(`{"methods":["wallet_requestAccounts","wallet_requestChainId"]}`))
		})
	})
})
