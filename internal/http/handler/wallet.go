package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"starksnap/internal/http/handler/middleware"
	"starksnap/internal/http/payload"
	"starksnap/internal/wallet"
)

var (
	Connect       = "POST /wallet/connect"
	WalletRequest = "POST /wallet/request"
	WalletMethods = "GET /wallet/methods"
)

type WalletHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	wallet           WalletService
	sessions         SessionService
}

func NewWalletHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, walletService WalletService, sessions SessionService) *WalletHandler {
	return &WalletHandler{
		logs:             logger,
		requestValidator: requestValidator,
		wallet:           walletService,
		sessions:         sessions,
	}
}

func (h *WalletHandler) HandleConnect(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.GetRequestID(r.Context())

	var connect payload.ConnectRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &connect); err != nil {
		h.respond(w, Response{
			Message: "Could not connect",
			Error:   err.Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Connect,
			"request_id", requestId)
		return
	}

	token, err := h.sessions.Connect(r.Context(), connect.ToConnectMessage())
	if err != nil {
		h.respond(w, Response{
			Message: "Could not connect",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to issue session",
			"error", err,
			"handler", Connect,
			"request_id", requestId)
		return
	}

	h.respond(w, map[string]string{
		"token": token,
	}, http.StatusOK, requestId)
}

// HandleRequest runs one wallet RPC message. Wallet errors are answered with
// status 200 and a JSON-RPC style error body.
func (h *WalletHandler) HandleRequest(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.GetRequestID(r.Context())

	var rpc payload.RpcRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &rpc); err != nil {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   err.Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", WalletRequest,
			"request_id", requestId)
		return
	}

	h.logs.Infow("wallet request received",
		"method", rpc.Type,
		"handler", WalletRequest,
		"request_id", requestId)

	result, err := h.wallet.Request(r.Context(), rpc.ToRpcMessage())
	if err != nil {
		h.respondError(w, err, rpc.Type, requestId)
		return
	}

	h.respond(w, RpcResponse{Result: result}, http.StatusOK, requestId)
}

func (h *WalletHandler) HandleMethods(w http.ResponseWriter, r *http.Request) {
	h.respond(w, map[string][]string{
		"methods": h.wallet.Methods(),
	}, http.StatusOK, middleware.GetRequestID(r.Context()))
}

func (h *WalletHandler) respondError(w http.ResponseWriter, err error, method, requestId string) {
	var (
		validationErr *wallet.ValidationError
		rpcErr        *wallet.WalletRpcError
	)

	switch {
	case errors.As(err, &validationErr):
		h.respond(w, Response{Message: "Invalid params", Error: err.Error()}, http.StatusBadRequest, requestId)
	case errors.Is(err, wallet.ErrNotAuthorized):
		h.respond(w, Response{Message: "Wallet not authorized", Error: err.Error()}, http.StatusUnauthorized, requestId)
	case errors.Is(err, wallet.ErrMethodNotSupported):
		h.respond(w, Response{Message: "Method not supported", Error: err.Error()}, http.StatusNotFound, requestId)
	case errors.As(err, &rpcErr):
		h.respond(w, RpcResponse{Error: &RpcError{
			Code:    int(rpcErr.Code),
			Message: rpcErr.Message,
		}}, http.StatusOK, requestId)
	default:
		h.respond(w, Response{Message: "Request failed", Error: oopsErr}, http.StatusInternalServerError, requestId)
	}

	h.logs.Errorw("wallet request failed",
		"error", err,
		"method", method,
		"handler", WalletRequest,
		"request_id", requestId)
}

func (h *WalletHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}
