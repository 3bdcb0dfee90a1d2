package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/koladefi/financial-operations/internal/domain"
	"github.com/koladefi/financial-operations/internal/service"
)

type AccountHandler struct {
	svc *service.AccountService
}

func NewAccountHandler(svc *service.AccountService) *AccountHandler {
	return &AccountHandler{svc: svc}
}

func (h *AccountHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CustomerID     string  `json:"customer_id"`
		AccountType    string  `json:"account_type"`
		Currency       string  `json:"currency"`
		InitialDeposit *string `json:"initial_deposit,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondError(w, r, http.StatusBadRequest, "request/invalid-body", "Invalid request body")
		return
	}

	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		RespondError(w, r, http.StatusBadRequest, "request/invalid-customer-id", "Invalid customer_id")
		return
	}

	initialDeposit := decimal.Zero
	if req.InitialDeposit != nil {
		initialDeposit, err = domain.ParseAmount(*req.InitialDeposit)
		if err != nil {
			RespondError(w, r, http.StatusBadRequest, "request/invalid-initial-deposit", "Invalid initial_deposit")
			return
		}
	}

	account, err := h.svc.CreateAccount(r.Context(), customerID, req.AccountType, req.Currency, initialDeposit)
	if err != nil {
		if status, pType, msg, ok := mapLedgerError(err); ok {
			RespondError(w, r, status, pType, msg)
			return
		}
		if status, pType, msg, ok := mapDBError(err); ok {
			RespondError(w, r, status, pType, msg)
			return
		}
		zap.L().Error("create account failed", zap.Error(err), zap.String("customer_id", customerID.String()))
		RespondError(w, r, http.StatusInternalServerError, "account/create-failed", "Failed to create account")
		return
	}

	RespondJSON(w, http.StatusCreated, account)
}

func (h *AccountHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	accountID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		RespondError(w, r, http.StatusBadRequest, "request/invalid-account-id", "Invalid account ID")
		return
	}

	account, err := h.svc.GetAccount(r.Context(), accountID)
	if err != nil {
		if status, pType, msg, ok := mapLedgerError(err); ok {
			RespondError(w, r, status, pType, msg)
			return
		}
		zap.L().Error("get account failed", zap.Error(err), zap.String("account_id", accountID.String()))
		RespondError(w, r, http.StatusInternalServerError, "account/read-failed", "Failed to get account")
		return
	}

	RespondJSON(w, http.StatusOK, account)
}

func (h *AccountHandler) CloseAccount(w http.ResponseWriter, r *http.Request) {
	accountID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		RespondError(w, r, http.StatusBadRequest, "request/invalid-account-id", "Invalid account ID")
		return
	}

	if err := h.svc.CloseAccount(r.Context(), accountID); err != nil {
		if status, pType, msg, ok := mapLedgerError(err); ok {
			RespondError(w, r, status, pType, msg)
			return
		}
		zap.L().Error("close account failed", zap.Error(err), zap.String("account_id", accountID.String()))
		RespondError(w, r, http.StatusInternalServerError, "account/close-failed", "Failed to close account")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *AccountHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	accountID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		RespondError(w, r, http.StatusBadRequest, "request/invalid-account-id", "Invalid account ID")
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	txns, err := h.svc.ListTransactions(r.Context(), accountID, limit)
	if err != nil {
		if status, pType, msg, ok := mapLedgerError(err); ok {
			RespondError(w, r, status, pType, msg)
			return
		}
		zap.L().Error("list transactions failed", zap.Error(err), zap.String("account_id", accountID.String()))
		RespondError(w, r, http.StatusInternalServerError, "account/transactions-read-failed", "Failed to list transactions")
		return
	}

	RespondJSON(w, http.StatusOK, txns)
}
