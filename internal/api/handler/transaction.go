package handler

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/koladefi/financial-operations/internal/domain"
	"github.com/koladefi/financial-operations/internal/service"
)

type TransactionHandler struct {
	svc *service.LedgerService
}

func NewTransactionHandler(svc *service.LedgerService) *TransactionHandler {
	return &TransactionHandler{svc: svc}
}

// SubmitTransaction decodes the request, maps it onto a ledger command, and
// hands it to the engine. Everything past decoding is the engine's call:
// this handler adds no business rules of its own.
func (h *TransactionHandler) SubmitTransaction(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FromAccountID   string  `json:"from_account_id"`
		ToAccountID     *string `json:"to_account_id,omitempty"`
		Amount          string  `json:"amount"`
		TransactionType string  `json:"transaction_type"`
		Description     *string `json:"description,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondError(w, r, http.StatusBadRequest, "request/invalid-body", "Invalid request body")
		return
	}

	fromID, err := uuid.Parse(req.FromAccountID)
	if err != nil {
		RespondError(w, r, http.StatusBadRequest, "request/invalid-account-id", "Invalid from_account_id")
		return
	}

	var toID *uuid.UUID
	if req.ToAccountID != nil {
		parsed, err := uuid.Parse(*req.ToAccountID)
		if err != nil {
			RespondError(w, r, http.StatusBadRequest, "request/invalid-account-id", "Invalid to_account_id")
			return
		}
		toID = &parsed
	}

	amount, err := domain.ParseAmount(req.Amount)
	if err != nil {
		RespondError(w, r, http.StatusBadRequest, "request/invalid-amount", "Invalid amount")
		return
	}

	txn, err := h.svc.Apply(r.Context(), service.SubmitTransactionCmd{
		SourceAccountID:      fromID,
		DestinationAccountID: toID,
		TransactionType:      req.TransactionType,
		Amount:               amount,
		Description:          req.Description,
	})
	if err != nil {
		if status, pType, msg, ok := mapLedgerError(err); ok {
			RespondError(w, r, status, pType, msg)
			return
		}
		zap.L().Error("transaction failed", zap.Error(err),
			zap.String("from_account_id", fromID.String()),
			zap.String("transaction_type", req.TransactionType),
		)
		RespondError(w, r, http.StatusInternalServerError, "transaction/persistence-failure", "Transaction failed")
		return
	}

	RespondJSON(w, http.StatusCreated, txn)
}
