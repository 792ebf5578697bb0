package interfaces

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"personalfinance/internal/finance/application"
	"personalfinance/internal/finance/domain"
	financeErrors "personalfinance/internal/finance/errors"
)

type TransactionServiceInterface interface {
	CreateTransaction(transaction *domain.Transaction) error
	GetUserTransactions(userID int, filter domain.TransactionFilter) ([]domain.Transaction, error)
	GetTransaction(transactionID, userID int) (*domain.Transaction, error)
	UpdateTransaction(transaction *domain.Transaction) error
	DeleteTransaction(transactionID, userID int) error
	GetSummary(userID int, startDate, endDate time.Time) (*application.Summary, error)
}

type TransactionHandler struct {
	service      TransactionServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string)
}

func NewTransactionHandler(
	service TransactionServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string),
) *TransactionHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &TransactionHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

// parseDate accepts both plain dates and RFC 3339 timestamps.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

func (h *TransactionHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := requesterID(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var filter domain.TransactionFilter

	if value := r.URL.Query().Get("startDate"); value != "" {
		startDate, err := parseDate(value)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, "Invalid start date format")
			return
		}
		filter.StartDate = &startDate
	}
	if value := r.URL.Query().Get("endDate"); value != "" {
		endDate, err := parseDate(value)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, "Invalid end date format")
			return
		}
		filter.EndDate = &endDate
	}
	if value := r.URL.Query().Get("categoryId"); value != "" {
		categoryID, err := strconv.Atoi(value)
		if err != nil || categoryID <= 0 {
			h.respondError(w, http.StatusBadRequest, "Invalid category ID")
			return
		}
		filter.CategoryID = &categoryID
	}

	transactions, err := h.service.GetUserTransactions(userID, filter)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve transactions")
		return
	}
	if transactions == nil {
		transactions = []domain.Transaction{}
	}

	h.respondJSON(w, http.StatusOK, transactions)
}

func (h *TransactionHandler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := requesterID(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	transactionID, err := pathID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid transaction ID")
		return
	}

	transaction, err := h.service.GetTransaction(transactionID, userID)
	if err != nil {
		if errors.Is(err, financeErrors.ErrNotFound) {
			h.respondError(w, http.StatusNotFound, "Transaction not found")
			return
		}
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve transaction")
		return
	}

	h.respondJSON(w, http.StatusOK, transaction)
}

func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := requesterID(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var transaction domain.Transaction
	if err := json.NewDecoder(r.Body).Decode(&transaction); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	transaction.ID = 0
	transaction.UserID = userID
	if err := h.service.CreateTransaction(&transaction); err != nil {
		if financeErrors.IsValidationError(err) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Println("Error during transaction creation:", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to create transaction")
		return
	}

	h.respondJSON(w, http.StatusCreated, transaction)
}

func (h *TransactionHandler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := requesterID(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	transactionID, err := pathID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid transaction ID")
		return
	}

	var transaction domain.Transaction
	if err := json.NewDecoder(r.Body).Decode(&transaction); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if transaction.ID != 0 && transaction.ID != transactionID {
		h.respondError(w, http.StatusBadRequest, "Transaction ID mismatch")
		return
	}

	transaction.ID = transactionID
	transaction.UserID = userID
	if err := h.service.UpdateTransaction(&transaction); err != nil {
		if errors.Is(err, financeErrors.ErrNotFound) {
			h.respondError(w, http.StatusNotFound, "Transaction not found")
			return
		}
		if financeErrors.IsValidationError(err) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Println("Error during transaction update:", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to update transaction")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *TransactionHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := requesterID(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	transactionID, err := pathID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid transaction ID")
		return
	}

	if err := h.service.DeleteTransaction(transactionID, userID); err != nil {
		if errors.Is(err, financeErrors.ErrNotFound) {
			h.respondError(w, http.StatusNotFound, "Transaction not found")
			return
		}
		log.Println("Error during transaction deletion:", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to delete transaction")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *TransactionHandler) GetTransactionSummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := requesterID(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	startDateStr := r.URL.Query().Get("startDate")
	endDateStr := r.URL.Query().Get("endDate")
	if startDateStr == "" || endDateStr == "" {
		h.respondError(w, http.StatusBadRequest, "startDate and endDate are required")
		return
	}

	startDate, err := parseDate(startDateStr)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid start date format")
		return
	}
	endDate, err := parseDate(endDateStr)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid end date format")
		return
	}

	summary, err := h.service.GetSummary(userID, startDate, endDate)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "Failed to compute summary")
		return
	}

	h.respondJSON(w, http.StatusOK, summary)
}
