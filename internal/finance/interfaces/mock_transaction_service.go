package interfaces

import (
	"time"

	"personalfinance/internal/finance/application"
	"personalfinance/internal/finance/domain"
	financeErrors "personalfinance/internal/finance/errors"
)

// MockTransactionService is an in-memory TransactionServiceInterface for
// handler tests. ValidCategories maps category id to its owner's user id.
type MockTransactionService struct {
	Transactions    []domain.Transaction
	ValidCategories map[int]int
	Err             error

	// LastFilter records the filter passed to GetUserTransactions.
	LastFilter domain.TransactionFilter

	nextID int
}

func (m *MockTransactionService) categoryBelongsTo(categoryID, userID int) bool {
	ownerID, exists := m.ValidCategories[categoryID]
	return exists && ownerID == userID
}

func (m *MockTransactionService) CreateTransaction(transaction *domain.Transaction) error {
	if m.Err != nil {
		return m.Err
	}
	transaction.RoundToTwoDecimalPlaces()
	if err := transaction.Validate(); err != nil {
		return err
	}
	if !m.categoryBelongsTo(transaction.CategoryID, transaction.UserID) {
		return financeErrors.ErrInvalidCategory
	}
	m.nextID++
	transaction.ID = m.nextID
	m.Transactions = append(m.Transactions, *transaction)
	return nil
}

func (m *MockTransactionService) GetUserTransactions(userID int, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.LastFilter = filter
	var owned []domain.Transaction
	for _, transaction := range m.Transactions {
		if transaction.UserID == userID {
			owned = append(owned, transaction)
		}
	}
	return owned, nil
}

func (m *MockTransactionService) GetTransaction(transactionID, userID int) (*domain.Transaction, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, transaction := range m.Transactions {
		if transaction.ID == transactionID && transaction.UserID == userID {
			found := transaction
			return &found, nil
		}
	}
	return nil, financeErrors.ErrNotFound
}

func (m *MockTransactionService) UpdateTransaction(transaction *domain.Transaction) error {
	if m.Err != nil {
		return m.Err
	}
	for i, existing := range m.Transactions {
		if existing.ID == transaction.ID && existing.UserID == transaction.UserID {
			transaction.RoundToTwoDecimalPlaces()
			if err := transaction.Validate(); err != nil {
				return err
			}
			if !m.categoryBelongsTo(transaction.CategoryID, transaction.UserID) {
				return financeErrors.ErrInvalidCategory
			}
			m.Transactions[i] = *transaction
			return nil
		}
	}
	return financeErrors.ErrNotFound
}

func (m *MockTransactionService) DeleteTransaction(transactionID, userID int) error {
	if m.Err != nil {
		return m.Err
	}
	for i, existing := range m.Transactions {
		if existing.ID == transactionID && existing.UserID == userID {
			m.Transactions = append(m.Transactions[:i], m.Transactions[i+1:]...)
			return nil
		}
	}
	return financeErrors.ErrNotFound
}

func (m *MockTransactionService) GetSummary(userID int, startDate, endDate time.Time) (*application.Summary, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	summary := &application.Summary{}
	for _, transaction := range m.Transactions {
		if transaction.UserID != userID || transaction.Date.Before(startDate) || transaction.Date.After(endDate) {
			continue
		}
		summary.TransactionCount++
		if transaction.IsIncome {
			summary.Income += transaction.Amount
		} else {
			summary.Expenses += transaction.Amount
		}
	}
	summary.Balance = summary.Income - summary.Expenses
	return summary, nil
}
