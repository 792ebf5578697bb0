package infrastructure

import (
	"personalfinance/internal/finance/domain"
	financeErrors "personalfinance/internal/finance/errors"
)

// MockTransactionRepository is an in-memory repository used by application
// layer tests.
type MockTransactionRepository struct {
	Transactions []domain.Transaction
	Err          error

	nextID int
}

func (m *MockTransactionRepository) Save(transaction *domain.Transaction) error {
	if m.Err != nil {
		return m.Err
	}
	m.nextID++
	transaction.ID = m.nextID
	m.Transactions = append(m.Transactions, *transaction)
	return nil
}

func (m *MockTransactionRepository) FindByUser(userID int, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var filtered []domain.Transaction
	for _, transaction := range m.Transactions {
		if transaction.UserID != userID {
			continue
		}
		if filter.StartDate != nil && transaction.Date.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && transaction.Date.After(*filter.EndDate) {
			continue
		}
		if filter.CategoryID != nil && transaction.CategoryID != *filter.CategoryID {
			continue
		}
		filtered = append(filtered, transaction)
	}
	return filtered, nil
}

func (m *MockTransactionRepository) FindByID(transactionID, userID int) (*domain.Transaction, error) {
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

func (m *MockTransactionRepository) Update(transaction *domain.Transaction) error {
	if m.Err != nil {
		return m.Err
	}
	for i, existing := range m.Transactions {
		if existing.ID == transaction.ID && existing.UserID == transaction.UserID {
			m.Transactions[i] = *transaction
			return nil
		}
	}
	return financeErrors.ErrNotFound
}

func (m *MockTransactionRepository) Delete(transactionID, userID int) error {
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
