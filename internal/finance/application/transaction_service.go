package application

import (
	"math"
	"time"

	"personalfinance/internal/finance/domain"
	financeErrors "personalfinance/internal/finance/errors"
)

type CategoryServiceInterface interface {
	DoesUserCategoryExist(categoryID, userID int) (bool, error)
}

type TransactionService struct {
	repo            domain.TransactionRepository
	categoryService CategoryServiceInterface
}

func NewTransactionService(repo domain.TransactionRepository, categoryService CategoryServiceInterface) *TransactionService {
	return &TransactionService{repo: repo, categoryService: categoryService}
}

// Summary aggregates a user's transactions over an inclusive date range.
type Summary struct {
	Income           float64 `json:"income"`
	Expenses         float64 `json:"expenses"`
	Balance          float64 `json:"balance"`
	TransactionCount int     `json:"transactionCount"`
}

func (s *TransactionService) CreateTransaction(transaction *domain.Transaction) error {
	transaction.RoundToTwoDecimalPlaces()
	if err := transaction.Validate(); err != nil {
		return err
	}

	exists, err := s.categoryService.DoesUserCategoryExist(transaction.CategoryID, transaction.UserID)
	if err != nil {
		return err
	}
	if !exists {
		return financeErrors.ErrInvalidCategory
	}

	return s.repo.Save(transaction)
}

func (s *TransactionService) GetUserTransactions(userID int, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	return s.repo.FindByUser(userID, filter)
}

func (s *TransactionService) GetTransaction(transactionID, userID int) (*domain.Transaction, error) {
	return s.repo.FindByID(transactionID, userID)
}

// UpdateTransaction resolves existence before validating the new category
// reference, so an unknown transaction reports not-found rather than a
// category error.
func (s *TransactionService) UpdateTransaction(transaction *domain.Transaction) error {
	if _, err := s.repo.FindByID(transaction.ID, transaction.UserID); err != nil {
		return err
	}

	transaction.RoundToTwoDecimalPlaces()
	if err := transaction.Validate(); err != nil {
		return err
	}

	exists, err := s.categoryService.DoesUserCategoryExist(transaction.CategoryID, transaction.UserID)
	if err != nil {
		return err
	}
	if !exists {
		return financeErrors.ErrInvalidCategory
	}

	return s.repo.Update(transaction)
}

func (s *TransactionService) DeleteTransaction(transactionID, userID int) error {
	return s.repo.Delete(transactionID, userID)
}

// GetSummary partitions the user's transactions in [startDate, endDate] by
// their category's income flag and sums each bucket.
func (s *TransactionService) GetSummary(userID int, startDate, endDate time.Time) (*Summary, error) {
	transactions, err := s.repo.FindByUser(userID, domain.TransactionFilter{
		StartDate: &startDate,
		EndDate:   &endDate,
	})
	if err != nil {
		return nil, err
	}

	summary := &Summary{TransactionCount: len(transactions)}
	for _, transaction := range transactions {
		if transaction.IsIncome {
			summary.Income += transaction.Amount
		} else {
			summary.Expenses += transaction.Amount
		}
	}

	summary.Income = roundToTwoDecimalPlaces(summary.Income)
	summary.Expenses = roundToTwoDecimalPlaces(summary.Expenses)
	summary.Balance = roundToTwoDecimalPlaces(summary.Income - summary.Expenses)

	return summary, nil
}

func roundToTwoDecimalPlaces(value float64) float64 {
	return math.Round(value*100) / 100
}
