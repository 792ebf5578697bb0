package application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"personalfinance/internal/finance/domain"
	financeErrors "personalfinance/internal/finance/errors"
	"personalfinance/internal/finance/infrastructure"
)

func newTransactionTestService(repo *infrastructure.MockTransactionRepository, categories map[int]int) *TransactionService {
	return NewTransactionService(repo, &MockCategoryService{Categories: categories})
}

func day(dayOfMonth int) time.Time {
	return time.Date(2024, time.March, dayOfMonth, 12, 0, 0, 0, time.UTC)
}

func TestCreateTransaction_Success(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{}
	service := newTransactionTestService(repo, map[int]int{5: 1})

	transaction := &domain.Transaction{
		UserID:      1,
		CategoryID:  5,
		Amount:      42.50,
		Date:        day(3),
		Description: "Weekly groceries",
	}
	err := service.CreateTransaction(transaction)
	assert.NoError(t, err)
	assert.Greater(t, transaction.ID, 0)
}

func TestCreateTransaction_RoundsAmount(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{}
	service := newTransactionTestService(repo, map[int]int{5: 1})

	transaction := &domain.Transaction{
		UserID:     1,
		CategoryID: 5,
		Amount:     10.567,
		Date:       day(3),
	}
	err := service.CreateTransaction(transaction)
	assert.NoError(t, err)
	assert.Equal(t, 10.57, transaction.Amount)
}

func TestCreateTransaction_InvalidAmount(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{}
	service := newTransactionTestService(repo, map[int]int{5: 1})

	err := service.CreateTransaction(&domain.Transaction{
		UserID:     1,
		CategoryID: 5,
		Amount:     -3,
		Date:       day(3),
	})
	assert.True(t, financeErrors.IsValidationError(err))
	assert.Empty(t, repo.Transactions)
}

func TestCreateTransaction_UnknownCategory(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{}
	service := newTransactionTestService(repo, map[int]int{5: 1})

	err := service.CreateTransaction(&domain.Transaction{
		UserID:     1,
		CategoryID: 99,
		Amount:     10,
		Date:       day(3),
	})
	assert.ErrorIs(t, err, financeErrors.ErrInvalidCategory)
}

func TestCreateTransaction_ForeignCategory(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{}
	service := newTransactionTestService(repo, map[int]int{5: 2})

	err := service.CreateTransaction(&domain.Transaction{
		UserID:     1,
		CategoryID: 5,
		Amount:     10,
		Date:       day(3),
	})
	assert.ErrorIs(t, err, financeErrors.ErrInvalidCategory)
}

func TestUpdateTransaction_NotFoundBeforeCategoryCheck(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{}
	service := newTransactionTestService(repo, map[int]int{})

	// The category is unknown too, but a missing transaction wins.
	err := service.UpdateTransaction(&domain.Transaction{
		ID:         999,
		UserID:     1,
		CategoryID: 99,
		Amount:     10,
		Date:       day(3),
	})
	assert.ErrorIs(t, err, financeErrors.ErrNotFound)
}

func TestUpdateTransaction_Success(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{}
	service := newTransactionTestService(repo, map[int]int{5: 1, 6: 1})

	transaction := &domain.Transaction{UserID: 1, CategoryID: 5, Amount: 10, Date: day(3)}
	assert.NoError(t, service.CreateTransaction(transaction))

	transaction.CategoryID = 6
	transaction.Amount = 25.999
	assert.NoError(t, service.UpdateTransaction(transaction))

	updated, err := service.GetTransaction(transaction.ID, 1)
	assert.NoError(t, err)
	assert.Equal(t, 6, updated.CategoryID)
	assert.Equal(t, 26.00, updated.Amount)
}

func TestUpdateTransaction_UnknownCategory(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{}
	service := newTransactionTestService(repo, map[int]int{5: 1})

	transaction := &domain.Transaction{UserID: 1, CategoryID: 5, Amount: 10, Date: day(3)}
	assert.NoError(t, service.CreateTransaction(transaction))

	transaction.CategoryID = 99
	err := service.UpdateTransaction(transaction)
	assert.ErrorIs(t, err, financeErrors.ErrInvalidCategory)
}

func TestDeleteTransaction_OwnershipScoped(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{}
	service := newTransactionTestService(repo, map[int]int{5: 1})

	transaction := &domain.Transaction{UserID: 1, CategoryID: 5, Amount: 10, Date: day(3)}
	assert.NoError(t, service.CreateTransaction(transaction))

	err := service.DeleteTransaction(transaction.ID, 2)
	assert.ErrorIs(t, err, financeErrors.ErrNotFound)

	assert.NoError(t, service.DeleteTransaction(transaction.ID, 1))
	_, err = service.GetTransaction(transaction.ID, 1)
	assert.ErrorIs(t, err, financeErrors.ErrNotFound)
}

func TestGetSummary(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{
		Transactions: []domain.Transaction{
			{ID: 1, UserID: 1, CategoryID: 1, Amount: 100, Date: day(2), IsIncome: true},
			{ID: 2, UserID: 1, CategoryID: 2, Amount: 40, Date: day(5)},
			{ID: 3, UserID: 1, CategoryID: 2, Amount: 10, Date: day(9)},
		},
	}
	service := newTransactionTestService(repo, map[int]int{1: 1, 2: 1})

	summary, err := service.GetSummary(1, day(1), day(31))
	assert.NoError(t, err)
	assert.Equal(t, 100.0, summary.Income)
	assert.Equal(t, 50.0, summary.Expenses)
	assert.Equal(t, 50.0, summary.Balance)
	assert.Equal(t, 3, summary.TransactionCount)
}

func TestGetSummary_EmptyRange(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{
		Transactions: []domain.Transaction{
			{ID: 1, UserID: 1, CategoryID: 1, Amount: 100, Date: day(2), IsIncome: true},
		},
	}
	service := newTransactionTestService(repo, map[int]int{1: 1})

	summary, err := service.GetSummary(1, day(10), day(20))
	assert.NoError(t, err)
	assert.Zero(t, summary.Income)
	assert.Zero(t, summary.Expenses)
	assert.Zero(t, summary.Balance)
	assert.Zero(t, summary.TransactionCount)
}

func TestGetSummary_RangeIsInclusive(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{
		Transactions: []domain.Transaction{
			{ID: 1, UserID: 1, CategoryID: 1, Amount: 20, Date: day(10)},
			{ID: 2, UserID: 1, CategoryID: 1, Amount: 30, Date: day(15)},
			{ID: 3, UserID: 1, CategoryID: 1, Amount: 50, Date: day(16)},
		},
	}
	service := newTransactionTestService(repo, map[int]int{1: 1})

	summary, err := service.GetSummary(1, day(10), day(15))
	assert.NoError(t, err)
	assert.Equal(t, 50.0, summary.Expenses)
	assert.Equal(t, 2, summary.TransactionCount)
}

func TestGetSummary_IgnoresOtherUsers(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{
		Transactions: []domain.Transaction{
			{ID: 1, UserID: 1, CategoryID: 1, Amount: 100, Date: day(2), IsIncome: true},
			{ID: 2, UserID: 2, CategoryID: 3, Amount: 500, Date: day(2), IsIncome: true},
		},
	}
	service := newTransactionTestService(repo, map[int]int{1: 1})

	summary, err := service.GetSummary(1, day(1), day(31))
	assert.NoError(t, err)
	assert.Equal(t, 100.0, summary.Income)
	assert.Equal(t, 1, summary.TransactionCount)
}

func TestGetUserTransactions_CategoryFilter(t *testing.T) {
	categoryID := 2
	repo := &infrastructure.MockTransactionRepository{
		Transactions: []domain.Transaction{
			{ID: 1, UserID: 1, CategoryID: 1, Amount: 100, Date: day(2)},
			{ID: 2, UserID: 1, CategoryID: 2, Amount: 40, Date: day(5)},
			{ID: 3, UserID: 1, CategoryID: 2, Amount: 10, Date: day(9)},
		},
	}
	service := newTransactionTestService(repo, map[int]int{1: 1, 2: 1})

	transactions, err := service.GetUserTransactions(1, domain.TransactionFilter{CategoryID: &categoryID})
	assert.NoError(t, err)
	assert.Len(t, transactions, 2)
	for _, transaction := range transactions {
		assert.Equal(t, categoryID, transaction.CategoryID)
	}
}
