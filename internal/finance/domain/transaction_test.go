package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	financeErrors "personalfinance/internal/finance/errors"
)

func validTransaction() Transaction {
	return Transaction{
		UserID:     1,
		CategoryID: 2,
		Amount:     19.99,
		Date:       time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC),
	}
}

func TestTransactionValidate(t *testing.T) {
	transaction := validTransaction()
	assert.NoError(t, transaction.Validate())

	zeroAmount := validTransaction()
	zeroAmount.Amount = 0
	assert.True(t, financeErrors.IsValidationError(zeroAmount.Validate()))

	negativeAmount := validTransaction()
	negativeAmount.Amount = -5
	assert.True(t, financeErrors.IsValidationError(negativeAmount.Validate()))

	noCategory := validTransaction()
	noCategory.CategoryID = 0
	assert.True(t, financeErrors.IsValidationError(noCategory.Validate()))

	noDate := validTransaction()
	noDate.Date = time.Time{}
	assert.True(t, financeErrors.IsValidationError(noDate.Validate()))

	longDescription := validTransaction()
	longDescription.Description = strings.Repeat("x", 501)
	assert.True(t, financeErrors.IsValidationError(longDescription.Validate()))
}

func TestRoundToTwoDecimalPlaces(t *testing.T) {
	transaction := validTransaction()
	transaction.Amount = 10.567
	transaction.RoundToTwoDecimalPlaces()
	assert.Equal(t, 10.57, transaction.Amount)

	transaction.Amount = 10.564
	transaction.RoundToTwoDecimalPlaces()
	assert.Equal(t, 10.56, transaction.Amount)
}

func TestCategoryValidate(t *testing.T) {
	category := Category{Name: "Groceries"}
	assert.NoError(t, category.Validate())

	blank := Category{Name: "   "}
	assert.True(t, financeErrors.IsValidationError(blank.Validate()))

	longName := Category{Name: strings.Repeat("x", 101)}
	assert.True(t, financeErrors.IsValidationError(longName.Validate()))

	longDescription := Category{Name: "Groceries", Description: strings.Repeat("x", 501)}
	assert.True(t, financeErrors.IsValidationError(longDescription.Validate()))
}

func TestDefaultCategories(t *testing.T) {
	defaults := DefaultCategories()
	assert.Len(t, defaults, 7)

	income := make(map[string]bool)
	for _, category := range defaults {
		assert.NotEmpty(t, category.Description)
		if category.IsIncome {
			income[category.Name] = true
		}
	}
	assert.Len(t, income, 2)
	assert.True(t, income["Salary"])
	assert.True(t, income["Investments"])
}
