package domain

import (
	"math"
	"time"

	"personalfinance/internal/finance/errors"
)

const maxTransactionDescriptionLength = 500

type Transaction struct {
	ID          int       `json:"id"`
	UserID      int       `json:"userId"`
	CategoryID  int       `json:"categoryId"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"`
	Description string    `json:"description,omitempty"`

	// Read-side fields resolved from the category join.
	CategoryName string `json:"categoryName,omitempty"`
	IsIncome     bool   `json:"isIncome"`
}

// RoundToTwoDecimalPlaces normalizes the amount to currency precision.
func (t *Transaction) RoundToTwoDecimalPlaces() {
	t.Amount = math.Round(t.Amount*100) / 100
}

func (t *Transaction) Validate() error {
	if t.Amount <= 0 {
		return errors.NewValidationError("Amount must be greater than zero")
	}
	if t.CategoryID <= 0 {
		return errors.NewValidationError("Category is required")
	}
	if t.Date.IsZero() {
		return errors.NewValidationError("Date is required")
	}
	if len(t.Description) > maxTransactionDescriptionLength {
		return errors.NewValidationError("Description must be of length less than 500")
	}
	return nil
}

// TransactionFilter narrows a user's transaction listing. Nil fields are
// ignored; set fields are AND-combined.
type TransactionFilter struct {
	StartDate  *time.Time
	EndDate    *time.Time
	CategoryID *int
}

type TransactionRepository interface {
	Save(transaction *Transaction) error
	FindByUser(userID int, filter TransactionFilter) ([]Transaction, error)
	FindByID(transactionID, userID int) (*Transaction, error)
	Update(transaction *Transaction) error
	Delete(transactionID, userID int) error
}
