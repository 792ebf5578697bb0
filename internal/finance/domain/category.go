package domain

import (
	"strings"

	"personalfinance/internal/finance/errors"
)

const (
	maxCategoryNameLength        = 100
	maxCategoryDescriptionLength = 500
)

type Category struct {
	ID          int    `json:"id"`
	UserID      int    `json:"userId"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IsIncome    bool   `json:"isIncome"`
}

func (c *Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return errors.NewValidationError("Name is required")
	}
	if len(c.Name) > maxCategoryNameLength {
		return errors.NewValidationError("Name must be of length less than 100")
	}
	if len(c.Description) > maxCategoryDescriptionLength {
		return errors.NewValidationError("Description must be of length less than 500")
	}
	return nil
}

type CategoryRepository interface {
	Save(category *Category) error
	FindByUser(userID int) ([]Category, error)
	FindByID(categoryID, userID int) (*Category, error)
	Update(category *Category) error
	Delete(categoryID, userID int) error
	ExistsForUser(categoryID, userID int) (bool, error)
	HasTransactions(categoryID int) (bool, error)
}

// DefaultCategories returns the starter set seeded for every new user:
// two income categories and five expense categories.
func DefaultCategories() []Category {
	defaults := []struct {
		name     string
		isIncome bool
	}{
		{"Salary", true},
		{"Groceries", false},
		{"Transport", false},
		{"Housing", false},
		{"Entertainment", false},
		{"Health", false},
		{"Investments", true},
	}

	categories := make([]Category, 0, len(defaults))
	for _, d := range defaults {
		categories = append(categories, Category{
			Name:        d.name,
			IsIncome:    d.isIncome,
			Description: "Default category: " + d.name,
		})
	}
	return categories
}
