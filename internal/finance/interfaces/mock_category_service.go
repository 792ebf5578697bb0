package interfaces

import (
	"personalfinance/internal/finance/domain"
	financeErrors "personalfinance/internal/finance/errors"
)

// MockCategoryService is an in-memory CategoryServiceInterface for handler
// tests.
type MockCategoryService struct {
	Categories []domain.Category
	Err        error

	nextID int
}

func (m *MockCategoryService) GetUserCategories(userID int) ([]domain.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var owned []domain.Category
	for _, category := range m.Categories {
		if category.UserID == userID {
			owned = append(owned, category)
		}
	}
	return owned, nil
}

func (m *MockCategoryService) GetCategory(categoryID, userID int) (*domain.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, category := range m.Categories {
		if category.ID == categoryID && category.UserID == userID {
			found := category
			return &found, nil
		}
	}
	return nil, financeErrors.ErrNotFound
}

func (m *MockCategoryService) CreateCategory(category *domain.Category) error {
	if m.Err != nil {
		return m.Err
	}
	if err := category.Validate(); err != nil {
		return err
	}
	m.nextID++
	category.ID = m.nextID
	m.Categories = append(m.Categories, *category)
	return nil
}

func (m *MockCategoryService) UpdateCategory(category *domain.Category) error {
	if m.Err != nil {
		return m.Err
	}
	if err := category.Validate(); err != nil {
		return err
	}
	for i, existing := range m.Categories {
		if existing.ID == category.ID && existing.UserID == category.UserID {
			m.Categories[i] = *category
			return nil
		}
	}
	return financeErrors.ErrNotFound
}

func (m *MockCategoryService) DeleteCategory(categoryID, userID int) error {
	if m.Err != nil {
		return m.Err
	}
	for i, existing := range m.Categories {
		if existing.ID == categoryID && existing.UserID == userID {
			m.Categories = append(m.Categories[:i], m.Categories[i+1:]...)
			return nil
		}
	}
	return financeErrors.ErrNotFound
}
