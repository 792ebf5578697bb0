package infrastructure

import (
	"sort"

	"personalfinance/internal/finance/domain"
	financeErrors "personalfinance/internal/finance/errors"
)

// MockCategoryRepository is an in-memory repository used by application
// layer tests. CategoriesWithTransactions marks category IDs that should
// report referencing transactions.
type MockCategoryRepository struct {
	Categories                 []domain.Category
	CategoriesWithTransactions map[int]bool
	Err                        error

	nextID int
}

func (m *MockCategoryRepository) Save(category *domain.Category) error {
	if m.Err != nil {
		return m.Err
	}
	m.nextID++
	category.ID = m.nextID
	m.Categories = append(m.Categories, *category)
	return nil
}

func (m *MockCategoryRepository) FindByUser(userID int) ([]domain.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var categories []domain.Category
	for _, category := range m.Categories {
		if category.UserID == userID {
			categories = append(categories, category)
		}
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].Name < categories[j].Name })
	return categories, nil
}

func (m *MockCategoryRepository) FindByID(categoryID, userID int) (*domain.Category, error) {
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

func (m *MockCategoryRepository) Update(category *domain.Category) error {
	if m.Err != nil {
		return m.Err
	}
	for i, existing := range m.Categories {
		if existing.ID == category.ID && existing.UserID == category.UserID {
			m.Categories[i] = *category
			return nil
		}
	}
	return financeErrors.ErrNotFound
}

func (m *MockCategoryRepository) Delete(categoryID, userID int) error {
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

func (m *MockCategoryRepository) ExistsForUser(categoryID, userID int) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	for _, category := range m.Categories {
		if category.ID == categoryID && category.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockCategoryRepository) HasTransactions(categoryID int) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	return m.CategoriesWithTransactions[categoryID], nil
}
