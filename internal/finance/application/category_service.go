package application

import (
	"personalfinance/internal/finance/domain"
	financeErrors "personalfinance/internal/finance/errors"
)

type CategoryService struct {
	repo domain.CategoryRepository
}

func NewCategoryService(repo domain.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) GetUserCategories(userID int) ([]domain.Category, error) {
	return s.repo.FindByUser(userID)
}

func (s *CategoryService) GetCategory(categoryID, userID int) (*domain.Category, error) {
	return s.repo.FindByID(categoryID, userID)
}

func (s *CategoryService) CreateCategory(category *domain.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	return s.repo.Save(category)
}

func (s *CategoryService) UpdateCategory(category *domain.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	return s.repo.Update(category)
}

// DeleteCategory refuses to remove a category that transactions still
// reference, regardless of who owns those transactions.
func (s *CategoryService) DeleteCategory(categoryID, userID int) error {
	if _, err := s.repo.FindByID(categoryID, userID); err != nil {
		return err
	}

	inUse, err := s.repo.HasTransactions(categoryID)
	if err != nil {
		return err
	}
	if inUse {
		return financeErrors.ErrCategoryInUse
	}

	return s.repo.Delete(categoryID, userID)
}

func (s *CategoryService) DoesUserCategoryExist(categoryID, userID int) (bool, error) {
	return s.repo.ExistsForUser(categoryID, userID)
}
