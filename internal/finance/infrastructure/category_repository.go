package infrastructure

import (
	"database/sql"
	"errors"

	"personalfinance/internal/finance/domain"
	financeErrors "personalfinance/internal/finance/errors"
)

type CategoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Save(category *domain.Category) error {
	return r.db.QueryRow(
		`INSERT INTO categories (user_id, name, description, is_income)
         VALUES ($1, $2, $3, $4)
         RETURNING id`,
		category.UserID, category.Name, category.Description, category.IsIncome,
	).Scan(&category.ID)
}

func (r *CategoryRepository) FindByUser(userID int) ([]domain.Category, error) {
	rows, err := r.db.Query(
		`SELECT id, user_id, name, description, is_income
         FROM categories
         WHERE user_id = $1
         ORDER BY name`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.ID, &category.UserID, &category.Name, &category.Description, &category.IsIncome); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (r *CategoryRepository) FindByID(categoryID, userID int) (*domain.Category, error) {
	var category domain.Category
	err := r.db.QueryRow(
		`SELECT id, user_id, name, description, is_income
         FROM categories
         WHERE id = $1 AND user_id = $2`,
		categoryID, userID,
	).Scan(&category.ID, &category.UserID, &category.Name, &category.Description, &category.IsIncome)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, financeErrors.ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) Update(category *domain.Category) error {
	result, err := r.db.Exec(
		`UPDATE categories
         SET name = $1, description = $2, is_income = $3
         WHERE id = $4 AND user_id = $5`,
		category.Name, category.Description, category.IsIncome, category.ID, category.UserID,
	)
	if err != nil {
		return err
	}
	return requireAffectedRow(result)
}

func (r *CategoryRepository) Delete(categoryID, userID int) error {
	result, err := r.db.Exec(
		`DELETE FROM categories WHERE id = $1 AND user_id = $2`,
		categoryID, userID,
	)
	if err != nil {
		return err
	}
	return requireAffectedRow(result)
}

func (r *CategoryRepository) ExistsForUser(categoryID, userID int) (bool, error) {
	var exists bool
	err := r.db.QueryRow(
		`SELECT EXISTS(SELECT 1 FROM categories WHERE id = $1 AND user_id = $2)`,
		categoryID, userID,
	).Scan(&exists)
	return exists, err
}

func (r *CategoryRepository) HasTransactions(categoryID int) (bool, error) {
	var exists bool
	err := r.db.QueryRow(
		`SELECT EXISTS(SELECT 1 FROM transactions WHERE category_id = $1)`,
		categoryID,
	).Scan(&exists)
	return exists, err
}

// requireAffectedRow turns a zero-row write into ErrNotFound so a row owned
// by another user is indistinguishable from a missing one.
func requireAffectedRow(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return financeErrors.ErrNotFound
	}
	return nil
}
