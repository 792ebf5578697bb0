package infrastructure

import (
	"database/sql"
	"errors"
	"fmt"

	"personalfinance/internal/finance/domain"
	financeErrors "personalfinance/internal/finance/errors"
)

type TransactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

const transactionColumns = `t.id, t.user_id, t.category_id, t.amount, t.date, t.description, c.name, c.is_income`

func (r *TransactionRepository) Save(transaction *domain.Transaction) error {
	return r.db.QueryRow(
		`INSERT INTO transactions (user_id, category_id, amount, date, description)
         VALUES ($1, $2, $3, $4, $5)
         RETURNING id`,
		transaction.UserID, transaction.CategoryID, transaction.Amount, transaction.Date, transaction.Description,
	).Scan(&transaction.ID)
}

func (r *TransactionRepository) FindByUser(userID int, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + `
        FROM transactions t
        JOIN categories c ON c.id = t.category_id
        WHERE t.user_id = $1`
	args := []interface{}{userID}

	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		query += fmt.Sprintf(" AND t.date >= $%d", len(args))
	}
	if filter.EndDate != nil {
		args = append(args, *filter.EndDate)
		query += fmt.Sprintf(" AND t.date <= $%d", len(args))
	}
	if filter.CategoryID != nil {
		args = append(args, *filter.CategoryID)
		query += fmt.Sprintf(" AND t.category_id = $%d", len(args))
	}

	query += " ORDER BY t.date DESC, t.id DESC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		var transaction domain.Transaction
		if err := scanTransaction(rows.Scan, &transaction); err != nil {
			return nil, err
		}
		transactions = append(transactions, transaction)
	}
	return transactions, rows.Err()
}

func (r *TransactionRepository) FindByID(transactionID, userID int) (*domain.Transaction, error) {
	var transaction domain.Transaction
	err := scanTransaction(r.db.QueryRow(
		`SELECT `+transactionColumns+`
         FROM transactions t
         JOIN categories c ON c.id = t.category_id
         WHERE t.id = $1 AND t.user_id = $2`,
		transactionID, userID,
	).Scan, &transaction)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, financeErrors.ErrNotFound
		}
		return nil, err
	}
	return &transaction, nil
}

func (r *TransactionRepository) Update(transaction *domain.Transaction) error {
	result, err := r.db.Exec(
		`UPDATE transactions
         SET amount = $1, date = $2, description = $3, category_id = $4
         WHERE id = $5 AND user_id = $6`,
		transaction.Amount, transaction.Date, transaction.Description, transaction.CategoryID,
		transaction.ID, transaction.UserID,
	)
	if err != nil {
		return err
	}
	return requireAffectedRow(result)
}

func (r *TransactionRepository) Delete(transactionID, userID int) error {
	result, err := r.db.Exec(
		`DELETE FROM transactions WHERE id = $1 AND user_id = $2`,
		transactionID, userID,
	)
	if err != nil {
		return err
	}
	return requireAffectedRow(result)
}

func scanTransaction(scan func(dest ...interface{}) error, transaction *domain.Transaction) error {
	return scan(
		&transaction.ID, &transaction.UserID, &transaction.CategoryID, &transaction.Amount,
		&transaction.Date, &transaction.Description, &transaction.CategoryName, &transaction.IsIncome,
	)
}
