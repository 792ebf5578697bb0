package auth

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"personalfinance/internal/finance/domain"
)

type User struct {
	ID           int       `json:"id"`
	Email        string    `json:"email"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (u *User) DisplayName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

type UserRepository interface {
	// CreateUser persists the user and their seed categories in a single
	// storage transaction. The server-assigned id and creation timestamp
	// are written back into user.
	CreateUser(user *User, seedCategories []domain.Category) error
	GetUserByEmail(email string) (*User, error)
	GetUserByID(userID int) (*User, error)
	UpdatePasswordHash(userID int, passwordHash string) error
}

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

const uniqueViolationCode = "23505"

func (r *userRepository) CreateUser(user *User, seedCategories []domain.Category) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer safeRollback(tx)

	err = tx.QueryRow(
		`INSERT INTO users (email, first_name, last_name, password_hash)
         VALUES ($1, $2, $3, $4)
         RETURNING id, created_at`,
		user.Email, user.FirstName, user.LastName, user.PasswordHash,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return ErrEmailAlreadyExists
		}
		return fmt.Errorf("could not insert user: %w", err)
	}

	for _, category := range seedCategories {
		_, err = tx.Exec(
			`INSERT INTO categories (user_id, name, description, is_income)
             VALUES ($1, $2, $3, $4)`,
			user.ID, category.Name, category.Description, category.IsIncome,
		)
		if err != nil {
			return fmt.Errorf("could not seed category %q: %w", category.Name, err)
		}
	}

	return tx.Commit()
}

func (r *userRepository) GetUserByEmail(email string) (*User, error) {
	return r.getUser(`SELECT id, email, first_name, last_name, password_hash, created_at
        FROM users WHERE email = $1`, email)
}

func (r *userRepository) GetUserByID(userID int) (*User, error) {
	return r.getUser(`SELECT id, email, first_name, last_name, password_hash, created_at
        FROM users WHERE id = $1`, userID)
}

func (r *userRepository) getUser(query string, arg interface{}) (*User, error) {
	var user User
	err := r.db.QueryRow(query, arg).Scan(
		&user.ID, &user.Email, &user.FirstName, &user.LastName, &user.PasswordHash, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdatePasswordHash(userID int, passwordHash string) error {
	_, err := r.db.Exec(`UPDATE users SET password_hash = $1 WHERE id = $2`, passwordHash, userID)
	return err
}

func safeRollback(tx *sql.Tx) {
	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		log.Printf("Error rolling back transaction: %v", err)
	}
}
