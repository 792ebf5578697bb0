package auth

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/badoux/checkmail"

	"personalfinance/internal/finance/domain"
)

const (
	maxEmailLength    = 254
	minPasswordLength = 8
	maxNameLength     = 100
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInternalError      = errors.New("internal server error")

	ErrInvalidEmail     = errors.New("email address is not valid")
	ErrPasswordTooShort = fmt.Errorf("password must be at least %d characters", minPasswordLength)
	ErrNameTooLong      = fmt.Errorf("first and last name must be at most %d characters", maxNameLength)
)

type Service interface {
	Register(email, password, firstName, lastName string) (*User, string, error)
	Login(email, password string) (*User, string, error)
	GetUserByID(userID int) (*User, error)
	JWTAccessTokenMiddleware() func(http.Handler) http.Handler
}

type service struct {
	repo       UserRepository
	jwtManager JWTManagerInterface
	hasher     PasswordHasher
}

func NewAuthService(repo UserRepository, jwtManager JWTManagerInterface, hasher PasswordHasher) Service {
	return &service{
		repo:       repo,
		jwtManager: jwtManager,
		hasher:     hasher,
	}
}

func validateRegistration(email, password, firstName, lastName string) error {
	if email == "" || len(email) > maxEmailLength {
		return ErrInvalidEmail
	}
	if err := checkmail.ValidateFormat(email); err != nil {
		return ErrInvalidEmail
	}
	if len(password) < minPasswordLength {
		return ErrPasswordTooShort
	}
	if len(firstName) > maxNameLength || len(lastName) > maxNameLength {
		return ErrNameTooLong
	}
	return nil
}

// Register creates the user together with their seven default categories in
// one storage transaction and returns the user with a fresh access token.
// Email matching is exact, so lookups and the unique index agree on case.
func (s *service) Register(email, password, firstName, lastName string) (*User, string, error) {
	if err := validateRegistration(email, password, firstName, lastName); err != nil {
		return nil, "", err
	}

	_, err := s.repo.GetUserByEmail(email)
	if err == nil {
		return nil, "", ErrEmailAlreadyExists
	}
	if !errors.Is(err, ErrUserNotFound) {
		log.Println("Error checking for existing user:", err)
		return nil, "", ErrInternalError
	}

	passwordHash, err := s.hasher.Hash(password)
	if err != nil {
		log.Println("Error during hashing the password:", err)
		return nil, "", ErrInternalError
	}

	user := &User{
		Email:        email,
		FirstName:    firstName,
		LastName:     lastName,
		PasswordHash: passwordHash,
	}

	err = s.repo.CreateUser(user, domain.DefaultCategories())
	if err != nil {
		if errors.Is(err, ErrEmailAlreadyExists) {
			return nil, "", ErrEmailAlreadyExists
		}
		log.Println("Error during creating the user:", err)
		return nil, "", ErrInternalError
	}

	token, err := s.jwtManager.GenerateAccessJWT(user.ID, user.Email, user.DisplayName())
	if err != nil {
		log.Println("Error generating access token:", err)
		return nil, "", ErrInternalError
	}

	return user, token, nil
}

// Login verifies credentials and issues an access token. A missing user and
// a wrong password are reported identically.
func (s *service) Login(email, password string) (*User, string, error) {
	user, err := s.repo.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		log.Println("Error during user lookup:", err)
		return nil, "", ErrInternalError
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	s.migrateLegacyHash(user, password)

	token, err := s.jwtManager.GenerateAccessJWT(user.ID, user.Email, user.DisplayName())
	if err != nil {
		log.Println("Error generating access token:", err)
		return nil, "", ErrInternalError
	}

	return user, token, nil
}

// migrateLegacyHash upgrades a legacy SHA-256 digest to bcrypt once the
// plaintext is available again at login. A failed upgrade is logged and
// ignored; the old digest keeps working.
func (s *service) migrateLegacyHash(user *User, password string) {
	if _, ok := s.hasher.(BcryptHasher); !ok {
		return
	}
	if !IsLegacyDigest(user.PasswordHash) {
		return
	}

	newHash, err := s.hasher.Hash(password)
	if err != nil {
		log.Println("Error rehashing legacy password:", err)
		return
	}
	if err := s.repo.UpdatePasswordHash(user.ID, newHash); err != nil {
		log.Println("Error storing rehashed password:", err)
		return
	}
	user.PasswordHash = newHash
}

func (s *service) GetUserByID(userID int) (*User, error) {
	return s.repo.GetUserByID(userID)
}
