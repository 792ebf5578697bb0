package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

var (
	ErrInvalidJWTToken = errors.New("JWT token is invalid")
	ErrExpiredJWTToken = errors.New("JWT token is expired")
)

type AccessTokenClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.StandardClaims
}

// TokenIdentity is the verified identity carried by an access token.
type TokenIdentity struct {
	UserID int
	Email  string
	Name   string
}

type JWTManagerInterface interface {
	GenerateAccessJWT(userID int, email, name string) (string, error)
	ValidateAccessToken(tokenString string) (*TokenIdentity, error)
}

type JWTManager struct {
	secret   string
	issuer   string
	audience string
	expiry   time.Duration
	skew     time.Duration
}

func NewJWTManager(secret, issuer, audience string, expiry, skew time.Duration) *JWTManager {
	return &JWTManager{
		secret:   secret,
		issuer:   issuer,
		audience: audience,
		expiry:   expiry,
		skew:     skew,
	}
}

func (j *JWTManager) GenerateAccessJWT(userID int, email, name string) (string, error) {
	now := time.Now()
	claims := &AccessTokenClaims{
		Email: email,
		Name:  name,
		StandardClaims: jwt.StandardClaims{
			Subject:   strconv.Itoa(userID),
			Id:        uuid.NewString(),
			Issuer:    j.issuer,
			Audience:  j.audience,
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(j.expiry).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secret))
}

func (j *JWTManager) ValidateAccessToken(tokenString string) (*TokenIdentity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AccessTokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(j.secret), nil
	})

	if err != nil {
		var validationErr *jwt.ValidationError
		if !errors.As(err, &validationErr) || token == nil {
			return nil, ErrInvalidJWTToken
		}

		// Time-based failures get a second look with the configured
		// clock-skew tolerance. Anything else is a hard reject.
		const timeErrors = jwt.ValidationErrorExpired | jwt.ValidationErrorNotValidYet | jwt.ValidationErrorIssuedAt
		if validationErr.Errors&^timeErrors != 0 {
			return nil, ErrInvalidJWTToken
		}

		claims, ok := token.Claims.(*AccessTokenClaims)
		if !ok || !j.withinSkew(claims) {
			return nil, ErrExpiredJWTToken
		}
		return j.identityFromClaims(claims)
	}

	claims, ok := token.Claims.(*AccessTokenClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidJWTToken
	}
	return j.identityFromClaims(claims)
}

func (j *JWTManager) withinSkew(claims *AccessTokenClaims) bool {
	if j.skew <= 0 {
		return false
	}
	now := time.Now().Unix()
	skew := int64(j.skew.Seconds())

	if claims.ExpiresAt != 0 && now > claims.ExpiresAt+skew {
		return false
	}
	if claims.NotBefore != 0 && now < claims.NotBefore-skew {
		return false
	}
	return true
}

func (j *JWTManager) identityFromClaims(claims *AccessTokenClaims) (*TokenIdentity, error) {
	if !claims.VerifyIssuer(j.issuer, true) {
		return nil, ErrInvalidJWTToken
	}
	if !claims.VerifyAudience(j.audience, true) {
		return nil, ErrInvalidJWTToken
	}

	userID, err := strconv.Atoi(claims.Subject)
	if err != nil || userID <= 0 {
		return nil, ErrInvalidJWTToken
	}

	return &TokenIdentity{
		UserID: userID,
		Email:  claims.Email,
		Name:   claims.Name,
	}, nil
}
