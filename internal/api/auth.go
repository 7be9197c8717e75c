package api

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid token")

// AccountContext identifies the caller resolved from a bearer token.
type AccountContext struct {
	UserID      uuid.UUID
	AccountID   uuid.UUID
	AccountName string
}

// Authenticator resolves a bearer token into an account context. The handler
// depends only on this interface; token mechanics stay swappable behind it.
type Authenticator interface {
	Authenticate(rawToken string) (AccountContext, error)
}

type accountClaims struct {
	UserID      string `json:"uid"`
	AccountID   string `json:"aid"`
	AccountName string `json:"account_name"`
	jwt.RegisteredClaims
}

// JWTAuthenticator verifies HS256-signed tokens carrying the account context
// in custom claims.
type JWTAuthenticator struct {
	secretKey []byte
}

func NewJWTAuthenticator(secretKey []byte) *JWTAuthenticator {
	return &JWTAuthenticator{secretKey: secretKey}
}

func (auth *JWTAuthenticator) Authenticate(rawToken string) (AccountContext, error) {
	claims := &accountClaims{}
	token, err := jwt.ParseWithClaims(rawToken, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return auth.secretKey, nil
	})
	if err != nil || !token.Valid {
		return AccountContext{}, ErrInvalidToken
	}
	if claims.ExpiresAt == nil || claims.ExpiresAt.Time.Before(time.Now()) {
		return AccountContext{}, ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return AccountContext{}, ErrInvalidToken
	}
	accountID, err := uuid.Parse(claims.AccountID)
	if err != nil {
		return AccountContext{}, ErrInvalidToken
	}

	return AccountContext{
		UserID:      userID,
		AccountID:   accountID,
		AccountName: claims.AccountName,
	}, nil
}

// IssueToken signs a token for the account, used by operator tooling and
// tests.
func (auth *JWTAuthenticator) IssueToken(account AccountContext, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := accountClaims{
		UserID:      account.UserID.String(),
		AccountID:   account.AccountID.String(),
		AccountName: account.AccountName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   account.UserID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(auth.secretKey)
}

// StaticAuthenticator answers every token with one fixed development
// identity, standing in for a real identity provider.
type StaticAuthenticator struct {
	account AccountContext
}

func NewStaticAuthenticator() *StaticAuthenticator {
	return &StaticAuthenticator{
		account: AccountContext{
			UserID:      uuid.MustParse("f47ac10b-58cc-4372-a567-0e02b2c3d479"),
			AccountID:   uuid.MustParse("f47ac10b-58cc-4372-a567-0e02b2c3d479"),
			AccountName: "Rize Up",
		},
	}
}

func (auth *StaticAuthenticator) Authenticate(string) (AccountContext, error) {
	return auth.account, nil
}
