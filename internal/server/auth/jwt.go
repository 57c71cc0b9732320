// Package auth holds the stateless pieces of account authentication: the
// bcrypt password hasher, the HS256 token issuer/verifier and the request
// identity that travels in a context.Context.
package auth

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/employeehub/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the token payload: the account id and email plus the registered
// iat/exp claims.
type Claims struct {
	jwt.RegisteredClaims
	ID    string `json:"id"`
	Email string `json:"email"`
}

// TokenIssuer signs and verifies access tokens with a process-wide secret.
// Tokens cannot be revoked; they stay valid until exp.
type TokenIssuer struct {
	secret   []byte
	validity time.Duration
	now      func() time.Time
}

func NewTokenIssuer(secretKey []byte, validity time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: secretKey, validity: validity, now: time.Now}
}

// WithClock returns a copy of the issuer that reads time from now.
func (i *TokenIssuer) WithClock(now func() time.Time) *TokenIssuer {
	c := *i
	c.now = now
	return &c
}

// Issue mints a token for the account that expires validity after now.
func (i *TokenIssuer) Issue(accountID, email string) (string, error) {
	issuedAt := i.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(i.validity)),
		},
		ID:    accountID,
		Email: email,
	})

	tokenString, err := token.SignedString(i.secret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// Verify checks signature, algorithm and expiry and returns the identity the
// token carries. Every failure matches common.ErrInvalidToken; the wrapped
// cause is only meant for logs.
func (i *TokenIssuer) Verify(tokenString string) (Identity, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	if !token.Valid || claims.ID == "" {
		return Identity{}, common.ErrInvalidToken
	}

	return Identity{ID: claims.ID, Email: claims.Email}, nil
}
