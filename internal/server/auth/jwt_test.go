package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/employeehub/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestIssueAndVerify_Success(t *testing.T) {
	t.Parallel()

	issuer := NewTokenIssuer([]byte("super-secret"), time.Hour)

	tok, err := issuer.Issue("acc-123", "alice@example.com")
	require.NoError(t, err)

	id, err := issuer.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, Identity{ID: "acc-123", Email: "alice@example.com"}, id)
}

func TestIssue_EmbedsExpiryAtIssuance(t *testing.T) {
	t.Parallel()

	t0 := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	issuer := NewTokenIssuer([]byte("k"), time.Hour).WithClock(fixedClock(t0))

	tok, err := issuer.Issue("a1", "a@example.com")
	require.NoError(t, err)

	claims := &Claims{}
	_, _, err = jwt.NewParser().ParseUnverified(tok, claims)
	require.NoError(t, err)
	assert.Equal(t, t0.Unix(), claims.IssuedAt.Unix())
	assert.Equal(t, t0.Add(time.Hour).Unix(), claims.ExpiresAt.Unix())
	assert.Equal(t, "a1", claims.ID)
	assert.Equal(t, "a@example.com", claims.Email)
}

func TestVerify_ExpiresWithClock(t *testing.T) {
	t.Parallel()

	t0 := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	issuer := NewTokenIssuer([]byte("k"), time.Hour).WithClock(fixedClock(t0))

	tok, err := issuer.Issue("a1", "a@example.com")
	require.NoError(t, err)

	_, err = issuer.WithClock(fixedClock(t0.Add(59 * time.Minute))).Verify(tok)
	require.NoError(t, err, "token must be valid before expiry")

	_, err = issuer.WithClock(fixedClock(t0.Add(61 * time.Minute))).Verify(tok)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrInvalidToken))
}

func TestVerify_NegativeValidityIsExpired(t *testing.T) {
	t.Parallel()

	issuer := NewTokenIssuer([]byte("k"), -time.Second)
	tok, err := issuer.Issue("a1", "a@example.com")
	require.NoError(t, err)

	_, err = issuer.Verify(tok)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewTokenIssuer([]byte("right-secret"), time.Hour).Issue("u2", "b@example.com")
	require.NoError(t, err)

	_, err = NewTokenIssuer([]byte("wrong-secret"), time.Hour).Verify(tok)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestVerify_FlippedCharacterRejected(t *testing.T) {
	t.Parallel()

	issuer := NewTokenIssuer([]byte("k"), time.Hour)
	tok, err := issuer.Issue("u3", "c@example.com")
	require.NoError(t, err)

	parts := strings.Split(tok, ".")
	require.Len(t, parts, 3)

	flip := func(s string, i int) string {
		b := []byte(s)
		if b[i] == 'A' {
			b[i] = 'B'
		} else {
			b[i] = 'A'
		}
		return string(b)
	}

	tampered := []string{
		parts[0] + "." + flip(parts[1], len(parts[1])/2) + "." + parts[2],
		parts[0] + "." + parts[1] + "." + flip(parts[2], len(parts[2])/2),
		flip(parts[0], 3) + "." + parts[1] + "." + parts[2],
	}
	for _, tt := range tampered {
		_, err := issuer.Verify(tt)
		assert.ErrorIs(t, err, common.ErrInvalidToken, "tampered token accepted: %s", tt)
	}
}

func TestVerify_MalformedString(t *testing.T) {
	t.Parallel()

	issuer := NewTokenIssuer([]byte("k"), time.Hour)
	for _, tok := range []string{"", "not.a.jwt", "abc"} {
		_, err := issuer.Verify(tok)
		assert.ErrorIs(t, err, common.ErrInvalidToken, "token %q", tok)
	}
}

func TestVerify_RejectsOtherAlgorithms(t *testing.T) {
	t.Parallel()

	secret := []byte("k")
	token := jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
		ID:               "u4",
	})
	tok, err := token.SignedString(secret)
	require.NoError(t, err)

	_, err = NewTokenIssuer(secret, time.Hour).Verify(tok)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestVerify_RequiresExpiry(t *testing.T) {
	t.Parallel()

	secret := []byte("k")
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{ID: "u5"}).SignedString(secret)
	require.NoError(t, err)

	_, err = NewTokenIssuer(secret, time.Hour).Verify(tok)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}
