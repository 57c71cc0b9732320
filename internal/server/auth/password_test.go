package auth

import (
	"strings"
	"testing"

	"github.com/dmitrijs2005/employeehub/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasher() *PasswordHasher {
	return NewPasswordHasher(bcrypt.MinCost)
}

func TestHash_RoundTrip(t *testing.T) {
	h := newTestHasher()

	for _, pw := range []string{"s3cret!", "", "пароль", strings.Repeat("x", MaxPasswordLen)} {
		digest, err := h.Hash(pw)
		require.NoError(t, err)
		assert.NotEqual(t, pw, digest)
		assert.True(t, h.Verify(pw, digest), "password %q must verify", pw)
	}
}

func TestHash_SaltedDigestsDiffer(t *testing.T) {
	h := newTestHasher()

	a, err := h.Hash("same-password")
	require.NoError(t, err)
	b, err := h.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.True(t, h.Verify("same-password", a))
	assert.True(t, h.Verify("same-password", b))
}

func TestVerify_WrongPassword(t *testing.T) {
	h := newTestHasher()

	digest, err := h.Hash("correct horse")
	require.NoError(t, err)

	tests := []string{"correct horsE", "correct", "", "battery staple"}
	for _, pw := range tests {
		assert.False(t, h.Verify(pw, digest), "password %q must not verify", pw)
	}
}

func TestVerify_MalformedDigestFailsClosed(t *testing.T) {
	h := newTestHasher()

	for _, digest := range []string{"", "not-a-digest", "$2a$10$short"} {
		assert.False(t, h.Verify("anything", digest), "digest %q", digest)
	}
}

func TestHash_TooLong(t *testing.T) {
	h := newTestHasher()

	_, err := h.Hash(strings.Repeat("a", MaxPasswordLen+1))
	assert.ErrorIs(t, err, common.ErrorValidation)
}

func TestNewPasswordHasher_ClampsCost(t *testing.T) {
	assert.Equal(t, bcrypt.MinCost, NewPasswordHasher(0).cost)
	assert.Equal(t, bcrypt.MaxCost, NewPasswordHasher(99).cost)
	assert.Equal(t, 10, NewPasswordHasher(10).cost)

	digest, err := NewPasswordHasher(5).Hash("pw")
	require.NoError(t, err)
	cost, err := bcrypt.Cost([]byte(digest))
	require.NoError(t, err)
	assert.Equal(t, 5, cost)
}
