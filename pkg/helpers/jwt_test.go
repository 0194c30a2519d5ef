package helpers

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManager_IssueAndVerify(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)

	tok, exp, err := m.Issue("user-1")
	require.NoError(t, err)
	assert.NotEmpty(t, tok)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	uid, err := m.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-1", uid)
}

func TestJWTManager_Verify_Expired(t *testing.T) {
	m := NewJWTManager("secret", time.Minute)
	m.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	tok, _, err := m.Issue("user-1")
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.Verify(tok)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestJWTManager_Verify_WrongSecret(t *testing.T) {
	tok, _, err := NewJWTManager("secret", time.Hour).Issue("user-1")
	require.NoError(t, err)

	_, err = NewJWTManager("other", time.Hour).Verify(tok)
	assert.ErrorIs(t, err, ErrTokenInvalidSignature)
}

func TestJWTManager_Verify_Tampered(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)
	tok, _, err := m.Issue("user-1")
	require.NoError(t, err)

	other, _, err := m.Issue("user-2")
	require.NoError(t, err)

	// swap the payload of one token into the other
	a := strings.Split(tok, ".")
	b := strings.Split(other, ".")
	forged := a[0] + "." + b[1] + "." + a[2]

	_, err = m.Verify(forged)
	assert.ErrorIs(t, err, ErrTokenInvalidSignature)
}

func TestJWTManager_Verify_Malformed(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)

	for _, tok := range []string{"", "abc", "invalid.token.string"} {
		_, err := m.Verify(tok)
		assert.ErrorIs(t, err, ErrTokenMalformed, "token %q", tok)
	}
}

func TestJWTManager_Verify_RejectsOtherAlgorithms(t *testing.T) {
	claims := &Claims{
		UserID: "user-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = NewJWTManager("secret", time.Hour).Verify(tok)
	assert.ErrorIs(t, err, ErrTokenInvalidSignature)
}

func TestJWTManager_Verify_MissingUserID(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)
	tok, _, err := m.Issue("")
	require.NoError(t, err)

	_, err = m.Verify(tok)
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter22", 4)
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", hash)
	assert.True(t, CompareHashAndPassword(hash, "hunter22"))
	assert.False(t, CompareHashAndPassword(hash, "hunter23"))

	// out of range cost falls back to the default
	hash, err = HashPassword("x", 99)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$2a$10$"))
}
