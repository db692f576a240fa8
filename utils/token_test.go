package utils

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-unit-tests"

var testIdentity = Identity{UserID: "user-1", Email: "user1@example.com"}

func newTestTokenService(t *testing.T) *TokenService {
	t.Helper()
	svc, err := NewTokenService(testSecret, 0)
	require.NoError(t, err)
	return svc
}

func TestNewTokenService_RequiresSecret(t *testing.T) {
	svc, err := NewTokenService("", time.Hour)
	assert.Error(t, err)
	assert.Nil(t, svc)
}

func TestGenerateAndVerify(t *testing.T) {
	svc := newTestTokenService(t)

	token, err := svc.GenerateToken(testIdentity)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, testIdentity.UserID, claims.UserID)
	assert.Equal(t, testIdentity.Email, claims.Email)
	assert.Equal(t, testIdentity.UserID, claims.Subject)
}

func TestGenerateToken_ThirtyDayValidity(t *testing.T) {
	svc := newTestTokenService(t)

	token, err := svc.GenerateToken(testIdentity)
	require.NoError(t, err)
	claims, err := svc.VerifyToken(token)
	require.NoError(t, err)

	validity := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	assert.Equal(t, 30*24*time.Hour, validity)
}

func TestVerifyToken_Expired(t *testing.T) {
	svc := newTestTokenService(t)

	past := time.Now().Add(-2 * time.Hour)
	claims := TokenClaims{
		UserID: testIdentity.UserID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(past),
			ExpiresAt: jwt.NewNumericDate(past.Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = svc.VerifyToken(token)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	other, err := NewTokenService("a-completely-different-secret", 0)
	require.NoError(t, err)
	token, err := other.GenerateToken(testIdentity)
	require.NoError(t, err)

	_, err = newTestTokenService(t).VerifyToken(token)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestVerifyToken_TamperedPayload(t *testing.T) {
	svc := newTestTokenService(t)

	original, err := svc.GenerateToken(testIdentity)
	require.NoError(t, err)
	forged, err := svc.GenerateToken(Identity{UserID: "admin", Email: "admin@example.com"})
	require.NoError(t, err)

	// Forged claims carried under the original signature.
	o := strings.Split(original, ".")
	f := strings.Split(forged, ".")
	require.Len(t, o, 3)
	require.Len(t, f, 3)
	tampered := strings.Join([]string{f[0], f[1], o[2]}, ".")

	_, err = svc.VerifyToken(tampered)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestVerifyToken_RejectsNoneAlgorithm(t *testing.T) {
	svc := newTestTokenService(t)

	claims := TokenClaims{
		UserID: testIdentity.UserID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.VerifyToken(token)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestVerifyToken_Malformed(t *testing.T) {
	svc := newTestTokenService(t)

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		claims, err := svc.VerifyToken(token)
		assert.Nil(t, claims, token)
		assert.True(t, errors.Is(err, ErrInvalidToken), token)
	}
}
