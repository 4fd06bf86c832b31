package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("pw123")
	require.NoError(t, err)
	assert.NotEqual(t, "pw123", hash)

	assert.True(t, VerifyPassword("pw123", hash))
	assert.False(t, VerifyPassword("wrong", hash))
	assert.False(t, VerifyPassword("pw123", "not-a-hash"))
}

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret", 30, 7*24*60)

	token, err := svc.CreateAccessToken(42, "recruiter", svc.AccessTTL())
	require.NoError(t, err)

	claims, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "recruiter", claims.Role)
}

func TestRefreshTokenHasNoRole(t *testing.T) {
	svc := NewTokenService("test-secret", 30, 7*24*60)

	token, err := svc.CreateRefreshToken(42, svc.RefreshTTL())
	require.NoError(t, err)

	claims, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Empty(t, claims.Role)
}

func TestExpiredTokenRejected(t *testing.T) {
	svc := NewTokenService("test-secret", 30, 7*24*60)

	// a zero ttl sets exp to the issue instant, so verification must fail
	token, err := svc.CreateAccessToken(1, "candidate", 0)
	require.NoError(t, err)

	_, err = svc.ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	// the jwt cause stays in the chain so expiry is distinguishable
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)

	_, err = svc.ParseToken(mustToken(t, svc, -time.Minute))
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func mustToken(t *testing.T, svc *TokenService, ttl time.Duration) string {
	t.Helper()
	token, err := svc.CreateAccessToken(1, "candidate", ttl)
	require.NoError(t, err)
	return token
}

func TestWrongKeyRejected(t *testing.T) {
	issuer := NewTokenService("secret-a", 30, 7*24*60)
	verifier := NewTokenService("secret-b", 30, 7*24*60)

	token, err := issuer.CreateAccessToken(1, "candidate", time.Hour)
	require.NoError(t, err)

	// valid under the issuing key, rejected under any other
	_, err = issuer.ParseToken(token)
	require.NoError(t, err)
	_, err = verifier.ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	// a bad signature must not look like an expired token
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
	assert.NotErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestMalformedTokenRejected(t *testing.T) {
	svc := NewTokenService("test-secret", 30, 7*24*60)

	_, err := svc.ParseToken("not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
