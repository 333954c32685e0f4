package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("s3cret!")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret!", hash)
	assert.True(t, CheckPasswordHash("s3cret!", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestQuotationReference(t *testing.T) {
	assert.Equal(t, "BG-000001", QuotationReference(1))
	assert.Equal(t, "BG-123456", QuotationReference(123456))

	n, ok := ParseQuotationReference("BG-000042")
	assert.True(t, ok)
	assert.Equal(t, 42, n)

	_, ok = ParseQuotationReference("PO-000042")
	assert.False(t, ok)
	_, ok = ParseQuotationReference("BG-abc")
	assert.False(t, ok)
}

func TestJWTManager_AccessToken(t *testing.T) {
	m := NewJWTManager("secret", "dealer-sales-api", time.Hour, 24*time.Hour)
	userID := uuid.New()

	token, err := m.GenerateAccessToken(userID, "an@dealer.vn", []string{"sales"}, []string{"manage-tasks"})
	require.NoError(t, err)

	claims, err := m.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "an@dealer.vn", claims.Email)
	assert.Equal(t, []string{"manage-tasks"}, claims.Permissions)
}

func TestJWTManager_RefreshToken(t *testing.T) {
	m := NewJWTManager("secret", "dealer-sales-api", time.Hour, 24*time.Hour)
	userID := uuid.New()

	token, err := m.GenerateRefreshToken(userID)
	require.NoError(t, err)

	got, err := m.ValidateRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)

	_, err = m.ValidateAccessToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTManager_Rejects(t *testing.T) {
	m := NewJWTManager("secret", "dealer-sales-api", time.Hour, time.Hour)
	token, err := m.GenerateAccessToken(uuid.New(), "a@b.c", nil, nil)
	require.NoError(t, err)

	other := NewJWTManager("other", "dealer-sales-api", time.Hour, time.Hour)
	_, err = other.ValidateAccessToken(token)
	assert.Error(t, err)

	otherIssuer := NewJWTManager("secret", "someone-else", time.Hour, time.Hour)
	_, err = otherIssuer.ValidateAccessToken(token)
	assert.Error(t, err)

	expired := NewJWTManager("secret", "dealer-sales-api", time.Hour, time.Hour)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	old, err := expired.GenerateAccessToken(uuid.New(), "a@b.c", nil, nil)
	require.NoError(t, err)
	_, err = m.ValidateAccessToken(old)
	assert.Error(t, err)
}
