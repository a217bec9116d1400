package utils

import (
	"strconv"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateResetCode_SixDigits(t *testing.T) {
	for i := 0; i < 100; i++ {
		code := GenerateResetCode()
		require.Len(t, code, 6)
		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 100000)
		assert.LessOrEqual(t, n, 999999)
	}
}

func TestHashAndComparePasswords(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.NoError(t, ComparePasswords(hash, "s3cret-pass"))
	assert.Error(t, ComparePasswords(hash, "wrong-pass"))
}

func TestSessionToken_RoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "utils-test-secret")

	memberID := uuid.New()
	tokenID := uuid.New()

	token, err := CreateSessionToken(memberID, "Fellow", tokenID)
	require.NoError(t, err)

	claims, err := ValidateSessionToken(token)
	require.NoError(t, err)

	assert.Equal(t, memberID.String(), claims.MemberID)
	assert.Equal(t, "Fellow", claims.Role)
	assert.Equal(t, tokenID.String(), claims.ID)
}

func TestValidateSessionToken_RejectsWrongKey(t *testing.T) {
	t.Setenv("JWT_SECRET", "first-secret")
	token, err := CreateSessionToken(uuid.New(), "Fellow", uuid.New())
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "second-secret")
	_, err = ValidateSessionToken(token)
	assert.Error(t, err)
}
