package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/rahmanabdur1/productivity-app/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testUserID = "00000000-0000-0000-0000-000000000001"
	testIssuer = "productivity-test"
)

func TestGenerateAndParse_RoundTrip(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, "employee1", "e1@example.com", "employee", testIssuer, 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, claims.UserID)
	assert.Equal(t, "employee1", claims.Username)
	assert.Equal(t, "e1@example.com", claims.Email)
	assert.Equal(t, "employee", claims.Role)
	assert.Equal(t, testIssuer, claims.Issuer)
}

func TestParse_ExpiredToken(t *testing.T) {
	// Expiration of -1 minute means the token is already expired.
	tok, err := pkgjwt.Generate(testSecret, testUserID, "admin", "a@example.com", "admin", testIssuer, -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "expired token must fail to parse")
}

func TestParse_WrongSecret(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, "admin", "a@example.com", "admin", testIssuer, 60)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("a-completely-different-secret", tok)
	assert.Error(t, err, "wrong secret must invalidate the token")
}

func TestGenerate_EmptySecret(t *testing.T) {
	_, err := pkgjwt.Generate("", testUserID, "admin", "a@example.com", "admin", testIssuer, 60)
	assert.Error(t, err)
}
