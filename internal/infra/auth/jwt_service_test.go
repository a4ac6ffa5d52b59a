package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrdesk/config"
	"hrdesk/internal/domain/entity"
)

const testAccessSecret = "test_access_secret_key_very_long_for_testing"

func newTestJWTConfig() *config.Config {
	cfg := &config.Config{Auth: &config.AuthConfig{Issuer: "hrdesk-test"}}
	cfg.SecretKey.Access = testAccessSecret

	return cfg
}

func newTestClaim(issuedAt time.Time) *entity.SessionClaim {
	employeeID := int64(7)

	return &entity.SessionClaim{
		TokenID:         uuid.New(),
		SubjectID:       42,
		Role:            entity.RoleHR,
		Identifier:      "alice",
		LinkedProfileID: &employeeID,
		IssuedAt:        issuedAt,
		ExpiresAt:       issuedAt.Add(time.Hour),
	}
}

func TestJWTService_SignAndParse(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	service, err := newJWTService(newTestJWTConfig(), func() time.Time { return now })
	require.NoError(t, err)

	claim := newTestClaim(now)
	token, err := service.Sign(claim)
	require.NoError(t, err)
	assert.Equal(t, 3, len(strings.Split(token, ".")))

	parsed, err := service.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, claim.TokenID, parsed.TokenID)
	assert.Equal(t, claim.SubjectID, parsed.SubjectID)
	assert.Equal(t, claim.Role, parsed.Role)
	assert.Equal(t, claim.Identifier, parsed.Identifier)
	require.NotNil(t, parsed.LinkedProfileID)
	assert.Equal(t, int64(7), *parsed.LinkedProfileID)
	assert.True(t, claim.IssuedAt.Equal(parsed.IssuedAt))
	assert.True(t, claim.ExpiresAt.Equal(parsed.ExpiresAt))
	assert.Equal(t, time.Hour, parsed.TTL())
}

func TestJWTService_OmitsMissingEmployee(t *testing.T) {
	now := time.Now()
	service, err := newJWTService(newTestJWTConfig(), func() time.Time { return now })
	require.NoError(t, err)

	claim := newTestClaim(now)
	claim.LinkedProfileID = nil

	token, err := service.Sign(claim)
	require.NoError(t, err)

	parsed, err := service.Parse(token)
	require.NoError(t, err)
	assert.Nil(t, parsed.LinkedProfileID)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	issuedAt := time.Now().Add(-2 * time.Hour)
	service, err := newJWTService(newTestJWTConfig(), time.Now)
	require.NoError(t, err)

	token, err := service.Sign(newTestClaim(issuedAt))
	require.NoError(t, err)

	_, err = service.Parse(token)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestJWTService_RejectsWrongIssuerAndSecret(t *testing.T) {
	now := time.Now()
	signer, err := newJWTService(newTestJWTConfig(), time.Now)
	require.NoError(t, err)
	token, err := signer.Sign(newTestClaim(now))
	require.NoError(t, err)

	otherIssuer := newTestJWTConfig()
	otherIssuer.Auth.Issuer = "someone-else"
	parser, err := newJWTService(otherIssuer, time.Now)
	require.NoError(t, err)
	_, err = parser.Parse(token)
	assert.True(t, errors.Is(err, ErrInvalidToken))

	otherSecret := newTestJWTConfig()
	otherSecret.SecretKey.Access = "a-different-secret"
	parser, err = newJWTService(otherSecret, time.Now)
	require.NoError(t, err)
	_, err = parser.Parse(token)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestJWTService_RejectsUnexpectedAlgorithm(t *testing.T) {
	service, err := newJWTService(newTestJWTConfig(), time.Now)
	require.NoError(t, err)

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   "1",
		Issuer:    "hrdesk-test",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testAccessSecret))
	require.NoError(t, err)

	_, err = service.Parse(token)
	assert.True(t, errors.Is(err, ErrInvalidToken))

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = service.Parse(unsigned)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestJWTService_InvalidToken(t *testing.T) {
	service, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	claim, err := service.Parse("clearly-not-a-jwt-token-format")
	assert.Nil(t, claim)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	cfg := newTestJWTConfig()
	cfg.SecretKey.Access = ""

	_, err := NewJWTService(cfg)
	assert.ErrorIs(t, err, ErrMissingSigningSecret)
}
