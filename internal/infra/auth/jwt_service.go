package auth

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"hrdesk/config"
	"hrdesk/internal/domain/entity"
	"hrdesk/internal/domain/service"
	"hrdesk/internal/errors"
)

var (
	// ErrMissingSigningSecret is returned when no access secret is configured.
	ErrMissingSigningSecret = errors.New("jwt access secret must be provided")
	// ErrInvalidToken is returned for any token that fails parsing or validation.
	ErrInvalidToken = errors.New("invalid session token")
)

// sessionClaims is the JWT body of an issued session.
type sessionClaims struct {
	Role       string `json:"role"`
	Username   string `json:"username"`
	EmployeeID *int64 `json:"employeeId,omitempty"`
	jwt.RegisteredClaims
}

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte // Secret key for signing session tokens.
	issuer string
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	return newJWTService(cfg, time.Now)
}

func newJWTService(cfg *config.Config, now func() time.Time) (*jwtService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, ErrMissingSigningSecret
	}

	issuer := ""
	if cfg.Auth != nil {
		issuer = cfg.Auth.Issuer
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.Access),
		issuer: issuer,
		now:    now,
	}, nil
}

// Sign encodes the claim as an HS256 token.
func (s *jwtService) Sign(claim *entity.SessionClaim) (string, error) {
	if claim == nil {
		return "", errors.New("nil session claim")
	}

	claims := sessionClaims{
		Role:       claim.Role.String(),
		Username:   claim.Identifier,
		EmployeeID: claim.LinkedProfileID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(claim.SubjectID, 10),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(claim.IssuedAt),
			NotBefore: jwt.NewNumericDate(claim.IssuedAt),
			ExpiresAt: jwt.NewNumericDate(claim.ExpiresAt),
			ID:        claim.TokenID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign session token")
	}

	return signed, nil
}

// Parse validates the token signature, algorithm, issuer and lifetime and returns its claim.
func (s *jwtService) Parse(tokenString string) (*entity.SessionClaim, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(s.now),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	}, opts...)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidToken, err.Error())
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims.toSessionClaim()
}

func (c *sessionClaims) toSessionClaim() (*entity.SessionClaim, error) {
	subjectID, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidToken, "subject is not a numeric id")
	}

	role, ok := entity.ParseRole(c.Role)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidToken, "unknown role %q", c.Role)
	}

	tokenID, err := uuid.Parse(c.ID)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidToken, "token id is not a uuid")
	}

	if c.IssuedAt == nil || c.ExpiresAt == nil {
		return nil, errors.Wrap(ErrInvalidToken, "missing lifetime claims")
	}

	return &entity.SessionClaim{
		TokenID:         tokenID,
		SubjectID:       subjectID,
		Role:            role,
		Identifier:      c.Username,
		LinkedProfileID: c.EmployeeID,
		IssuedAt:        c.IssuedAt.Time,
		ExpiresAt:       c.ExpiresAt.Time,
	}, nil
}
