package handler

import (
	"log/slog"
	"net/http"
	"time"

	deliverycontext "hrdesk/internal/delivery/context"
	"hrdesk/internal/delivery/http/response"
	"hrdesk/internal/domain/entity"
	domainerrors "hrdesk/internal/domain/errors"
	"hrdesk/internal/errors"
	"hrdesk/internal/infra/metrics"
	"hrdesk/internal/usecase"

	"github.com/labstack/echo/v4"
)

const tokenTypeBearer = "Bearer"

// loginRequest accepts the identifier under any of the names clients send it as.
type loginRequest struct {
	Identifier string `json:"identifier"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	Password   string `json:"password"`
}

func (r *loginRequest) identifier() string {
	switch {
	case r.Identifier != "":
		return r.Identifier
	case r.Username != "":
		return r.Username
	default:
		return r.Email
	}
}

// sessionResponse is the public view of a session claim.
type sessionResponse struct {
	Token      string    `json:"token,omitempty"`
	TokenType  string    `json:"tokenType,omitempty"`
	TokenID    string    `json:"tokenId"`
	SubjectID  int64     `json:"subjectId"`
	Role       string    `json:"role"`
	Identifier string    `json:"identifier"`
	EmployeeID *int64    `json:"employeeId,omitempty"`
	IssuedAt   time.Time `json:"issuedAt"`
	ExpiresAt  time.Time `json:"expiresAt"`
}

func newSessionResponse(claim *entity.SessionClaim) sessionResponse {
	return sessionResponse{
		TokenID:    claim.TokenID.String(),
		SubjectID:  claim.SubjectID,
		Role:       claim.Role.String(),
		Identifier: claim.Identifier,
		EmployeeID: claim.LinkedProfileID,
		IssuedAt:   claim.IssuedAt,
		ExpiresAt:  claim.ExpiresAt,
	}
}

// AuthHandler holds dependencies for login and session handlers.
type AuthHandler struct {
	authUC  usecase.AuthUsecase
	metrics *metrics.AuthMetrics
	logger  *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(authUC usecase.AuthUsecase, m *metrics.AuthMetrics, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUC:  authUC,
		metrics: m,
		logger:  logger,
	}
}

// Login verifies the submitted credentials and returns a signed session token.
func (h *AuthHandler) Login(c echo.Context) error {
	start := time.Now()

	var req loginRequest
	if err := c.Bind(&req); err != nil {
		h.observe(metrics.OutcomeInvalidRequest, start)

		return domainerrors.ErrInvalidRequest.WithDetails("malformed request body")
	}

	output, err := h.authUC.Login(c.Request().Context(), &usecase.AuthenticateInput{
		Identifier: req.identifier(),
		Password:   req.Password,
	})
	h.observe(loginOutcome(err), start)
	if err != nil {
		return errors.WithStack(err)
	}

	body := newSessionResponse(output.Claim)
	body.Token = output.Token
	body.TokenType = tokenTypeBearer

	return response.Success(c, http.StatusOK, body, "Login successful")
}

// Session returns the caller's decoded session claim.
func (h *AuthHandler) Session(c echo.Context) error {
	claim, ok := deliverycontext.GetSession(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	return response.Success(c, http.StatusOK, newSessionResponse(claim), "Session is valid")
}

func (h *AuthHandler) observe(outcome string, start time.Time) {
	if h.metrics != nil {
		h.metrics.ObserveAttempt(outcome, time.Since(start))
	}
}

func loginOutcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.Is(err, domainerrors.ErrInvalidRequest):
		return metrics.OutcomeInvalidRequest
	case errors.Is(err, domainerrors.ErrInvalidCredentials):
		return metrics.OutcomeInvalidCredentials
	case errors.Is(err, domainerrors.ErrDirectoryUnavailable):
		return metrics.OutcomeUnavailable
	default:
		return metrics.OutcomeError
	}
}
