package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"hrdesk/internal/delivery/http/response"
	domainerrors "hrdesk/internal/domain/errors"
	"hrdesk/internal/errors"
	"hrdesk/internal/infra/metrics"
	"hrdesk/internal/usecase"

	"github.com/labstack/echo/v4"
)

const (
	resetActionRequested = "requested"
	resetActionCompleted = "completed"
)

type requestResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type completeResetRequest struct {
	Email       string `json:"email" validate:"required,email"`
	NewPassword string `json:"newPassword" validate:"required"`
}

type resetResponse struct {
	ID          int64     `json:"id"`
	Email       string    `json:"email"`
	RequestedAt time.Time `json:"requestedAt"`
}

// PasswordResetHandler serves the administrator-mediated password reset desk.
type PasswordResetHandler struct {
	resetUC usecase.PasswordResetUsecase
	metrics *metrics.AuthMetrics
	logger  *slog.Logger
}

// NewPasswordResetHandler is the constructor for PasswordResetHandler, injected by Fx.
func NewPasswordResetHandler(resetUC usecase.PasswordResetUsecase, m *metrics.AuthMetrics, logger *slog.Logger) *PasswordResetHandler {
	return &PasswordResetHandler{
		resetUC: resetUC,
		metrics: m,
		logger:  logger,
	}
}

// RequestReset records a reset request. The response is the same whether or not the email is known.
func (h *PasswordResetHandler) RequestReset(c echo.Context) error {
	var req requestResetRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if _, err := h.resetUC.RequestReset(c.Request().Context(), &usecase.RequestResetInput{Email: req.Email}); err != nil {
		return errors.WithStack(err)
	}
	h.observe(resetActionRequested)

	return response.Success(c, http.StatusAccepted, nil, "If the account exists, an administrator will reset its password")
}

// ListResets returns the pending requests, newest first.
func (h *PasswordResetHandler) ListResets(c echo.Context) error {
	requests, err := h.resetUC.ListResets(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	items := make([]resetResponse, 0, len(requests))
	for _, req := range requests {
		items = append(items, resetResponse{ID: req.ID, Email: req.Email, RequestedAt: req.RequestedAt})
	}

	return response.Success(c, http.StatusOK, items, "")
}

// CompleteReset sets a new password for the request's account and closes the request.
func (h *PasswordResetHandler) CompleteReset(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return domainerrors.ErrValidationFailed.WithDetails("id must be a positive integer")
	}

	var req completeResetRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	err = h.resetUC.CompleteReset(c.Request().Context(), &usecase.CompleteResetInput{
		RequestID:   id,
		Email:       req.Email,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		return errors.WithStack(err)
	}
	h.observe(resetActionCompleted)

	return response.Success(c, http.StatusOK, nil, "Password reset completed")
}

func (h *PasswordResetHandler) observe(action string) {
	if h.metrics != nil {
		h.metrics.ObserveReset(action)
	}
}
