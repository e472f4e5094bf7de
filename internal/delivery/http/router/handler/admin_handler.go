package handler

import (
	"log/slog"
	"net/http"

	"lumea/internal/delivery/http/response"
	"lumea/internal/domain/entity"
	"lumea/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type approveRequest struct {
	GrantedRole string `json:"granted_role"`
}

type rejectRequest struct {
	Reason string `json:"reason"`
}

// AdminHandler holds dependencies for the administrator review handlers.
type AdminHandler struct {
	uc     usecase.ApprovalUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.ApprovalUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListPending returns the applications awaiting review.
func (h *AdminHandler) ListPending(c echo.Context) error {
	identities, err := h.uc.ListPending(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	items := make([]*identityResponse, 0, len(identities))
	for _, identity := range identities {
		items = append(items, toIdentityResponse(identity))
	}

	return response.Success(c, http.StatusOK, items, "Pending applications retrieved")
}

// Approve grants a provider application.
func (h *AdminHandler) Approve(c echo.Context) error {
	identityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid identity id")
	}

	var req *approveRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid approval input")
	}

	input := &usecase.ApproveInput{IdentityID: identityID}
	if req != nil {
		input.GrantedRole = entity.Role(req.GrantedRole)
	}

	if err := h.uc.Approve(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Application approved")
}

// Reject declines a provider application with an optional reason.
func (h *AdminHandler) Reject(c echo.Context) error {
	identityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid identity id")
	}

	var req *rejectRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rejection input")
	}

	input := &usecase.RejectInput{IdentityID: identityID}
	if req != nil {
		input.Reason = req.Reason
	}

	if err := h.uc.Reject(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Application rejected")
}

// Deactivate soft-deletes an identity and everything it owns.
func (h *AdminHandler) Deactivate(c echo.Context) error {
	identityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid identity id")
	}

	if err := h.uc.Deactivate(c.Request().Context(), identityID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Identity deactivated")
}
