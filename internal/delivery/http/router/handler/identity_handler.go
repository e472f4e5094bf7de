// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"lumea/internal/delivery/http/response"
	"lumea/internal/domain/entity"
	"lumea/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// addressRequest is the postal address payload shared by signup and the
// profile step.
type addressRequest struct {
	Country     string `json:"country"`
	City        string `json:"city"`
	Postcode    string `json:"postcode"`
	FullAddress string `json:"full_address"`
}

func (r *addressRequest) toInput() *usecase.AddressInput {
	if r == nil {
		return nil
	}

	return &usecase.AddressInput{
		Country:     r.Country,
		City:        r.City,
		Postcode:    r.Postcode,
		FullAddress: r.FullAddress,
	}
}

type registerRequest struct {
	FirstName string          `json:"first_name"`
	LastName  string          `json:"last_name"`
	Email     string          `json:"email"`
	Password  string          `json:"password"`
	Address   *addressRequest `json:"address"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// identityResponse is the identity projection returned to clients. Password
// hashes and internal flags never leave the server.
type identityResponse struct {
	ID               string `json:"id"`
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	Email            string `json:"email"`
	Role             string `json:"role"`
	ApprovalStatus   string `json:"approval_status"`
	ApprovalMessage  string `json:"approval_message,omitempty"`
	RegistrationStep int    `json:"registration_step"`
}

func toIdentityResponse(identity *entity.Identity) *identityResponse {
	return &identityResponse{
		ID:               identity.ID.String(),
		FirstName:        identity.FirstName,
		LastName:         identity.LastName,
		Email:            identity.Email,
		Role:             identity.Role.String(),
		ApprovalStatus:   identity.ApprovalStatus.String(),
		ApprovalMessage:  identity.ApprovalMessage,
		RegistrationStep: identity.RegistrationStep,
	}
}

type registerResponse struct {
	Identity    *identityResponse `json:"identity"`
	AccessToken string            `json:"access_token,omitempty"`
}

type loginResponse struct {
	AccessToken string            `json:"access_token"`
	Identity    *identityResponse `json:"identity"`
}

// IdentityHandler holds dependencies for account-related handlers.
type IdentityHandler struct {
	uc     usecase.IdentityUsecase
	logger *slog.Logger
}

// NewIdentityHandler is the constructor for IdentityHandler, injected by Fx.
func NewIdentityHandler(uc usecase.IdentityUsecase, logger *slog.Logger) *IdentityHandler {
	return &IdentityHandler{
		uc:     uc,
		logger: logger,
	}
}

// RegisterClient handles the client registration request.
func (h *IdentityHandler) RegisterClient(c echo.Context) error {
	var req *registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	output, err := h.uc.RegisterClient(c.Request().Context(), &usecase.RegisterClientInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Address:   req.Address.toInput(),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, &registerResponse{
		Identity:    toIdentityResponse(output.Identity),
		AccessToken: output.AccessToken,
	}, "Client registered successfully")
}

// RegisterOwner handles the salon owner application request.
func (h *IdentityHandler) RegisterOwner(c echo.Context) error {
	return h.registerProvider(c, entity.RoleOwner, "Salon owner application submitted")
}

// RegisterProfessional handles the independent professional application request.
func (h *IdentityHandler) RegisterProfessional(c echo.Context) error {
	return h.registerProvider(c, entity.RoleProfessional, "Professional application submitted")
}

func (h *IdentityHandler) registerProvider(c echo.Context, role entity.Role, message string) error {
	var req *registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	output, err := h.uc.RegisterProvider(c.Request().Context(), &usecase.RegisterProviderInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Role:      role,
		Address:   req.Address.toInput(),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, &registerResponse{
		Identity: toIdentityResponse(output.Identity),
	}, message)
}

// Login handles the login request.
func (h *IdentityHandler) Login(c echo.Context) error {
	var req *loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &loginResponse{
		AccessToken: output.AccessToken,
		Identity:    toIdentityResponse(output.Identity),
	}, "Login successful")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
