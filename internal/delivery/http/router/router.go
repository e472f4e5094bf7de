// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"lumea/internal/delivery/http/middleware"
	"lumea/internal/delivery/http/router/handler"
	"lumea/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	IdentityHandler     *handler.IdentityHandler
	RegistrationHandler *handler.RegistrationHandler
	AdminHandler        *handler.AdminHandler
	ListingHandler      *handler.ListingHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	identityHandler     *handler.IdentityHandler
	registrationHandler *handler.RegistrationHandler
	adminHandler        *handler.AdminHandler
	listingHandler      *handler.ListingHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		identityHandler:     params.IdentityHandler,
		registrationHandler: params.RegistrationHandler,
		adminHandler:        params.AdminHandler,
		listingHandler:      params.ListingHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register/client", r.identityHandler.RegisterClient)
		authGroup.POST("/register/owner", r.identityHandler.RegisterOwner)
		authGroup.POST("/register/professional", r.identityHandler.RegisterProfessional)
		authGroup.POST("/login", r.identityHandler.Login)
	}

	// Onboarding step routes. Applicants cannot log in until approved, so
	// these carry the identity id in the payload instead of a bearer token.
	registrationGroup := e.Group("/registration")
	{
		professionalGroup := registrationGroup.Group("/professional")
		professionalGroup.POST("/profile", r.registrationHandler.ProfessionalProfile)
		professionalGroup.POST("/portfolio", r.registrationHandler.ProfessionalPortfolio)
		professionalGroup.POST("/services", r.registrationHandler.ProfessionalServices)
		professionalGroup.POST("/submit", r.registrationHandler.ProfessionalSubmit)

		salonGroup := registrationGroup.Group("/salon")
		salonGroup.POST("/profile", r.registrationHandler.SalonProfile)
		salonGroup.POST("/portfolio", r.registrationHandler.SalonPortfolio)
		salonGroup.POST("/services", r.registrationHandler.SalonServices)
		salonGroup.POST("/hours", r.registrationHandler.SalonHours)
		salonGroup.POST("/faqs", r.registrationHandler.SalonFAQs)
		salonGroup.POST("/finalize", r.registrationHandler.SalonFinalize)
	}

	// Image uploads feed step payloads, so they share the onboarding trust model.
	e.POST("/uploads/images", r.listingHandler.UploadImage)

	// Public listing routes
	listingGroup := e.Group("/listings")
	{
		listingGroup.GET("", r.listingHandler.List)
		listingGroup.GET("/:id", r.listingHandler.Get)
		listingGroup.GET("/:id/qr", r.listingHandler.ShareQR)
	}

	// Administrator routes require authentication and the "admin" role
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/applications", r.adminHandler.ListPending)
		adminGroup.POST("/applications/:id/approve", r.adminHandler.Approve)
		adminGroup.POST("/applications/:id/reject", r.adminHandler.Reject)
		adminGroup.POST("/identities/:id/deactivate", r.adminHandler.Deactivate)
	}
}
