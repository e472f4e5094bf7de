package handler

import (
	"log/slog"
	"net/http"
	"time"

	"lumea/internal/delivery/http/response"
	"lumea/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// stepRequestBase carries the fields every step payload shares: the applicant's
// identity id and an optional profile id that must belong to that identity.
type stepRequestBase struct {
	IdentityID uuid.UUID  `json:"identity_id"`
	ProfileID  *uuid.UUID `json:"profile_id,omitempty"`
}

type profileStepRequest struct {
	IdentityID   uuid.UUID       `json:"identity_id"`
	Name         string          `json:"name"`
	ContactEmail string          `json:"contact_email"`
	Phone        string          `json:"phone"`
	Description  string          `json:"description"`
	ImageURL     string          `json:"image_url"`
	Address      *addressRequest `json:"address"`
}

type portfolioAlbumRequest struct {
	AlbumName string   `json:"album_name"`
	ImageURLs []string `json:"image_urls"`
}

type portfolioStepRequest struct {
	stepRequestBase
	Albums []portfolioAlbumRequest `json:"albums"`
}

type serviceRequest struct {
	Name            string  `json:"name"`
	DurationMinutes int     `json:"duration_minutes"`
	Price           float64 `json:"price"`
	DiscountedPrice float64 `json:"discounted_price"`
	Description     string  `json:"description"`
	ImageURL        string  `json:"image_url"`
}

type servicesStepRequest struct {
	stepRequestBase
	Services []serviceRequest `json:"services"`
}

type operatingHourRequest struct {
	Weekday  int    `json:"weekday"`
	OpensAt  string `json:"opens_at"`
	ClosesAt string `json:"closes_at"`
	Closed   bool   `json:"closed"`
}

type hoursStepRequest struct {
	stepRequestBase
	Hours []operatingHourRequest `json:"hours"`
}

type faqRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type socialLinkRequest struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

type certificationRequest struct {
	Title         string     `json:"title"`
	IssuedAt      *time.Time `json:"issued_at,omitempty"`
	CredentialID  string     `json:"credential_id"`
	CredentialURL string     `json:"credential_url"`
}

type professionalFinalStepRequest struct {
	stepRequestBase
	FAQs           []faqRequest           `json:"faqs"`
	SocialLinks    []socialLinkRequest    `json:"social_links"`
	Certifications []certificationRequest `json:"certifications"`
}

type faqStepRequest struct {
	stepRequestBase
	FAQs        []faqRequest        `json:"faqs"`
	SocialLinks []socialLinkRequest `json:"social_links"`
}

type finalizeStepRequest struct {
	stepRequestBase
}

// stepResponse reports the onboarding state after a step submission.
type stepResponse struct {
	Profile          *profileResponse `json:"profile"`
	RegistrationStep int              `json:"registration_step"`
	Completed        bool             `json:"completed"`
}

func toStepResponse(output *usecase.StepOutput) *stepResponse {
	return &stepResponse{
		Profile:          toProfileResponse(output.Profile),
		RegistrationStep: output.RegistrationStep,
		Completed:        output.Completed,
	}
}

// RegistrationHandler holds dependencies for the onboarding step handlers.
type RegistrationHandler struct {
	uc     usecase.RegistrationUsecase
	logger *slog.Logger
}

// NewRegistrationHandler is the constructor for RegistrationHandler, injected by Fx.
func NewRegistrationHandler(uc usecase.RegistrationUsecase, logger *slog.Logger) *RegistrationHandler {
	return &RegistrationHandler{
		uc:     uc,
		logger: logger,
	}
}

type stepCall[I any] func(c echo.Context, input I) (*usecase.StepOutput, error)

// submitStep binds the payload, forwards it to the usecase and renders the
// shared step response.
func submitStep[I any](c echo.Context, call stepCall[*I]) error {
	var req *I
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid step input")
	}

	output, err := call(c, req)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toStepResponse(output), "Step submitted")
}

// --- Independent professional sequence ---

// ProfessionalProfile handles step 1 of the professional sequence.
func (h *RegistrationHandler) ProfessionalProfile(c echo.Context) error {
	return submitStep(c, func(c echo.Context, req *profileStepRequest) (*usecase.StepOutput, error) {
		return h.uc.SubmitProfessionalProfile(c.Request().Context(), req.toInput())
	})
}

// ProfessionalPortfolio handles step 2 of the professional sequence.
func (h *RegistrationHandler) ProfessionalPortfolio(c echo.Context) error {
	return submitStep(c, func(c echo.Context, req *portfolioStepRequest) (*usecase.StepOutput, error) {
		return h.uc.SubmitProfessionalPortfolio(c.Request().Context(), req.toInput())
	})
}

// ProfessionalServices handles step 3 of the professional sequence.
func (h *RegistrationHandler) ProfessionalServices(c echo.Context) error {
	return submitStep(c, func(c echo.Context, req *servicesStepRequest) (*usecase.StepOutput, error) {
		return h.uc.SubmitProfessionalServices(c.Request().Context(), req.toInput())
	})
}

// ProfessionalSubmit handles the terminal step of the professional sequence.
func (h *RegistrationHandler) ProfessionalSubmit(c echo.Context) error {
	return submitStep(c, func(c echo.Context, req *professionalFinalStepRequest) (*usecase.StepOutput, error) {
		return h.uc.SubmitProfessionalFinal(c.Request().Context(), req.toInput())
	})
}

// --- Salon owner sequence ---

// SalonProfile handles step 1 of the salon sequence.
func (h *RegistrationHandler) SalonProfile(c echo.Context) error {
	return submitStep(c, func(c echo.Context, req *profileStepRequest) (*usecase.StepOutput, error) {
		return h.uc.SubmitSalonProfile(c.Request().Context(), req.toInput())
	})
}

// SalonPortfolio handles step 2 of the salon sequence.
func (h *RegistrationHandler) SalonPortfolio(c echo.Context) error {
	return submitStep(c, func(c echo.Context, req *portfolioStepRequest) (*usecase.StepOutput, error) {
		return h.uc.SubmitSalonPortfolio(c.Request().Context(), req.toInput())
	})
}

// SalonServices handles step 3 of the salon sequence.
func (h *RegistrationHandler) SalonServices(c echo.Context) error {
	return submitStep(c, func(c echo.Context, req *servicesStepRequest) (*usecase.StepOutput, error) {
		return h.uc.SubmitSalonServices(c.Request().Context(), req.toInput())
	})
}

// SalonHours handles step 4 of the salon sequence.
func (h *RegistrationHandler) SalonHours(c echo.Context) error {
	return submitStep(c, func(c echo.Context, req *hoursStepRequest) (*usecase.StepOutput, error) {
		return h.uc.SubmitSalonHours(c.Request().Context(), req.toInput())
	})
}

// SalonFAQs handles step 5 of the salon sequence.
func (h *RegistrationHandler) SalonFAQs(c echo.Context) error {
	return submitStep(c, func(c echo.Context, req *faqStepRequest) (*usecase.StepOutput, error) {
		return h.uc.SubmitSalonFAQs(c.Request().Context(), req.toInput())
	})
}

// SalonFinalize handles the terminal step of the salon sequence.
func (h *RegistrationHandler) SalonFinalize(c echo.Context) error {
	return submitStep(c, func(c echo.Context, req *finalizeStepRequest) (*usecase.StepOutput, error) {
		return h.uc.SubmitSalonFinalize(c.Request().Context(), req.toInput())
	})
}

// --- request to usecase input mapping ---

func (r *profileStepRequest) toInput() *usecase.ProfileStepInput {
	return &usecase.ProfileStepInput{
		IdentityID:   r.IdentityID,
		Name:         r.Name,
		ContactEmail: r.ContactEmail,
		Phone:        r.Phone,
		Description:  r.Description,
		ImageURL:     r.ImageURL,
		Address:      r.Address.toInput(),
	}
}

func (r *portfolioStepRequest) toInput() *usecase.PortfolioStepInput {
	albums := make([]usecase.PortfolioAlbumInput, 0, len(r.Albums))
	for _, album := range r.Albums {
		albums = append(albums, usecase.PortfolioAlbumInput{
			AlbumName: album.AlbumName,
			ImageURLs: album.ImageURLs,
		})
	}

	return &usecase.PortfolioStepInput{
		IdentityID: r.IdentityID,
		ProfileID:  r.ProfileID,
		Albums:     albums,
	}
}

func (r *servicesStepRequest) toInput() *usecase.ServicesStepInput {
	services := make([]usecase.ServiceInput, 0, len(r.Services))
	for _, svc := range r.Services {
		services = append(services, usecase.ServiceInput{
			Name:            svc.Name,
			DurationMinutes: svc.DurationMinutes,
			Price:           svc.Price,
			DiscountedPrice: svc.DiscountedPrice,
			Description:     svc.Description,
			ImageURL:        svc.ImageURL,
		})
	}

	return &usecase.ServicesStepInput{
		IdentityID: r.IdentityID,
		ProfileID:  r.ProfileID,
		Services:   services,
	}
}

func (r *hoursStepRequest) toInput() *usecase.HoursStepInput {
	hours := make([]usecase.OperatingHourInput, 0, len(r.Hours))
	for _, hour := range r.Hours {
		hours = append(hours, usecase.OperatingHourInput{
			Weekday:  hour.Weekday,
			OpensAt:  hour.OpensAt,
			ClosesAt: hour.ClosesAt,
			Closed:   hour.Closed,
		})
	}

	return &usecase.HoursStepInput{
		IdentityID: r.IdentityID,
		ProfileID:  r.ProfileID,
		Hours:      hours,
	}
}

func toFAQInputs(reqs []faqRequest) []usecase.FAQInput {
	faqs := make([]usecase.FAQInput, 0, len(reqs))
	for _, faq := range reqs {
		faqs = append(faqs, usecase.FAQInput{Question: faq.Question, Answer: faq.Answer})
	}

	return faqs
}

func toSocialLinkInputs(reqs []socialLinkRequest) []usecase.SocialLinkInput {
	links := make([]usecase.SocialLinkInput, 0, len(reqs))
	for _, link := range reqs {
		links = append(links, usecase.SocialLinkInput{Platform: link.Platform, URL: link.URL})
	}

	return links
}

func (r *professionalFinalStepRequest) toInput() *usecase.ProfessionalFinalStepInput {
	certs := make([]usecase.CertificationInput, 0, len(r.Certifications))
	for _, cert := range r.Certifications {
		certs = append(certs, usecase.CertificationInput{
			Title:         cert.Title,
			IssuedAt:      cert.IssuedAt,
			CredentialID:  cert.CredentialID,
			CredentialURL: cert.CredentialURL,
		})
	}

	return &usecase.ProfessionalFinalStepInput{
		IdentityID:     r.IdentityID,
		ProfileID:      r.ProfileID,
		FAQs:           toFAQInputs(r.FAQs),
		SocialLinks:    toSocialLinkInputs(r.SocialLinks),
		Certifications: certs,
	}
}

func (r *faqStepRequest) toInput() *usecase.FAQStepInput {
	return &usecase.FAQStepInput{
		IdentityID:  r.IdentityID,
		ProfileID:   r.ProfileID,
		FAQs:        toFAQInputs(r.FAQs),
		SocialLinks: toSocialLinkInputs(r.SocialLinks),
	}
}

func (r *finalizeStepRequest) toInput() *usecase.FinalizeStepInput {
	return &usecase.FinalizeStepInput{
		IdentityID: r.IdentityID,
		ProfileID:  r.ProfileID,
	}
}
