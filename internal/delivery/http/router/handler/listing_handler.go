package handler

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"lumea/internal/delivery/http/response"
	"lumea/internal/domain/entity"
	"lumea/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// profileResponse is the public projection of a provider profile.
type profileResponse struct {
	ID               string  `json:"id"`
	Type             string  `json:"type"`
	Name             string  `json:"name"`
	ContactEmail     string  `json:"contact_email,omitempty"`
	Phone            string  `json:"phone,omitempty"`
	Description      string  `json:"description,omitempty"`
	ImageURL         string  `json:"image_url,omitempty"`
	RegistrationStep int     `json:"registration_step"`
	RatingAverage    float64 `json:"rating_average"`
	RatingCount      int     `json:"rating_count"`

	Services       []serviceResponse       `json:"services,omitempty"`
	Portfolios     []portfolioResponse     `json:"portfolios,omitempty"`
	Certifications []certificationResponse `json:"certifications,omitempty"`
	SocialLinks    []socialLinkResponse    `json:"social_links,omitempty"`
	FAQs           []faqResponse           `json:"faqs,omitempty"`
	OperatingHours []operatingHourResponse `json:"operating_hours,omitempty"`
}

type serviceResponse struct {
	Name            string  `json:"name"`
	DurationMinutes int     `json:"duration_minutes"`
	Price           float64 `json:"price"`
	DiscountedPrice float64 `json:"discounted_price,omitempty"`
	Description     string  `json:"description,omitempty"`
	ImageURL        string  `json:"image_url,omitempty"`
}

type portfolioResponse struct {
	AlbumName string   `json:"album_name"`
	ImageURLs []string `json:"image_urls"`
}

type certificationResponse struct {
	Title         string     `json:"title"`
	IssuedAt      *time.Time `json:"issued_at,omitempty"`
	CredentialID  string     `json:"credential_id,omitempty"`
	CredentialURL string     `json:"credential_url,omitempty"`
}

type socialLinkResponse struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

type faqResponse struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type operatingHourResponse struct {
	Weekday  int    `json:"weekday"`
	OpensAt  string `json:"opens_at,omitempty"`
	ClosesAt string `json:"closes_at,omitempty"`
	Closed   bool   `json:"closed"`
}

func toProfileResponse(profile *entity.ProviderProfile) *profileResponse {
	if profile == nil {
		return nil
	}

	resp := &profileResponse{
		ID:               profile.ID.String(),
		Type:             profile.Type.String(),
		Name:             profile.Name,
		ContactEmail:     profile.ContactEmail,
		Phone:            profile.Phone,
		Description:      profile.Description,
		ImageURL:         profile.ImageURL,
		RegistrationStep: profile.RegistrationStep,
		RatingAverage:    profile.RatingAverage,
		RatingCount:      profile.RatingCount,
	}

	for _, svc := range profile.Services {
		resp.Services = append(resp.Services, serviceResponse{
			Name:            svc.Name,
			DurationMinutes: svc.DurationMinutes,
			Price:           svc.Price,
			DiscountedPrice: svc.DiscountedPrice,
			Description:     svc.Description,
			ImageURL:        svc.ImageURL,
		})
	}
	for _, album := range profile.Portfolios {
		urls := make([]string, 0, len(album.Images))
		for _, img := range album.Images {
			urls = append(urls, img.ImageURL)
		}
		resp.Portfolios = append(resp.Portfolios, portfolioResponse{
			AlbumName: album.AlbumName,
			ImageURLs: urls,
		})
	}
	for _, cert := range profile.Certifications {
		resp.Certifications = append(resp.Certifications, certificationResponse{
			Title:         cert.Title,
			IssuedAt:      cert.IssuedAt,
			CredentialID:  cert.CredentialID,
			CredentialURL: cert.CredentialURL,
		})
	}
	for _, link := range profile.SocialLinks {
		resp.SocialLinks = append(resp.SocialLinks, socialLinkResponse{
			Platform: link.Platform.String(),
			URL:      link.URL,
		})
	}
	for _, faq := range profile.FAQs {
		resp.FAQs = append(resp.FAQs, faqResponse{Question: faq.Question, Answer: faq.Answer})
	}
	for _, hour := range profile.OperatingHours {
		resp.OperatingHours = append(resp.OperatingHours, operatingHourResponse{
			Weekday:  int(hour.Weekday),
			OpensAt:  hour.OpensAt,
			ClosesAt: hour.ClosesAt,
			Closed:   hour.Closed,
		})
	}

	return resp
}

// ListingHandler holds dependencies for the public listing handlers.
type ListingHandler struct {
	uc     usecase.ListingUsecase
	logger *slog.Logger
}

// NewListingHandler is the constructor for ListingHandler, injected by Fx.
func NewListingHandler(uc usecase.ListingUsecase, logger *slog.Logger) *ListingHandler {
	return &ListingHandler{
		uc:     uc,
		logger: logger,
	}
}

// List handles the paged public listing query.
func (h *ListingHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	perPage, _ := strconv.Atoi(c.QueryParam("per_page"))

	profiles, err := h.uc.ListApproved(c.Request().Context(), &usecase.ListListingsInput{
		Type:    entity.ProviderType(c.QueryParam("type")),
		Page:    page,
		PerPage: perPage,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	items := make([]*profileResponse, 0, len(profiles))
	for _, profile := range profiles {
		items = append(items, toProfileResponse(profile))
	}

	return response.Success(c, http.StatusOK, items, "Listings retrieved")
}

// Get handles the public profile page request.
func (h *ListingHandler) Get(c echo.Context) error {
	profileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid listing id")
	}

	profile, err := h.uc.GetPublicProfile(c.Request().Context(), profileID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProfileResponse(profile), "Listing retrieved")
}

// ShareQR renders the PNG share code for an approved listing.
func (h *ListingHandler) ShareQR(c echo.Context) error {
	profileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid listing id")
	}

	png, err := h.uc.GenerateShareQR(c.Request().Context(), profileID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// UploadImage stores an uploaded image and returns its public URL. The upload
// happens before any step transaction, so callers submit the returned URL in
// a later step payload.
func (h *ListingHandler) UploadImage(c echo.Context) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Image file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Image file could not be read")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Image file could not be read")
	}

	output, err := h.uc.UploadImage(c.Request().Context(), &usecase.UploadImageInput{
		Data:        data,
		ContentType: fileHeader.Header.Get("Content-Type"),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"url": output.URL}, "Image uploaded")
}
