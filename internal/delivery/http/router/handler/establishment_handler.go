package handler

import (
	"log/slog"
	"net/http"

	"smachna/internal/delivery/http/middleware"
	"smachna/internal/delivery/http/response"
	"smachna/internal/domain/entity"
	"smachna/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// EstablishmentHandlerParams holds dependencies for EstablishmentHandler, injected by Fx.
type EstablishmentHandlerParams struct {
	fx.In

	PartnerUC usecase.PartnerEstablishmentUsecase
	Logger    *slog.Logger
}

// EstablishmentHandler handles the partner-facing establishment endpoints.
type EstablishmentHandler struct {
	partnerUC usecase.PartnerEstablishmentUsecase
	logger    *slog.Logger
}

// NewEstablishmentHandler is the constructor for EstablishmentHandler
func NewEstablishmentHandler(params EstablishmentHandlerParams) *EstablishmentHandler {
	return &EstablishmentHandler{
		partnerUC: params.PartnerUC,
		logger:    params.Logger,
	}
}

// CreateEstablishmentRequest represents the request body for creating an establishment
type CreateEstablishmentRequest struct {
	Name         string               `json:"name" validate:"required,min=1,max=255"`
	Description  string               `json:"description" validate:"max=4000"`
	City         string               `json:"city" validate:"required"`
	Address      string               `json:"address" validate:"required"`
	Latitude     *float64             `json:"latitude" validate:"omitempty,latitude"`
	Longitude    *float64             `json:"longitude" validate:"omitempty,longitude"`
	Phone        string               `json:"phone"`
	Email        string               `json:"email" validate:"omitempty,email"`
	Website      string               `json:"website" validate:"omitempty,url"`
	Categories   []string             `json:"categories" validate:"required,min=1"`
	Cuisines     []string             `json:"cuisines"`
	PriceRange   string               `json:"price_range" validate:"omitempty,oneof=$ $$ $$$"`
	WorkingHours entity.WorkingHours  `json:"working_hours"`
	Attributes   entity.Attributes    `json:"attributes"`
	Media        []MediaRequest       `json:"media" validate:"dive"`
}

// MediaRequest represents one media asset in a create request
type MediaRequest struct {
	URL      string `json:"url" validate:"required,url"`
	Kind     string `json:"kind" validate:"omitempty,oneof=photo menu logo"`
	Position int    `json:"position" validate:"min=0"`
}

// UpdateEstablishmentRequest represents the partial update body; absent fields stay untouched
type UpdateEstablishmentRequest struct {
	Name         *string              `json:"name" validate:"omitempty,min=1,max=255"`
	Description  *string              `json:"description" validate:"omitempty,max=4000"`
	City         *string              `json:"city"`
	Address      *string              `json:"address"`
	Latitude     *float64             `json:"latitude" validate:"omitempty,latitude"`
	Longitude    *float64             `json:"longitude" validate:"omitempty,longitude"`
	Phone        *string              `json:"phone"`
	Email        *string              `json:"email" validate:"omitempty,email"`
	Website      *string              `json:"website" validate:"omitempty,url"`
	Categories   []string             `json:"categories"`
	Cuisines     []string             `json:"cuisines"`
	PriceRange   *string              `json:"price_range" validate:"omitempty,oneof=$ $$ $$$"`
	WorkingHours *entity.WorkingHours `json:"working_hours"`
	Attributes   *entity.Attributes   `json:"attributes"`
}

// RespondToReviewRequest represents the request body for a partner review response
type RespondToReviewRequest struct {
	Text string `json:"text" validate:"required,min=1,max=2000"`
}

// CreateEstablishment handles creating a new draft establishment for the partner
func (h *EstablishmentHandler) CreateEstablishment(c echo.Context) error {
	partnerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CreateEstablishmentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid establishment input")
	}

	if err := c.Validate(&req); err != nil {
		return response.UnprocessableEntity(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.EstablishmentInput{
		Name:         req.Name,
		Description:  req.Description,
		City:         req.City,
		Address:      req.Address,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		Phone:        req.Phone,
		Email:        req.Email,
		Website:      req.Website,
		Categories:   req.Categories,
		Cuisines:     req.Cuisines,
		PriceRange:   req.PriceRange,
		WorkingHours: req.WorkingHours,
		Attributes:   req.Attributes,
	}
	for _, m := range req.Media {
		input.Media = append(input.Media, usecase.MediaInput{
			URL:      m.URL,
			Kind:     m.Kind,
			Position: m.Position,
		})
	}

	establishment, err := h.partnerUC.CreateEstablishment(c.Request().Context(), partnerID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, establishment)
}

// ListEstablishments handles listing the partner's own establishments
func (h *EstablishmentHandler) ListEstablishments(c echo.Context) error {
	partnerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var status *entity.EstablishmentStatus
	if raw := c.QueryParam("status"); raw != "" {
		s := entity.EstablishmentStatus(raw)
		if !s.IsValid() {
			return response.UnprocessableEntity(c, "VALIDATION_ERROR", "Unknown establishment status")
		}
		status = &s
	}

	establishments, pagination, err := h.partnerUC.ListEstablishments(c.Request().Context(), partnerID, status, parsePage(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithMeta(c, http.StatusOK, establishments, pagination)
}

// GetEstablishment handles retrieving one of the partner's establishments
func (h *EstablishmentHandler) GetEstablishment(c echo.Context) error {
	partnerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.UnprocessableEntity(c, "VALIDATION_ERROR", "Invalid establishment ID")
	}

	establishment, err := h.partnerUC.GetEstablishment(c.Request().Context(), partnerID, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, establishment)
}

// UpdateEstablishment handles a partial update of one of the partner's establishments
func (h *EstablishmentHandler) UpdateEstablishment(c echo.Context) error {
	partnerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.UnprocessableEntity(c, "VALIDATION_ERROR", "Invalid establishment ID")
	}

	var req UpdateEstablishmentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid establishment input")
	}

	if err := c.Validate(&req); err != nil {
		return response.UnprocessableEntity(c, "VALIDATION_ERROR", err.Error())
	}

	update := &usecase.EstablishmentUpdate{
		Name:         req.Name,
		Description:  req.Description,
		City:         req.City,
		Address:      req.Address,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		Phone:        req.Phone,
		Email:        req.Email,
		Website:      req.Website,
		Categories:   req.Categories,
		Cuisines:     req.Cuisines,
		PriceRange:   req.PriceRange,
		WorkingHours: req.WorkingHours,
		Attributes:   req.Attributes,
	}

	establishment, err := h.partnerUC.UpdateEstablishment(c.Request().Context(), partnerID, id, update)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, establishment)
}

// SubmitEstablishment handles submitting a draft establishment for moderation
func (h *EstablishmentHandler) SubmitEstablishment(c echo.Context) error {
	partnerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.UnprocessableEntity(c, "VALIDATION_ERROR", "Invalid establishment ID")
	}

	establishment, err := h.partnerUC.SubmitEstablishment(c.Request().Context(), partnerID, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, establishment)
}

// RespondToReview handles attaching the partner's response to a review
func (h *EstablishmentHandler) RespondToReview(c echo.Context) error {
	partnerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	reviewID, err := uuid.Parse(c.Param("reviewId"))
	if err != nil {
		return response.UnprocessableEntity(c, "VALIDATION_ERROR", "Invalid review ID")
	}

	var req RespondToReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid response input")
	}

	if err := c.Validate(&req); err != nil {
		return response.UnprocessableEntity(c, "VALIDATION_ERROR", err.Error())
	}

	review, err := h.partnerUC.RespondToReview(c.Request().Context(), partnerID, reviewID, req.Text)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, review)
}
