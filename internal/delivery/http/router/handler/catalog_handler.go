package handler

import (
	"log/slog"
	"net/http"

	"smachna/internal/delivery/http/middleware"
	"smachna/internal/delivery/http/response"
	"smachna/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	ReviewUC  usecase.ReviewUsecase
	Logger    *slog.Logger
}

// CatalogHandler handles the public directory and review endpoints.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	reviewUC  usecase.ReviewUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		reviewUC:  params.ReviewUC,
		logger:    params.Logger,
	}
}

// CreateReviewRequest represents the request body for posting a review
type CreateReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Content string `json:"content" validate:"max=4000"`
}

// ListEstablishments handles the public catalog listing
func (h *CatalogHandler) ListEstablishments(c echo.Context) error {
	establishments, pagination, err := h.catalogUC.ListEstablishments(
		c.Request().Context(),
		c.QueryParam("city"),
		c.QueryParam("category"),
		parsePage(c),
	)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithMeta(c, http.StatusOK, establishments, pagination)
}

// GetEstablishment handles retrieving a single active establishment
func (h *CatalogHandler) GetEstablishment(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.UnprocessableEntity(c, "VALIDATION_ERROR", "Invalid establishment ID")
	}

	establishment, err := h.catalogUC.GetEstablishment(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, establishment)
}

// ListReviews handles listing the visible reviews of an establishment
func (h *CatalogHandler) ListReviews(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.UnprocessableEntity(c, "VALIDATION_ERROR", "Invalid establishment ID")
	}

	reviews, pagination, err := h.reviewUC.ListReviews(c.Request().Context(), id, parsePage(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithMeta(c, http.StatusOK, reviews, pagination)
}

// CreateReview handles posting a review against an active establishment
func (h *CatalogHandler) CreateReview(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	establishmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.UnprocessableEntity(c, "VALIDATION_ERROR", "Invalid establishment ID")
	}

	var req CreateReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}

	if err := c.Validate(&req); err != nil {
		return response.UnprocessableEntity(c, "VALIDATION_ERROR", err.Error())
	}

	review, err := h.reviewUC.CreateReview(c.Request().Context(), userID, establishmentID, &usecase.ReviewInput{
		Rating:  req.Rating,
		Content: req.Content,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, review)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
