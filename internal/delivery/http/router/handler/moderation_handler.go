package handler

import (
	"log/slog"
	"net/http"
	"time"

	"smachna/internal/delivery/http/middleware"
	"smachna/internal/delivery/http/response"
	"smachna/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ModerationHandlerParams holds dependencies for ModerationHandler, injected by Fx.
type ModerationHandlerParams struct {
	fx.In

	ModerationUC usecase.AdminModerationUsecase
	Logger       *slog.Logger
}

// ModerationHandler handles the admin moderation endpoints.
type ModerationHandler struct {
	moderationUC usecase.AdminModerationUsecase
	logger       *slog.Logger
}

// NewModerationHandler is the constructor for ModerationHandler
func NewModerationHandler(params ModerationHandlerParams) *ModerationHandler {
	return &ModerationHandler{
		moderationUC: params.ModerationUC,
		logger:       params.Logger,
	}
}

// ModerateRequest represents the request body for a moderation action
type ModerateRequest struct {
	Action string `json:"action" validate:"required,oneof=approve reject suspend archive"`
	Reason string `json:"reason" validate:"max=2000"`
}

// DeleteReviewRequest represents the optional request body for deleting a review
type DeleteReviewRequest struct {
	Reason string `json:"reason" validate:"max=2000"`
}

// Moderate handles applying a moderation action to an establishment
func (h *ModerationHandler) Moderate(c echo.Context) error {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	establishmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.UnprocessableEntity(c, "VALIDATION_ERROR", "Invalid establishment ID")
	}

	var req ModerateRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid moderation input")
	}

	if err := c.Validate(&req); err != nil {
		return response.UnprocessableEntity(c, "VALIDATION_ERROR", err.Error())
	}

	establishment, err := h.moderationUC.Moderate(
		c.Request().Context(),
		adminID,
		establishmentID,
		usecase.ModerationAction(req.Action),
		req.Reason,
		requestMeta(c),
	)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, establishment)
}

// ToggleReviewVisibility handles flipping the visibility flag on a review
func (h *ModerationHandler) ToggleReviewVisibility(c echo.Context) error {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.UnprocessableEntity(c, "VALIDATION_ERROR", "Invalid review ID")
	}

	review, err := h.moderationUC.ToggleReviewVisibility(c.Request().Context(), adminID, reviewID, requestMeta(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, review)
}

// DeleteReview handles soft-deleting a review
func (h *ModerationHandler) DeleteReview(c echo.Context) error {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.UnprocessableEntity(c, "VALIDATION_ERROR", "Invalid review ID")
	}

	// The body is optional; a bare POST with no payload is fine.
	var req DeleteReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid delete input")
	}

	if err := h.moderationUC.DeleteReview(c.Request().Context(), adminID, reviewID, req.Reason, requestMeta(c)); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Review deleted"})
}

// ListReviews handles the admin review listing across visibility states
func (h *ModerationHandler) ListReviews(c echo.Context) error {
	reviews, pagination, err := h.moderationUC.ListReviews(c.Request().Context(), c.QueryParam("status"), parsePage(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithMeta(c, http.StatusOK, reviews, pagination)
}

// ListAuditLog handles the admin audit trail listing
func (h *ModerationHandler) ListAuditLog(c echo.Context) error {
	query := usecase.AuditLogQuery{
		Action:          c.QueryParam("action"),
		EntityType:      c.QueryParam("entity_type"),
		Sort:            c.QueryParam("sort"),
		IncludeMetadata: c.QueryParam("include_metadata") == "true",
		Page:            parsePage(c),
	}

	if raw := c.QueryParam("user_id"); raw != "" {
		adminID, err := uuid.Parse(raw)
		if err != nil {
			return response.UnprocessableEntity(c, "VALIDATION_ERROR", "Invalid user ID filter")
		}
		query.AdminID = &adminID
	}

	if raw := c.QueryParam("from"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return response.UnprocessableEntity(c, "VALIDATION_ERROR", "Invalid from timestamp")
		}
		query.From = &from
	}

	if raw := c.QueryParam("to"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return response.UnprocessableEntity(c, "VALIDATION_ERROR", "Invalid to timestamp")
		}
		query.To = &to
	}

	entries, pagination, err := h.moderationUC.ListAuditLog(c.Request().Context(), query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithMeta(c, http.StatusOK, entries, pagination)
}

// requestMeta captures the client address and agent recorded with audit entries.
func requestMeta(c echo.Context) usecase.RequestMeta {
	return usecase.RequestMeta{
		IPAddress: c.RealIP(),
		UserAgent: c.Request().UserAgent(),
	}
}
