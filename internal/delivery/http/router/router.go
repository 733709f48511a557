// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"smachna/internal/delivery/http/middleware"
	"smachna/internal/delivery/http/router/handler"
	"smachna/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler       *handler.CatalogHandler
	EstablishmentHandler *handler.EstablishmentHandler
	ModerationHandler    *handler.ModerationHandler
	AuthMiddleware       *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler       *handler.CatalogHandler
	establishmentHandler *handler.EstablishmentHandler
	moderationHandler    *handler.ModerationHandler
	authMiddleware       *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler:       params.CatalogHandler,
		establishmentHandler: params.EstablishmentHandler,
		moderationHandler:    params.ModerationHandler,
		authMiddleware:       params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api/v1")

	// Public catalog routes
	api.GET("/establishments", r.catalogHandler.ListEstablishments)
	api.GET("/establishments/:id", r.catalogHandler.GetEstablishment)
	api.GET("/establishments/:id/reviews", r.catalogHandler.ListReviews)

	// Posting a review requires authentication but no particular role
	api.POST("/establishments/:id/reviews", r.catalogHandler.CreateReview, r.authMiddleware.Authenticate)

	// Partner routes that require authentication and the "partner" role
	partnerGroup := api.Group("/partner")
	partnerGroup.Use(r.authMiddleware.Authenticate)
	partnerGroup.Use(r.authMiddleware.RequireRole(entity.RolePartner))
	{
		partnerGroup.POST("/establishments", r.establishmentHandler.CreateEstablishment)
		partnerGroup.GET("/establishments", r.establishmentHandler.ListEstablishments)
		partnerGroup.GET("/establishments/:id", r.establishmentHandler.GetEstablishment)
		partnerGroup.PUT("/establishments/:id", r.establishmentHandler.UpdateEstablishment)
		partnerGroup.POST("/establishments/:id/submit", r.establishmentHandler.SubmitEstablishment)
		partnerGroup.POST("/reviews/:reviewId/response", r.establishmentHandler.RespondToReview)
	}

	// Admin routes that require authentication and the "admin" role
	adminGroup := api.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.POST("/establishments/:id/moderate", r.moderationHandler.Moderate)
		adminGroup.GET("/reviews", r.moderationHandler.ListReviews)
		adminGroup.POST("/reviews/:id/toggle-visibility", r.moderationHandler.ToggleReviewVisibility)
		adminGroup.POST("/reviews/:id/delete", r.moderationHandler.DeleteReview)
		adminGroup.GET("/audit-log", r.moderationHandler.ListAuditLog)
	}
}
