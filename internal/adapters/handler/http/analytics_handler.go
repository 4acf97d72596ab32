package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/taskhawk/taskhawk-api/internal/adapters/handler/http/middleware"
	"github.com/taskhawk/taskhawk-api/internal/core/domain"
	"github.com/taskhawk/taskhawk-api/internal/core/services"
)

type AnalyticsHandler struct {
	svc      *services.AnalyticsService
	userRepo domain.UserRepository
}

func NewAnalyticsHandler(svc *services.AnalyticsService, userRepo domain.UserRepository) *AnalyticsHandler {
	return &AnalyticsHandler{
		svc:      svc,
		userRepo: userRepo,
	}
}

func (h *AnalyticsHandler) RegisterRoutes(router *gin.RouterGroup) {
	analytics := router.Group("/analytics")
	{
		analytics.GET("/dashboard", h.Dashboard)
		analytics.GET("/weekly-overview", h.WeeklyOverview)
		analytics.GET("/productivity", h.ProductivityTrends)
		analytics.GET("/categories", h.CategoryDistribution)
		analytics.GET("/time-distribution", h.TimeDistribution)
		analytics.GET("/monthly-trends", h.MonthlyTrends)
	}
}

func (h *AnalyticsHandler) fail(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrDataUnavailable) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve analytics"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	summary, err := h.svc.Dashboard(c.Request.Context(), userID, time.Now())
	if err != nil {
		h.fail(c, err)
		return
	}

	// Best effort: the dashboard greets the user by name, but the summary
	// itself does not depend on it.
	if user, err := h.userRepo.GetByID(c.Request.Context(), userID); err == nil {
		summary.UserName = user.Name
	}

	c.JSON(http.StatusOK, summary)
}

func (h *AnalyticsHandler) WeeklyOverview(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	overview, err := h.svc.WeeklyOverview(c.Request.Context(), userID, time.Now())
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, overview)
}

func (h *AnalyticsHandler) ProductivityTrends(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	// Unrecognized periods silently fall back to 7 days.
	period := c.DefaultQuery("period", "7d")

	points, err := h.svc.ProductivityTrend(c.Request.Context(), userID, period, time.Now())
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, points)
}

func (h *AnalyticsHandler) CategoryDistribution(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	shares, err := h.svc.CategoryDistribution(c.Request.Context(), userID)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, shares)
}

func (h *AnalyticsHandler) TimeDistribution(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	slots, err := h.svc.TimeDistribution(c.Request.Context(), userID)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, slots)
}

func (h *AnalyticsHandler) MonthlyTrends(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	trends, err := h.svc.MonthlyTrends(c.Request.Context(), userID, time.Now())
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, trends)
}
