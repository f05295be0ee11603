package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hostreel_backend/internal/middleware"
	"hostreel_backend/internal/services"
)

type DashboardHandler struct {
	*BaseHandler
	dashboardService services.DashboardService
}

func NewDashboardHandler(base *BaseHandler, dashboardService services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		BaseHandler:      base,
		dashboardService: dashboardService,
	}
}

func (h *DashboardHandler) RegisterRoutes(rg *gin.RouterGroup) {
	dashboard := rg.Group("/properties")
	dashboard.Use(middleware.AuthMiddleware())
	{
		dashboard.GET("/:id/dashboard", h.GetPropertyDashboard)
	}
}

func (h *DashboardHandler) GetPropertyDashboard(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.dashboardService.GetPropertyDashboard(h.GetDB(c), c.Param("id"), userID, h.GetRole(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
