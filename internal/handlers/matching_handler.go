package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hostreel_backend/internal/middleware"
	"hostreel_backend/internal/services"
	"hostreel_backend/internal/services/dto"
)

type MatchingHandler struct {
	*BaseHandler
	matchingService services.MatchingService
}

func NewMatchingHandler(base *BaseHandler, matchingService services.MatchingService) *MatchingHandler {
	return &MatchingHandler{
		BaseHandler:     base,
		matchingService: matchingService,
	}
}

func (h *MatchingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	matching := rg.Group("/matching")
	matching.Use(middleware.AuthMiddleware())
	{
		matching.POST("/preview", h.Preview)
		matching.POST("/timelines", h.GenerateTimeline)
		matching.GET("/timelines/:id", h.GetTimeline)
	}

	properties := rg.Group("/properties")
	properties.Use(middleware.AuthMiddleware())
	{
		properties.GET("/:id/timelines", h.ListTimelines)
		properties.GET("/:id/matching-stats", h.GetStats)
	}
}

// Preview runs the matcher over inline candidates and slots without
// touching the content library.
func (h *MatchingHandler) Preview(c *gin.Context) {
	var req dto.PreviewMatchRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.matchingService.PreviewMatch(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MatchingHandler) GenerateTimeline(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.GenerateTimelineRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.matchingService.GenerateTimeline(c.Request.Context(), h.GetDB(c), userID, h.GetRole(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *MatchingHandler) GetTimeline(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.matchingService.GetTimeline(h.GetDB(c), c.Param("id"), userID, h.GetRole(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MatchingHandler) ListTimelines(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	page, pageSize := ParsePagination(c)
	resp, err := h.matchingService.ListTimelines(h.GetDB(c), c.Param("id"), userID, h.GetRole(c),
		dto.Pagination{Page: page, PageSize: pageSize})
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MatchingHandler) GetStats(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.matchingService.GetMatchingStats(h.GetDB(c), c.Param("id"), userID, h.GetRole(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
