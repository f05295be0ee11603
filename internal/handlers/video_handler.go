package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hostreel_backend/internal/middleware"
	"hostreel_backend/internal/models"
	"hostreel_backend/internal/services"
	"hostreel_backend/internal/services/dto"
	"hostreel_backend/pkg/apperrors"
)

type VideoHandler struct {
	*BaseHandler
	videoService services.VideoService
}

func NewVideoHandler(base *BaseHandler, videoService services.VideoService) *VideoHandler {
	return &VideoHandler{
		BaseHandler:  base,
		videoService: videoService,
	}
}

func (h *VideoHandler) RegisterRoutes(rg *gin.RouterGroup) {
	videos := rg.Group("/videos")
	videos.Use(middleware.AuthMiddleware())
	{
		videos.GET("/:id", h.Get)
		videos.DELETE("/:id", h.Delete)
	}

	properties := rg.Group("/properties")
	properties.Use(middleware.AuthMiddleware())
	{
		properties.POST("/:id/videos", h.Upload)
		properties.GET("/:id/videos", h.ListByProperty)
		properties.GET("/:id/library", h.LibrarySummary)
	}

	// Callback surface for the external captioning pipeline. Admin only.
	pipeline := rg.Group("/videos")
	pipeline.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	{
		pipeline.PUT("/:id/description", h.SetDescription)
		pipeline.PUT("/:id/status", h.UpdateStatus)
	}
}

func (h *VideoHandler) Upload(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	propertyID := c.Param("id")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("file form field is required"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.HandleServiceError(c, apperrors.InternalError(err))
		return
	}
	defer file.Close()

	resp, err := h.videoService.Upload(c.Request.Context(), h.GetDB(c), propertyID, userID, h.GetRole(c),
		fileHeader.Filename, fileHeader.Header.Get("Content-Type"), fileHeader.Size, file)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *VideoHandler) Get(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.videoService.Get(h.GetDB(c), c.Param("id"), userID, h.GetRole(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *VideoHandler) ListByProperty(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	page, pageSize := ParsePagination(c)
	resp, err := h.videoService.List(h.GetDB(c), c.Param("id"), userID, h.GetRole(c),
		dto.Pagination{Page: page, PageSize: pageSize})
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *VideoHandler) LibrarySummary(c *gin.Context) {
	if _, ok := h.GetAndAuthorizeUserID(c); !ok {
		return
	}

	resp, err := h.videoService.LibrarySummary(h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *VideoHandler) SetDescription(c *gin.Context) {
	var req dto.UpdateVideoDescriptionRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.videoService.SetDescription(h.GetDB(c), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *VideoHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateVideoStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.videoService.UpdateStatus(h.GetDB(c), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *VideoHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.videoService.Delete(c.Request.Context(), h.GetDB(c), c.Param("id"), userID, h.GetRole(c)); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Video deleted"})
}
