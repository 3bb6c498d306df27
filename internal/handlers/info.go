package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary      API index
// @Tags         system
// @Produce      json
// @Success      200  {object}  models.RootInfo
// @Router       / [get]
func (h *Handler) root(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Root(c.Request.Context()))
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  models.HealthStatus
// @Router       /api/health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Health(c.Request.Context()))
}
