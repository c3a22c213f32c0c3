package handlers

import (
	"github.com/gin-gonic/gin"

	"tf2schema-service/internal/core/services"
)

type Handler struct {
	manager *services.SchemaManagerService
	lookup  *services.LookupService
}

func New(manager *services.SchemaManagerService, lookup *services.LookupService) *Handler {
	return &Handler{manager: manager, lookup: lookup}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/status", h.GetStatus)
	rg.POST("/refresh", h.RefreshSchema)
	rg.GET("/snapshots", h.ListSnapshots)

	rg.GET("/items", h.GetItemByName)
	rg.GET("/items/:defindex", h.GetItemByDefindex)

	rg.GET("/sku", h.GetSKUFromName)
	rg.GET("/sku/:sku/name", h.GetNameFromSKU)
	rg.GET("/sku/:sku/item", h.GetItemBySKU)
}
