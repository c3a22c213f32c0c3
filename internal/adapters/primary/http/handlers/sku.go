package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tf2schema-service/internal/adapters/primary/http/dto"
)

func (h *Handler) GetNameFromSKU(c *gin.Context) {
	sku := c.Param("sku")

	name, err := h.lookup.NameFromSKU(sku)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NameFromSKUResponse{SKU: sku, Name: name})
}

func (h *Handler) GetSKUFromName(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name query parameter is required"})
		return
	}

	sku, err := h.lookup.SKUFromName(name)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SKUFromNameResponse{Name: name, SKU: sku.String()})
}
