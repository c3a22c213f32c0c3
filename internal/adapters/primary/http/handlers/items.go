package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tf2schema-service/internal/adapters/primary/http/dto"
)

func (h *Handler) GetItemByDefindex(c *gin.Context) {
	defindex, err := strconv.Atoi(c.Param("defindex"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid defindex"})
		return
	}

	item, err := h.lookup.ItemByDefindex(defindex)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToItemResponse(item, ""))
}

func (h *Handler) GetItemByName(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name query parameter is required"})
		return
	}

	item, err := h.lookup.ItemByName(name)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToItemResponse(item, ""))
}

func (h *Handler) GetItemBySKU(c *gin.Context) {
	item, sku, err := h.lookup.ItemBySKU(c.Param("sku"))
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToItemResponse(item, sku.String()))
}
