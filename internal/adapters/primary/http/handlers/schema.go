package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"tf2schema-service/internal/adapters/primary/http/dto"
	"tf2schema-service/internal/core/services"
)

func (h *Handler) GetStatus(c *gin.Context) {
	schema, err := h.manager.Current()
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SchemaStatusResponse{
		FetchedAt:   schema.FetchedAt,
		ItemCount:   len(schema.Items),
		EffectCount: len(schema.Effects),
		Digest:      services.Digest(schema),
	})
}

func (h *Handler) RefreshSchema(c *gin.Context) {
	schema, err := h.manager.Refresh(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("schema refresh failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SchemaStatusResponse{
		FetchedAt:   schema.FetchedAt,
		ItemCount:   len(schema.Items),
		EffectCount: len(schema.Effects),
		Digest:      services.Digest(schema),
	})
}

func (h *Handler) ListSnapshots(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	snapshots, err := h.manager.Snapshots(c.Request.Context(), limit)
	if err != nil {
		log.WithError(err).Error("list snapshots failed")
		mapDomainError(c, err)
		return
	}

	items := make([]dto.SnapshotResponse, 0, len(snapshots))
	for _, s := range snapshots {
		items = append(items, dto.ToSnapshotResponse(s))
	}

	c.JSON(http.StatusOK, dto.ListSnapshotsResponse{
		Items: items,
		Total: len(items),
	})
}
