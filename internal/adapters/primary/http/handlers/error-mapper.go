package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tf2schema-service/internal/core/domain"
)

func mapDomainError(c *gin.Context, err error) {
	switch {
	// Not found errors
	case errors.Is(err, domain.ErrItemNotFound),
		errors.Is(err, domain.ErrEffectNotFound),
		errors.Is(err, domain.ErrSnapshotNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	// Validation errors
	case errors.Is(err, domain.ErrInvalidSKU),
		errors.Is(err, domain.ErrUnknownSKUPart),
		errors.Is(err, domain.ErrInvalidWearTier),
		errors.Is(err, domain.ErrInvalidKillstreak),
		errors.Is(err, domain.ErrInvalidName):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	// Mode/configuration conflicts
	case errors.Is(err, domain.ErrFileOnlyMode),
		errors.Is(err, domain.ErrMissingAPIKey):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})

	// Upstream failures
	case errors.Is(err, domain.ErrSteamUnavailable),
		errors.Is(err, domain.ErrInvalidResponse):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})

	// Not ready
	case errors.Is(err, domain.ErrSchemaNotLoaded),
		errors.Is(err, domain.ErrSchemaFileMissing),
		errors.Is(err, domain.ErrDatabaseDisabled):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
