package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/avykhor/airport-api/internal/domain"
	"github.com/gin-gonic/gin"
)

// respondError maps domain errors onto HTTP statuses. Validation
// failures are rendered as a field-to-message object so clients can
// highlight the offending input.
func respondError(c *gin.Context, err error) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, ve.Fields)
		return
	}
	if errors.Is(err, domain.ErrSeatTaken) || errors.Is(err, domain.ErrRouteExists) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	if errors.Is(err, domain.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}
