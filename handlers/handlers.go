// Package handlers exposes the booking engine over HTTP.
package handlers

import (
	"errors"
	"net/http"

	catalogRepo "dojovcp/database/repository/catalog"
	"dojovcp/services/booking"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the handler dependencies so routes can be registered
// against one wired instance.
type HandlerBundle struct {
	Booking booking.BookingService
	Catalog catalogRepo.CatalogRepository
}

// writeServiceError maps the booking error taxonomy onto HTTP statuses.
// Conflicts carry their code so clients can tell a lost slot race from a
// sold-out event.
func writeServiceError(c *gin.Context, err error) {
	var (
		conflict   *booking.ConflictError
		validation *booking.ValidationError
		notFound   *booking.NotFoundError
	)
	switch {
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, gin.H{"error": conflict.Message, "code": conflict.Code})
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Error()})
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
