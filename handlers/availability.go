package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// AvailabilityHandler returns the slot grid of a resource for one day.
// Query: date=YYYY-MM-DD, duration=minutes.
func (hb *HandlerBundle) AvailabilityHandler(c *gin.Context) {
	resourceID := c.Param("id")

	day, err := time.ParseInLocation("2006-01-02", c.Query("date"), time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}
	duration, err := strconv.Atoi(c.DefaultQuery("duration", "60"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid duration"})
		return
	}

	availability, err := hb.Booking.Availability(c.Request.Context(), resourceID, day, duration)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, availability)
}

// ListResourcesHandler returns the active stations.
func (hb *HandlerBundle) ListResourcesHandler(c *gin.Context) {
	resources, err := hb.Catalog.ListResources(c.Request.Context(), true)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list resources"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"resources": resources})
}

// ListEventsHandler returns upcoming active events.
func (hb *HandlerBundle) ListEventsHandler(c *gin.Context) {
	events, err := hb.Catalog.ListEvents(c.Request.Context(), time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list events"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}
