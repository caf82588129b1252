package handlers

import (
	"net/http"
	"strconv"
	"time"

	"dojovcp/cron"
	"dojovcp/middleware"
	"dojovcp/models"
	"dojovcp/services/booking"

	"github.com/gin-gonic/gin"
)

// QuoteHandler prices a set of ranges without reserving anything.
func (hb *HandlerBundle) QuoteHandler(c *gin.Context) {
	var input struct {
		ResourceID string             `json:"resource_id"`
		Ranges     []models.TimeRange `json:"ranges"`
		Options    models.Options     `json:"options"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	quote, err := hb.Booking.Quote(c.Request.Context(), input.ResourceID, input.Ranges, input.Options)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

// ReserveHandler books a session for the authenticated user.
func (hb *HandlerBundle) ReserveHandler(c *gin.Context) {
	var input struct {
		ResourceID  string         `json:"resource_id"`
		Start       time.Time      `json:"start"`
		DurationMin int            `json:"duration_min"`
		Options     models.Options `json:"options"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	res, err := hb.Booking.Reserve(c.Request.Context(), booking.ReserveRequest{
		ResourceID:  input.ResourceID,
		UserID:      middleware.UserID(c),
		Start:       input.Start,
		DurationMin: input.DurationMin,
		Options:     input.Options,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	cron.EnqueuePaymentReminder(res)
	c.JSON(http.StatusCreated, res)
}

// ReserveEventHandler claims a seat at an event for the authenticated user.
func (hb *HandlerBundle) ReserveEventHandler(c *gin.Context) {
	res, err := hb.Booking.ReserveEvent(c.Request.Context(), booking.EventReserveRequest{
		EventID: c.Param("id"),
		UserID:  middleware.UserID(c),
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// GetReservationHandler fetches one reservation by id.
func (hb *HandlerBundle) GetReservationHandler(c *gin.Context) {
	res, err := hb.Booking.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// MyReservationsHandler lists the authenticated user's reservations.
func (hb *HandlerBundle) MyReservationsHandler(c *gin.Context) {
	list, err := hb.Booking.ListByUser(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservations": list})
}

// ConfirmPaidHandler records payment against a reservation.
func (hb *HandlerBundle) ConfirmPaidHandler(c *gin.Context) {
	var input struct {
		PaymentRef string `json:"payment_ref"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	res, err := hb.Booking.ConfirmPaid(c.Request.Context(), c.Param("id"), input.PaymentRef)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// CheckInHandler marks arrival, looked up by the scanned confirmation code.
func (hb *HandlerBundle) CheckInHandler(c *gin.Context) {
	res, err := hb.Booking.CheckIn(c.Request.Context(), c.Param("code"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// CancelHandler releases a reservation.
func (hb *HandlerBundle) CancelHandler(c *gin.Context) {
	res, err := hb.Booking.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// ConfirmationQRHandler renders the reservation's confirmation QR as PNG.
func (hb *HandlerBundle) ConfirmationQRHandler(c *gin.Context) {
	size, err := strconv.Atoi(c.DefaultQuery("size", "256"))
	if err != nil || size < 64 || size > 1024 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid size"})
		return
	}
	png, err := hb.Booking.ConfirmationPNG(c.Request.Context(), c.Param("id"), size)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
