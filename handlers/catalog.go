package handlers

import (
	"errors"
	"net/http"

	catalogRepo "dojovcp/database/repository/catalog"
	"dojovcp/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateResourceHandler registers a new station.
func (hb *HandlerBundle) CreateResourceHandler(c *gin.Context) {
	var resource models.Resource
	if err := c.ShouldBindJSON(&resource); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if resource.ID == "" {
		resource.ID = uuid.New().String()
	}
	resource.Active = true
	if err := hb.Catalog.CreateResource(c.Request.Context(), &resource); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create resource"})
		return
	}
	c.JSON(http.StatusCreated, resource)
}

// UpdateResourceHandler replaces a station's details.
func (hb *HandlerBundle) UpdateResourceHandler(c *gin.Context) {
	var resource models.Resource
	if err := c.ShouldBindJSON(&resource); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	resource.ID = c.Param("id")
	if err := hb.Catalog.UpdateResource(c.Request.Context(), &resource); err != nil {
		if errors.Is(err, catalogRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update resource"})
		return
	}
	c.JSON(http.StatusOK, resource)
}

// CreateEventHandler schedules a new event.
func (hb *HandlerBundle) CreateEventHandler(c *gin.Context) {
	var event models.Event
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	if event.Capacity <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "capacity must be positive"})
		return
	}
	event.Active = true
	if err := hb.Catalog.CreateEvent(c.Request.Context(), &event); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create event"})
		return
	}
	c.JSON(http.StatusCreated, event)
}
