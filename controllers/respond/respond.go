// Package respond holds the error mapping and parameter parsing shared by
// every controller.
package respond

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/durable-fastener/durable-cms-backend/config"
	"github.com/durable-fastener/durable-cms-backend/middleware"
	"github.com/durable-fastener/durable-cms-backend/models"
	"github.com/durable-fastener/durable-cms-backend/services"
)

// Error writes the envelope for a service error. what names the resource in
// not-found and failure messages, e.g. "Product".
func Error(c *gin.Context, err error, what string) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, what+" not found"))
	case errors.Is(err, services.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, services.Message(err)))
	case errors.Is(err, services.ErrSlugTaken):
		c.JSON(http.StatusConflict, models.ErrorResponse(c, err.Error()))
	case errors.Is(err, services.ErrStorageUnavailable):
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, err.Error()))
	default:
		config.Log.Error("[http] request failed",
			zap.String("route", c.FullPath()),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, err.Error()))
	}
}

// UUIDParam parses a path parameter, answering 400 when it is not a UUID.
func UUIDParam(c *gin.Context, name, what string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid "+what+" ID"))
		return uuid.Nil, false
	}
	return id, true
}

// BindJSON decodes and validates the body, answering 400 on failure.
func BindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body: "+err.Error()))
		return false
	}
	return true
}

// Created stores the new record's key for the activity log and writes 201.
func Created(c *gin.Context, key, message string, data any) {
	c.Set(middleware.CreatedResourceKey, key)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, message, data))
}
