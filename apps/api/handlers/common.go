package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mergepost/mergepost-api/libs/go/constants"
	"github.com/mergepost/mergepost-api/libs/go/interfaces"
	"github.com/mergepost/mergepost-api/libs/go/logger"
	"github.com/mergepost/mergepost-api/libs/go/services"
	"github.com/mergepost/mergepost-api/libs/go/types/business"
)

// CommonServices holds common dependencies used across handlers
type CommonServices struct {
	logger     *zap.Logger
	Sender     interfaces.EmailSender
	Sessions   *services.SessionManager
	Dispatcher *services.DispatchService
}

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Message string `json:"message"`
}

// CommonServicesConfig contains all dependencies needed to create CommonServices
type CommonServicesConfig struct {
	Sender     interfaces.EmailSender
	Sessions   *services.SessionManager
	Dispatcher *services.DispatchService
	Logger     *zap.Logger
}

// NewCommonServices creates a new instance of CommonServices
func NewCommonServices(config CommonServicesConfig) *CommonServices {
	if config.Logger == nil {
		config.Logger = logger.Log
	}

	return &CommonServices{
		logger:     config.Logger,
		Sender:     config.Sender,
		Sessions:   config.Sessions,
		Dispatcher: config.Dispatcher,
	}
}

// GetLogger returns the logger
func (s *CommonServices) GetLogger() *zap.Logger {
	return s.logger
}

// Session resolves the caller's composition session from the X-Session-ID
// header, creating it on first use.
func (s *CommonServices) Session(c *gin.Context) *services.CampaignSession {
	return s.Sessions.Get(c.GetHeader(constants.SessionIDHeader))
}

// sendError is a helper function that combines logging and error response.
// It logs the error with the given message and sends a JSON error response
func sendError(c *gin.Context, statusCode int, message string, err error) {
	// Get correlation ID from context
	correlationID := ""
	if id, exists := c.Get("correlationID"); exists {
		correlationID, _ = id.(string)
	}

	logger.Error(message,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.String("correlation_id", correlationID),
	)

	// Include correlation ID in error response for debugging
	response := struct {
		Error         string `json:"error"`
		CorrelationID string `json:"correlation_id,omitempty"`
	}{
		Error:         message,
		CorrelationID: correlationID,
	}

	c.JSON(statusCode, response)
}

// sendStructuralError maps the engine's structural error taxonomy onto HTTP
// status codes: validation 400, bad index 404, batch in flight 409. These
// errors leave all state unchanged, so callers may retry after fixing input.
func sendStructuralError(c *gin.Context, err error) {
	var validationErr *business.ValidationError
	var indexErr *business.IndexError

	switch {
	case errors.As(err, &validationErr):
		sendError(c, http.StatusBadRequest, validationErr.Error(), err)
	case errors.As(err, &indexErr):
		sendError(c, http.StatusNotFound, indexErr.Error(), err)
	case errors.Is(err, business.ErrBatchInFlight):
		sendError(c, http.StatusConflict, err.Error(), err)
	default:
		sendError(c, http.StatusInternalServerError, "Internal server error", err)
	}
}

// sendSuccess is a helper function that sends a success response
func sendSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// sendSuccessMessage is a helper function that sends a success message
func sendSuccessMessage(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, SuccessResponse{Message: message})
}

// sendList is a helper function that sends a list response
func sendList(c *gin.Context, items interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"object": "list",
		"data":   items,
	})
}
