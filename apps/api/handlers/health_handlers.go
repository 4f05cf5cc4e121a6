package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mergepost/mergepost-api/libs/go/types/api/responses"
)

type HealthHandler struct {
	common *CommonServices
}

func NewHealthHandler(common *CommonServices) *HealthHandler {
	return &HealthHandler{common: common}
}

// Use types from the centralized packages
type HealthResponse = responses.HealthResponse
type ConnectionStatusResponse = responses.ConnectionStatusResponse

// Health godoc
// @Summary Check the health of the server
// @Description Returns a simple "ok" status
// @Tags health
// @Accept json
// @Produce json
// @Tags exclude
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status: "ok",
	})
}

// TestTransport godoc
// @Summary Probe the delivery transport
// @Description Runs the transport connectivity check; touches no recipient or batch state
// @Tags transport
// @Accept json
// @Produce json
// @Success 200 {object} ConnectionStatusResponse
// @Router /transport/test [post]
func (h *HealthHandler) TestTransport(c *gin.Context) {
	status := h.common.Sender.TestConnection(c.Request.Context())

	c.JSON(http.StatusOK, ConnectionStatusResponse{
		OK:      status.OK,
		Message: status.Message,
	})
}
