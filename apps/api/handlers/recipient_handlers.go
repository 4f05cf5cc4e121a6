package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mergepost/mergepost-api/libs/go/helpers"
	"github.com/mergepost/mergepost-api/libs/go/types/api/requests"
	"github.com/mergepost/mergepost-api/libs/go/types/api/responses"
)

// RecipientHandler handles the recipient editing surface for one
// composition session
type RecipientHandler struct {
	common *CommonServices
}

// Use types from the centralized packages
type UpsertRecipientRequest = requests.UpsertRecipientRequest
type RecipientResponse = responses.RecipientResponse

// NewRecipientHandler creates a handler with interface dependencies
func NewRecipientHandler(common *CommonServices) *RecipientHandler {
	return &RecipientHandler{common: common}
}

// ListRecipients godoc
// @Summary List session recipients
// @Description Returns the session's recipient list in insertion order
// @Tags recipients
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Composition session ID"
// @Success 200 {object} map[string]interface{}
// @Router /recipients [get]
func (h *RecipientHandler) ListRecipients(c *gin.Context) {
	session := h.common.Session(c)
	sendList(c, helpers.ToRecipientResponses(session.Recipients.List()))
}

// AddRecipient godoc
// @Summary Add a recipient
// @Description Appends a recipient record to the session's list
// @Tags recipients
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Composition session ID"
// @Param recipient body UpsertRecipientRequest true "Recipient record"
// @Success 201 {object} RecipientResponse
// @Failure 400 {object} ErrorResponse
// @Router /recipients [post]
func (h *RecipientHandler) AddRecipient(c *gin.Context) {
	var req requests.UpsertRecipientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	session := h.common.Session(c)
	recipient, err := session.Recipients.Add(helpers.ToUpsertRecipientParams(req))
	if err != nil {
		sendStructuralError(c, err)
		return
	}

	sendSuccess(c, http.StatusCreated, helpers.ToRecipientResponse(session.Recipients.Len()-1, *recipient))
}

// UpdateRecipient godoc
// @Summary Replace a recipient
// @Description Replaces the record at the given position wholesale
// @Tags recipients
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Composition session ID"
// @Param index path int true "Recipient position"
// @Param recipient body UpsertRecipientRequest true "Replacement record"
// @Success 200 {object} RecipientResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /recipients/{index} [put]
func (h *RecipientHandler) UpdateRecipient(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid recipient index", err)
		return
	}

	var req requests.UpsertRecipientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	session := h.common.Session(c)
	recipient, err := session.Recipients.Update(index, helpers.ToUpsertRecipientParams(req))
	if err != nil {
		sendStructuralError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, helpers.ToRecipientResponse(index, *recipient))
}

// RemoveRecipient godoc
// @Summary Remove a recipient
// @Description Removes the record at the given position; later indices shift down
// @Tags recipients
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Composition session ID"
// @Param index path int true "Recipient position"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /recipients/{index} [delete]
func (h *RecipientHandler) RemoveRecipient(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid recipient index", err)
		return
	}

	session := h.common.Session(c)
	if err := session.Recipients.Remove(index); err != nil {
		sendStructuralError(c, err)
		return
	}

	sendSuccessMessage(c, http.StatusOK, "Recipient removed")
}
