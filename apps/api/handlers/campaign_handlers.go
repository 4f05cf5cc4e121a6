package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mergepost/mergepost-api/libs/go/constants"
	"github.com/mergepost/mergepost-api/libs/go/helpers"
	"github.com/mergepost/mergepost-api/libs/go/services"
	"github.com/mergepost/mergepost-api/libs/go/types/api/requests"
	"github.com/mergepost/mergepost-api/libs/go/types/api/responses"
	"github.com/mergepost/mergepost-api/libs/go/types/business"
)

// CampaignHandler handles batch submission, results and cancellation
type CampaignHandler struct {
	common *CommonServices
}

// Use types from the centralized packages
type SendCampaignRequest = requests.SendCampaignRequest
type CampaignResultResponse = responses.CampaignResultResponse

// NewCampaignHandler creates a handler with interface dependencies
func NewCampaignHandler(common *CommonServices) *CampaignHandler {
	return &CampaignHandler{common: common}
}

// snapshotRecipients resolves the batch's recipient snapshot: the inline
// list when the request carries one, otherwise the session store. Inline
// records go through the same validation as the store's add operation.
func (h *CampaignHandler) snapshotRecipients(session *services.CampaignSession, req requests.SendCampaignRequest) ([]business.Recipient, error) {
	if len(req.Recipients) == 0 {
		return session.Recipients.List(), nil
	}

	snapshot := make([]business.Recipient, 0, len(req.Recipients))
	for _, r := range req.Recipients {
		recipient, err := services.NormalizeRecipient(helpers.ToUpsertRecipientParams(r))
		if err != nil {
			return nil, err
		}
		snapshot = append(snapshot, *recipient)
	}
	return snapshot, nil
}

// SendCampaign godoc
// @Summary Submit a dispatch batch
// @Description Renders the template per recipient, delivers each message, and returns one ordered result per recipient
// @Tags campaigns
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Composition session ID"
// @Param batch body SendCampaignRequest true "Batch to dispatch"
// @Success 200 {object} CampaignResultResponse
// @Failure 400 {object} ErrorResponse "Blank subject or template, or no recipients"
// @Failure 409 {object} ErrorResponse "A batch is already in flight"
// @Router /campaigns/send [post]
func (h *CampaignHandler) SendCampaign(c *gin.Context) {
	var req requests.SendCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	session := h.common.Session(c)

	snapshot, err := h.snapshotRecipients(session, req)
	if err != nil {
		sendStructuralError(c, err)
		return
	}

	batch := business.DispatchBatch{
		Subject:    req.Subject,
		Template:   req.Template,
		CC:         helpers.ParseCCList(req.CC),
		Recipients: snapshot,
	}

	results, summary, err := h.common.Dispatcher.Submit(c.Request.Context(), session, batch)
	if err != nil {
		sendStructuralError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, responses.CampaignResultResponse{
		Object:  "campaign_result",
		State:   session.State(),
		Results: helpers.ToSendResultResponses(results),
		Summary: helpers.ToBatchSummaryResponse(summary),
	})
}

// GetCampaignResults godoc
// @Summary Last completed batch results
// @Description Returns the session's last completed batch with its success/fail breakdown
// @Tags campaigns
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Composition session ID"
// @Success 200 {object} CampaignResultResponse
// @Failure 404 {object} ErrorResponse "No completed batch for this session"
// @Router /campaigns/results [get]
func (h *CampaignHandler) GetCampaignResults(c *gin.Context) {
	session := h.common.Session(c)

	results, summary, ok := session.Results()
	if !ok {
		sendError(c, http.StatusNotFound, "No completed batch for this session", nil)
		return
	}

	sendSuccess(c, http.StatusOK, responses.CampaignResultResponse{
		Object:  "campaign_result",
		State:   constants.BatchStateCompleted,
		Results: helpers.ToSendResultResponses(results),
		Summary: helpers.ToBatchSummaryResponse(summary),
	})
}

// CancelCampaign godoc
// @Summary Cancel the in-flight batch
// @Description Skips not-yet-attempted recipients; attempts already issued run to resolution
// @Tags campaigns
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Composition session ID"
// @Success 202 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse "No batch in flight"
// @Router /campaigns/cancel [post]
func (h *CampaignHandler) CancelCampaign(c *gin.Context) {
	session := h.common.Session(c)

	if !session.Cancel() {
		sendError(c, http.StatusNotFound, "No batch in flight for this session", nil)
		return
	}

	sendSuccessMessage(c, http.StatusAccepted, "Cancellation requested; remaining attempts will be skipped")
}
