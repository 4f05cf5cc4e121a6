package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mergepost/mergepost-api/libs/go/interfaces"
	"github.com/mergepost/mergepost-api/libs/go/logger"
	"github.com/mergepost/mergepost-api/libs/go/services"
)

func init() {
	// Initialize logger for tests
	logger.InitLogger("test")
}

// newTestCommon builds CommonServices around the given transport with a
// fresh session registry, so every test starts from an empty state.
func newTestCommon(sender interfaces.EmailSender) *CommonServices {
	return NewCommonServices(CommonServicesConfig{
		Sender:     sender,
		Sessions:   services.NewSessionManager(),
		Dispatcher: services.NewDispatchService(sender, 2),
		Logger:     zap.NewNop(),
	})
}

// newTestRouter registers the full handler surface the way the server does,
// without middleware, for request-level tests.
func newTestRouter(common *CommonServices) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	recipientHandler := NewRecipientHandler(common)
	campaignHandler := NewCampaignHandler(common)
	healthHandler := NewHealthHandler(common)

	router.GET("/health", healthHandler.Health)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/transport/test", healthHandler.TestTransport)

		recipients := v1.Group("/recipients")
		{
			recipients.GET("", recipientHandler.ListRecipients)
			recipients.POST("", recipientHandler.AddRecipient)
			recipients.PUT("/:index", recipientHandler.UpdateRecipient)
			recipients.DELETE("/:index", recipientHandler.RemoveRecipient)
		}

		campaigns := v1.Group("/campaigns")
		{
			campaigns.POST("/send", campaignHandler.SendCampaign)
			campaigns.GET("/results", campaignHandler.GetCampaignResults)
			campaigns.POST("/cancel", campaignHandler.CancelCampaign)
		}
	}

	return router
}

// doJSON performs a request with an optional JSON body and returns the
// recorder.
func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// decodeJSON unmarshals the recorded response body into out.
func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
