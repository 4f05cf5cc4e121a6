package responses

// RecipientFieldResponse echoes one (name, value) pair in record order.
type RecipientFieldResponse struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// RecipientResponse is one recipient record as stored.
type RecipientResponse struct {
	Index  int                      `json:"index"`
	Email  string                   `json:"email"`
	Fields []RecipientFieldResponse `json:"fields"`
}

// SendResultResponse is the outcome of one recipient's delivery attempt.
type SendResultResponse struct {
	Email  string `json:"email"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// BatchSummaryResponse is the aggregate success/failure breakdown.
type BatchSummaryResponse struct {
	Success int `json:"success"`
	Failed  int `json:"failed"`
	Total   int `json:"total"`
}

// CampaignResultResponse carries the full ordered result list plus summary.
type CampaignResultResponse struct {
	Object  string               `json:"object"`
	State   string               `json:"state"`
	Results []SendResultResponse `json:"results"`
	Summary BatchSummaryResponse `json:"summary"`
}

// ConnectionStatusResponse is the transport health probe outcome.
type ConnectionStatusResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}
