package requests

// RecipientFieldPayload is one (name, value) pair on a recipient record.
// Pairs are ordered so records survive JSON round-trips unchanged.
type RecipientFieldPayload struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// UpsertRecipientRequest creates or replaces one recipient. Blank-named
// fields are dropped; a blank email is rejected.
type UpsertRecipientRequest struct {
	Email  string                  `json:"email"`
	Fields []RecipientFieldPayload `json:"fields"`
}

// SendCampaignRequest submits one dispatch batch. When Recipients is empty
// the session's recipient store is snapshotted instead; when present it is
// used as the batch's recipient snapshot directly. CC is a comma-separated
// address list applied identically to every send.
type SendCampaignRequest struct {
	Subject    string                   `json:"subject"`
	Template   string                   `json:"template"`
	CC         string                   `json:"cc,omitempty"`
	Recipients []UpsertRecipientRequest `json:"recipients,omitempty"`
}
