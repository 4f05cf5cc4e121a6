package params

import "github.com/mergepost/mergepost-api/libs/go/types/business"

// UpsertRecipientParams carries the caller-supplied record for a recipient
// add or update. Fields arrive as ordered (name, value) pairs; blank-named
// pairs are dropped by the store.
type UpsertRecipientParams struct {
	Email  string
	Fields []business.RecipientField
}

// SendMessageParams carries one delivery attempt across the transport
// boundary. To and Body are recipient-specific; Subject and CC come from
// the batch and are identical for every attempt.
type SendMessageParams struct {
	To      string
	CC      []string
	Subject string
	Body    string
	Tags    map[string]string
}
