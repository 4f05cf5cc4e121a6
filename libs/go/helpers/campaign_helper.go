package helpers

import (
	"strings"

	"github.com/mergepost/mergepost-api/libs/go/types/api/params"
	"github.com/mergepost/mergepost-api/libs/go/types/api/requests"
	"github.com/mergepost/mergepost-api/libs/go/types/api/responses"
	"github.com/mergepost/mergepost-api/libs/go/types/business"
)

// ToUpsertRecipientParams converts the HTTP record payload into the
// service-layer params, preserving field order.
func ToUpsertRecipientParams(req requests.UpsertRecipientRequest) params.UpsertRecipientParams {
	fields := make([]business.RecipientField, 0, len(req.Fields))
	for _, f := range req.Fields {
		fields = append(fields, business.RecipientField{Name: f.Name, Value: f.Value})
	}
	return params.UpsertRecipientParams{Email: req.Email, Fields: fields}
}

// ToRecipientResponse converts a stored recipient into its API shape.
func ToRecipientResponse(index int, r business.Recipient) responses.RecipientResponse {
	fields := make([]responses.RecipientFieldResponse, 0, len(r.Fields))
	for _, f := range r.Fields {
		fields = append(fields, responses.RecipientFieldResponse{Name: f.Name, Value: f.Value})
	}
	return responses.RecipientResponse{Index: index, Email: r.Email, Fields: fields}
}

// ToRecipientResponses converts an ordered recipient list.
func ToRecipientResponses(recipients []business.Recipient) []responses.RecipientResponse {
	out := make([]responses.RecipientResponse, 0, len(recipients))
	for i, r := range recipients {
		out = append(out, ToRecipientResponse(i, r))
	}
	return out
}

// ToSendResultResponses converts an ordered result list.
func ToSendResultResponses(results []business.SendResult) []responses.SendResultResponse {
	out := make([]responses.SendResultResponse, 0, len(results))
	for _, r := range results {
		out = append(out, responses.SendResultResponse{
			Email:  r.Email,
			Status: r.Status,
			Error:  r.Error,
		})
	}
	return out
}

// ToBatchSummaryResponse converts the aggregate counts.
func ToBatchSummaryResponse(summary business.BatchSummary) responses.BatchSummaryResponse {
	return responses.BatchSummaryResponse{
		Success: summary.Success,
		Failed:  summary.Failed,
		Total:   summary.Success + summary.Failed,
	}
}

// ParseCCList splits a comma-separated CC string into trimmed addresses,
// dropping blanks. It returns nil for a blank input so the transport omits
// the CC header entirely.
func ParseCCList(cc string) []string {
	if strings.TrimSpace(cc) == "" {
		return nil
	}
	parts := strings.Split(cc, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if addr := strings.TrimSpace(p); addr != "" {
			out = append(out, addr)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
