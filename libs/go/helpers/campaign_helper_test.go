package helpers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mergepost/mergepost-api/libs/go/helpers"
	"github.com/mergepost/mergepost-api/libs/go/types/api/requests"
	"github.com/mergepost/mergepost-api/libs/go/types/business"
)

func TestParseCCList(t *testing.T) {
	tests := []struct {
		name string
		cc   string
		want []string
	}{
		{
			name: "blank input returns nil",
			cc:   "   ",
			want: nil,
		},
		{
			name: "single address",
			cc:   "audit@example.com",
			want: []string{"audit@example.com"},
		},
		{
			name: "multiple addresses with whitespace",
			cc:   " audit@example.com , legal@example.com ",
			want: []string{"audit@example.com", "legal@example.com"},
		},
		{
			name: "empty segments are dropped",
			cc:   "audit@example.com,, ,legal@example.com",
			want: []string{"audit@example.com", "legal@example.com"},
		},
		{
			name: "only separators returns nil",
			cc:   ", ,",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, helpers.ParseCCList(tt.cc))
		})
	}
}

func TestToUpsertRecipientParams(t *testing.T) {
	req := requests.UpsertRecipientRequest{
		Email: "alice@example.com",
		Fields: []requests.RecipientFieldPayload{
			{Name: "name", Value: "Alice"},
			{Name: "dept", Value: "Engineering"},
		},
	}

	got := helpers.ToUpsertRecipientParams(req)

	assert.Equal(t, "alice@example.com", got.Email)
	// Field order must survive the conversion
	assert.Equal(t, []business.RecipientField{
		{Name: "name", Value: "Alice"},
		{Name: "dept", Value: "Engineering"},
	}, got.Fields)
}

func TestToBatchSummaryResponse(t *testing.T) {
	got := helpers.ToBatchSummaryResponse(business.BatchSummary{Success: 3, Failed: 2})

	assert.Equal(t, 3, got.Success)
	assert.Equal(t, 2, got.Failed)
	assert.Equal(t, 5, got.Total)
}

func TestToRecipientResponses(t *testing.T) {
	recipients := []business.Recipient{
		{Email: "a@example.com", Fields: []business.RecipientField{{Name: "name", Value: "A"}}},
		{Email: "b@example.com"},
	}

	got := helpers.ToRecipientResponses(recipients)

	assert.Len(t, got, 2)
	assert.Equal(t, 0, got[0].Index)
	assert.Equal(t, 1, got[1].Index)
	assert.Equal(t, "a@example.com", got[0].Email)
	assert.Equal(t, "b@example.com", got[1].Email)
}
