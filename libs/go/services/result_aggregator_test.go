package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mergepost/mergepost-api/libs/go/constants"
	"github.com/mergepost/mergepost-api/libs/go/services"
	"github.com/mergepost/mergepost-api/libs/go/types/business"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name        string
		results     []business.SendResult
		wantSuccess int
		wantFailed  int
	}{
		{
			name:    "empty results",
			results: nil,
		},
		{
			name: "all successes",
			results: []business.SendResult{
				{Email: "a@example.com", Status: constants.SuccessStatus},
				{Email: "b@example.com", Status: constants.SuccessStatus},
			},
			wantSuccess: 2,
		},
		{
			name: "mixed outcomes",
			results: []business.SendResult{
				{Email: "a@example.com", Status: constants.SuccessStatus},
				{Email: "b@example.com", Status: constants.FailedStatus, Error: "rejected"},
				{Email: "c@example.com", Status: constants.SuccessStatus},
			},
			wantSuccess: 2,
			wantFailed:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := services.Summarize(tt.results)

			assert.Equal(t, tt.wantSuccess, summary.Success)
			assert.Equal(t, tt.wantFailed, summary.Failed)
			// Counts always partition the result set
			assert.Equal(t, len(tt.results), summary.Success+summary.Failed)
		})
	}
}
