package services

import (
	"github.com/mergepost/mergepost-api/libs/go/constants"
	"github.com/mergepost/mergepost-api/libs/go/types/business"
)

// Summarize counts successes and failures over a batch's send results.
// Success + Failed always equals len(results).
func Summarize(results []business.SendResult) business.BatchSummary {
	var summary business.BatchSummary
	for _, r := range results {
		if r.Status == constants.SuccessStatus {
			summary.Success++
		} else {
			summary.Failed++
		}
	}
	return summary
}
