package services

import (
	"context"
	"strings"
	"sync"

	"github.com/mergepost/mergepost-api/libs/go/constants"
	"github.com/mergepost/mergepost-api/libs/go/interfaces"
	"github.com/mergepost/mergepost-api/libs/go/logger"
	"github.com/mergepost/mergepost-api/libs/go/types/api/params"
	"github.com/mergepost/mergepost-api/libs/go/types/business"
	"go.uber.org/zap"
)

// DispatchService turns one template plus N recipients into N delivery
// attempts and collects one ordered SendResult per recipient. Attempts are
// fanned out over a bounded worker pool; each worker writes only its own
// result slot, so completion order never changes result order and attempts
// share no mutable state beyond the read-only batch.
type DispatchService struct {
	sender      interfaces.EmailSender
	workerCount int
	logger      *zap.Logger
}

// NewDispatchService creates a dispatcher sending through the given
// transport with workerCount concurrent attempts per batch.
func NewDispatchService(sender interfaces.EmailSender, workerCount int) *DispatchService {
	if workerCount < 1 {
		workerCount = constants.DefaultDispatchWorkers
	}
	return &DispatchService{
		sender:      sender,
		workerCount: workerCount,
		logger:      logger.Log,
	}
}

// validateBatch checks the structural preconditions. Any violation fails the
// whole submission before a single send is attempted.
func validateBatch(batch business.DispatchBatch) error {
	if strings.TrimSpace(batch.Subject) == "" {
		return business.NewValidationError("subject", "must not be blank")
	}
	if strings.TrimSpace(batch.Template) == "" {
		return business.NewValidationError("template", "must not be blank")
	}
	if len(batch.Recipients) == 0 {
		return business.NewValidationError("recipients", "must not be empty")
	}
	return nil
}

// Submit runs the batch to completion and returns one SendResult per
// recipient in snapshot order. Structural problems (blank subject or
// template, empty recipient list, a batch already in flight) fail fast with
// zero sends; per-recipient delivery failures are recorded in that
// recipient's result and never abort the rest of the batch.
func (s *DispatchService) Submit(ctx context.Context, session *CampaignSession, batch business.DispatchBatch) ([]business.SendResult, business.BatchSummary, error) {
	if err := validateBatch(batch); err != nil {
		return nil, business.BatchSummary{}, err
	}

	dispatchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := session.begin(cancel); err != nil {
		return nil, business.BatchSummary{}, err
	}

	s.logger.Info("Batch submitted",
		zap.String("session_id", session.ID),
		zap.String("subject", batch.Subject),
		zap.Int("recipient_count", len(batch.Recipients)),
		zap.Int("worker_count", s.workerCount))

	results := make([]business.SendResult, len(batch.Recipients))

	workers := s.workerCount
	if workers > len(batch.Recipients) {
		workers = len(batch.Recipients)
	}

	indexes := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				results[i] = s.attempt(dispatchCtx, batch, batch.Recipients[i])
			}
		}()
	}

	for i := range batch.Recipients {
		indexes <- i
	}
	close(indexes)
	wg.Wait()

	summary := Summarize(results)
	session.complete(results, summary)

	s.logger.Info("Batch completed",
		zap.String("session_id", session.ID),
		zap.Int("success", summary.Success),
		zap.Int("failed", summary.Failed))

	return results, summary, nil
}

// attempt renders and delivers one recipient's message. A cancelled batch
// context skips the attempt; a transport error becomes the recipient's
// failure datum.
func (s *DispatchService) attempt(ctx context.Context, batch business.DispatchBatch, recipient business.Recipient) business.SendResult {
	result := business.SendResult{Email: recipient.Email}

	if ctx.Err() != nil {
		result.Status = constants.FailedStatus
		result.Error = "batch cancelled before attempt"
		return result
	}

	body := RenderTemplate(batch.Template, recipient)

	err := s.sender.Send(ctx, params.SendMessageParams{
		To:      recipient.Email,
		CC:      batch.CC,
		Subject: batch.Subject,
		Body:    body,
	})
	if err != nil {
		s.logger.Warn("Delivery failed for recipient",
			zap.String("to", recipient.Email),
			zap.Error(err))
		result.Status = constants.FailedStatus
		result.Error = err.Error()
		return result
	}

	result.Status = constants.SuccessStatus
	return result
}
