package services

import (
	"strings"
	"sync"

	"github.com/mergepost/mergepost-api/libs/go/logger"
	"github.com/mergepost/mergepost-api/libs/go/types/api/params"
	"github.com/mergepost/mergepost-api/libs/go/types/business"
	"go.uber.org/zap"
)

// RecipientService holds the ordered recipient list for one composition
// session. Recipients exist only in memory for the session's lifetime.
// Indices are positional, not stable identifiers - a remove shifts every
// subsequent index down by one.
type RecipientService struct {
	mu         sync.Mutex
	recipients []business.Recipient
	logger     *zap.Logger
}

// NewRecipientService creates an empty recipient store.
func NewRecipientService() *RecipientService {
	return &RecipientService{
		recipients: make([]business.Recipient, 0),
		logger:     logger.Log,
	}
}

// normalizeRecord trims the record and drops blank-named fields. It returns
// a ValidationError when the email is blank after trimming.
func normalizeRecord(p params.UpsertRecipientParams) (*business.Recipient, error) {
	email := strings.TrimSpace(p.Email)
	if email == "" {
		return nil, business.NewValidationError("email", "must not be blank")
	}

	fields := make([]business.RecipientField, 0, len(p.Fields))
	for _, f := range p.Fields {
		name := strings.TrimSpace(f.Name)
		if name == "" {
			continue
		}
		fields = append(fields, business.RecipientField{
			Name:  name,
			Value: strings.TrimSpace(f.Value),
		})
	}

	return &business.Recipient{Email: email, Fields: fields}, nil
}

// NormalizeRecipient applies the store's record validation to a record that
// arrives outside the store, such as an inline recipient list on a batch
// submission.
func NormalizeRecipient(p params.UpsertRecipientParams) (*business.Recipient, error) {
	return normalizeRecord(p)
}

// Add validates and appends a new recipient. The store is unchanged when
// validation fails.
func (s *RecipientService) Add(p params.UpsertRecipientParams) (*business.Recipient, error) {
	recipient, err := normalizeRecord(p)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.recipients = append(s.recipients, *recipient)

	s.logger.Debug("Recipient added",
		zap.String("email", recipient.Email),
		zap.Int("count", len(s.recipients)))

	return recipient, nil
}

// Update replaces the recipient at index wholesale; it never merges with the
// previous record. Validation runs before the bounds check so callers get
// the same error for a bad record regardless of position.
func (s *RecipientService) Update(index int, p params.UpsertRecipientParams) (*business.Recipient, error) {
	recipient, err := normalizeRecord(p)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.recipients) {
		return nil, &business.IndexError{Index: index, Size: len(s.recipients)}
	}
	s.recipients[index] = *recipient

	return recipient, nil
}

// Remove deletes the recipient at index, shifting subsequent indices down.
func (s *RecipientService) Remove(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.recipients) {
		return &business.IndexError{Index: index, Size: len(s.recipients)}
	}
	s.recipients = append(s.recipients[:index], s.recipients[index+1:]...)

	return nil
}

// List returns an ordered deep copy of the current recipient list. Batches
// snapshot through List, so later edits never reach an in-flight batch.
func (s *RecipientService) List() []business.Recipient {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make([]business.Recipient, len(s.recipients))
	for i, r := range s.recipients {
		snapshot[i] = r.Clone()
	}
	return snapshot
}

// Len returns the current recipient count.
func (s *RecipientService) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.recipients)
}
