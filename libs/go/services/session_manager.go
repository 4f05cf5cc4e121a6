package services

import (
	"context"
	"sync"

	"github.com/mergepost/mergepost-api/libs/go/constants"
	"github.com/mergepost/mergepost-api/libs/go/types/business"
)

// CampaignSession is one composition session: a recipient store, the
// at-most-one-in-flight batch flag, and the last completed result set.
// All of it is memory-only and discarded when the process ends.
type CampaignSession struct {
	ID         string
	Recipients *RecipientService

	mu      sync.Mutex
	state   string
	cancel  context.CancelFunc
	results []business.SendResult
	summary business.BatchSummary
}

// NewCampaignSession creates an idle session with an empty recipient store.
func NewCampaignSession(id string) *CampaignSession {
	return &CampaignSession{
		ID:         id,
		Recipients: NewRecipientService(),
		state:      constants.BatchStateIdle,
	}
}

// begin marks the session as having an in-flight batch. It fails with
// ErrBatchInFlight when one is already outstanding, so two submissions can
// never interleave their result reporting.
func (s *CampaignSession) begin(cancel context.CancelFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == constants.BatchStateSubmitted {
		return business.ErrBatchInFlight
	}
	s.state = constants.BatchStateSubmitted
	s.cancel = cancel
	s.results = nil
	s.summary = business.BatchSummary{}
	return nil
}

// complete records the full ordered result set and releases the in-flight
// flag.
func (s *CampaignSession) complete(results []business.SendResult, summary business.BatchSummary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = constants.BatchStateCompleted
	s.cancel = nil
	s.results = results
	s.summary = summary
}

// Cancel asks the in-flight batch to skip its not-yet-attempted recipients.
// Attempts already issued run to their own resolution. Returns false when no
// batch is in flight.
func (s *CampaignSession) Cancel() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != constants.BatchStateSubmitted || s.cancel == nil {
		return false
	}
	s.cancel()
	return true
}

// State returns the session's batch lifecycle state.
func (s *CampaignSession) State() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Results returns the last completed batch's ordered results and summary.
// ok is false until a batch has completed.
func (s *CampaignSession) Results() (results []business.SendResult, summary business.BatchSummary, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != constants.BatchStateCompleted {
		return nil, business.BatchSummary{}, false
	}
	results = make([]business.SendResult, len(s.results))
	copy(results, s.results)
	return results, s.summary, true
}

// SessionManager hands out composition sessions keyed by the caller's
// session identifier. Sessions are created on first use.
type SessionManager struct {
	mu       sync.Mutex
	sessions map[string]*CampaignSession
}

// NewSessionManager creates an empty session registry.
func NewSessionManager() *SessionManager {
	return &SessionManager{
		sessions: make(map[string]*CampaignSession),
	}
}

// Get returns the session for id, creating it when absent. A blank id maps
// to the default session.
func (m *SessionManager) Get(id string) *CampaignSession {
	if id == "" {
		id = constants.DefaultSessionID
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	session, ok := m.sessions[id]
	if !ok {
		session = NewCampaignSession(id)
		m.sessions[id] = session
	}
	return session
}
