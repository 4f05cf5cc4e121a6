package interfaces

import (
	"context"

	"github.com/mergepost/mergepost-api/libs/go/types/api/params"
	"github.com/mergepost/mergepost-api/libs/go/types/business"
)

//go:generate mockgen -source=services.go -destination=../mocks/email_sender_mock.go -package=mocks

// EmailSender is the external delivery transport boundary. The dispatcher
// issues one Send per recipient; a returned error is recorded as that
// recipient's failure and never aborts the batch.
type EmailSender interface {
	Send(ctx context.Context, params params.SendMessageParams) error
	TestConnection(ctx context.Context) business.ConnectionStatus
}

// RecipientStore holds the ordered recipient list for one composition
// session.
type RecipientStore interface {
	Add(params params.UpsertRecipientParams) (*business.Recipient, error)
	Update(index int, params params.UpsertRecipientParams) (*business.Recipient, error)
	Remove(index int) error
	List() []business.Recipient
	Len() int
}
