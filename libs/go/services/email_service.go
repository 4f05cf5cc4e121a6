package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"

	"github.com/mergepost/mergepost-api/libs/go/types/api/params"
	"github.com/mergepost/mergepost-api/libs/go/types/business"
)

// EmailService delivers rendered messages through Resend. It implements
// interfaces.EmailSender.
type EmailService struct {
	client    *resend.Client
	logger    *zap.Logger
	apiKey    string
	fromEmail string
	fromName  string
}

// NewEmailService creates an email service sending as "fromName <fromEmail>".
func NewEmailService(apiKey string, fromEmail string, fromName string, logger *zap.Logger) *EmailService {
	client := resend.NewClient(apiKey)

	if logger == nil {
		logger = zap.NewNop()
	}

	return &EmailService{
		client:    client,
		logger:    logger,
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

// Send delivers one message. The returned error carries the transport's
// failure description; the caller records it per recipient.
func (s *EmailService) Send(ctx context.Context, p params.SendMessageParams) error {
	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)

	emailParams := &resend.SendEmailRequest{
		From:    from,
		To:      []string{p.To},
		Subject: p.Subject,
		Text:    p.Body,
		Cc:      p.CC,
		Headers: map[string]string{
			"X-Entity-Ref-ID": uuid.New().String(),
		},
		Tags: convertToResendTags(p.Tags),
	}

	sent, err := s.client.Emails.Send(emailParams)
	if err != nil {
		s.logger.Error("failed to send email",
			zap.Error(err),
			zap.String("to", p.To),
			zap.String("subject", p.Subject))
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Info("email sent successfully",
		zap.String("email_id", sent.Id),
		zap.String("to", p.To),
		zap.String("subject", p.Subject))

	return nil
}

// TestConnection probes the transport with an authenticated API call. It
// touches no recipient or batch state.
func (s *EmailService) TestConnection(ctx context.Context) business.ConnectionStatus {
	if s.apiKey == "" {
		return business.ConnectionStatus{
			OK:      false,
			Message: "transport not configured: missing API key",
		}
	}

	if _, err := s.client.ApiKeys.List(); err != nil {
		s.logger.Warn("transport connection test failed", zap.Error(err))
		return business.ConnectionStatus{
			OK:      false,
			Message: fmt.Sprintf("connection test failed: %v", err),
		}
	}

	return business.ConnectionStatus{OK: true, Message: "transport reachable"}
}

func convertToResendTags(tags map[string]string) []resend.Tag {
	var resendTags []resend.Tag
	for name, value := range tags {
		resendTags = append(resendTags, resend.Tag{
			Name:  name,
			Value: value,
		})
	}
	return resendTags
}
