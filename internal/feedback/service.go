package feedback

import (
	"context"
	"errors"
	"fmt"

	"feedbackManagement/models"
	"feedbackManagement/repository"
)

var (
	// ErrUnknownSender is returned when the authenticated subject no longer
	// resolves to a stored user. Tokens outlive user records, so a valid
	// token is not proof the sender still exists.
	ErrUnknownSender = errors.New("sender not found")

	// ErrUnknownRecipient is returned when to_user does not reference an
	// existing user.
	ErrUnknownRecipient = errors.New("recipient not found")
)

// Service orchestrates feedback submission and listing.
type Service struct {
	users    repository.UserRepositoryI
	feedback repository.FeedbackRepositoryI
}

// NewService creates a feedback Service.
func NewService(users repository.UserRepositoryI, feedback repository.FeedbackRepositoryI) *Service {
	return &Service{users: users, feedback: feedback}
}

// Submit records a feedback message from the authenticated sender to the
// given recipient. The sender username comes from a validated token
// subject; it is resolved to a user id here. The recipient must exist.
func (s *Service) Submit(ctx context.Context, senderUsername string, toUserID int64, message string) (*models.Feedback, error) {
	if message == "" {
		return nil, errors.New("message is required")
	}
	sender, err := s.users.GetByUsername(ctx, senderUsername)
	if err != nil {
		return nil, fmt.Errorf("get sender: %w", err)
	}
	if sender == nil {
		return nil, ErrUnknownSender
	}
	recipient, err := s.users.GetByID(ctx, toUserID)
	if err != nil {
		return nil, fmt.Errorf("get recipient: %w", err)
	}
	if recipient == nil {
		return nil, ErrUnknownRecipient
	}
	return s.feedback.Create(ctx, &models.Feedback{
		Message:  message,
		FromUser: sender.ID,
		ToUser:   toUserID,
	})
}

// List returns all feedback in submission order.
func (s *Service) List(ctx context.Context) ([]models.Feedback, error) {
	return s.feedback.List(ctx)
}

// ListReceived returns the feedback addressed to the authenticated user,
// in submission order.
func (s *Service) ListReceived(ctx context.Context, username string) ([]models.Feedback, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if u == nil {
		return nil, ErrUnknownSender
	}
	return s.feedback.ListByRecipient(ctx, u.ID)
}
