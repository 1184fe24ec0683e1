package repository

import (
	"context"

	"feedbackManagement/models"
)

// UserRepositoryI defines operations on User entities.
type UserRepositoryI interface {
	Create(ctx context.Context, username, passwordHash, role string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	List(ctx context.Context, limit, offset int) ([]models.User, error)
}

// FeedbackRepositoryI defines operations on Feedback entities.
type FeedbackRepositoryI interface {
	Create(ctx context.Context, f *models.Feedback) (*models.Feedback, error)
	GetByID(ctx context.Context, id int64) (*models.Feedback, error)
	List(ctx context.Context) ([]models.Feedback, error)
	ListByRecipient(ctx context.Context, toUserID int64) ([]models.Feedback, error)
	CountAll(ctx context.Context) (int64, error)
}
