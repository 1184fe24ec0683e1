package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"feedbackManagement/models"
)

// FeedbackRepository is the repository for Feedback entities.
// Feedback is append-only; there are no update or delete operations.
type FeedbackRepository struct {
	db *sql.DB
}

// NewFeedbackRepository creates a new FeedbackRepository.
func NewFeedbackRepository(db *sql.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

// Create inserts a new feedback record and returns it with its generated ID.
func (r *FeedbackRepository) Create(ctx context.Context, f *models.Feedback) (*models.Feedback, error) {
	if f == nil {
		return nil, errors.New("feedback is nil")
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO feedback (message, from_user, to_user) VALUES (?, ?, ?)`,
		f.Message, f.FromUser, f.ToUser)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &models.Feedback{ID: id, Message: f.Message, FromUser: f.FromUser, ToUser: f.ToUser}, nil
}

// GetByID fetches a feedback record by its ID.
func (r *FeedbackRepository) GetByID(ctx context.Context, id int64) (*models.Feedback, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var f models.Feedback
	err := r.db.QueryRowContext(ctx,
		`SELECT id, message, from_user, to_user FROM feedback WHERE id = ?`, id).
		Scan(&f.ID, &f.Message, &f.FromUser, &f.ToUser)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &f, nil
}

// List returns all feedback records in insertion order (id ascending).
func (r *FeedbackRepository) List(ctx context.Context) ([]models.Feedback, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, message, from_user, to_user FROM feedback ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []models.Feedback
	for rows.Next() {
		var f models.Feedback
		if err := rows.Scan(&f.ID, &f.Message, &f.FromUser, &f.ToUser); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListByRecipient returns all feedback addressed to the given user,
// in insertion order.
func (r *FeedbackRepository) ListByRecipient(ctx context.Context, toUserID int64) ([]models.Feedback, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, message, from_user, to_user FROM feedback WHERE to_user = ? ORDER BY id`, toUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []models.Feedback
	for rows.Next() {
		var f models.Feedback
		if err := rows.Scan(&f.ID, &f.Message, &f.FromUser, &f.ToUser); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// CountAll returns the total number of feedback records.
func (r *FeedbackRepository) CountAll(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM feedback`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
