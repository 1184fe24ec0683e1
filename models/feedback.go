package models

// Feedback represents a feedback message one user addressed to another.
// It maps to the `feedback` table in SQLite. FromUser and ToUser hold
// User IDs; records are append-only and never updated or deleted.
type Feedback struct {
	ID       int64  `db:"id" json:"id"`
	Message  string `db:"message" json:"message"`
	FromUser int64  `db:"from_user" json:"from_user"`
	ToUser   int64  `db:"to_user" json:"to_user"`
}
