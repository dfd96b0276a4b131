package models

import "time"

// VerifyToken proves control of the registered email. At most one exists per user.
type VerifyToken struct {
	ID        string
	UserID    string
	CreatedAt time.Time
}

// ResetToken authorizes a single password change. A user may hold several.
type ResetToken struct {
	ID        string
	UserID    string
	CreatedAt time.Time
}
