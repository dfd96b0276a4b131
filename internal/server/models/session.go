package models

import "time"

// Session is one logged-in device. RefreshToken is empty unless the session
// was opened with "remember" or has since been refreshed.
type Session struct {
	ID           string
	UserID       string
	RefreshToken string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Remembered reports whether the session can be refreshed.
func (s *Session) Remembered() bool {
	return s.RefreshToken != ""
}
