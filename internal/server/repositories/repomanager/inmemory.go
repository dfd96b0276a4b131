package repomanager

import (
	"context"
	"database/sql"
	"sort"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophaccounts/internal/common"
	"github.com/dmitrijs2005/gophaccounts/internal/dbx"
	"github.com/dmitrijs2005/gophaccounts/internal/server/models"
	"github.com/dmitrijs2005/gophaccounts/internal/server/repositories/resettokens"
	"github.com/dmitrijs2005/gophaccounts/internal/server/repositories/sessions"
	"github.com/dmitrijs2005/gophaccounts/internal/server/repositories/users"
	"github.com/dmitrijs2005/gophaccounts/internal/server/repositories/verifytokens"
)

// InMemoryRepositoryManager keeps every record in process memory. The DBTX
// handed to its factories is ignored, so it pairs with dbx.NopRunner and
// offers no rollback. It serves development runs without a DSN and tests.
type InMemoryRepositoryManager struct {
	mu       sync.Mutex
	users    map[string]models.User
	sessions map[string]models.Session
	verify   map[string]models.VerifyToken
	reset    map[string]models.ResetToken
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{
		users:    map[string]models.User{},
		sessions: map[string]models.Session{},
		verify:   map[string]models.VerifyToken{},
		reset:    map[string]models.ResetToken{},
	}
}

func (m *InMemoryRepositoryManager) RunMigrations(context.Context, *sql.DB) error { return nil }

func (m *InMemoryRepositoryManager) Users(dbx.DBTX) users.Repository { return memUsers{m} }

func (m *InMemoryRepositoryManager) Sessions(dbx.DBTX) sessions.Repository { return memSessions{m} }

func (m *InMemoryRepositoryManager) VerifyTokens(dbx.DBTX) verifytokens.Repository {
	return memVerifyTokens{m}
}

func (m *InMemoryRepositoryManager) ResetTokens(dbx.DBTX) resettokens.Repository {
	return memResetTokens{m}
}

// DeleteUser removes a user and, like the foreign keys, every dependent row.
func (m *InMemoryRepositoryManager) DeleteUser(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.users, id)
	for k, s := range m.sessions {
		if s.UserID == id {
			delete(m.sessions, k)
		}
	}
	for k, t := range m.verify {
		if t.UserID == id {
			delete(m.verify, k)
		}
	}
	for k, t := range m.reset {
		if t.UserID == id {
			delete(m.reset, k)
		}
	}
}

type memUsers struct{ m *InMemoryRepositoryManager }

func (r memUsers) Create(_ context.Context, u *models.User) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	for _, existing := range r.m.users {
		if existing.Email == u.Email {
			return common.ErrEmailAlreadyInUse
		}
	}
	r.m.users[u.ID] = copyUser(*u)
	return nil
}

func (r memUsers) GetByID(_ context.Context, id string) (*models.User, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	u, ok := r.m.users[id]
	if !ok {
		return nil, common.ErrUserNotFound
	}
	u = copyUser(u)
	return &u, nil
}

func (r memUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	for _, u := range r.m.users {
		if u.Email == email {
			u = copyUser(u)
			return &u, nil
		}
	}
	return nil, common.ErrUserNotFound
}

func (r memUsers) MarkEmailVerified(_ context.Context, id string, at time.Time) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	u, ok := r.m.users[id]
	if !ok || u.EmailVerifiedAt != nil {
		return nil
	}
	u.EmailVerifiedAt = &at
	u.UpdatedAt = at
	r.m.users[id] = u
	return nil
}

func (r memUsers) UpdatePassword(_ context.Context, id string, hash string, at time.Time) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	u, ok := r.m.users[id]
	if !ok {
		return common.ErrUserNotFound
	}
	u.PasswordHash = hash
	u.UpdatedAt = at
	r.m.users[id] = u
	return nil
}

func copyUser(u models.User) models.User {
	if u.EmailVerifiedAt != nil {
		t := *u.EmailVerifiedAt
		u.EmailVerifiedAt = &t
	}
	return u
}

type memSessions struct{ m *InMemoryRepositoryManager }

func (r memSessions) Create(_ context.Context, s *models.Session) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	r.m.sessions[s.ID] = *s
	return nil
}

func (r memSessions) Get(_ context.Context, id string) (*models.Session, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	s, ok := r.m.sessions[id]
	if !ok {
		return nil, common.ErrSessionNotFound
	}
	return &s, nil
}

func (r memSessions) ListByUser(_ context.Context, userID string) ([]models.Session, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	result := []models.Session{}
	for _, s := range r.m.sessions {
		if s.UserID == userID {
			result = append(result, s)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].UpdatedAt.After(result[j].UpdatedAt) })
	return result, nil
}

func (r memSessions) Touch(_ context.Context, id string, at time.Time) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	s, ok := r.m.sessions[id]
	if !ok {
		return common.ErrSessionNotFound
	}
	s.UpdatedAt = at
	r.m.sessions[id] = s
	return nil
}

func (r memSessions) RotateRefreshToken(_ context.Context, id, oldToken, newToken string, at time.Time) (bool, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	s, ok := r.m.sessions[id]
	if !ok || s.RefreshToken == "" || s.RefreshToken != oldToken {
		return false, nil
	}
	s.RefreshToken = newToken
	s.UpdatedAt = at
	r.m.sessions[id] = s
	return true, nil
}

func (r memSessions) Delete(_ context.Context, id, userID string) (int64, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	s, ok := r.m.sessions[id]
	if !ok || s.UserID != userID {
		return 0, nil
	}
	delete(r.m.sessions, id)
	return 1, nil
}

func (r memSessions) DeleteByUser(_ context.Context, userID string) (int64, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	var n int64
	for k, s := range r.m.sessions {
		if s.UserID == userID {
			delete(r.m.sessions, k)
			n++
		}
	}
	return n, nil
}

func (r memSessions) DeleteUpdatedBefore(_ context.Context, cutoff time.Time) (int64, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	var n int64
	for k, s := range r.m.sessions {
		if s.UpdatedAt.Before(cutoff) {
			delete(r.m.sessions, k)
			n++
		}
	}
	return n, nil
}

type memVerifyTokens struct{ m *InMemoryRepositoryManager }

func (r memVerifyTokens) Create(_ context.Context, t *models.VerifyToken) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	for _, existing := range r.m.verify {
		if existing.UserID == t.UserID {
			return common.ErrorConflict
		}
	}
	r.m.verify[t.ID] = *t
	return nil
}

func (r memVerifyTokens) Get(_ context.Context, id string) (*models.VerifyToken, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	t, ok := r.m.verify[id]
	if !ok {
		return nil, common.ErrVerifyTokenNotFound
	}
	return &t, nil
}

func (r memVerifyTokens) GetByUser(_ context.Context, userID string) (*models.VerifyToken, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	for _, t := range r.m.verify {
		if t.UserID == userID {
			return &t, nil
		}
	}
	return nil, common.ErrVerifyTokenNotFound
}

func (r memVerifyTokens) Delete(_ context.Context, id string) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	if _, ok := r.m.verify[id]; !ok {
		return common.ErrVerifyTokenNotFound
	}
	delete(r.m.verify, id)
	return nil
}

func (r memVerifyTokens) DeleteCreatedBefore(_ context.Context, cutoff time.Time) (int64, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	var n int64
	for k, t := range r.m.verify {
		if t.CreatedAt.Before(cutoff) {
			delete(r.m.verify, k)
			n++
		}
	}
	return n, nil
}

type memResetTokens struct{ m *InMemoryRepositoryManager }

func (r memResetTokens) Create(_ context.Context, t *models.ResetToken) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	r.m.reset[t.ID] = *t
	return nil
}

func (r memResetTokens) Get(_ context.Context, id string) (*models.ResetToken, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	t, ok := r.m.reset[id]
	if !ok {
		return nil, common.ErrResetTokenNotFound
	}
	return &t, nil
}

func (r memResetTokens) Delete(_ context.Context, id string) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	if _, ok := r.m.reset[id]; !ok {
		return common.ErrResetTokenNotFound
	}
	delete(r.m.reset, id)
	return nil
}

func (r memResetTokens) DeleteCreatedBefore(_ context.Context, cutoff time.Time) (int64, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	var n int64
	for k, t := range r.m.reset {
		if t.CreatedAt.Before(cutoff) {
			delete(r.m.reset, k)
			n++
		}
	}
	return n, nil
}
