// Package services contains the account business logic: SessionService
// manages logins, token refresh and revocation, AccountService runs the
// single-use verification and password reset workflows.
package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophaccounts/internal/common"
	"github.com/dmitrijs2005/gophaccounts/internal/cryptox"
	"github.com/dmitrijs2005/gophaccounts/internal/dbx"
	"github.com/dmitrijs2005/gophaccounts/internal/logging"
	"github.com/dmitrijs2005/gophaccounts/internal/server/auth"
	"github.com/dmitrijs2005/gophaccounts/internal/server/config"
	"github.com/dmitrijs2005/gophaccounts/internal/server/models"
	"github.com/dmitrijs2005/gophaccounts/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// TokenPair bundles a short-lived access token and, for remembered
// sessions, a refresh token. RefreshToken is empty otherwise.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// Identity is the authenticated caller of a request.
type Identity struct {
	User      *models.User
	SessionID string
}

type SessionService struct {
	tx                           dbx.TxRunner
	repomanager                  repomanager.RepositoryManager
	codec                        *auth.Codec
	hasher                       cryptox.Hasher
	log                          logging.Logger
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
	now                          func() time.Time
}

func NewSessionService(tx dbx.TxRunner, m repomanager.RepositoryManager, codec *auth.Codec,
	hasher cryptox.Hasher, cfg *config.Config, log logging.Logger) *SessionService {
	return &SessionService{
		tx:                           tx,
		repomanager:                  m,
		codec:                        codec,
		hasher:                       hasher,
		log:                          log,
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
		now:                          time.Now,
	}
}

// WithClock replaces time.Now. Use the same clock as the codec.
func (s *SessionService) WithClock(now func() time.Time) *SessionService {
	s.now = now
	return s
}

// Login checks the credentials and opens a new session. A refresh token is
// issued only when remember is set.
func (s *SessionService) Login(ctx context.Context, email, password string, remember bool) (*TokenPair, error) {
	if err := validateEmail(email); err != nil {
		return nil, err
	}

	var (
		user    *models.User
		session *models.Session
	)
	err := s.tx.WithTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		user, err = s.repomanager.Users(tx).GetByEmail(ctx, email)
		if err != nil {
			return err
		}
		if !user.Verified() {
			return common.ErrUserNotVerified
		}
		if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
			if errors.Is(err, cryptox.ErrMismatchedHashAndPassword) {
				return common.ErrInvalidPassword
			}
			return fmt.Errorf("error comparing password: %w", err)
		}

		now := s.now()
		session = &models.Session{ID: uuid.NewString(), UserID: user.ID, CreatedAt: now, UpdatedAt: now}
		if remember {
			if session.RefreshToken, err = common.MakeRandHexString(32); err != nil {
				return err
			}
		}
		return s.repomanager.Sessions(tx).Create(ctx, session)
	})
	if err != nil {
		return nil, err
	}

	return s.issuePair(user, session)
}

// Refresh exchanges a refresh token for a new pair bound to the same
// session. The stored secret is rotated, so each refresh token works once.
func (s *SessionService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	payload, err := s.codec.VerifyRefresh(refreshToken)
	if err != nil {
		return nil, err
	}

	var (
		user    *models.User
		session *models.Session
	)
	err = s.tx.WithTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		sessions := s.repomanager.Sessions(tx)

		var err error
		session, err = sessions.Get(ctx, payload.SessionID)
		if err != nil {
			return err
		}
		if !session.Remembered() ||
			subtle.ConstantTimeCompare([]byte(session.RefreshToken), []byte(payload.RefreshToken)) != 1 {
			return common.ErrInvalidRefreshToken
		}
		if session.UserID != payload.UserID {
			s.log.Error(ctx, "refresh token claims disagree with session",
				"session_id", session.ID, "session_user_id", session.UserID, "claim_user_id", payload.UserID)
			return common.ErrInternalInconsistency
		}

		next, err := common.MakeRandHexString(32)
		if err != nil {
			return err
		}
		now := s.now()
		swapped, err := sessions.RotateRefreshToken(ctx, session.ID, payload.RefreshToken, next, now)
		if err != nil {
			return err
		}
		if !swapped {
			// a concurrent refresh rotated the secret first
			return common.ErrInvalidRefreshToken
		}
		session.RefreshToken = next
		session.UpdatedAt = now

		user, err = s.repomanager.Users(tx).GetByID(ctx, session.UserID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return s.issuePair(user, session)
}

// Authenticate resolves a bearer token to the caller and slides the session
// expiry forward. An empty token yields a nil identity and no error.
func (s *SessionService) Authenticate(ctx context.Context, bearer string) (*Identity, error) {
	if bearer == "" {
		return nil, nil
	}

	payload, err := s.codec.VerifyAccess(bearer)
	if err != nil {
		return nil, err
	}

	var identity *Identity
	err = s.tx.WithTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		sessions := s.repomanager.Sessions(tx)

		session, err := sessions.Get(ctx, payload.SessionID)
		if err != nil {
			if errors.Is(err, common.ErrSessionNotFound) {
				return common.ErrSessionExpiredOrRevoked
			}
			return err
		}
		if session.UserID != payload.UserID {
			s.log.Error(ctx, "access token claims disagree with session",
				"session_id", session.ID, "session_user_id", session.UserID, "claim_user_id", payload.UserID)
			return common.ErrInternalInconsistency
		}

		// updated_at strictly increases even when the clock does not
		at := s.now()
		if !at.After(session.UpdatedAt) {
			at = session.UpdatedAt.Add(time.Microsecond)
		}
		if err := sessions.Touch(ctx, session.ID, at); err != nil {
			if errors.Is(err, common.ErrSessionNotFound) {
				return common.ErrSessionExpiredOrRevoked
			}
			return err
		}

		user, err := s.repomanager.Users(tx).GetByID(ctx, session.UserID)
		if err != nil {
			return err
		}
		identity = &Identity{User: user, SessionID: session.ID}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return identity, nil
}

func (s *SessionService) ListSessions(ctx context.Context, identity *Identity) ([]models.Session, error) {
	if identity == nil {
		return nil, common.ErrNotAuthorized
	}

	var result []models.Session
	err := s.tx.WithTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		result, err = s.repomanager.Sessions(tx).ListByUser(ctx, identity.User.ID)
		return err
	})
	return result, err
}

// KillSession revokes one of the caller's sessions. Sessions of other users
// are reported as not found.
func (s *SessionService) KillSession(ctx context.Context, identity *Identity, sessionID string) error {
	if identity == nil {
		return common.ErrNotAuthorized
	}
	if err := validateSessionID(sessionID); err != nil {
		return err
	}

	return s.tx.WithTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		n, err := s.repomanager.Sessions(tx).Delete(ctx, sessionID, identity.User.ID)
		if err != nil {
			return err
		}
		if n == 0 {
			return common.ErrSessionNotFound
		}
		return nil
	})
}

// KillAllSessions revokes every session of the caller, the current one
// included, and returns how many were removed.
func (s *SessionService) KillAllSessions(ctx context.Context, identity *Identity) (int64, error) {
	if identity == nil {
		return 0, common.ErrNotAuthorized
	}

	var n int64
	err := s.tx.WithTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		n, err = s.repomanager.Sessions(tx).DeleteByUser(ctx, identity.User.ID)
		return err
	})
	return n, err
}

func (s *SessionService) issuePair(user *models.User, session *models.Session) (*TokenPair, error) {
	access, err := s.codec.Issue(auth.AccessPayload{
		UserID:    user.ID,
		SessionID: session.ID,
		Role:      user.Role,
	}, s.accessTokenValidityDuration)
	if err != nil {
		return nil, fmt.Errorf("error issuing access token: %w", err)
	}

	pair := &TokenPair{AccessToken: access}
	if !session.Remembered() {
		return pair, nil
	}

	pair.RefreshToken, err = s.codec.Issue(auth.RefreshPayload{
		UserID:       user.ID,
		SessionID:    session.ID,
		RefreshToken: session.RefreshToken,
	}, s.refreshTokenValidityDuration)
	if err != nil {
		return nil, fmt.Errorf("error issuing refresh token: %w", err)
	}
	return pair, nil
}
