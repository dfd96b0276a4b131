package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophaccounts/internal/common"
	"github.com/dmitrijs2005/gophaccounts/internal/cryptox"
	"github.com/dmitrijs2005/gophaccounts/internal/dbx"
	"github.com/dmitrijs2005/gophaccounts/internal/logging"
	"github.com/dmitrijs2005/gophaccounts/internal/server/config"
	"github.com/dmitrijs2005/gophaccounts/internal/server/models"
	"github.com/dmitrijs2005/gophaccounts/internal/server/notify"
	"github.com/dmitrijs2005/gophaccounts/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// AccountService registers users and runs the verification and password
// reset workflows. Mails are enqueued only after the transaction commits.
type AccountService struct {
	tx          dbx.TxRunner
	repomanager repomanager.RepositoryManager
	hasher      cryptox.Hasher
	sink        notify.Sink
	log         logging.Logger
	appName     string
	version     string
	now         func() time.Time
}

func NewAccountService(tx dbx.TxRunner, m repomanager.RepositoryManager, hasher cryptox.Hasher,
	sink notify.Sink, cfg *config.Config, version string, log logging.Logger) *AccountService {
	return &AccountService{
		tx:          tx,
		repomanager: m,
		hasher:      hasher,
		sink:        sink,
		log:         log,
		appName:     cfg.AppName,
		version:     version,
		now:         time.Now,
	}
}

func (s *AccountService) WithClock(now func() time.Time) *AccountService {
	s.now = now
	return s
}

func (s *AccountService) Version() string {
	return s.version
}

// Me returns the authenticated user, or nil for anonymous callers.
func (s *AccountService) Me(identity *Identity) *models.User {
	if identity == nil {
		return nil
	}
	return identity.User
}

// Register creates an unverified user and mails the verification token.
func (s *AccountService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	now := s.now()
	user := &models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	token := &models.VerifyToken{ID: uuid.NewString(), UserID: user.ID, CreatedAt: now}

	err = s.tx.WithTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		users := s.repomanager.Users(tx)

		_, err := users.GetByEmail(ctx, email)
		if err == nil {
			return common.ErrEmailAlreadyInUse
		}
		if !errors.Is(err, common.ErrUserNotFound) {
			return err
		}

		if err := users.Create(ctx, user); err != nil {
			return err
		}
		return s.repomanager.VerifyTokens(tx).Create(ctx, token)
	})
	if err != nil {
		return nil, err
	}

	s.enqueue(ctx, s.verificationMail(user.Email, token.ID))
	return user, nil
}

// VerifyEmail redeems a verification token. The token is consumed even when
// the user was verified already.
func (s *AccountService) VerifyEmail(ctx context.Context, tokenID string) error {
	if err := validateTokenID(tokenID); err != nil {
		return err
	}

	var (
		user     *models.User
		verified bool
	)
	err := s.tx.WithTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		tokens := s.repomanager.VerifyTokens(tx)

		token, err := tokens.Get(ctx, tokenID)
		if err != nil {
			return err
		}
		// Only the redemption that removes the row may go on.
		if err := tokens.Delete(ctx, token.ID); err != nil {
			return err
		}

		user, err = s.repomanager.Users(tx).GetByID(ctx, token.UserID)
		if err != nil {
			return err
		}
		if !user.Verified() {
			if err := s.repomanager.Users(tx).MarkEmailVerified(ctx, user.ID, s.now()); err != nil {
				return err
			}
			verified = true
		}
		return nil
	})
	if err != nil {
		return err
	}

	if verified {
		s.enqueue(ctx, notify.Message{
			To:      user.Email,
			Subject: s.appName + ": email verified",
			Body:    "Your email has been verified.",
		})
	}
	return nil
}

// ResendVerifyEmail mails the outstanding verification token again, creating
// one only when none exists.
func (s *AccountService) ResendVerifyEmail(ctx context.Context, email string) error {
	if err := validateEmail(email); err != nil {
		return err
	}

	var (
		user  *models.User
		token *models.VerifyToken
	)
	err := s.tx.WithTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		user, err = s.repomanager.Users(tx).GetByEmail(ctx, email)
		if err != nil {
			return err
		}
		if user.Verified() {
			return common.ErrUserAlreadyVerified
		}

		tokens := s.repomanager.VerifyTokens(tx)
		token, err = tokens.GetByUser(ctx, user.ID)
		if err == nil {
			return nil
		}
		if !errors.Is(err, common.ErrVerifyTokenNotFound) {
			return err
		}
		token = &models.VerifyToken{ID: uuid.NewString(), UserID: user.ID, CreatedAt: s.now()}
		return tokens.Create(ctx, token)
	})
	if err != nil {
		return err
	}

	s.enqueue(ctx, s.verificationMail(user.Email, token.ID))
	return nil
}

// RequestReset issues a new reset token on every call. Earlier tokens stay
// valid until redeemed or swept.
func (s *AccountService) RequestReset(ctx context.Context, email string) error {
	if err := validateEmail(email); err != nil {
		return err
	}

	var (
		user  *models.User
		token *models.ResetToken
	)
	err := s.tx.WithTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		user, err = s.repomanager.Users(tx).GetByEmail(ctx, email)
		if err != nil {
			return err
		}
		token = &models.ResetToken{ID: uuid.NewString(), UserID: user.ID, CreatedAt: s.now()}
		return s.repomanager.ResetTokens(tx).Create(ctx, token)
	})
	if err != nil {
		return err
	}

	s.enqueue(ctx, notify.Message{
		To:      user.Email,
		Subject: s.appName + ": password reset",
		Body:    fmt.Sprintf("Your password reset token is %q", token.ID),
	})
	return nil
}

// ResetPassword redeems one reset token and replaces the password hash.
// Other outstanding reset tokens of the user are left in place.
func (s *AccountService) ResetPassword(ctx context.Context, tokenID, password string) error {
	if err := validateTokenID(tokenID); err != nil {
		return err
	}
	if err := validatePassword(password); err != nil {
		return err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	var user *models.User
	err = s.tx.WithTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		tokens := s.repomanager.ResetTokens(tx)

		token, err := tokens.Get(ctx, tokenID)
		if err != nil {
			return err
		}
		if err := tokens.Delete(ctx, token.ID); err != nil {
			return err
		}

		users := s.repomanager.Users(tx)
		user, err = users.GetByID(ctx, token.UserID)
		if err != nil {
			return err
		}
		return users.UpdatePassword(ctx, user.ID, hash, s.now())
	})
	if err != nil {
		return err
	}

	s.enqueue(ctx, notify.Message{
		To:      user.Email,
		Subject: s.appName + ": password changed",
		Body:    "Your password has been changed.",
	})
	return nil
}

func (s *AccountService) verificationMail(to, tokenID string) notify.Message {
	return notify.Message{
		To:      to,
		Subject: s.appName + ": email verification",
		Body:    fmt.Sprintf("Please verify your email, your token is %q", tokenID),
	}
}

// enqueue hands m to the sink. Failures are logged only; the primary
// mutation has already been committed.
func (s *AccountService) enqueue(ctx context.Context, m notify.Message) {
	if err := s.sink.Enqueue(ctx, m); err != nil {
		s.log.Error(ctx, "error enqueuing notification", "to", m.To, "subject", m.Subject, "error", err)
	}
}
