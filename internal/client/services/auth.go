// Package services keeps the CLI signed in: it logs in through the API
// client and mirrors the resulting token pair into the local state database.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophaccounts/internal/client/client"
	"github.com/dmitrijs2005/gophaccounts/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/gophaccounts/internal/dbx"
)

type AuthService struct {
	client client.Client
	db     *sql.DB
}

func NewAuthService(c client.Client, db *sql.DB) *AuthService {
	return &AuthService{client: c, db: db}
}

func (a *AuthService) repo(db dbx.DBTX) metadata.Repository {
	return metadata.NewSQLiteRepository(db)
}

// Restore loads the saved token pair into the client and returns the email
// it belongs to. ok is false when nobody is signed in.
func (a *AuthService) Restore(ctx context.Context) (email string, ok bool, err error) {
	repo := a.repo(a.db)

	email, ok, err = repo.Get(ctx, metadata.KeyEmail)
	if err != nil || !ok {
		return "", false, err
	}
	access, ok, err := repo.Get(ctx, metadata.KeyAccessToken)
	if err != nil || !ok {
		return "", false, err
	}
	refresh, _, err := repo.Get(ctx, metadata.KeyRefreshToken)
	if err != nil {
		return "", false, err
	}

	a.client.SetTokens(client.TokenPair{AccessToken: access, RefreshToken: refresh})
	return email, true, nil
}

func (a *AuthService) Login(ctx context.Context, email, password string, remember bool) error {
	pair, err := a.client.Login(ctx, email, password, remember)
	if err != nil {
		return err
	}

	return dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := a.repo(tx)
		if err := repo.Clear(ctx); err != nil {
			return err
		}
		if err := repo.Set(ctx, metadata.KeyEmail, email); err != nil {
			return err
		}
		return a.saveTokens(ctx, repo, pair)
	})
}

// SaveTokens persists a pair obtained by a transparent refresh.
func (a *AuthService) SaveTokens(ctx context.Context, pair client.TokenPair) error {
	return dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return a.saveTokens(ctx, a.repo(tx), pair)
	})
}

func (a *AuthService) saveTokens(ctx context.Context, repo metadata.Repository, pair client.TokenPair) error {
	if err := repo.Set(ctx, metadata.KeyAccessToken, pair.AccessToken); err != nil {
		return err
	}
	if pair.RefreshToken == "" {
		return repo.Delete(ctx, metadata.KeyRefreshToken)
	}
	return repo.Set(ctx, metadata.KeyRefreshToken, pair.RefreshToken)
}

// Logout revokes the current session on the server when it is still alive
// and forgets the local tokens either way.
func (a *AuthService) Logout(ctx context.Context) error {
	if err := a.revokeCurrent(ctx); err != nil && !errors.Is(err, client.ErrUnauthorized) {
		return fmt.Errorf("revoking session: %w", err)
	}
	return a.Forget(ctx)
}

func (a *AuthService) revokeCurrent(ctx context.Context) error {
	sessions, err := a.client.Sessions(ctx)
	if err != nil {
		return err
	}
	for _, s := range sessions {
		if s.Current {
			return a.client.KillSession(ctx, s.GetId())
		}
	}
	return nil
}

// Forget drops the local tokens without contacting the server.
func (a *AuthService) Forget(ctx context.Context) error {
	a.client.SetTokens(client.TokenPair{})
	return a.repo(a.db).Clear(ctx)
}
