package client

import (
	"context"

	"github.com/dmitrijs2005/gophaccounts/internal/proto"
)

// TokenPair is the credentials the client holds. RefreshToken is empty for
// sessions that were not remembered.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// Client is the account API as seen by the CLI. Protected calls use the
// token pair installed with SetTokens or obtained by Login.
type Client interface {
	Close() error
	SetTokens(pair TokenPair)
	Tokens() TokenPair

	Version(ctx context.Context) (string, error)
	Register(ctx context.Context, name, email, password string) (*proto.User, error)
	VerifyEmail(ctx context.Context, token string) error
	ResendVerifyEmail(ctx context.Context, email string) error
	RequestReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, password string) error
	Login(ctx context.Context, email, password string, remember bool) (TokenPair, error)
	Me(ctx context.Context) (*proto.User, error)
	Sessions(ctx context.Context) ([]*proto.Session, error)
	KillSession(ctx context.Context, sessionID string) error
	KillSessions(ctx context.Context) (int64, error)
}
