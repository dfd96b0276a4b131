package client

import (
	"context"
	"net"
	"testing"

	"github.com/dmitrijs2005/gophaccounts/internal/cryptox"
	"github.com/dmitrijs2005/gophaccounts/internal/dbx"
	"github.com/dmitrijs2005/gophaccounts/internal/logging"
	"github.com/dmitrijs2005/gophaccounts/internal/server/auth"
	"github.com/dmitrijs2005/gophaccounts/internal/server/config"
	"github.com/dmitrijs2005/gophaccounts/internal/server/notify"
	"github.com/dmitrijs2005/gophaccounts/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gophaccounts/internal/server/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/test/bufconn"

	gs "github.com/dmitrijs2005/gophaccounts/internal/server/grpc"
)

type discardMail struct{}

func (discardMail) Enqueue(context.Context, notify.Message) error { return nil }

// dialServer runs an in-memory account server and returns a client wired to it.
func dialServer(t *testing.T) (*GRPCClient, *repomanager.InMemoryRepositoryManager) {
	t.Helper()

	cfg := &config.Config{}
	cfg.LoadDefaults()

	store := repomanager.NewInMemoryRepositoryManager()
	hasher := cryptox.NewBcryptHasher(4)
	log := logging.Discard()

	sessions := services.NewSessionService(dbx.NopRunner{}, store, auth.NewCodec([]byte(cfg.SecretKey)), hasher, cfg, log)
	accounts := services.NewAccountService(dbx.NopRunner{}, store, hasher, discardMail{}, cfg, "0.1.0", log)
	srv := gs.NewGRPCServer("bufnet", log, sessions, accounts)

	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, lis) }()

	c := &GRPCClient{endpointURL: "passthrough:///bufnet"}
	require.NoError(t, c.InitGRPCClient(
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
	))

	t.Cleanup(func() {
		_ = c.Close()
		cancel()
		<-done
	})
	return c, store
}

func TestGRPCClient_RevokedSessionDoesNotBlockAnonymousCalls(t *testing.T) {
	c, store := dialServer(t)
	ctx := context.Background()

	u, err := c.Register(ctx, "Alice", "alice@x.com", "password1")
	require.NoError(t, err)
	vt, err := store.VerifyTokens(nil).GetByUser(ctx, u.GetId())
	require.NoError(t, err)
	require.NoError(t, c.VerifyEmail(ctx, vt.ID))

	_, err = c.Login(ctx, "alice@x.com", "password1", true)
	require.NoError(t, err)

	_, err = store.Sessions(nil).DeleteByUser(ctx, u.GetId())
	require.NoError(t, err)

	_, err = c.Me(ctx)
	assert.ErrorIs(t, err, ErrUnauthorized)

	v, err := c.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, "0.1.0", v)

	_, err = c.Login(ctx, "alice@x.com", "password1", false)
	require.NoError(t, err)

	me, err := c.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, "alice@x.com", me.GetEmail())
	assert.False(t, me.GetEmailVerifiedAt().AsTime().IsZero())
}
