package services

import (
	"context"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophaccounts/internal/cryptox"
	"github.com/dmitrijs2005/gophaccounts/internal/dbx"
	"github.com/dmitrijs2005/gophaccounts/internal/logging"
	"github.com/dmitrijs2005/gophaccounts/internal/server/auth"
	"github.com/dmitrijs2005/gophaccounts/internal/server/config"
	"github.com/dmitrijs2005/gophaccounts/internal/server/models"
	"github.com/dmitrijs2005/gophaccounts/internal/server/notify"
	"github.com/dmitrijs2005/gophaccounts/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

type recordingSink struct {
	mu   sync.Mutex
	msgs []notify.Message
	err  error
}

func (s *recordingSink) Enqueue(_ context.Context, m notify.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.msgs = append(s.msgs, m)
	return nil
}

func (s *recordingSink) Messages() []notify.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]notify.Message(nil), s.msgs...)
}

type fixture struct {
	store    *repomanager.InMemoryRepositoryManager
	sink     *recordingSink
	clock    *fakeClock
	codec    *auth.Codec
	hasher   cryptox.Hasher
	sessions *SessionService
	accounts *AccountService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	cfg := &config.Config{}
	cfg.LoadDefaults()

	f := &fixture{
		store:  repomanager.NewInMemoryRepositoryManager(),
		sink:   &recordingSink{},
		clock:  &fakeClock{t: time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)},
		hasher: cryptox.NewBcryptHasher(4),
	}
	f.codec = auth.NewCodec([]byte("test-secret"), auth.WithClock(f.clock.Now))
	log := logging.Discard()

	f.sessions = NewSessionService(dbx.NopRunner{}, f.store, f.codec, f.hasher, cfg, log).WithClock(f.clock.Now)
	f.accounts = NewAccountService(dbx.NopRunner{}, f.store, f.hasher, f.sink, cfg, "1.2.3", log).WithClock(f.clock.Now)
	return f
}

// registerVerified registers a user and redeems its verification token.
func (f *fixture) registerVerified(t *testing.T, name, email, password string) *models.User {
	t.Helper()
	ctx := context.Background()

	u, err := f.accounts.Register(ctx, name, email, password)
	require.NoError(t, err)

	token, err := f.store.VerifyTokens(nil).GetByUser(ctx, u.ID)
	require.NoError(t, err)
	require.NoError(t, f.accounts.VerifyEmail(ctx, token.ID))

	u, err = f.store.Users(nil).GetByID(ctx, u.ID)
	require.NoError(t, err)
	return u
}

var quotedToken = regexp.MustCompile(`"([^"]+)"`)

// resetTokens returns the reset token ids mailed so far, oldest first.
func (f *fixture) resetTokens(t *testing.T) []string {
	t.Helper()
	var ids []string
	for _, m := range f.sink.Messages() {
		if !strings.HasSuffix(m.Subject, ": password reset") {
			continue
		}
		match := quotedToken.FindStringSubmatch(m.Body)
		require.Len(t, match, 2, m.Body)
		ids = append(ids, match[1])
	}
	return ids
}

func (f *fixture) identity(t *testing.T, pair *TokenPair) *Identity {
	t.Helper()
	id, err := f.sessions.Authenticate(context.Background(), pair.AccessToken)
	require.NoError(t, err)
	require.NotNil(t, id)
	return id
}
