package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/gophaccounts/internal/client/client"
	"github.com/dmitrijs2005/gophaccounts/internal/client/config"
	"github.com/dmitrijs2005/gophaccounts/internal/client/services"
)

// authenticator keeps the CLI signed in across runs.
type authenticator interface {
	Restore(ctx context.Context) (string, bool, error)
	Login(ctx context.Context, email, password string, remember bool) error
	SaveTokens(ctx context.Context, pair client.TokenPair) error
	Logout(ctx context.Context) error
	Forget(ctx context.Context) error
}

type App struct {
	config *config.Config
	api    client.Client
	auth   authenticator
	reader *bufio.Reader
	out    io.Writer
	email  string
	close  func() error
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	db, err := client.InitDatabase(ctx, c.StateFile)
	if err != nil {
		return nil, fmt.Errorf("error initializing state database: %w", err)
	}

	api, err := client.NewAccountClient(c.ServerEndpointAddr)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	auth := services.NewAuthService(api, db)
	app := &App{
		config: c,
		api:    api,
		auth:   auth,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		close: func() error {
			_ = api.Close()
			return db.Close()
		},
	}

	api.OnRefresh(func(pair client.TokenPair) {
		if err := auth.SaveTokens(context.Background(), pair); err != nil {
			fmt.Fprintln(app.out, "Warning: could not save refreshed tokens:", err)
		}
	})

	return app, nil
}

// Run executes the command given on the command line, or starts the
// interactive prompt when there is none.
func (a *App) Run(ctx context.Context) error {
	if a.close != nil {
		defer a.close()
	}

	email, ok, err := a.auth.Restore(ctx)
	if err != nil {
		return err
	}
	if ok {
		a.email = email
	}

	if len(a.config.Args) > 0 {
		return runCommand(ctx, a, a.config.Args[0], a.config.Args[1:])
	}

	fmt.Fprintln(a.out, "Account CLI (type 'help' for commands)")
	runREPL(ctx, a, a.status, a.reader)
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.email != ""
}

func (a *App) status() string {
	if a.email == "" {
		return "(anonymous)"
	}
	return "(" + a.email + ")"
}

func (a *App) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.config == nil || a.config.RequestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}
