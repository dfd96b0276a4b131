// Package grpc exposes the account services over gRPC.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/gophaccounts/internal/logging"
	"github.com/dmitrijs2005/gophaccounts/internal/proto"
	"github.com/dmitrijs2005/gophaccounts/internal/server/models"
	"github.com/dmitrijs2005/gophaccounts/internal/server/services"
	"google.golang.org/grpc"
)

// SessionManager is the part of services.SessionService the transport needs.
type SessionManager interface {
	Login(ctx context.Context, email, password string, remember bool) (*services.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*services.TokenPair, error)
	Authenticate(ctx context.Context, bearer string) (*services.Identity, error)
	ListSessions(ctx context.Context, identity *services.Identity) ([]models.Session, error)
	KillSession(ctx context.Context, identity *services.Identity, sessionID string) error
	KillAllSessions(ctx context.Context, identity *services.Identity) (int64, error)
}

// AccountManager is the part of services.AccountService the transport needs.
type AccountManager interface {
	Version() string
	Me(identity *services.Identity) *models.User
	Register(ctx context.Context, name, email, password string) (*models.User, error)
	VerifyEmail(ctx context.Context, tokenID string) error
	ResendVerifyEmail(ctx context.Context, email string) error
	RequestReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, tokenID, password string) error
}

type GRPCServer struct {
	proto.UnimplementedAccountServiceServer

	address  string
	sessions SessionManager
	accounts AccountManager
	logger   logging.Logger
}

var _ proto.AccountServiceServer = (*GRPCServer)(nil)

func NewGRPCServer(a string, l logging.Logger, sessions SessionManager, accounts AccountManager) *GRPCServer {
	return &GRPCServer{
		address:  a,
		logger:   l.With("module", "grpc_server"),
		sessions: sessions,
		accounts: accounts,
	}
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(s.statusInterceptor, s.authInterceptor),
	)
	proto.RegisterAccountServiceServer(srv, s)
	return srv
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis and stops gracefully once ctx is done.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil {
		return err
	}
	return nil
}
