package client

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/gophaccounts/internal/common"
	"github.com/dmitrijs2005/gophaccounts/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      proto.AccountServiceClient

	mu        sync.Mutex
	tokens    TokenPair
	onRefresh func(TokenPair)
}

var _ Client = (*GRPCClient)(nil)

func fromProto(p *proto.TokenPair) TokenPair {
	return TokenPair{AccessToken: p.GetAccessToken(), RefreshToken: p.GetRefreshToken()}
}

// anonymousMethods are served without authentication. They never carry the
// held access token, so a revoked session cannot block signing in again.
var anonymousMethods = map[string]bool{
	proto.AccountService_Version_FullMethodName:           true,
	proto.AccountService_Register_FullMethodName:          true,
	proto.AccountService_VerifyEmail_FullMethodName:       true,
	proto.AccountService_ResendVerifyEmail_FullMethodName: true,
	proto.AccountService_RequestReset_FullMethodName:      true,
	proto.AccountService_ResetPassword_FullMethodName:     true,
	proto.AccountService_Login_FullMethodName:             true,
	proto.AccountService_RefreshToken_FullMethodName:      true,
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AuthorizationHeaderName)
	if token != "" {
		md.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}
	return metadata.NewOutgoingContext(ctx, md)
}

// accessTokenInterceptor attaches the access token to protected calls. When the
// server reports it expired and a refresh token is held, the pair is
// refreshed once and the call retried.
func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if anonymousMethods[method] {
		return invoker(withAccessToken(ctx, ""), method, req, reply, cc, opts...)
	}

	tokens := s.Tokens()
	err := invoker(withAccessToken(ctx, tokens.AccessToken), method, req, reply, cc, opts...)
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok || st.Code() != codes.Unauthenticated || st.Message() != common.ErrTokenExpired.Error() {
		return err
	}
	if tokens.RefreshToken == "" {
		return err
	}

	refreshed, err := s.client.RefreshToken(ctx, &proto.RefreshTokenRequest{RefreshToken: tokens.RefreshToken})
	if err != nil {
		return err
	}
	s.storeRefreshed(fromProto(refreshed))

	return invoker(withAccessToken(ctx, refreshed.AccessToken), method, req, reply, cc, opts...)
}

func NewAccountClient(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	if err := c.InitGRPCClient(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient(opts ...grpc.DialOption) error {
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(s.endpointURL, opts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = proto.NewAccountServiceClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

// OnRefresh registers f to receive every pair obtained by a transparent
// refresh, so the caller can persist it.
func (s *GRPCClient) OnRefresh(f func(TokenPair)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onRefresh = f
}

func (s *GRPCClient) SetTokens(pair TokenPair) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens = pair
}

func (s *GRPCClient) Tokens() TokenPair {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tokens
}

func (s *GRPCClient) storeRefreshed(pair TokenPair) {
	s.mu.Lock()
	s.tokens = pair
	f := s.onRefresh
	s.mu.Unlock()

	if f != nil {
		f(pair)
	}
}

func (s *GRPCClient) Version(ctx context.Context) (string, error) {
	resp, err := s.client.Version(ctx, &emptypb.Empty{})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.Version, nil
}

func (s *GRPCClient) Register(ctx context.Context, name, email, password string) (*proto.User, error) {
	resp, err := s.client.Register(ctx, &proto.RegisterRequest{Name: name, Email: email, Password: password})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.User, nil
}

func (s *GRPCClient) VerifyEmail(ctx context.Context, token string) error {
	_, err := s.client.VerifyEmail(ctx, &proto.VerifyEmailRequest{Token: token})
	return s.mapError(err)
}

func (s *GRPCClient) ResendVerifyEmail(ctx context.Context, email string) error {
	_, err := s.client.ResendVerifyEmail(ctx, &proto.EmailRequest{Email: email})
	return s.mapError(err)
}

func (s *GRPCClient) RequestReset(ctx context.Context, email string) error {
	_, err := s.client.RequestReset(ctx, &proto.EmailRequest{Email: email})
	return s.mapError(err)
}

func (s *GRPCClient) ResetPassword(ctx context.Context, token, password string) error {
	_, err := s.client.ResetPassword(ctx, &proto.ResetPasswordRequest{Token: token, Password: password})
	return s.mapError(err)
}

func (s *GRPCClient) Login(ctx context.Context, email, password string, remember bool) (TokenPair, error) {
	resp, err := s.client.Login(ctx, &proto.LoginRequest{Email: email, Password: password, Remember: remember})
	if err != nil {
		return TokenPair{}, s.mapError(err)
	}
	pair := fromProto(resp)
	s.SetTokens(pair)
	return pair, nil
}

func (s *GRPCClient) Me(ctx context.Context) (*proto.User, error) {
	resp, err := s.client.Me(ctx, &emptypb.Empty{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.User, nil
}

func (s *GRPCClient) Sessions(ctx context.Context) ([]*proto.Session, error) {
	resp, err := s.client.Sessions(ctx, &emptypb.Empty{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Sessions, nil
}

func (s *GRPCClient) KillSession(ctx context.Context, sessionID string) error {
	_, err := s.client.KillSession(ctx, &proto.KillSessionRequest{SessionId: sessionID})
	return s.mapError(err)
}

func (s *GRPCClient) KillSessions(ctx context.Context) (int64, error) {
	resp, err := s.client.KillSessions(ctx, &emptypb.Empty{})
	if err != nil {
		return 0, s.mapError(err)
	}
	return resp.Killed, nil
}

// RemoteError is a non-transport failure reported by the server.
type RemoteError struct {
	Code    codes.Code
	Message string
}

func (e *RemoteError) Error() string {
	return e.Message
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return fmt.Errorf("rpc error: %w", err)
	}
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return fmt.Errorf("%w: %s", ErrUnauthorized, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return &RemoteError{Code: st.Code(), Message: st.Message()}
	}
}

// IsCode reports whether err is a RemoteError with the given code.
func IsCode(err error, code codes.Code) bool {
	var re *RemoteError
	return errors.As(err, &re) && re.Code == code
}
