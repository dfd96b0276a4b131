package grpc

import (
	"context"

	"github.com/dmitrijs2005/gophaccounts/internal/common"
	"github.com/dmitrijs2005/gophaccounts/internal/proto"
	"github.com/dmitrijs2005/gophaccounts/internal/server/models"
	"github.com/dmitrijs2005/gophaccounts/internal/server/services"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func toUser(u *models.User) *proto.User {
	if u == nil {
		return nil
	}
	pu := &proto.User{
		Id:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: timestamppb.New(u.CreatedAt),
		UpdatedAt: timestamppb.New(u.UpdatedAt),
	}
	if u.EmailVerifiedAt != nil {
		pu.EmailVerifiedAt = timestamppb.New(*u.EmailVerifiedAt)
	}
	return pu
}

func toTokenPair(p *services.TokenPair) *proto.TokenPair {
	return &proto.TokenPair{AccessToken: p.AccessToken, RefreshToken: p.RefreshToken}
}

func (s *GRPCServer) Version(ctx context.Context, _ *emptypb.Empty) (*proto.VersionResponse, error) {
	return &proto.VersionResponse{Version: s.accounts.Version()}, nil
}

func (s *GRPCServer) Register(ctx context.Context, req *proto.RegisterRequest) (*proto.UserResponse, error) {
	u, err := s.accounts.Register(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "Registered", "user_id", u.ID)
	return &proto.UserResponse{User: toUser(u)}, nil
}

func (s *GRPCServer) VerifyEmail(ctx context.Context, req *proto.VerifyEmailRequest) (*emptypb.Empty, error) {
	if err := s.accounts.VerifyEmail(ctx, req.Token); err != nil {
		return nil, err
	}
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) ResendVerifyEmail(ctx context.Context, req *proto.EmailRequest) (*emptypb.Empty, error) {
	if err := s.accounts.ResendVerifyEmail(ctx, req.Email); err != nil {
		return nil, err
	}
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) RequestReset(ctx context.Context, req *proto.EmailRequest) (*emptypb.Empty, error) {
	if err := s.accounts.RequestReset(ctx, req.Email); err != nil {
		return nil, err
	}
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) ResetPassword(ctx context.Context, req *proto.ResetPasswordRequest) (*emptypb.Empty, error) {
	if err := s.accounts.ResetPassword(ctx, req.Token, req.Password); err != nil {
		return nil, err
	}
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *proto.LoginRequest) (*proto.TokenPair, error) {
	pair, err := s.sessions.Login(ctx, req.Email, req.Password, req.Remember)
	if err != nil {
		return nil, err
	}
	return toTokenPair(pair), nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *proto.RefreshTokenRequest) (*proto.TokenPair, error) {
	pair, err := s.sessions.Refresh(ctx, req.RefreshToken)
	if err != nil {
		return nil, err
	}
	return toTokenPair(pair), nil
}

func (s *GRPCServer) Me(ctx context.Context, _ *emptypb.Empty) (*proto.UserResponse, error) {
	u := s.accounts.Me(identityFrom(ctx))
	if u == nil {
		return nil, common.ErrNotAuthorized
	}
	return &proto.UserResponse{User: toUser(u)}, nil
}

func (s *GRPCServer) Sessions(ctx context.Context, _ *emptypb.Empty) (*proto.SessionsResponse, error) {
	identity := identityFrom(ctx)

	list, err := s.sessions.ListSessions(ctx, identity)
	if err != nil {
		return nil, err
	}

	resp := &proto.SessionsResponse{Sessions: make([]*proto.Session, 0, len(list))}
	for _, session := range list {
		resp.Sessions = append(resp.Sessions, &proto.Session{
			Id:         session.ID,
			Remembered: session.Remembered(),
			Current:    session.ID == identity.SessionID,
			CreatedAt:  timestamppb.New(session.CreatedAt),
			UpdatedAt:  timestamppb.New(session.UpdatedAt),
		})
	}
	return resp, nil
}

func (s *GRPCServer) KillSession(ctx context.Context, req *proto.KillSessionRequest) (*emptypb.Empty, error) {
	if err := s.sessions.KillSession(ctx, identityFrom(ctx), req.SessionId); err != nil {
		return nil, err
	}
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) KillSessions(ctx context.Context, _ *emptypb.Empty) (*proto.KillSessionsResponse, error) {
	n, err := s.sessions.KillAllSessions(ctx, identityFrom(ctx))
	if err != nil {
		return nil, err
	}
	return &proto.KillSessionsResponse{Killed: n}, nil
}
