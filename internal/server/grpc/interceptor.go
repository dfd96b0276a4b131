package grpc

import (
	"context"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophaccounts/internal/common"
	"github.com/dmitrijs2005/gophaccounts/internal/server/services"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const identityKey ctxKey = "identity"

func withIdentity(ctx context.Context, identity *services.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// identityFrom returns the caller resolved by authInterceptor, nil when the
// request carried no token.
func identityFrom(ctx context.Context) *services.Identity {
	identity, _ := ctx.Value(identityKey).(*services.Identity)
	return identity
}

var errMalformedAuthorization = status.Error(codes.Unauthenticated, "malformed authorization header")

func bearerToken(ctx context.Context) (string, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", nil
	}
	values := md.Get(common.AuthorizationHeaderName)
	if len(values) == 0 || values[0] == "" {
		return "", nil
	}
	token, found := strings.CutPrefix(values[0], common.BearerPrefix)
	if !found || token == "" {
		return "", errMalformedAuthorization
	}
	return token, nil
}

// authInterceptor resolves the bearer token of every call. Anonymous calls
// pass through with a nil identity; handlers of protected methods reject them.
func (s *GRPCServer) authInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	token, err := bearerToken(ctx)
	if err != nil {
		return nil, err
	}

	identity, err := s.sessions.Authenticate(ctx, token)
	if err != nil {
		return nil, err
	}

	return handler(withIdentity(ctx, identity), req)
}

// statusInterceptor logs every call and converts service errors to statuses.
// Internal failures are logged with their cause, which never reaches the caller.
func (s *GRPCServer) statusInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()

	resp, err := handler(ctx, req)
	st := toStatus(err)
	code := status.Code(st)

	if code == codes.Internal {
		s.logger.Error(ctx, "call failed", "method", info.FullMethod, "code", code.String(), "error", err,
			"latency", time.Since(start))
	} else {
		s.logger.Info(ctx, "call", "method", info.FullMethod, "code", code.String(), "latency", time.Since(start))
	}

	if st != nil {
		return nil, st
	}
	return resp, nil
}
