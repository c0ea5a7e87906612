// Package grpc exposes the user service over its private RPC surface.
package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/status"

	"github.com/accounthub/account-system/internal/core/domain"
	"github.com/accounthub/account-system/internal/core/ports"
	userv1 "github.com/accounthub/account-system/proto/user/v1"
)

// UserServer adapts ports.UserService to the wire contract, translating
// domain sentinels into gRPC status codes. Raw internal errors never cross
// the boundary; they are logged here and rendered as codes.Internal.
type UserServer struct {
	userv1.UnimplementedUserServiceServer

	service ports.UserService
	log     zerolog.Logger
}

func NewUserServer(service ports.UserService, log zerolog.Logger) *UserServer {
	return &UserServer{service: service, log: log}
}

func (s *UserServer) UserLogin(ctx context.Context, req *userv1.UserLoginRequest) (*userv1.UserLoginResponse, error) {
	token, err := s.service.Login(ctx, req.GetUsername(), req.GetPassword())
	if err != nil {
		return nil, s.statusFromDomain(err, "login")
	}
	return &userv1.UserLoginResponse{AccessToken: token}, nil
}

func (s *UserServer) UserRegister(ctx context.Context, req *userv1.UserRegisterRequest) (*userv1.UserRegisterResponse, error) {
	result, err := s.service.Register(ctx, req.GetUsername(), req.GetPassword())
	if err != nil {
		return nil, s.statusFromDomain(err, "register")
	}
	return &userv1.UserRegisterResponse{Result: result}, nil
}

func (s *UserServer) UserExists(ctx context.Context, req *userv1.UserExistsRequest) (*userv1.UserExistsResponse, error) {
	exists, err := s.service.Exists(ctx, req.GetUsername())
	if err != nil {
		return nil, s.statusFromDomain(err, "exists")
	}
	return &userv1.UserExistsResponse{Exists: exists}, nil
}

// statusFromDomain maps domain sentinels to deterministic status codes.
func (s *UserServer) statusFromDomain(err error, op string) error {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.Is(err, domain.ErrAccountClosed):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, domain.ErrUserExists):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, domain.ErrUserNotFound):
		return status.Error(codes.NotFound, err.Error())
	default:
		s.log.Error().Err(err).Str("op", op).Msg("user service operation failed")
		return status.Error(codes.Internal, "internal error")
	}
}

// NewServer builds the gRPC server with transport keep-alive settings and a
// request logging interceptor, and registers the user service on it.
func NewServer(service ports.UserService, log zerolog.Logger) *grpc.Server {
	srv := grpc.NewServer(
		grpc.KeepaliveParams(keepalive.ServerParameters{
			Time:    30 * time.Second,
			Timeout: 10 * time.Second,
		}),
		grpc.KeepaliveEnforcementPolicy(keepalive.EnforcementPolicy{
			MinTime:             10 * time.Second,
			PermitWithoutStream: true,
		}),
		grpc.UnaryInterceptor(loggingInterceptor(log)),
	)
	userv1.RegisterUserServiceServer(srv, NewUserServer(service, log))
	return srv
}

// loggingInterceptor records every call with its status code and latency.
func loggingInterceptor(log zerolog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		evt := log.Info()
		if err != nil {
			evt = log.Warn().Err(err)
		}
		evt.
			Str("method", info.FullMethod).
			Str("code", status.Code(err).String()).
			Dur("duration", time.Since(start)).
			Msg("rpc call")

		return resp, err
	}
}
