// Package rpc owns the single channel to the user-service backend and mints
// lightweight per-request client handles over it.
package rpc

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/backoff"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"

	userv1 "github.com/accounthub/account-system/proto/user/v1"
)

const (
	defaultCallTimeout      = 30 * time.Second
	defaultConnectTimeout   = 5 * time.Second
	defaultKeepAliveTime    = 30 * time.Second
	defaultKeepAliveTimeout = 10 * time.Second
)

// Options are transport hygiene settings for the backend channel. They are
// not business logic, but they must be tunable per deployment.
type Options struct {
	// CallTimeout bounds each unary call.
	CallTimeout time.Duration
	// ConnectTimeout bounds each connection attempt, separately from and
	// tighter than the per-call deadline.
	ConnectTimeout time.Duration
	// KeepAliveTime / KeepAliveTimeout keep the idle channel alive.
	KeepAliveTime    time.Duration
	KeepAliveTimeout time.Duration
}

func (o *Options) fillDefaults() {
	if o.CallTimeout <= 0 {
		o.CallTimeout = defaultCallTimeout
	}
	if o.ConnectTimeout <= 0 {
		o.ConnectTimeout = defaultConnectTimeout
	}
	if o.KeepAliveTime <= 0 {
		o.KeepAliveTime = defaultKeepAliveTime
	}
	if o.KeepAliveTimeout <= 0 {
		o.KeepAliveTimeout = defaultKeepAliveTimeout
	}
}

// Factory holds the shared backend channel. It is created once at start-up
// and read concurrently by every request; nothing mutates it afterwards.
type Factory struct {
	conn *grpc.ClientConn
}

// New resolves the target eagerly but connects lazily: construction does no
// network I/O and does not fail just because the peer is momentarily down.
// The first call triggers the connection.
func New(addr string, opts Options) (*Factory, error) {
	opts.fillDefaults()

	conn, err := grpc.NewClient(addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:                opts.KeepAliveTime,
			Timeout:             opts.KeepAliveTimeout,
			PermitWithoutStream: true,
		}),
		grpc.WithConnectParams(grpc.ConnectParams{
			Backoff:           backoff.DefaultConfig,
			MinConnectTimeout: opts.ConnectTimeout,
		}),
		grpc.WithUnaryInterceptor(callTimeout(opts.CallTimeout)),
	)
	if err != nil {
		return nil, fmt.Errorf("rpc: create channel for %s: %w", addr, err)
	}
	return &Factory{conn: conn}, nil
}

// Client mints a per-request handle sharing the underlying channel. No I/O
// happens here; it is safe and cheap to call once per inbound request.
func (f *Factory) Client() userv1.UserServiceClient {
	return userv1.NewUserServiceClient(f.conn)
}

// State reports the channel's connectivity state for readiness probes.
func (f *Factory) State() connectivity.State {
	return f.conn.GetState()
}

// Close tears down the channel on shutdown.
func (f *Factory) Close() error {
	return f.conn.Close()
}

// callTimeout bounds each unary call. A caller context that is already
// tighter wins; cancellation abandons only the in-flight call, never the
// shared channel.
func callTimeout(d time.Duration) grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		ctx, cancel := context.WithTimeout(ctx, d)
		defer cancel()
		return invoker(ctx, method, req, reply, cc, opts...)
	}
}
