// The gateway binary serves the public HTTP surface of the account system,
// fronting the private user-service RPC backend.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/accounthub/account-system/internal/api"
	"github.com/accounthub/account-system/internal/auth"
	"github.com/accounthub/account-system/internal/pkg/config"
	"github.com/accounthub/account-system/internal/rpc"
	"github.com/accounthub/account-system/pkg/logger"
)

func main() {
	cfg, err := config.Load(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: %v\n", err)
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.Token.Secret == "" {
		log.Warn().Msg("JWT_SECRET not set, signing with the insecure development secret")
	}
	tokens := auth.NewTokenManager(auth.TokenConfig{
		Secret:   cfg.Token.Secret,
		TTL:      cfg.Token.TTL,
		Audience: cfg.Token.Audience,
		Issuer:   cfg.Token.Issuer,
	})

	// The channel connects lazily; an unreachable backend delays the first
	// request, not start-up.
	backend, err := rpc.New(cfg.Gateway.UserServiceAddr, rpc.Options{
		CallTimeout:    cfg.Gateway.CallTimeout,
		ConnectTimeout: cfg.Gateway.ConnectTimeout,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create backend channel")
	}
	defer backend.Close()

	e := api.NewRouter(backend, tokens, log, cfg.Gateway.AllowedOrigins)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Str("port", cfg.Gateway.Port).Str("backend", cfg.Gateway.UserServiceAddr).Msg("gateway starting")
		if err := e.Start(":" + cfg.Gateway.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("gateway failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("gateway stopped")
}
