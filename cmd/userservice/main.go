// The userservice binary serves the private account backend over gRPC,
// backed by MongoDB with a Redis existence cache.
package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/accounthub/account-system/internal/auth"
	"github.com/accounthub/account-system/internal/core/service"
	"github.com/accounthub/account-system/internal/infrastructure/db/cached"
	mongodb "github.com/accounthub/account-system/internal/infrastructure/db/mongo"
	redisdb "github.com/accounthub/account-system/internal/infrastructure/db/redis"
	grpcserver "github.com/accounthub/account-system/internal/infrastructure/grpc"
	"github.com/accounthub/account-system/internal/pkg/config"
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	rdb, err := redisdb.Connect(ctx, cfg.Redis.Addr, cfg.Redis.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	repo := mongodb.NewUserRepository(db)
	if err := repo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	users := service.NewUserService(
		cached.NewUserRepository(repo, redisdb.NewUserExistsCache(rdb), log),
		auth.NewTokenManager(auth.TokenConfig{
			Secret:   cfg.Token.Secret,
			TTL:      cfg.Token.TTL,
			Audience: cfg.Token.Audience,
			Issuer:   cfg.Token.Issuer,
		}),
	)

	srv := grpcserver.NewServer(users, log)

	lis, err := net.Listen("tcp", ":"+cfg.Backend.Port)
	if err != nil {
		log.Fatal().Err(err).Str("port", cfg.Backend.Port).Msg("listen failed")
	}

	go func() {
		log.Info().Str("port", cfg.Backend.Port).Msg("user service starting")
		if err := srv.Serve(lis); err != nil {
			log.Fatal().Err(err).Msg("user service failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")
	srv.GracefulStop()
	log.Info().Msg("user service stopped")
}
