package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	mongodrv "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/khitstore/khit-backend/internal/auth"
	"github.com/khitstore/khit-backend/internal/authadapter"
	"github.com/khitstore/khit-backend/internal/config"
	"github.com/khitstore/khit-backend/internal/data"
	"github.com/khitstore/khit-backend/internal/docstore"
	docmem "github.com/khitstore/khit-backend/internal/docstore/memory"
	docmongo "github.com/khitstore/khit-backend/internal/docstore/mongo"
	"github.com/khitstore/khit-backend/internal/query"
	"github.com/khitstore/khit-backend/internal/repository"
	"github.com/khitstore/khit-backend/internal/repository/memory"
	repomongo "github.com/khitstore/khit-backend/internal/repository/mongo"
	"github.com/khitstore/khit-backend/internal/seed"
	authsvc "github.com/khitstore/khit-backend/internal/service/auth"
	"github.com/khitstore/khit-backend/internal/transport/middleware"
	"github.com/khitstore/khit-backend/internal/transport/rpc"
)

// Run is the application entry point: load configuration, resolve the data
// source, wire the repositories and services, and serve HTTP until the
// context is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	selection := data.ResolveSource(cfg.Data.Source, cfg.Mongo.Configured())
	breadcrumbs := data.NewBreadcrumbs()
	breadcrumbs.Record(logger, selection)

	var (
		repos  repository.Repositories
		store  docstore.Store
		pinger interface{ Ping(context.Context) error }
	)

	if selection.Source == data.SourceMongo {
		client, err := connectMongo(ctx, cfg.Mongo)
		if err != nil {
			return fmt.Errorf("connect mongo: %w", err)
		}
		defer func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := client.Disconnect(disconnectCtx); err != nil {
				logger.Error("mongo disconnect", slog.String("error", err.Error()))
			}
		}()

		db := client.Database(cfg.Mongo.Database)
		repos = repomongo.NewRepositories(db)
		store = docmongo.NewStore(db)
		pinger = mongoPinger{client: client}
	} else {
		repos = memory.NewRepositories(memory.NewState(seed.NewSnapshot(time.Now())))
		store = docmem.NewStore()
	}

	adapter := authadapter.New(query.NewService(store))
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	sessions := authsvc.NewService(logger, adapter, repos.Users, jwtManager, cfg.Auth)

	mux := rpc.NewRouter(rpc.Deps{
		Log:         logger,
		Repos:       repos,
		Adapter:     adapter,
		Sessions:    sessions,
		Selection:   selection,
		Breadcrumbs: breadcrumbs,
		Pinger:      pinger,
		Version:     BuildVersion(),
	})

	mws := []middleware.Middleware{
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(sessions),
	}
	if cfg.Server.RateLimitPerMinute > 0 {
		limiter := middleware.NewRateLimiter(time.Minute)
		defer limiter.Stop()
		mws = append(mws, limiter.Limit(cfg.Server.RateLimitPerMinute))
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      middleware.Chain(mws...)(mux),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening",
			slog.String("addr", srv.Addr),
			slog.String("data_source", string(selection.Source)),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}

func connectMongo(ctx context.Context, cfg config.MongoConfig) (*mongodrv.Client, error) {
	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	client, err := mongodrv.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		return nil, err
	}
	return client, nil
}

// mongoPinger adapts the driver client to the health probe interface.
type mongoPinger struct {
	client *mongodrv.Client
}

func (p mongoPinger) Ping(ctx context.Context) error {
	return p.client.Ping(ctx, readpref.Primary())
}
