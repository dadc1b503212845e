package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"codeberg.org/taskboard/server/internal/authprovider"
	"codeberg.org/taskboard/server/internal/config"
	"codeberg.org/taskboard/server/internal/gate"
	"codeberg.org/taskboard/server/internal/ratelimit"
	"codeberg.org/taskboard/server/taskboard/projects"
	"codeberg.org/taskboard/server/taskboard/tasks"
	"codeberg.org/taskboard/server/taskboard/users"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	ctx := context.Background()

	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	// configure connection pool for supabase free tier pooler compatibility
	// free tier has ~10-15 pooler connections, so keep our pool small
	poolConfig.MaxConns = 5
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = 30 * time.Minute
	poolConfig.MaxConnIdleTime = 5 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	// use simple protocol for supabase pooler (PgBouncer) compatibility:
	// transaction mode doesn't support prepared statements, which causes
	// connections to hang on subsequent queries
	poolConfig.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol

	db, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create database pool: %w", err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	userRepo := users.NewRepository(db)
	projectRepo := projects.NewRepository(db)
	taskRepo := tasks.NewRepository(db)

	provider := authprovider.NewClient(cfg.AuthURL, cfg.AuthAnonKey)

	secureCookies := strings.HasPrefix(cfg.AuthURL, "https://") || cfg.Environment == "production"
	cookieStore := gate.NewCookieStore(cfg.SessionSecret, secureCookies)

	apiLimiter := ratelimit.New(ratelimit.DefaultConfig())
	signupLimiter := ratelimit.New(ratelimit.SignupConfig())

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	server := &Server{
		db:            db,
		config:        cfg,
		userRepo:      userRepo,
		projectRepo:   projectRepo,
		taskRepo:      taskRepo,
		provider:      provider,
		cookieStore:   cookieStore,
		apiLimiter:    apiLimiter,
		signupLimiter: signupLimiter,
		router:        router,
	}

	RegisterRoutes(router, server)

	return server, nil
}
