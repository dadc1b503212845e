package main

import (
	"codeberg.org/taskboard/server/internal/authprovider"
	"codeberg.org/taskboard/server/internal/config"
	"codeberg.org/taskboard/server/internal/ratelimit"
	"codeberg.org/taskboard/server/taskboard/projects"
	"codeberg.org/taskboard/server/taskboard/tasks"
	"codeberg.org/taskboard/server/taskboard/users"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"github.com/jackc/pgx/v5/pgxpool"
)

// holds all dependencies and state for the API server
type Server struct {
	db            *pgxpool.Pool
	config        *config.Config
	userRepo      *users.Repository
	projectRepo   *projects.Repository
	taskRepo      *tasks.Repository
	provider      *authprovider.Client
	cookieStore   *sessions.CookieStore
	apiLimiter    *ratelimit.Limiter
	signupLimiter *ratelimit.Limiter
	router        *gin.Engine
}
