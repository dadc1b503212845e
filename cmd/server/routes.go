package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"codeberg.org/taskboard/server/api/rest/health"
	"codeberg.org/taskboard/server/api/rest/profile"
	"codeberg.org/taskboard/server/api/rest/projects"
	"codeberg.org/taskboard/server/api/rest/tasks"
	"codeberg.org/taskboard/server/api/rest/users"
	"codeberg.org/taskboard/server/internal/gate"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	// the edge gate runs ahead of everything except the asset matcher;
	// API routes classify as public and pass straight through to their
	// own bearer-token checks
	router.Use(gate.Middleware(server.cookieStore, server.provider, gate.DefaultConfig()))

	router.GET("/health", health.Handler)

	api := router.Group("/api")
	api.Use(server.apiLimiter.Middleware())

	{
		profile.RegisterRoutes(api, server.userRepo)
		projects.RegisterRoutes(api, server.projectRepo)
		tasks.RegisterRoutes(api, server.taskRepo)
		users.RegisterRoutes(api, server.userRepo, server.signupLimiter)
	}
}
