package projects

import (
	"codeberg.org/taskboard/server/internal/auth"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(rg *gin.RouterGroup, store ProjectStore) {
	projects := rg.Group("/projects")
	projects.Use(auth.AuthMiddleware()) // all project routes require authentication

	projects.GET("", ListProjects(store))
	projects.POST("", CreateProject(store))
}
