package tasks

import (
	"codeberg.org/taskboard/server/internal/auth"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(rg *gin.RouterGroup, store TaskStore) {
	tasks := rg.Group("/tasks")
	tasks.Use(auth.AuthMiddleware()) // all task routes require authentication

	tasks.GET("", ListTasks(store))
	tasks.POST("", CreateTask(store))
	tasks.GET("/:id", GetTask(store))
	tasks.PATCH("/:id", UpdateTask(store))
	tasks.DELETE("/:id", DeleteTask(store))
}
