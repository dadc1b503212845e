package profile

import (
	"codeberg.org/taskboard/server/internal/auth"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(rg *gin.RouterGroup, store UserStore) {
	profile := rg.Group("/profile")
	profile.Use(auth.AuthMiddleware()) // all profile routes require authentication

	profile.GET("", GetProfile(store))
	profile.PUT("", UpdateProfile(store))
}
