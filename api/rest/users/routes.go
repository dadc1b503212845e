package users

import (
	"codeberg.org/taskboard/server/internal/auth"
	"codeberg.org/taskboard/server/internal/ratelimit"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(rg *gin.RouterGroup, store UserStore, signupLimiter *ratelimit.Limiter) {
	users := rg.Group("/users")

	// sign-up completion runs before the caller's token is usable,
	// so creation is unauthenticated but tightly rate limited
	users.POST("", signupLimiter.Middleware(), CreateUser(store))

	users.GET("", auth.AuthMiddleware(), ListUsers(store))
}
