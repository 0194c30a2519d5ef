package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/oksasatya/go-notes-api/internal/interface/http"
	"github.com/oksasatya/go-notes-api/internal/interface/middleware"
)

// AccountModule wires registration, login and the current-user lookup.
// Public: POST /create-account, POST /login
// Protected: GET /get-user
type AccountModule struct {
	Handler *handlers.UserHandler
	Auth    gin.HandlerFunc
	RDB     *redis.Client
}

func NewAccountModule(h *handlers.UserHandler, auth gin.HandlerFunc, rdb *redis.Client) *AccountModule {
	return &AccountModule{Handler: h, Auth: auth, RDB: rdb}
}

func (m *AccountModule) Register(rg *gin.RouterGroup) {
	registerLimiter := middleware.RateLimit(m.RDB, 5, time.Minute, middleware.KeyByIPAndPath(), nil) // 5 req/min per IP
	loginLimiter := middleware.RateLimit(m.RDB, 10, time.Minute, middleware.KeyByIPAndPath(), nil)   // 10 req/min per IP

	rg.POST("/create-account", registerLimiter, m.Handler.CreateAccount)
	rg.POST("/login", loginLimiter, m.Handler.Login)

	rg.GET("/get-user", m.Auth, userLimiter(m.RDB), m.Handler.GetUser)
}

// userLimiter is shared by every protected route.
func userLimiter(rdb *redis.Client) gin.HandlerFunc {
	return middleware.RateLimit(rdb, 120, time.Minute, middleware.KeyByUserID(), nil)
}
