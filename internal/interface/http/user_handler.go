package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-notes-api/internal/application"
	"github.com/oksasatya/go-notes-api/internal/domain/entity"
	"github.com/oksasatya/go-notes-api/internal/interface/middleware"
	"github.com/oksasatya/go-notes-api/pkg/response"
)

type AccountService interface {
	Register(ctx context.Context, in application.RegisterInput) (*application.AuthResult, error)
	Login(ctx context.Context, in application.LoginInput) (*application.AuthResult, error)
	GetUser(ctx context.Context, userID string) (entity.SafeUser, error)
}

// AccountNotifier is told about successful registrations and logins.
type AccountNotifier interface {
	Welcome(ctx context.Context, u *entity.User)
	LoginNotification(ctx context.Context, u *entity.User, ip, userAgent string)
}

type UserHandler struct {
	Svc      AccountService
	Notifier AccountNotifier
	Logger   *logrus.Logger
}

func NewUserHandler(svc AccountService, notifier AccountNotifier, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Notifier: notifier, Logger: logger}
}

// CreateAccount POST /create-account
func (h *UserHandler) CreateAccount(c *gin.Context) {
	var req application.RegisterInput
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.Svc.Register(c.Request.Context(), req)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	if h.Notifier != nil {
		h.Notifier.Welcome(c.Request.Context(), res.Account())
	}
	response.Success(c, http.StatusCreated, "Registration Successful", gin.H{
		"user":        res.User,
		"accessToken": res.AccessToken,
	})
}

// Login POST /login
func (h *UserHandler) Login(c *gin.Context) {
	var req application.LoginInput
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.Svc.Login(c.Request.Context(), req)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	if h.Notifier != nil {
		h.Notifier.LoginNotification(c.Request.Context(), res.Account(), middleware.ClientIP(c), c.GetHeader("User-Agent"))
	}
	response.Success(c, http.StatusOK, "Login Successful", gin.H{
		"user":        res.User,
		"email":       res.User.Email,
		"accessToken": res.AccessToken,
	})
}

// GetUser GET /get-user
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	u, err := h.Svc.GetUser(c.Request.Context(), id.UserID)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, "", gin.H{"user": u})
}
