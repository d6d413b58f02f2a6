package handler

import (
	"net/http"
	"time"

	"timebank/internal/logger"
	"timebank/internal/middleware"
	"timebank/internal/model"
	"timebank/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type AuthHandler struct{ auth *service.AuthService }

func NewAuthHandler(auth *service.AuthService) *AuthHandler { return &AuthHandler{auth: auth} }

func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	u, err := h.auth.Register(c.Request.Context(), req.Username, req.Password, req.Name)
	if err != nil {
		logger.Warn("register.failed", "username", req.Username, "err", err)
		c.JSON(http.StatusConflict, gin.H{"error": "username already taken"})
		return
	}

	logger.Info("register.ok", "uid", u.ID, "username", u.Username)
	c.JSON(http.StatusOK, model.LoginResponse{
		Token: issueToken(u),
		User:  model.UserInfo{ID: u.ID, Username: u.Username, Name: u.Name},
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	u, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		logger.Warn("login.failed", "username", req.Username)
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	logger.Info("login.ok", "uid", u.ID, "name", u.Name)
	c.JSON(http.StatusOK, model.LoginResponse{
		Token: issueToken(u),
		User:  model.UserInfo{ID: u.ID, Username: u.Username, Name: u.Name},
	})
}

func issueToken(u *model.User) string {
	token, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid":  u.ID,
		"name": u.Name,
		"exp":  time.Now().Add(7 * 24 * time.Hour).Unix(),
	}).SignedString(middleware.Secret())
	return token
}
