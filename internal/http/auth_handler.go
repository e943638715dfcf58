package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"group-manager/internal/domain"
	"group-manager/internal/repository"
	"group-manager/internal/service"
	"group-manager/internal/validation"
)

// AuthHandler mantiene dependencias para login, registro y logout.
type AuthHandler struct {
	logger   *zap.Logger
	authServ *service.AuthService
	cookies  CookieOptions
}

// NewAuthHandler crea una instancia de AuthHandler con dependencias necesarias.
func NewAuthHandler(logger *zap.Logger, authServ *service.AuthService, cookies CookieOptions) *AuthHandler {
	return &AuthHandler{
		logger:   logger,
		authServ: authServ,
		cookies:  cookies,
	}
}

// SignIn maneja POST /auth/signin.
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid signin request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": msgInvalidRequest})
		return
	}

	session, err := h.authServ.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"message": msgSignInFailed})
		case errors.Is(err, service.ErrRateLimited):
			c.JSON(http.StatusTooManyRequests, gin.H{"message": msgSignInRateLimited})
		default:
			h.logger.Error("signin failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": msgSignInFailed})
		}
		return
	}

	h.cookies.setSessionCookie(c, session.Token, session.TTL)
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf(msgSignInWelcome, domain.FirstName(session.User.Name)),
	})
}

// SignUp maneja POST /auth/signup.
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid signup request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": msgInvalidRequest})
		return
	}

	session, err := h.authServ.SignUp(c.Request.Context(), service.SignUpInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		var vErr validation.Error
		if errors.As(err, &vErr) {
			c.JSON(http.StatusInternalServerError, gin.H{
				"message": vErr.Error(),
				"type":    vErr.Type(),
			})
			return
		}
		if errors.Is(err, repository.ErrEmailTaken) {
			h.logger.Warn("signup with registered email", zap.Error(err))
		} else {
			h.logger.Error("signup failed", zap.Error(err))
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": msgSignUpFailed})
		return
	}

	h.cookies.setSessionCookie(c, session.Token, session.TTL)
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf(msgSignUpWelcome, domain.FirstName(session.User.Name)),
	})
}

// SignOut maneja POST /auth/signout. Siempre limpia la cookie.
func (h *AuthHandler) SignOut(c *gin.Context) {
	h.cookies.clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": msgSignOut})
}

// CurrentSession maneja GET /auth/session; requiere RequireSession.
func (h *AuthHandler) CurrentSession(c *gin.Context) {
	claims, ok := GetSessionClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": msgSessionRequired})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": claims.Subject, "name": claims.Name})
}
