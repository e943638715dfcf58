package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"group-manager/internal/service"
)

const sessionClaimsKey = "session_claims"

// RequireSession valida la cookie de sesion y guarda los claims en el contexto.
func RequireSession(tokens *service.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokens == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": msgSessionRequired})
			c.Abort()
			return
		}

		token, err := c.Cookie(sessionCookieName)
		if err != nil || token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": msgSessionRequired})
			c.Abort()
			return
		}

		claims, err := tokens.ParseSession(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": msgSessionRequired})
			c.Abort()
			return
		}

		c.Set(sessionClaimsKey, claims)
		c.Next()
	}
}

// GetSessionClaims obtiene los claims de sesion desde el contexto.
func GetSessionClaims(c *gin.Context) (service.SessionClaims, bool) {
	val, ok := c.Get(sessionClaimsKey)
	if !ok {
		return service.SessionClaims{}, false
	}
	claims, ok := val.(service.SessionClaims)
	return claims, ok
}
