package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	sessionCookieName = "auth"
	sessionCookiePath = "/"
)

// CookieOptions controla los atributos de la cookie de sesion que dependen
// del ambiente.
type CookieOptions struct {
	IsDevelopment bool
}

// setSessionCookie escribe la cookie con HttpOnly, SameSite=Strict y Path=/.
// Secure se omite solo en desarrollo.
func (o CookieOptions) setSessionCookie(c *gin.Context, token string, ttl time.Duration) {
	o.write(c, token, int(ttl.Seconds()))
}

// clearSessionCookie emite un valor vacio con Max-Age=0.
func (o CookieOptions) clearSessionCookie(c *gin.Context) {
	// net/http serializa MaxAge<0 como "Max-Age=0".
	o.write(c, "", -1)
}

func (o CookieOptions) write(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(sessionCookieName, value, maxAge, sessionCookiePath, "", !o.IsDevelopment, true)
}
