package service

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"group-manager/internal/domain"
)

const confirmationTTL = 24 * time.Hour

// TokenService firma y valida los JWT de sesion y de confirmacion de email.
// Cada tipo usa su propio secreto.
type TokenService struct {
	sessionSecret []byte
	emailSecret   []byte
}

// SessionClaims viajan en la cookie de sesion; Subject es el id del usuario.
type SessionClaims struct {
	Name string `json:"name"`
	jwt.RegisteredClaims
}

type ConfirmationClaims struct {
	UserID string `json:"user"`
	jwt.RegisteredClaims
}

var (
	ErrJWTInvalid = errors.New("jwt invalid")
	ErrJWTExpired = errors.New("jwt expired")
)

func NewTokenService(sessionSecret, emailSecret string) *TokenService {
	return &TokenService{
		sessionSecret: []byte(sessionSecret),
		emailSecret:   []byte(emailSecret),
	}
}

func (s *TokenService) SignSession(user domain.User, ttl time.Duration) (string, error) {
	if len(s.sessionSecret) == 0 || strings.TrimSpace(user.ID) == "" {
		return "", ErrJWTInvalid
	}
	now := time.Now().UTC()
	claims := SessionClaims{
		Name: user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.sessionSecret)
}

func (s *TokenService) ParseSession(token string) (SessionClaims, error) {
	var claims SessionClaims
	if err := parseToken(token, s.sessionSecret, &claims); err != nil {
		return SessionClaims{}, err
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return SessionClaims{}, ErrJWTInvalid
	}
	return claims, nil
}

// SignConfirmation firma el token que se envia en el link de confirmacion.
func (s *TokenService) SignConfirmation(userID string) (string, error) {
	if len(s.emailSecret) == 0 || strings.TrimSpace(userID) == "" {
		return "", ErrJWTInvalid
	}
	now := time.Now().UTC()
	claims := ConfirmationClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(confirmationTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.emailSecret)
}

func (s *TokenService) ParseConfirmation(token string) (ConfirmationClaims, error) {
	var claims ConfirmationClaims
	if err := parseToken(token, s.emailSecret, &claims); err != nil {
		return ConfirmationClaims{}, err
	}
	if strings.TrimSpace(claims.UserID) == "" || claims.UserID != claims.Subject {
		return ConfirmationClaims{}, ErrJWTInvalid
	}
	return claims, nil
}

func parseToken(tokenString string, secret []byte, claims jwt.Claims) error {
	if len(secret) == 0 || strings.TrimSpace(tokenString) == "" {
		return ErrJWTInvalid
	}
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	_, err := parser.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return ErrJWTExpired
		}
		return ErrJWTInvalid
	}
	return nil
}
