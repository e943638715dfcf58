package service

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	signInKeyPrefix     = "auth:signin:attempts:"
	signInRedisDeadline = 500 * time.Millisecond
)

// signInAttemptScript incrementa el contador y fija la expiracion en ms
// solo en el primer intento de la ventana.
var signInAttemptScript = redis.NewScript(`
local attempts = redis.call("INCR", KEYS[1])
if attempts == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return attempts
`)

type redisSignInLimiter struct {
	scripter redis.Scripter
	window   time.Duration
	max      int
}

// NewRedisSignInLimiter comparte el conteo de intentos entre instancias.
func NewRedisSignInLimiter(scripter redis.Scripter, window time.Duration, max int) SignInLimiter {
	if scripter == nil {
		return nil
	}
	if window <= 0 {
		window = time.Minute
	}
	if max <= 0 {
		max = 1
	}
	return &redisSignInLimiter{scripter: scripter, window: window, max: max}
}

// Allow falla abierto: si Redis no responde el login sigue su curso.
func (l *redisSignInLimiter) Allow(ctx context.Context, email string) bool {
	if email == "" {
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, signInRedisDeadline)
	defer cancel()

	attempts, err := signInAttemptScript.Run(ctx, l.scripter,
		[]string{signInKeyPrefix + email},
		l.window.Milliseconds(),
	).Int()
	if err != nil {
		return true
	}
	return attempts <= l.max
}
