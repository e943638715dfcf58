package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"group-manager/internal/config"
	"group-manager/internal/db"
	"group-manager/internal/email"
	apihttp "group-manager/internal/http"
	"group-manager/internal/repository"
	"group-manager/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := db.Migrate(ctx, cfg.DatabaseURL); err != nil {
		logger.Fatal("db migrate", zap.Error(err))
	}

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()
	if err := db.Ping(ctx, pool, 5*time.Second); err != nil {
		logger.Fatal("db ping", zap.Error(err))
	}

	userRepo := repository.NewPgUserRepository(pool)

	emailSender := email.NewDisabledSender("email sender not configured")
	if cfg.SMTPHost != "" {
		sender, err := email.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPUseTLS)
		if err != nil {
			logger.Warn("smtp sender init failed", zap.Error(err))
		} else {
			emailSender = sender
		}
	}
	if cfg.EmailUser == "" {
		logger.Warn("EMAIL_USER not configured, confirmation emails will fail")
	}

	limiter := service.NewSignInLimiter(cfg.SignInWindow, cfg.SignInMaxAttempts)
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer redisClient.Close()
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed, using in-memory signin limiter", zap.Error(err))
		} else {
			limiter = service.NewRedisSignInLimiter(redisClient, cfg.SignInWindow, cfg.SignInMaxAttempts)
		}
		cancel()
	}

	authSvc := service.NewAuthService(logger, userRepo, emailSender, limiter, service.AuthOptions{
		SessionSecret:       cfg.SecretKey,
		EmailSecret:         cfg.EmailSecret,
		EmailFromUser:       cfg.EmailUser,
		AppName:             cfg.AppName,
		ConfirmationBaseURL: cfg.ConfirmationBaseURL,
		MailTimeout:         cfg.MailTimeout,
	})
	authHandler := apihttp.NewAuthHandler(logger, authSvc, apihttp.CookieOptions{
		IsDevelopment: cfg.IsDevelopment(),
	})
	router := apihttp.NewRouter(logger, authHandler, authSvc.Tokens(), cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Warn("server shutdown", zap.Error(err))
		}
	}()

	logger.Info("starting server", zap.String("port", cfg.HTTPPort), zap.String("environment", cfg.Environment))

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server error", zap.Error(err))
	}

	// Los correos de confirmacion en curso terminan antes de salir.
	authSvc.Wait()
	logger.Info("server stopped")
}

// newLogger elige el logger de zap segun el ambiente.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsDevelopment() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
