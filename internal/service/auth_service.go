package service

import (
	"context"
	"errors"
	"fmt"
	"html"
	"net/mail"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"group-manager/internal/domain"
	"group-manager/internal/email"
	"group-manager/internal/repository"
	"group-manager/internal/validation"
)

const (
	SignInSessionTTL = time.Hour
	SignUpSessionTTL = time.Minute

	confirmationSubject = "Por favor, confirme seu e-mail"
	defaultMailTimeout  = 30 * time.Second
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrRateLimited        = errors.New("rate limited")
)

// AuthOptions reemplaza la configuracion global de secretos y remitente.
type AuthOptions struct {
	SessionSecret       string
	EmailSecret         string
	EmailFromUser       string
	AppName             string
	ConfirmationBaseURL string
	MailTimeout         time.Duration
	BcryptCost          int
}

// Session es el resultado de un login o registro exitoso.
type Session struct {
	User  domain.User
	Token string
	TTL   time.Duration
}

type SignUpInput struct {
	Name     string
	Email    string
	Password string
}

// AuthService coordina login, registro y envio de confirmacion.
type AuthService struct {
	logger  *zap.Logger
	users   repository.UserRepository
	tokens  *TokenService
	mailer  email.Sender
	limiter SignInLimiter
	opts    AuthOptions
	mailWG  sync.WaitGroup
}

func NewAuthService(logger *zap.Logger, users repository.UserRepository, mailer email.Sender, limiter SignInLimiter, opts AuthOptions) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.MailTimeout <= 0 {
		opts.MailTimeout = defaultMailTimeout
	}
	if opts.BcryptCost == 0 {
		opts.BcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{
		logger:  logger,
		users:   users,
		tokens:  NewTokenService(opts.SessionSecret, opts.EmailSecret),
		mailer:  mailer,
		limiter: limiter,
		opts:    opts,
	}
}

// Tokens expone el TokenService para validar la cookie de sesion.
func (s *AuthService) Tokens() *TokenService {
	return s.tokens
}

// SignIn valida credenciales. Usuario inexistente y password incorrecta
// devuelven el mismo ErrInvalidCredentials.
func (s *AuthService) SignIn(ctx context.Context, emailAddr, password string) (Session, error) {
	if s.users == nil {
		return Session{}, errors.New("auth service not configured")
	}

	emailAddr = normalizeEmail(emailAddr)
	if emailAddr == "" || strings.TrimSpace(password) == "" {
		return Session{}, ErrInvalidCredentials
	}
	if s.limiter != nil && !s.limiter.Allow(ctx, emailAddr) {
		return Session{}, ErrRateLimited
	}

	user, err := s.users.FindByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return Session{}, ErrInvalidCredentials
		}
		return Session{}, err
	}
	if user.PasswordHash == "" {
		return Session{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return Session{}, ErrInvalidCredentials
	}

	token, err := s.tokens.SignSession(user, SignInSessionTTL)
	if err != nil {
		return Session{}, fmt.Errorf("sign session: %w", err)
	}
	return Session{User: user, Token: token, TTL: SignInSessionTTL}, nil
}

// SignUp valida password y email (en ese orden), crea el usuario y dispara
// el correo de confirmacion sin esperarlo. Los errores de validacion se
// devuelven tal cual como validation.Error.
func (s *AuthService) SignUp(ctx context.Context, input SignUpInput) (Session, error) {
	if s.users == nil {
		return Session{}, errors.New("auth service not configured")
	}

	if err := validation.ValidatePassword(input.Password); err != nil {
		return Session{}, err
	}
	if err := validation.ValidateEmail(input.Email); err != nil {
		return Session{}, err
	}

	hashBytes, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.opts.BcryptCost)
	if err != nil {
		return Session{}, fmt.Errorf("hash password: %w", err)
	}

	user := domain.User{
		Name:         input.Name,
		Email:        normalizeEmail(input.Email),
		PasswordHash: string(hashBytes),
	}
	id, err := s.users.Insert(ctx, user)
	if err != nil {
		return Session{}, err
	}
	user.ID = id

	s.dispatchConfirmation(ctx, user)

	token, err := s.tokens.SignSession(user, SignUpSessionTTL)
	if err != nil {
		return Session{}, fmt.Errorf("sign session: %w", err)
	}
	return Session{User: user, Token: token, TTL: SignUpSessionTTL}, nil
}

// Wait bloquea hasta que terminen los envios de confirmacion pendientes.
func (s *AuthService) Wait() {
	s.mailWG.Wait()
}

// dispatchConfirmation corre en background; sus errores solo se loguean.
func (s *AuthService) dispatchConfirmation(ctx context.Context, user domain.User) {
	if s.mailer == nil {
		s.logger.Warn("confirmation email skipped: no sender", zap.String("user_id", user.ID))
		return
	}
	mailCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.opts.MailTimeout)
	s.mailWG.Add(1)
	go func() {
		defer s.mailWG.Done()
		defer cancel()
		if err := s.sendConfirmation(mailCtx, user); err != nil {
			s.logger.Warn("send confirmation email failed",
				zap.Error(err),
				zap.String("user_id", user.ID),
				zap.String("email", user.Email),
			)
		}
	}()
}

func (s *AuthService) sendConfirmation(ctx context.Context, user domain.User) error {
	token, err := s.tokens.SignConfirmation(user.ID)
	if err != nil {
		return fmt.Errorf("sign confirmation: %w", err)
	}
	url := html.EscapeString(confirmationURL(s.opts.ConfirmationBaseURL, token))
	from := (&mail.Address{Name: s.opts.AppName, Address: s.opts.EmailFromUser}).String()

	return s.mailer.Send(ctx, email.Message{
		From:    from,
		To:      user.Email,
		Subject: confirmationSubject,
		HTML:    fmt.Sprintf(`Por favor clique neste link para confirmar seu e-mail: <a href="%s">%s</a>`, url, url),
	})
}

func confirmationURL(base, token string) string {
	return strings.TrimRight(base, "/") + "/" + token
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
