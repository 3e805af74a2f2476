package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"eventboard/internal/domain"
)

type authService struct {
	userRepo       domain.UserRepository
	hasher         domain.PasswordHasher
	issuer         domain.TokenIssuer
	emailService   domain.EmailService
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewAuthService creates an AuthService. The hasher and token issuer are
// explicit collaborators; emailService may be nil to disable the welcome
// email.
func NewAuthService(userRepo domain.UserRepository, hasher domain.PasswordHasher, issuer domain.TokenIssuer, emailService domain.EmailService, logger *slog.Logger, timeout time.Duration) domain.AuthService {
	return &authService{
		userRepo:       userRepo,
		hasher:         hasher,
		issuer:         issuer,
		emailService:   emailService,
		logger:         logger,
		contextTimeout: timeout,
	}
}

// Register creates an account and returns a fresh AuthResponse. An email
// that is already taken fails with ErrDuplicateEmail and leaves the store
// untouched. The existence check and the insert are two store operations;
// the unique email index reports the race between them as the same
// duplicate condition.
func (s *authService) Register(ctx context.Context, email, password, name string) (*domain.AuthResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	email = strings.TrimSpace(strings.ToLower(email))

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("check existing email: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrDuplicateEmail
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Email:        email,
		Name:         strings.TrimSpace(name),
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	if s.emailService != nil {
		// Best effort; registration already succeeded.
		if err := s.emailService.SendWelcome(ctx, &domain.WelcomeEmailData{Email: user.Email, Name: user.Name}); err != nil {
			s.logger.Warn("welcome email failed", "email", user.Email, "err", err)
		}
	}

	return s.buildAuthResponse(user)
}

// Login verifies the credentials and returns an AuthResponse. Unknown email
// and wrong password fail with the identical ErrInvalidCredentials so the
// response never reveals whether the email exists.
func (s *authService) Login(ctx context.Context, email, password string) (*domain.AuthResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	user, err := s.userRepo.GetByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return s.buildAuthResponse(user)
}

func (s *authService) buildAuthResponse(user *domain.User) (*domain.AuthResponse, error) {
	token, err := s.issuer.Issue(user.ID, user.Email, user.Name)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &domain.AuthResponse{
		AccessToken: token,
		User:        user.Public(),
	}, nil
}
