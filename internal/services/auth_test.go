package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"testing"
	"time"

	"eventboard/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeUserRepo implements domain.UserRepository for tests.
type fakeUserRepo struct {
	byID    map[string]*domain.User
	byEmail map[string]*domain.User
	nextID  int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    make(map[string]*domain.User),
		byEmail: make(map[string]*domain.User),
	}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *domain.User) error {
	if _, ok := f.byEmail[u.Email]; ok {
		return domain.ErrDuplicateEmail
	}
	f.nextID++
	u.ID = "user-" + strconv.Itoa(f.nextID)
	cp := *u
	f.byID[u.ID] = &cp
	f.byEmail[u.Email] = &cp
	return nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if u, ok := f.byEmail[email]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if u, ok := f.byID[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

// fakePasswordHasher implements domain.PasswordHasher for tests.
type fakePasswordHasher struct {
	hashErr error
}

func (f *fakePasswordHasher) Hash(password string) (string, error) {
	if f.hashErr != nil {
		return "", f.hashErr
	}
	return "hash-" + password, nil
}

func (f *fakePasswordHasher) Compare(hash, password string) error {
	if hash != "hash-"+password {
		return errors.New("mismatch")
	}
	return nil
}

// fakeTokenIssuer implements domain.TokenIssuer for tests.
type fakeTokenIssuer struct {
	err error
}

func (f *fakeTokenIssuer) Issue(userID, email, name string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "token-" + userID, nil
}

// fakeEmailService records SendWelcome calls and can fail on demand.
type fakeEmailService struct {
	sent []string
	err  error
}

func (f *fakeEmailService) SendWelcome(ctx context.Context, data *domain.WelcomeEmailData) error {
	f.sent = append(f.sent, data.Email)
	return f.err
}

func newAuthService(repo *fakeUserRepo, emailSvc domain.EmailService) domain.AuthService {
	return NewAuthService(repo, &fakePasswordHasher{}, &fakeTokenIssuer{}, emailSvc, testLogger, time.Second)
}

func TestAuthService_Register(t *testing.T) {
	t.Run("success returns token and public projection", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := newAuthService(repo, nil)

		resp, err := svc.Register(context.Background(), "Ada@Example.com", "secret123", "Ada")
		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.Equal(t, "ada@example.com", resp.User.Email, "email is normalized")
		assert.Equal(t, "Ada", resp.User.Name)
		assert.NotEmpty(t, resp.User.ID)
		assert.False(t, resp.User.CreatedAt.IsZero())

		stored := repo.byEmail["ada@example.com"]
		require.NotNil(t, stored)
		assert.Equal(t, "hash-secret123", stored.PasswordHash, "only the hash is persisted")
	})

	t.Run("duplicate email is Conflict and leaves one user", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := newAuthService(repo, nil)

		_, err := svc.Register(context.Background(), "ada@example.com", "secret123", "Ada")
		require.NoError(t, err)

		_, err = svc.Register(context.Background(), "ada@example.com", "other-pass", "Imposter")
		assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
		assert.Len(t, repo.byID, 1, "the second registration must not mutate state")
	})

	t.Run("sends a welcome email best effort", func(t *testing.T) {
		repo := newFakeUserRepo()
		emailSvc := &fakeEmailService{err: errors.New("smtp down")}
		svc := newAuthService(repo, emailSvc)

		resp, err := svc.Register(context.Background(), "ada@example.com", "secret123", "Ada")
		require.NoError(t, err, "mail failure must not fail registration")
		assert.NotEmpty(t, resp.AccessToken)
		assert.Equal(t, []string{"ada@example.com"}, emailSvc.sent)
	})
}

func TestAuthService_Login(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthService(repo, nil)
	_, err := svc.Register(context.Background(), "ada@example.com", "secret123", "Ada")
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		resp, err := svc.Login(context.Background(), "ada@example.com", "secret123")
		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.Equal(t, "ada@example.com", resp.User.Email)
	})

	t.Run("wrong password and unknown email fail identically", func(t *testing.T) {
		_, wrongPwErr := svc.Login(context.Background(), "ada@example.com", "wrong")
		_, unknownErr := svc.Login(context.Background(), "nobody@example.com", "whatever")

		assert.ErrorIs(t, wrongPwErr, domain.ErrInvalidCredentials)
		assert.ErrorIs(t, unknownErr, domain.ErrInvalidCredentials)
		assert.Equal(t, wrongPwErr.Error(), unknownErr.Error(), "no information leak between the two cases")
	})
}
