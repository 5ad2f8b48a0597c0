package identity

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/talenttrek/backend/internal/domain/identity"
	"github.com/talenttrek/backend/internal/domain/shared"
	"github.com/talenttrek/backend/internal/infrastructure/auth"
	"github.com/talenttrek/backend/internal/infrastructure/config"
)

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*identity.User, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*identity.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func newTestAuthService(repo identity.UserRepository, blacklist auth.TokenBlacklist) *AuthService {
	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-key-at-least-32-chars",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 7 * 24 * time.Hour,
		Issuer:                 "test-issuer",
	})
	return NewAuthService(repo, jwtService, blacklist, DefaultAuthServiceConfig(), zap.NewNop())
}

func newTestStudent(t *testing.T) *identity.User {
	t.Helper()
	user, err := identity.NewUser("ada@example.com", "password1", identity.RoleStudent, "Ada Lovelace")
	require.NoError(t, err)
	return user
}

func assertDomainErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, code, domainErr.Code)
}

func TestAuthService_SignUp(t *testing.T) {
	validInput := SignUpInput{
		Email:     "ada@example.com",
		Password:  "password1",
		Role:      "student",
		FullName:  "Ada Lovelace",
		Phone:     "+15551234567",
		ResumeURL: "https://cdn.example.com/resumes/ada.pdf",
	}

	t.Run("registers student and returns tokens", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := newTestAuthService(repo, nil)

		repo.On("ExistsByEmail", mock.Anything, validInput.Email).Return(false, nil)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(u *identity.User) bool {
			return u.Email == "ada@example.com" &&
				u.Role == identity.RoleStudent &&
				u.ResumeURL == validInput.ResumeURL
		})).Return(nil)

		result, err := svc.SignUp(context.Background(), validInput)

		require.NoError(t, err)
		assert.NotEmpty(t, result.AccessToken)
		assert.NotEmpty(t, result.RefreshToken)
		assert.Equal(t, identity.RoleStudent, result.User.Role)
		repo.AssertExpectations(t)
	})

	t.Run("rejects duplicate email without creating", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := newTestAuthService(repo, nil)

		repo.On("ExistsByEmail", mock.Anything, validInput.Email).Return(true, nil)

		_, err := svc.SignUp(context.Background(), validInput)

		assertDomainErrorCode(t, err, "EMAIL_TAKEN")
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("maps unique constraint race to EMAIL_TAKEN", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := newTestAuthService(repo, nil)

		repo.On("ExistsByEmail", mock.Anything, validInput.Email).Return(false, nil)
		repo.On("Create", mock.Anything, mock.Anything).Return(shared.ErrAlreadyExists)

		_, err := svc.SignUp(context.Background(), validInput)

		assertDomainErrorCode(t, err, "EMAIL_TAKEN")
	})

	t.Run("no tokens when create fails", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := newTestAuthService(repo, nil)

		repo.On("ExistsByEmail", mock.Anything, validInput.Email).Return(false, nil)
		repo.On("Create", mock.Anything, mock.Anything).Return(assert.AnError)

		result, err := svc.SignUp(context.Background(), validInput)

		assert.Error(t, err)
		assert.Nil(t, result)
	})

	t.Run("rejects invalid role", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := newTestAuthService(repo, nil)

		input := validInput
		input.Role = "admin"

		_, err := svc.SignUp(context.Background(), input)

		assertDomainErrorCode(t, err, "INVALID_ROLE")
	})

	t.Run("student without resume is rejected", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := newTestAuthService(repo, nil)

		repo.On("ExistsByEmail", mock.Anything, validInput.Email).Return(false, nil)

		input := validInput
		input.ResumeURL = ""

		_, err := svc.SignUp(context.Background(), input)

		assertDomainErrorCode(t, err, "RESUME_REQUIRED")
	})

	t.Run("recruiter does not need a resume", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := newTestAuthService(repo, nil)

		repo.On("ExistsByEmail", mock.Anything, mock.Anything).Return(false, nil)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(u *identity.User) bool {
			return u.Role == identity.RoleRecruiter && u.ResumeURL == ""
		})).Return(nil)

		input := validInput
		input.Role = "recruiter"
		input.ResumeURL = ""

		result, err := svc.SignUp(context.Background(), input)

		require.NoError(t, err)
		assert.Equal(t, identity.RoleRecruiter, result.User.Role)
	})
}

func TestAuthService_SignIn(t *testing.T) {
	t.Run("valid credentials return tokens", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := newTestAuthService(repo, nil)
		user := newTestStudent(t)

		repo.On("FindByEmail", mock.Anything, "ada@example.com").Return(user, nil)
		repo.On("Update", mock.Anything, user).Return(nil)

		result, err := svc.SignIn(context.Background(), SignInInput{
			Email:    "ada@example.com",
			Password: "password1",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, result.AccessToken)
		assert.NotNil(t, user.LastLoginAt)
	})

	t.Run("unknown email", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := newTestAuthService(repo, nil)

		repo.On("FindByEmail", mock.Anything, mock.Anything).Return(nil, shared.ErrNotFound)

		_, err := svc.SignIn(context.Background(), SignInInput{
			Email:    "nobody@example.com",
			Password: "password1",
		})

		assertDomainErrorCode(t, err, "INVALID_CREDENTIALS")
	})

	t.Run("wrong password increments failure count", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := newTestAuthService(repo, nil)
		user := newTestStudent(t)

		repo.On("FindByEmail", mock.Anything, mock.Anything).Return(user, nil)
		repo.On("Update", mock.Anything, user).Return(nil)

		_, err := svc.SignIn(context.Background(), SignInInput{
			Email:    "ada@example.com",
			Password: "wrongpass1",
		})

		assertDomainErrorCode(t, err, "INVALID_CREDENTIALS")
		assert.Equal(t, 1, user.FailedAttempts)
	})

	t.Run("account locks after max failed attempts", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := newTestAuthService(repo, nil)
		user := newTestStudent(t)
		user.FailedAttempts = DefaultAuthServiceConfig().MaxLoginAttempts - 1

		repo.On("FindByEmail", mock.Anything, mock.Anything).Return(user, nil)
		repo.On("Update", mock.Anything, user).Return(nil)

		_, err := svc.SignIn(context.Background(), SignInInput{
			Email:    "ada@example.com",
			Password: "wrongpass1",
		})

		assertDomainErrorCode(t, err, "ACCOUNT_LOCKED")
		assert.True(t, user.IsLocked())
	})

	t.Run("locked account cannot sign in even with valid password", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := newTestAuthService(repo, nil)
		user := newTestStudent(t)
		user.Lock(time.Hour)

		repo.On("FindByEmail", mock.Anything, mock.Anything).Return(user, nil)

		_, err := svc.SignIn(context.Background(), SignInInput{
			Email:    "ada@example.com",
			Password: "password1",
		})

		assertDomainErrorCode(t, err, "ACCOUNT_LOCKED")
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	t.Run("rotates a valid refresh token", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := newTestAuthService(repo, nil)
		user := newTestStudent(t)

		repo.On("FindByEmail", mock.Anything, mock.Anything).Return(user, nil)
		repo.On("Update", mock.Anything, mock.Anything).Return(nil)
		signIn, err := svc.SignIn(context.Background(), SignInInput{
			Email:    "ada@example.com",
			Password: "password1",
		})
		require.NoError(t, err)

		repo.On("FindByID", mock.Anything, user.ID).Return(user, nil)

		result, err := svc.RefreshToken(context.Background(), RefreshTokenInput{
			RefreshToken: signIn.RefreshToken,
		})

		require.NoError(t, err)
		assert.NotEmpty(t, result.AccessToken)
		assert.NotEmpty(t, result.RefreshToken)
	})

	t.Run("rejects garbage token", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := newTestAuthService(repo, nil)

		_, err := svc.RefreshToken(context.Background(), RefreshTokenInput{
			RefreshToken: "not-a-token",
		})

		assertDomainErrorCode(t, err, "TOKEN_INVALID")
	})

	t.Run("rejects refresh after all sessions revoked", func(t *testing.T) {
		repo := new(MockUserRepository)
		blacklist := auth.NewInMemoryTokenBlacklist()
		svc := newTestAuthService(repo, blacklist)
		user := newTestStudent(t)

		repo.On("FindByEmail", mock.Anything, mock.Anything).Return(user, nil)
		repo.On("Update", mock.Anything, mock.Anything).Return(nil)
		signIn, err := svc.SignIn(context.Background(), SignInInput{
			Email:    "ada@example.com",
			Password: "password1",
		})
		require.NoError(t, err)

		time.Sleep(time.Millisecond)
		require.NoError(t, svc.SignOut(context.Background(), SignOutInput{
			UserID:      user.ID,
			AllSessions: true,
		}))

		_, err = svc.RefreshToken(context.Background(), RefreshTokenInput{
			RefreshToken: signIn.RefreshToken,
		})

		assertDomainErrorCode(t, err, "TOKEN_REVOKED")
	})
}

func TestAuthService_SignOut(t *testing.T) {
	t.Run("blacklists the presented token", func(t *testing.T) {
		repo := new(MockUserRepository)
		blacklist := auth.NewInMemoryTokenBlacklist()
		svc := newTestAuthService(repo, blacklist)

		err := svc.SignOut(context.Background(), SignOutInput{
			UserID:   uuid.New(),
			TokenJTI: "jti-1",
			TokenTTL: time.Minute,
		})

		require.NoError(t, err)
		blacklisted, err := blacklist.IsBlacklisted(context.Background(), "jti-1")
		require.NoError(t, err)
		assert.True(t, blacklisted)
	})

	t.Run("no-op without a blacklist", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := newTestAuthService(repo, nil)

		err := svc.SignOut(context.Background(), SignOutInput{UserID: uuid.New()})

		assert.NoError(t, err)
	})
}

func TestAuthService_GetCurrentUser(t *testing.T) {
	t.Run("returns profile", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := newTestAuthService(repo, nil)
		user := newTestStudent(t)

		repo.On("FindByID", mock.Anything, user.ID).Return(user, nil)

		info, err := svc.GetCurrentUser(context.Background(), user.ID)

		require.NoError(t, err)
		assert.Equal(t, user.ID, info.ID)
		assert.Equal(t, "ada@example.com", info.Email)
	})

	t.Run("unknown user", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := newTestAuthService(repo, nil)

		repo.On("FindByID", mock.Anything, mock.Anything).Return(nil, shared.ErrNotFound)

		_, err := svc.GetCurrentUser(context.Background(), uuid.New())

		assertDomainErrorCode(t, err, "USER_NOT_FOUND")
	})
}
