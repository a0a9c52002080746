package service

import (
	"context"
	"testing"
	"time"

	"photorank/internal/config"
	"photorank/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	createFn            func(context.Context, *models.User) error
	getByIDFn           func(context.Context, uint) (*models.User, error)
	getByEmailFn        func(context.Context, string) (*models.User, error)
	updateFn            func(context.Context, *models.User) error
	setResetTokenFn     func(context.Context, uint, string, time.Time) error
	consumeResetTokenFn func(context.Context, string, string) (bool, error)
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) SetResetToken(ctx context.Context, userID uint, token string, expiry time.Time) error {
	return s.setResetTokenFn(ctx, userID, token, expiry)
}
func (s *userRepoStub) ConsumeResetToken(ctx context.Context, token, hashedPassword string) (bool, error) {
	return s.consumeResetTokenFn(ctx, token, hashedPassword)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		createFn: func(_ context.Context, user *models.User) error {
			user.ID = 1
			return nil
		},
		getByIDFn:    func(_ context.Context, _ uint) (*models.User, error) { return nil, nil },
		getByEmailFn: func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		updateFn:     func(_ context.Context, _ *models.User) error { return nil },
		setResetTokenFn: func(_ context.Context, _ uint, _ string, _ time.Time) error {
			return nil
		},
		consumeResetTokenFn: func(_ context.Context, _, _ string) (bool, error) { return true, nil },
	}
}

func testConfig() *config.Config {
	return &config.Config{JWTSecret: "test-secret-at-least-32-characters!!"}
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates user with hashed password and returns token", func(t *testing.T) {
		repo := noopUserRepo()
		var created *models.User
		repo.createFn = func(_ context.Context, user *models.User) error {
			user.ID = 42
			created = user
			return nil
		}
		svc := NewAuthService(repo, testConfig())

		res, err := svc.Register(ctx, "a@example.com", "password123")
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.NotEqual(t, "password123", created.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("password123")))
		assert.NotEmpty(t, res.Token)
		assert.Equal(t, uint(42), res.User.ID)
	})

	t.Run("Rejects duplicate email", func(t *testing.T) {
		repo := noopUserRepo()
		repo.getByEmailFn = func(_ context.Context, _ string) (*models.User, error) {
			return &models.User{ID: 1, Email: "a@example.com"}, nil
		}
		svc := NewAuthService(repo, testConfig())

		_, err := svc.Register(ctx, "a@example.com", "password123")
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeConflict, appErr.Code)
	})

	t.Run("Rejects invalid input", func(t *testing.T) {
		svc := NewAuthService(noopUserRepo(), testConfig())

		cases := []struct {
			name     string
			email    string
			password string
		}{
			{"missing email", "", "password123"},
			{"missing password", "a@example.com", ""},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := svc.Register(ctx, tc.email, tc.password)
				var appErr *models.AppError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, models.CodeValidation, appErr.Code)
			})
		}
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	withUser := func() *userRepoStub {
		repo := noopUserRepo()
		repo.getByEmailFn = func(_ context.Context, email string) (*models.User, error) {
			if email == "a@example.com" {
				return &models.User{ID: 7, Email: email, Password: string(hashed)}, nil
			}
			return nil, nil
		}
		return repo
	}

	t.Run("Valid credentials return a verifiable token", func(t *testing.T) {
		cfg := testConfig()
		svc := NewAuthService(withUser(), cfg)

		res, err := svc.Login(ctx, "a@example.com", "password123")
		require.NoError(t, err)

		parsed, err := jwt.Parse(res.Token, func(_ *jwt.Token) (interface{}, error) {
			return []byte(cfg.JWTSecret), nil
		}, jwt.WithValidMethods([]string{"HS256"}))
		require.NoError(t, err)
		claims := parsed.Claims.(jwt.MapClaims)
		assert.Equal(t, "7", claims["sub"])
		assert.Equal(t, "a@example.com", claims["email"])
		assert.Equal(t, "photorank", claims["iss"])
		assert.NotEmpty(t, claims["jti"])

		exp, err := claims.GetExpirationTime()
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now().Add(time.Hour), exp.Time, time.Minute)
	})

	t.Run("Unknown email and wrong password look identical", func(t *testing.T) {
		svc := NewAuthService(withUser(), testConfig())

		_, errUnknown := svc.Login(ctx, "b@example.com", "password123")
		_, errWrong := svc.Login(ctx, "a@example.com", "wrongpass")

		var appErr1, appErr2 *models.AppError
		require.ErrorAs(t, errUnknown, &appErr1)
		require.ErrorAs(t, errWrong, &appErr2)
		assert.Equal(t, models.CodeUnauthorized, appErr1.Code)
		assert.Equal(t, appErr1.Message, appErr2.Message)
	})
}

func TestRequestPasswordReset(t *testing.T) {
	ctx := context.Background()

	t.Run("Known email gets a token with one hour expiry", func(t *testing.T) {
		repo := noopUserRepo()
		repo.getByEmailFn = func(_ context.Context, email string) (*models.User, error) {
			return &models.User{ID: 3, Email: email}, nil
		}
		var savedToken string
		var savedExpiry time.Time
		repo.setResetTokenFn = func(_ context.Context, userID uint, token string, expiry time.Time) error {
			assert.Equal(t, uint(3), userID)
			savedToken = token
			savedExpiry = expiry
			return nil
		}
		svc := NewAuthService(repo, testConfig())

		token, err := svc.RequestPasswordReset(ctx, "a@example.com")
		require.NoError(t, err)
		require.NotEmpty(t, token)
		assert.Equal(t, savedToken, token)
		assert.WithinDuration(t, time.Now().Add(time.Hour), savedExpiry, time.Minute)
	})

	t.Run("Unknown email is not found", func(t *testing.T) {
		svc := NewAuthService(noopUserRepo(), testConfig())

		_, err := svc.RequestPasswordReset(ctx, "nobody@example.com")
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeNotFound, appErr.Code)
	})
}

func TestResetPassword(t *testing.T) {
	ctx := context.Background()

	t.Run("Valid token installs hashed password", func(t *testing.T) {
		repo := noopUserRepo()
		var storedHash string
		repo.consumeResetTokenFn = func(_ context.Context, token, hashedPassword string) (bool, error) {
			assert.Equal(t, "tok-1", token)
			storedHash = hashedPassword
			return true, nil
		}
		svc := NewAuthService(repo, testConfig())

		require.NoError(t, svc.ResetPassword(ctx, "tok-1", "newpassword1"))
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(storedHash), []byte("newpassword1")))
	})

	t.Run("Spent or expired token is a validation error", func(t *testing.T) {
		repo := noopUserRepo()
		repo.consumeResetTokenFn = func(_ context.Context, _, _ string) (bool, error) {
			return false, nil
		}
		svc := NewAuthService(repo, testConfig())

		err := svc.ResetPassword(ctx, "tok-1", "newpassword1")
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeValidation, appErr.Code)
	})

	t.Run("Missing token is rejected", func(t *testing.T) {
		svc := NewAuthService(noopUserRepo(), testConfig())

		err := svc.ResetPassword(ctx, "", "newpassword1")
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeValidation, appErr.Code)
	})
}
