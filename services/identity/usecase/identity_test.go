package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/montirku/montirku/internal/pkg/errs"
	"github.com/montirku/montirku/internal/pkg/models"
	"github.com/montirku/montirku/services/identity/mocks"
)

func identityTestConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 60,
			Issuer:     "montirku",
		},
		Directory: models.DirectoryConfig{GeohashPrecision: 5},
	}
}

func newIdentityUC(t *testing.T) (*IdentityUC, *mocks.MockIdentityRepo, *mocks.MockIdentityCache, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockIdentityRepo(ctrl)
	cache := mocks.NewMockIdentityCache(ctrl)
	uc := NewIdentityUC(identityTestConfig(), repo, cache)
	return uc, repo, cache, ctrl
}

func TestRegister(t *testing.T) {
	uc, repo, cache, ctrl := newIdentityUC(t)
	defer ctrl.Finish()

	ctx := context.Background()

	var stored *models.User
	repo.EXPECT().CreateUser(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, user *models.User) error {
			stored = user
			return nil
		})
	cache.EXPECT().Store(ctx, gomock.Any()).Return(nil)

	resp, err := uc.Register(ctx, &models.RegisterRequest{
		Email:    "Budi@Example.com",
		Password: "rahasia-sekali",
		Name:     "Budi Santoso",
		Phone:    "+6281234567890",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Greater(t, resp.ExpiresAt, int64(0))

	require.NotNil(t, stored)
	assert.Equal(t, "budi@example.com", stored.Email)
	assert.Equal(t, models.RoleUser, stored.Role)
	assert.NotEqual(t, "rahasia-sekali", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("rahasia-sekali")))
}

func TestRegister_MechanicGetsGeohash(t *testing.T) {
	uc, repo, cache, ctrl := newIdentityUC(t)
	defer ctrl.Finish()

	ctx := context.Background()

	var stored *models.User
	repo.EXPECT().CreateUser(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, user *models.User) error {
			stored = user
			return nil
		})
	cache.EXPECT().Store(ctx, gomock.Any()).Return(nil)

	_, err := uc.Register(ctx, &models.RegisterRequest{
		Email:    "wayan@example.com",
		Password: "rahasia-sekali",
		Name:     "Wayan Sudiarta",
		Role:     models.RoleMechanic,
		Location: &models.Location{Latitude: -6.175392, Longitude: 106.827153},
		Services: []string{"towing", "battery"},
	})
	require.NoError(t, err)

	require.NotNil(t, stored)
	assert.Equal(t, models.RoleMechanic, stored.Role)
	assert.Len(t, stored.Geohash, 5)
}

func TestRegister_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		req  *models.RegisterRequest
	}{
		{"missing email", &models.RegisterRequest{Password: "rahasia-sekali", Name: "Budi"}},
		{"malformed email", &models.RegisterRequest{Email: "not-an-email", Password: "rahasia-sekali", Name: "Budi"}},
		{"short password", &models.RegisterRequest{Email: "budi@example.com", Password: "short", Name: "Budi"}},
		{"missing name", &models.RegisterRequest{Email: "budi@example.com", Password: "rahasia-sekali"}},
		{"unknown role", &models.RegisterRequest{Email: "budi@example.com", Password: "rahasia-sekali", Name: "Budi", Role: "dispatcher"}},
		{"bad mechanic service", &models.RegisterRequest{
			Email: "budi@example.com", Password: "rahasia-sekali", Name: "Budi",
			Role: models.RoleMechanic, Services: []string{"welding"},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _, _, ctrl := newIdentityUC(t)
			defer ctrl.Finish()

			_, err := uc.Register(context.Background(), tt.req)
			require.Error(t, err)
			assert.True(t, errs.IsValidation(err))
		})
	}
}

func TestLogin(t *testing.T) {
	uc, repo, cache, ctrl := newIdentityUC(t)
	defer ctrl.Finish()

	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("rahasia-sekali"), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := &models.User{
		ID:           "u-1",
		Email:        "budi@example.com",
		Name:         "Budi Santoso",
		Role:         models.RoleUser,
		PasswordHash: string(hash),
	}

	repo.EXPECT().GetUserByEmail(ctx, "budi@example.com").Return(user, nil)
	repo.EXPECT().RecordLogin(ctx, "u-1").Return(nil)
	cache.EXPECT().Store(ctx, gomock.Any()).Return(nil)

	resp, err := uc.Login(ctx, &models.LoginRequest{Email: "Budi@Example.com", Password: "rahasia-sekali"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "u-1", resp.User.ID)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown email", func(t *testing.T) {
		uc, repo, _, ctrl := newIdentityUC(t)
		defer ctrl.Finish()

		repo.EXPECT().GetUserByEmail(ctx, "ghost@example.com").
			Return(nil, errs.NotFound("no account with this email"))

		_, err := uc.Login(ctx, &models.LoginRequest{Email: "ghost@example.com", Password: "whatever-pass"})
		assert.True(t, errs.IsAuthorization(err))
	})

	t.Run("wrong password", func(t *testing.T) {
		uc, repo, _, ctrl := newIdentityUC(t)
		defer ctrl.Finish()

		hash, _ := bcrypt.GenerateFromPassword([]byte("rahasia-sekali"), bcrypt.DefaultCost)
		repo.EXPECT().GetUserByEmail(ctx, "budi@example.com").
			Return(&models.User{ID: "u-1", PasswordHash: string(hash)}, nil)

		_, err := uc.Login(ctx, &models.LoginRequest{Email: "budi@example.com", Password: "wrong-password"})
		assert.True(t, errs.IsAuthorization(err))
	})
}

func TestCurrentUser_CacheHit(t *testing.T) {
	uc, _, cache, ctrl := newIdentityUC(t)
	defer ctrl.Finish()

	ctx := context.Background()
	cached := &models.Identity{ID: "u-1", Name: "Budi Santoso", Role: models.RoleUser}

	cache.EXPECT().Fetch(ctx, "u-1").Return(cached, nil)

	identity, err := uc.CurrentUser(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, cached, identity)
}

func TestCurrentUser_CacheMissFallsBackToStore(t *testing.T) {
	uc, repo, cache, ctrl := newIdentityUC(t)
	defer ctrl.Finish()

	ctx := context.Background()

	cache.EXPECT().Fetch(ctx, "u-1").Return(nil, nil)
	repo.EXPECT().GetUser(ctx, "u-1").Return(&models.User{
		ID: "u-1", Name: "Budi Santoso", Role: models.RoleUser,
	}, nil)
	cache.EXPECT().Store(ctx, gomock.Any()).Return(nil)

	identity, err := uc.CurrentUser(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, "u-1", identity.ID)
	assert.Equal(t, "Budi Santoso", identity.Name)
}

func TestCurrentUser_CacheErrorStillResolves(t *testing.T) {
	uc, repo, cache, ctrl := newIdentityUC(t)
	defer ctrl.Finish()

	ctx := context.Background()

	cache.EXPECT().Fetch(ctx, "u-1").Return(nil, errs.Transient("redis down", nil))
	repo.EXPECT().GetUser(ctx, "u-1").Return(&models.User{ID: "u-1", Role: models.RoleUser}, nil)
	cache.EXPECT().Store(ctx, gomock.Any()).Return(errs.Transient("redis down", nil))

	identity, err := uc.CurrentUser(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, "u-1", identity.ID)
}

func TestMarkNotificationRead_Validation(t *testing.T) {
	uc, _, _, ctrl := newIdentityUC(t)
	defer ctrl.Finish()

	err := uc.MarkNotificationRead(context.Background(), "", "n-1")
	assert.True(t, errs.IsValidation(err))

	err = uc.MarkNotificationRead(context.Background(), "u-1", "")
	assert.True(t, errs.IsValidation(err))
}
