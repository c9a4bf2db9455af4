package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/montirku/montirku/internal/pkg/errs"
	jwtpkg "github.com/montirku/montirku/internal/pkg/jwt"
	"github.com/montirku/montirku/internal/pkg/logger"
	"github.com/montirku/montirku/internal/pkg/models"
	"github.com/montirku/montirku/internal/utils"
)

// Register creates a new account and returns a fresh token
func (uc *IdentityUC) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		return nil, errs.Validation("a valid email is required")
	}
	if len(req.Password) < 8 {
		return nil, errs.Validation("password must be at least 8 characters")
	}
	if req.Name == "" {
		return nil, errs.Validation("name is required")
	}

	role := req.Role
	if role == "" {
		role = models.RoleUser
	}
	if role != models.RoleUser && role != models.RoleMechanic {
		return nil, errs.Validationf("unknown role: %s", role)
	}

	if role == models.RoleMechanic {
		for _, service := range req.Services {
			if !models.ServiceType(service).Valid() {
				return nil, errs.Validationf("unknown service type: %s", service)
			}
		}
		if req.Location != nil && !req.Location.Valid() {
			return nil, errs.Validation("coordinates out of range")
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errs.Transient("failed to hash password", err)
	}

	now := models.Now()
	user := &models.User{
		ID:           uuid.New().String(),
		Email:        strings.ToLower(req.Email),
		Name:         req.Name,
		Phone:        req.Phone,
		Role:         role,
		PasswordHash: string(hash),
		Address:      req.Address,
		Services:     req.Services,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if req.Location != nil {
		user.Location = req.Location
		user.Geohash = utils.EncodeLocation(*req.Location, uc.cfg.Directory.GeohashPrecision)
	}

	if err := uc.identityRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	logger.Info("Account registered",
		logger.String("user_id", user.ID),
		logger.String("role", user.Role))

	return uc.issueToken(ctx, user)
}

// Login verifies credentials and returns a fresh token
func (uc *IdentityUC) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, errs.Validation("email and password are required")
	}

	user, err := uc.identityRepo.GetUserByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		if errs.IsNotFound(err) {
			// Same answer for unknown email and wrong password
			return nil, errs.Authorization("invalid credentials")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errs.Authorization("invalid credentials")
	}

	if err := uc.identityRepo.RecordLogin(ctx, user.ID); err != nil {
		logger.Warn("Failed to record login time",
			logger.String("user_id", user.ID),
			logger.Err(err))
	}

	return uc.issueToken(ctx, user)
}

// issueToken signs a JWT for the user and primes the identity cache
func (uc *IdentityUC) issueToken(ctx context.Context, user *models.User) (*models.AuthResponse, error) {
	token, expiresAt, err := jwtpkg.GenerateToken(user, uc.cfg.JWT)
	if err != nil {
		return nil, errs.Transient("failed to sign token", err)
	}

	identity := &models.Identity{
		ID:    user.ID,
		Name:  user.Name,
		Phone: user.Phone,
		Role:  user.Role,
	}
	if err := uc.identityCache.Store(ctx, identity); err != nil {
		logger.Warn("Failed to prime identity cache",
			logger.String("user_id", user.ID),
			logger.Err(err))
	}

	return &models.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
	}, nil
}

// CurrentUser resolves a user ID to its identity. The cache answers first;
// on a miss the store is read and the cache refreshed, so stale entries age
// out within one TTL.
func (uc *IdentityUC) CurrentUser(ctx context.Context, userID string) (*models.Identity, error) {
	if userID == "" {
		return nil, errs.Validation("user ID is required")
	}

	cached, err := uc.identityCache.Fetch(ctx, userID)
	if err != nil {
		logger.Warn("Identity cache read failed, falling back to store",
			logger.String("user_id", userID),
			logger.Err(err))
	}
	if cached != nil {
		return cached, nil
	}

	user, err := uc.identityRepo.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	identity := &models.Identity{
		ID:    user.ID,
		Name:  user.Name,
		Phone: user.Phone,
		Role:  user.Role,
	}
	if err := uc.identityCache.Store(ctx, identity); err != nil {
		logger.Warn("Failed to refresh identity cache",
			logger.String("user_id", userID),
			logger.Err(err))
	}

	return identity, nil
}

// ListNotifications retrieves the user's notification feed, newest first
func (uc *IdentityUC) ListNotifications(ctx context.Context, userID string) ([]*models.Notification, error) {
	if userID == "" {
		return nil, errs.Validation("user ID is required")
	}
	return uc.identityRepo.ListNotifications(ctx, userID)
}

// MarkNotificationRead marks one of the user's notifications as read
func (uc *IdentityUC) MarkNotificationRead(ctx context.Context, userID, notificationID string) error {
	if userID == "" || notificationID == "" {
		return errs.Validation("user ID and notification ID are required")
	}
	return uc.identityRepo.MarkNotificationRead(ctx, userID, notificationID)
}
