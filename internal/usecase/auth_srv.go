package usecase

import (
	"context"
	"fmt"
	"time"

	"storefront/internal/data/entity"
	"storefront/internal/data/repository"
	"storefront/internal/dto/request"
	"storefront/internal/dto/response"
	"storefront/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.Register) (*response.Auth, error)
	Login(ctx context.Context, req *request.Login) (*response.Auth, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*response.Profile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *request.UpdateProfile) (*response.Profile, error)
	DeactivateAccount(ctx context.Context, userID uuid.UUID) error
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) tokenExpiry() time.Duration {
	return time.Duration(s.config.JWT.ExpiryHours) * time.Hour
}

func (s *authService) Register(ctx context.Context, req *request.Register) (*response.Auth, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	// 2. Reject duplicate email (exact match)
	existing, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to check email")
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: email already registered", ErrConflict)
	}

	// 3. Hash password
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to process password")
	}

	// 4. Create user
	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        utils.GenerateUUID(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Role:         entity.RoleCustomer,
		Status:       entity.UserStatusActive,
		LastActiveAt: &now,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user")
	}

	// 5. Issue session token
	token, err := utils.GenerateToken(user.ID.String(), string(user.Role), s.config.JWT.Secret, s.tokenExpiry())
	if err != nil {
		s.log.Error("Failed to sign session token", zap.Error(err))
		return nil, fmt.Errorf("failed to create session")
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email),
	)

	return &response.Auth{
		Token: token,
		User:  response.FromUser(user, nil),
	}, nil
}

func (s *authService) Login(ctx context.Context, req *request.Login) (*response.Auth, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to check credentials")
	}

	// Unknown email and wrong password return the same message so the
	// endpoint cannot be used to probe for accounts.
	if user == nil || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}

	if user.Status == entity.UserStatusBlocked {
		return nil, fmt.Errorf("%w: account is blocked", ErrForbidden)
	}

	if err := s.repo.User.UpdateLastActive(ctx, user.ID); err != nil {
		// Non-fatal: the login still succeeds.
		s.log.Warn("Failed to update last active", zap.Error(err), zap.String("user_id", user.ID.String()))
	}

	token, err := utils.GenerateToken(user.ID.String(), string(user.Role), s.config.JWT.Secret, s.tokenExpiry())
	if err != nil {
		s.log.Error("Failed to sign session token", zap.Error(err))
		return nil, fmt.Errorf("failed to create session")
	}

	address, err := s.repo.Address.FindDefaultByUserID(ctx, user.ID)
	if err != nil {
		s.log.Warn("Failed to load default address", zap.Error(err), zap.String("user_id", user.ID.String()))
	}

	s.log.Info("User logged in", zap.String("user_id", user.ID.String()))

	return &response.Auth{
		Token: token,
		User:  response.FromUser(user, address),
	}, nil
}

func (s *authService) GetProfile(ctx context.Context, userID uuid.UUID) (*response.Profile, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile")
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user not found", ErrNotFound)
	}

	address, err := s.repo.Address.FindDefaultByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load shipping address")
	}

	profile := response.FromUser(user, address)
	return &profile, nil
}

func (s *authService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *request.UpdateProfile) (*response.Profile, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile")
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user not found", ErrNotFound)
	}

	// Overlay only the supplied fields.
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Email != nil && *req.Email != user.Email {
		existing, err := s.repo.User.FindByEmail(ctx, *req.Email)
		if err != nil {
			return nil, fmt.Errorf("failed to check email")
		}
		if existing != nil {
			return nil, fmt.Errorf("%w: email already in use", ErrConflict)
		}
		user.Email = *req.Email
	}
	if req.PhoneNumber != nil {
		user.PhoneNumber = req.PhoneNumber
	}
	if req.ProfileImage != nil {
		user.ProfileImage = req.ProfileImage
	}

	if err := s.repo.User.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update profile")
	}

	// A supplied shipping address replaces the default atomically.
	var address *entity.Address
	if req.ShippingAddress != nil {
		address = &entity.Address{
			ID:      utils.GenerateUUID(),
			UserID:  userID,
			Address: req.ShippingAddress.Address,
			City:    req.ShippingAddress.City,
			Region:  req.ShippingAddress.Region,
			ZipCode: req.ShippingAddress.ZipCode,
			Country: req.ShippingAddress.Country,
		}
		if err := s.repo.Address.ReplaceDefault(ctx, address); err != nil {
			return nil, fmt.Errorf("failed to update shipping address")
		}
	} else {
		address, err = s.repo.Address.FindDefaultByUserID(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to load shipping address")
		}
	}

	s.log.Info("Profile updated", zap.String("user_id", userID.String()))

	profile := response.FromUser(user, address)
	return &profile, nil
}

// DeactivateAccount marks the user Inactive. Orders and addresses are
// kept; nothing cascades.
func (s *authService) DeactivateAccount(ctx context.Context, userID uuid.UUID) error {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load profile")
	}
	if user == nil {
		return fmt.Errorf("%w: user not found", ErrNotFound)
	}

	if err := s.repo.User.UpdateStatus(ctx, userID, entity.UserStatusInactive); err != nil {
		return fmt.Errorf("failed to deactivate account")
	}

	s.log.Info("Account deactivated", zap.String("user_id", userID.String()))
	return nil
}
