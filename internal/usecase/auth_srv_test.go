package usecase

import (
	"context"
	"testing"
	"time"

	"storefront/internal/data/entity"
	"storefront/internal/data/repository"
	"storefront/internal/dto/request"
	"storefront/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig() *utils.Config {
	return &utils.Config{
		JWT: utils.JWTConfig{
			Secret:      "unit-test-secret",
			ExpiryHours: 1,
		},
	}
}

func newAuthService(repo *repository.Repository) AuthService {
	return NewAuthService(repo, testConfig(), zap.NewNop())
}

func TestRegister_Success(t *testing.T) {
	t.Parallel()

	var created *entity.User
	repo := newFakeRepository()
	repo.User = &fakeUserRepo{
		createFn: func(ctx context.Context, user *entity.User) error {
			created = user
			return nil
		},
	}

	svc := newAuthService(repo)
	resp, err := svc.Register(context.Background(), &request.Register{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "strong-password",
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	// Raw password never persisted
	assert.NotEqual(t, "strong-password", created.PasswordHash)
	assert.True(t, utils.CheckPasswordHash("strong-password", created.PasswordHash))
	assert.Equal(t, entity.RoleCustomer, created.Role)
	assert.Equal(t, entity.UserStatusActive, created.Status)

	// Token carries the new user's identity
	claims, err := utils.ParseToken(resp.Token, "unit-test-secret")
	require.NoError(t, err)
	assert.Equal(t, created.ID.String(), claims.UserID)
	assert.Equal(t, "customer", claims.Role)

	assert.Equal(t, "ada@example.com", resp.User.Email)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()

	repo := newFakeRepository()
	repo.User = &fakeUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*entity.User, error) {
			return &entity.User{Email: email}, nil
		},
		createFn: func(ctx context.Context, user *entity.User) error {
			t.Fatal("create must not be called for a duplicate email")
			return nil
		},
	}

	svc := newAuthService(repo)
	_, err := svc.Register(context.Background(), &request.Register{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "taken@example.com",
		Password:  "strong-password",
	})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestRegister_Validation(t *testing.T) {
	t.Parallel()

	svc := newAuthService(newFakeRepository())
	_, err := svc.Register(context.Background(), &request.Register{
		Email:    "not-an-email",
		Password: "short",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestLogin_IdenticalErrorForUnknownEmailAndWrongPassword(t *testing.T) {
	t.Parallel()

	hash, err := utils.HashPassword("the-right-password")
	require.NoError(t, err)

	known := &entity.User{
		Base:         entity.Base{ID: uuid.New()},
		Email:        "known@example.com",
		PasswordHash: hash,
		Role:         entity.RoleCustomer,
		Status:       entity.UserStatusActive,
	}

	repo := newFakeRepository()
	repo.User = &fakeUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*entity.User, error) {
			if email == known.Email {
				return known, nil
			}
			return nil, nil
		},
	}

	svc := newAuthService(repo)

	_, errUnknown := svc.Login(context.Background(), &request.Login{
		Email:    "unknown@example.com",
		Password: "whatever-password",
	})
	_, errWrongPass := svc.Login(context.Background(), &request.Login{
		Email:    known.Email,
		Password: "the-wrong-password",
	})

	require.Error(t, errUnknown)
	require.Error(t, errWrongPass)
	assert.ErrorIs(t, errUnknown, ErrUnauthorized)
	assert.ErrorIs(t, errWrongPass, ErrUnauthorized)
	// Same message, no account probing
	assert.Equal(t, errUnknown.Error(), errWrongPass.Error())
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	hash, err := utils.HashPassword("hunter2hunter2")
	require.NoError(t, err)

	user := &entity.User{
		Base:         entity.Base{ID: uuid.New(), CreatedAt: time.Now()},
		Email:        "user@example.com",
		PasswordHash: hash,
		Role:         entity.RoleCustomer,
		Status:       entity.UserStatusActive,
	}

	lastActiveUpdated := false
	repo := newFakeRepository()
	repo.User = &fakeUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*entity.User, error) {
			return user, nil
		},
		updateLastActiveFn: func(ctx context.Context, id uuid.UUID) error {
			lastActiveUpdated = true
			return nil
		},
	}

	svc := newAuthService(repo)
	resp, err := svc.Login(context.Background(), &request.Login{
		Email:    user.Email,
		Password: "hunter2hunter2",
	})
	require.NoError(t, err)
	assert.True(t, lastActiveUpdated)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, user.Email, resp.User.Email)
}

func TestLogin_BlockedAccount(t *testing.T) {
	t.Parallel()

	hash, err := utils.HashPassword("hunter2hunter2")
	require.NoError(t, err)

	repo := newFakeRepository()
	repo.User = &fakeUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*entity.User, error) {
			return &entity.User{
				Base:         entity.Base{ID: uuid.New()},
				Email:        email,
				PasswordHash: hash,
				Status:       entity.UserStatusBlocked,
			}, nil
		},
	}

	svc := newAuthService(repo)
	_, err = svc.Login(context.Background(), &request.Login{
		Email:    "blocked@example.com",
		Password: "hunter2hunter2",
	})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUpdateProfile_ReplacesDefaultAddress(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	user := &entity.User{
		Base:   entity.Base{ID: userID},
		Email:  "user@example.com",
		Role:   entity.RoleCustomer,
		Status: entity.UserStatusActive,
	}

	var replaced *entity.Address
	repo := newFakeRepository()
	repo.User = &fakeUserRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.User, error) {
			return user, nil
		},
	}
	repo.Address = &fakeAddressRepo{
		replaceDefaultFn: func(ctx context.Context, address *entity.Address) error {
			replaced = address
			address.IsDefault = true
			return nil
		},
	}

	svc := newAuthService(repo)
	profile, err := svc.UpdateProfile(context.Background(), userID, &request.UpdateProfile{
		ShippingAddress: &request.ShippingAddress{
			Address: "1 Infinite Loop",
			City:    "Cupertino",
			Region:  "CA",
			ZipCode: "95014",
			Country: "USA",
		},
	})
	require.NoError(t, err)
	require.NotNil(t, replaced)
	assert.Equal(t, userID, replaced.UserID)
	assert.Equal(t, "Cupertino", replaced.City)
	require.NotNil(t, profile.ShippingAddress)
	assert.True(t, profile.ShippingAddress.IsDefault)
}

func TestUpdateProfile_EmailConflict(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	repo := newFakeRepository()
	repo.User = &fakeUserRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.User, error) {
			return &entity.User{Base: entity.Base{ID: userID}, Email: "old@example.com"}, nil
		},
		findByEmailFn: func(ctx context.Context, email string) (*entity.User, error) {
			return &entity.User{Email: email}, nil
		},
	}

	svc := newAuthService(repo)
	newEmail := "taken@example.com"
	_, err := svc.UpdateProfile(context.Background(), userID, &request.UpdateProfile{
		Email: &newEmail,
	})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestDeactivateAccount(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	var gotStatus entity.UserStatus
	repo := newFakeRepository()
	repo.User = &fakeUserRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.User, error) {
			return &entity.User{Base: entity.Base{ID: userID}}, nil
		},
		updateStatusFn: func(ctx context.Context, id uuid.UUID, status entity.UserStatus) error {
			gotStatus = status
			return nil
		},
	}

	svc := newAuthService(repo)
	require.NoError(t, svc.DeactivateAccount(context.Background(), userID))
	assert.Equal(t, entity.UserStatusInactive, gotStatus)
}
