package repository

import (
	"context"
	"fmt"
	"time"

	"storefront/internal/data/entity"
	"storefront/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CustomerSummary is the back-office read model: one row per customer
// with their default address and order aggregates.
type CustomerSummary struct {
	User       entity.User
	Address    *entity.Address
	OrderCount int64
	TotalSpent decimal.Decimal
}

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	UpdateLastActive(ctx context.Context, id uuid.UUID) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.UserStatus) error
	ListCustomers(ctx context.Context) ([]*CustomerSummary, error)
}

type userRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserRepository(db database.PgxIface, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

const userColumns = `id, first_name, last_name, email, password, phone_number,
	       profile_image, role, status, last_active_at, created_at, updated_at`

func scanUser(row pgx.Row) (*entity.User, error) {
	var user entity.User
	err := row.Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.PasswordHash,
		&user.PhoneNumber,
		&user.ProfileImage,
		&user.Role,
		&user.Status,
		&user.LastActiveAt,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (ur *userRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, first_name, last_name, email, password, phone_number,
		                   profile_image, role, status, last_active_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := ur.db.Exec(ctx, query,
		user.ID,
		user.FirstName,
		user.LastName,
		user.Email,
		user.PasswordHash,
		user.PhoneNumber,
		user.ProfileImage,
		user.Role,
		user.Status,
		user.LastActiveAt,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		ur.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("email", user.Email),
		)
		return fmt.Errorf("create user %s: %w", user.Email, err)
	}

	return nil
}

func (ur *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(ur.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user by ID",
			zap.Error(err),
			zap.String("user_id", id.String()),
		)
		return nil, fmt.Errorf("find user by ID %s: %w", id.String(), err)
	}

	return user, nil
}

func (ur *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	user, err := scanUser(ur.db.QueryRow(ctx, query, email))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find user by email %s: %w", email, err)
	}

	return user, nil
}

func (ur *userRepository) Update(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE users
		SET first_name = $2, last_name = $3, email = $4, password = $5,
		    phone_number = $6, profile_image = $7, role = $8, status = $9,
		    updated_at = $10
		WHERE id = $1
	`

	result, err := ur.db.Exec(ctx, query,
		user.ID,
		user.FirstName,
		user.LastName,
		user.Email,
		user.PasswordHash,
		user.PhoneNumber,
		user.ProfileImage,
		user.Role,
		user.Status,
		time.Now(),
	)

	if err != nil {
		ur.log.Error("Failed to update user",
			zap.Error(err),
			zap.String("user_id", user.ID.String()),
		)
		return fmt.Errorf("update user %s: %w", user.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %s not found", user.ID.String())
	}

	return nil
}

func (ur *userRepository) UpdateLastActive(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE users SET last_active_at = NOW() WHERE id = $1`

	if _, err := ur.db.Exec(ctx, query, id); err != nil {
		ur.log.Error("Failed to update last active",
			zap.Error(err),
			zap.String("user_id", id.String()),
		)
		return fmt.Errorf("update last active for user %s: %w", id.String(), err)
	}

	return nil
}

func (ur *userRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.UserStatus) error {
	query := `UPDATE users SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := ur.db.Exec(ctx, query, id, status)
	if err != nil {
		ur.log.Error("Failed to update user status",
			zap.Error(err),
			zap.String("user_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update user %s status to %s: %w", id.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %s not found", id.String())
	}

	return nil
}

// ListCustomers joins each customer to their default address and
// aggregates order count and total spend.
func (ur *userRepository) ListCustomers(ctx context.Context) ([]*CustomerSummary, error) {
	query := `
		SELECT u.id, u.first_name, u.last_name, u.email, u.password, u.phone_number,
		       u.profile_image, u.role, u.status, u.last_active_at, u.created_at, u.updated_at,
		       a.id, a.user_id, a.address, a.city, a.region, a.zip_code, a.country, a.is_default,
		       COUNT(o.id), COALESCE(SUM(o.total), 0)
		FROM users u
		LEFT JOIN addresses a ON a.user_id = u.id AND a.is_default = TRUE
		LEFT JOIN orders o ON o.customer_id = u.id
		WHERE u.role = 'customer'
		GROUP BY u.id, a.id
		ORDER BY u.created_at DESC
	`

	rows, err := ur.db.Query(ctx, query)
	if err != nil {
		ur.log.Error("Failed to list customers", zap.Error(err))
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	var customers []*CustomerSummary
	for rows.Next() {
		var c CustomerSummary
		var addrID, addrUserID *uuid.UUID
		var addrAddress, addrCity, addrRegion, addrZip, addrCountry *string
		var addrDefault *bool

		err := rows.Scan(
			&c.User.ID,
			&c.User.FirstName,
			&c.User.LastName,
			&c.User.Email,
			&c.User.PasswordHash,
			&c.User.PhoneNumber,
			&c.User.ProfileImage,
			&c.User.Role,
			&c.User.Status,
			&c.User.LastActiveAt,
			&c.User.CreatedAt,
			&c.User.UpdatedAt,
			&addrID,
			&addrUserID,
			&addrAddress,
			&addrCity,
			&addrRegion,
			&addrZip,
			&addrCountry,
			&addrDefault,
			&c.OrderCount,
			&c.TotalSpent,
		)
		if err != nil {
			ur.log.Error("Failed to scan customer row", zap.Error(err))
			return nil, fmt.Errorf("scan customer row: %w", err)
		}

		if addrID != nil {
			c.Address = &entity.Address{
				ID:        *addrID,
				UserID:    *addrUserID,
				Address:   *addrAddress,
				City:      *addrCity,
				Region:    *addrRegion,
				ZipCode:   *addrZip,
				Country:   *addrCountry,
				IsDefault: *addrDefault,
			}
		}

		customers = append(customers, &c)
	}

	if err := rows.Err(); err != nil {
		ur.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate customer rows: %w", err)
	}

	return customers, nil
}
