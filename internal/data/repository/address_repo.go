package repository

import (
	"context"
	"fmt"

	"storefront/internal/data/entity"
	"storefront/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type AddressRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Address, error)
	FindDefaultByUserID(ctx context.Context, userID uuid.UUID) (*entity.Address, error)
	// ReplaceDefault clears every default flag the user has and inserts
	// the new address as default, in one transaction.
	ReplaceDefault(ctx context.Context, address *entity.Address) error
}

type addressRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAddressRepository(db database.PgxIface, log *zap.Logger) AddressRepository {
	return &addressRepository{
		db:  db,
		log: log.With(zap.String("repository", "address")),
	}
}

const addressColumns = `id, user_id, address, city, region, zip_code, country, is_default`

func scanAddress(row pgx.Row) (*entity.Address, error) {
	var addr entity.Address
	err := row.Scan(
		&addr.ID,
		&addr.UserID,
		&addr.Address,
		&addr.City,
		&addr.Region,
		&addr.ZipCode,
		&addr.Country,
		&addr.IsDefault,
	)
	if err != nil {
		return nil, err
	}
	return &addr, nil
}

func (r *addressRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Address, error) {
	query := `SELECT ` + addressColumns + ` FROM addresses WHERE id = $1`

	addr, err := scanAddress(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find address by ID",
			zap.Error(err),
			zap.String("address_id", id.String()),
		)
		return nil, fmt.Errorf("find address by ID %s: %w", id.String(), err)
	}

	return addr, nil
}

func (r *addressRepository) FindDefaultByUserID(ctx context.Context, userID uuid.UUID) (*entity.Address, error) {
	query := `SELECT ` + addressColumns + ` FROM addresses WHERE user_id = $1 AND is_default = TRUE LIMIT 1`

	addr, err := scanAddress(r.db.QueryRow(ctx, query, userID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find default address",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find default address for user %s: %w", userID.String(), err)
	}

	return addr, nil
}

func (r *addressRepository) ReplaceDefault(ctx context.Context, address *entity.Address) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin replace default address: %w", err)
	}
	defer tx.Rollback(ctx)

	// The clear-then-insert pair must be atomic so concurrent updates
	// from the same user can never leave two defaults.
	if _, err := tx.Exec(ctx,
		`UPDATE addresses SET is_default = FALSE WHERE user_id = $1`,
		address.UserID,
	); err != nil {
		r.log.Error("Failed to clear default addresses",
			zap.Error(err),
			zap.String("user_id", address.UserID.String()),
		)
		return fmt.Errorf("clear default addresses for user %s: %w", address.UserID.String(), err)
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO addresses (id, user_id, address, city, region, zip_code, country, is_default)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, TRUE)`,
		address.ID,
		address.UserID,
		address.Address,
		address.City,
		address.Region,
		address.ZipCode,
		address.Country,
	); err != nil {
		r.log.Error("Failed to insert default address",
			zap.Error(err),
			zap.String("user_id", address.UserID.String()),
		)
		return fmt.Errorf("insert default address for user %s: %w", address.UserID.String(), err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit replace default address: %w", err)
	}

	address.IsDefault = true
	return nil
}
