package repository

import (
	"context"
	"fmt"

	"storefront/internal/data/entity"
	"storefront/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type PromoBannerRepository interface {
	FindAll(ctx context.Context, activeOnly bool) ([]*entity.PromoBanner, error)
	FindByID(ctx context.Context, id int) (*entity.PromoBanner, error)
	Create(ctx context.Context, banner *entity.PromoBanner) error
	Update(ctx context.Context, banner *entity.PromoBanner) error
	Delete(ctx context.Context, id int) error
}

type promoBannerRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPromoBannerRepository(db database.PgxIface, log *zap.Logger) PromoBannerRepository {
	return &promoBannerRepository{
		db:  db,
		log: log.With(zap.String("repository", "promo_banner")),
	}
}

const promoBannerColumns = `id, content, cta_text, cta_link, bg_color, image, sort_order, is_active`

func scanPromoBanner(row pgx.Row) (*entity.PromoBanner, error) {
	var b entity.PromoBanner
	err := row.Scan(
		&b.ID,
		&b.Content,
		&b.CTAText,
		&b.CTALink,
		&b.BgColor,
		&b.Image,
		&b.SortOrder,
		&b.IsActive,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *promoBannerRepository) FindAll(ctx context.Context, activeOnly bool) ([]*entity.PromoBanner, error) {
	query := `SELECT ` + promoBannerColumns + ` FROM promo_banners`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY sort_order`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find promo banners", zap.Error(err))
		return nil, fmt.Errorf("find promo banners: %w", err)
	}
	defer rows.Close()

	var banners []*entity.PromoBanner
	for rows.Next() {
		b, err := scanPromoBanner(rows)
		if err != nil {
			r.log.Error("Failed to scan promo banner row", zap.Error(err))
			return nil, fmt.Errorf("scan promo banner row: %w", err)
		}
		banners = append(banners, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate promo banner rows: %w", err)
	}

	return banners, nil
}

func (r *promoBannerRepository) FindByID(ctx context.Context, id int) (*entity.PromoBanner, error) {
	query := `SELECT ` + promoBannerColumns + ` FROM promo_banners WHERE id = $1`

	b, err := scanPromoBanner(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find promo banner by ID",
			zap.Error(err),
			zap.Int("promo_banner_id", id),
		)
		return nil, fmt.Errorf("find promo banner by ID %d: %w", id, err)
	}

	return b, nil
}

func (r *promoBannerRepository) Create(ctx context.Context, banner *entity.PromoBanner) error {
	query := `
		INSERT INTO promo_banners (content, cta_text, cta_link, bg_color, image, sort_order, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		banner.Content,
		banner.CTAText,
		banner.CTALink,
		banner.BgColor,
		banner.Image,
		banner.SortOrder,
		banner.IsActive,
	).Scan(&banner.ID)

	if err != nil {
		r.log.Error("Failed to create promo banner", zap.Error(err))
		return fmt.Errorf("create promo banner: %w", err)
	}

	return nil
}

func (r *promoBannerRepository) Update(ctx context.Context, banner *entity.PromoBanner) error {
	query := `
		UPDATE promo_banners
		SET content = $2, cta_text = $3, cta_link = $4, bg_color = $5,
		    image = $6, sort_order = $7, is_active = $8
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		banner.ID,
		banner.Content,
		banner.CTAText,
		banner.CTALink,
		banner.BgColor,
		banner.Image,
		banner.SortOrder,
		banner.IsActive,
	)

	if err != nil {
		r.log.Error("Failed to update promo banner",
			zap.Error(err),
			zap.Int("promo_banner_id", banner.ID),
		)
		return fmt.Errorf("update promo banner %d: %w", banner.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("promo banner %d not found", banner.ID)
	}

	return nil
}

func (r *promoBannerRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM promo_banners WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete promo banner",
			zap.Error(err),
			zap.Int("promo_banner_id", id),
		)
		return fmt.Errorf("delete promo banner %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("promo banner %d not found", id)
	}

	return nil
}
