package repository

import (
	"context"
	"fmt"

	"storefront/internal/data/entity"
	"storefront/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type HeroSlideRepository interface {
	FindAll(ctx context.Context, activeOnly bool) ([]*entity.HeroSlide, error)
	FindByID(ctx context.Context, id int) (*entity.HeroSlide, error)
	Create(ctx context.Context, slide *entity.HeroSlide) error
	Update(ctx context.Context, slide *entity.HeroSlide) error
	Delete(ctx context.Context, id int) error
}

type heroSlideRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewHeroSlideRepository(db database.PgxIface, log *zap.Logger) HeroSlideRepository {
	return &heroSlideRepository{
		db:  db,
		log: log.With(zap.String("repository", "hero_slide")),
	}
}

const heroSlideColumns = `id, content, image, cta, href, sort_order, is_active`

func scanHeroSlide(row pgx.Row) (*entity.HeroSlide, error) {
	var s entity.HeroSlide
	err := row.Scan(
		&s.ID,
		&s.Content,
		&s.Image,
		&s.CTA,
		&s.Href,
		&s.SortOrder,
		&s.IsActive,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *heroSlideRepository) FindAll(ctx context.Context, activeOnly bool) ([]*entity.HeroSlide, error) {
	query := `SELECT ` + heroSlideColumns + ` FROM hero_slides`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY sort_order`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find hero slides", zap.Error(err))
		return nil, fmt.Errorf("find hero slides: %w", err)
	}
	defer rows.Close()

	var slides []*entity.HeroSlide
	for rows.Next() {
		s, err := scanHeroSlide(rows)
		if err != nil {
			r.log.Error("Failed to scan hero slide row", zap.Error(err))
			return nil, fmt.Errorf("scan hero slide row: %w", err)
		}
		slides = append(slides, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate hero slide rows: %w", err)
	}

	return slides, nil
}

func (r *heroSlideRepository) FindByID(ctx context.Context, id int) (*entity.HeroSlide, error) {
	query := `SELECT ` + heroSlideColumns + ` FROM hero_slides WHERE id = $1`

	s, err := scanHeroSlide(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find hero slide by ID",
			zap.Error(err),
			zap.Int("hero_slide_id", id),
		)
		return nil, fmt.Errorf("find hero slide by ID %d: %w", id, err)
	}

	return s, nil
}

func (r *heroSlideRepository) Create(ctx context.Context, slide *entity.HeroSlide) error {
	query := `
		INSERT INTO hero_slides (content, image, cta, href, sort_order, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		slide.Content,
		slide.Image,
		slide.CTA,
		slide.Href,
		slide.SortOrder,
		slide.IsActive,
	).Scan(&slide.ID)

	if err != nil {
		r.log.Error("Failed to create hero slide", zap.Error(err))
		return fmt.Errorf("create hero slide: %w", err)
	}

	return nil
}

func (r *heroSlideRepository) Update(ctx context.Context, slide *entity.HeroSlide) error {
	query := `
		UPDATE hero_slides
		SET content = $2, image = $3, cta = $4, href = $5, sort_order = $6, is_active = $7
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		slide.ID,
		slide.Content,
		slide.Image,
		slide.CTA,
		slide.Href,
		slide.SortOrder,
		slide.IsActive,
	)

	if err != nil {
		r.log.Error("Failed to update hero slide",
			zap.Error(err),
			zap.Int("hero_slide_id", slide.ID),
		)
		return fmt.Errorf("update hero slide %d: %w", slide.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("hero slide %d not found", slide.ID)
	}

	return nil
}

func (r *heroSlideRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM hero_slides WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete hero slide",
			zap.Error(err),
			zap.Int("hero_slide_id", id),
		)
		return fmt.Errorf("delete hero slide %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("hero slide %d not found", id)
	}

	return nil
}
