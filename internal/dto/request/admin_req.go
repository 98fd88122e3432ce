package request

import (
	"storefront/internal/data/entity"

	"github.com/shopspring/decimal"
)

// Admin create/update payloads. Client-supplied ids and timestamps are
// not modeled at all, which is how they get stripped.

type CreateProduct struct {
	Name          string               `json:"name" validate:"required"`
	CategoryID    int                  `json:"categoryId" validate:"required"`
	Price         decimal.Decimal      `json:"price" validate:"required"`
	OriginalPrice decimal.Decimal      `json:"originalPrice"`
	Image         string               `json:"image" validate:"required"`
	Condition     string               `json:"condition" validate:"required,oneof=New Refurbished"`
	IsNew         bool                 `json:"isNew"`
	IsBestSeller  bool                 `json:"isBestSeller"`
	IsFeatured    bool                 `json:"isFeatured"`
	IsActive      *bool                `json:"isActive"`
	Stock         int                  `json:"stock" validate:"min=0"`
	Description   *string              `json:"description"`
	Colors        []entity.ColorOption `json:"colors"`
	StorageOpts   []entity.SizedOption `json:"storageOptions"`
	MemoryOpts    []entity.SizedOption `json:"memoryOptions"`
	Grades        []entity.GradeOption `json:"grades"`
	Specs         []entity.SpecEntry   `json:"specs"`
	Images        []string             `json:"images"`
}

type UpdateProduct struct {
	Name          *string              `json:"name"`
	CategoryID    *int                 `json:"categoryId"`
	Price         *decimal.Decimal     `json:"price"`
	OriginalPrice *decimal.Decimal     `json:"originalPrice"`
	Image         *string              `json:"image"`
	Condition     *string              `json:"condition" validate:"omitempty,oneof=New Refurbished"`
	IsNew         *bool                `json:"isNew"`
	IsBestSeller  *bool                `json:"isBestSeller"`
	IsFeatured    *bool                `json:"isFeatured"`
	IsActive      *bool                `json:"isActive"`
	Stock         *int                 `json:"stock" validate:"omitempty,min=0"`
	Description   *string              `json:"description"`
	Colors        []entity.ColorOption `json:"colors"`
	StorageOpts   []entity.SizedOption `json:"storageOptions"`
	MemoryOpts    []entity.SizedOption `json:"memoryOptions"`
	Grades        []entity.GradeOption `json:"grades"`
	Specs         []entity.SpecEntry   `json:"specs"`
	Images        []string             `json:"images"`
}

type CreateCategory struct {
	Name      string  `json:"name" validate:"required"`
	Slug      string  `json:"slug" validate:"required"`
	Image     *string `json:"image"`
	Href      *string `json:"href"`
	SortOrder int     `json:"sortOrder"`
}

type UpdateCategory struct {
	Name      *string `json:"name"`
	Slug      *string `json:"slug"`
	Image     *string `json:"image"`
	Href      *string `json:"href"`
	SortOrder *int    `json:"sortOrder"`
}

type CreateHeroSlide struct {
	Content   string `json:"content" validate:"required"`
	Image     string `json:"image" validate:"required"`
	CTA       string `json:"cta"`
	Href      string `json:"href"`
	SortOrder int    `json:"sortOrder"`
	IsActive  *bool  `json:"isActive"`
}

type UpdateHeroSlide struct {
	Content   *string `json:"content"`
	Image     *string `json:"image"`
	CTA       *string `json:"cta"`
	Href      *string `json:"href"`
	SortOrder *int    `json:"sortOrder"`
	IsActive  *bool   `json:"isActive"`
}

type CreatePromoBanner struct {
	Content   string `json:"content" validate:"required"`
	CTAText   string `json:"ctaText"`
	CTALink   string `json:"ctaLink"`
	BgColor   string `json:"bgColor"`
	Image     string `json:"image"`
	SortOrder int    `json:"sortOrder"`
	IsActive  *bool  `json:"isActive"`
}

type UpdatePromoBanner struct {
	Content   *string `json:"content"`
	CTAText   *string `json:"ctaText"`
	CTALink   *string `json:"ctaLink"`
	BgColor   *string `json:"bgColor"`
	Image     *string `json:"image"`
	SortOrder *int    `json:"sortOrder"`
	IsActive  *bool   `json:"isActive"`
}
