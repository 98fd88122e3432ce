package response

import (
	"time"

	"storefront/internal/data/entity"
	"storefront/internal/data/repository"
)

// Monetary fields go out as JSON numbers. Arithmetic stays on
// decimal.Decimal; conversion happens only at the presentation edge.

type Category struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Slug      string  `json:"slug"`
	Image     *string `json:"image"`
	Href      *string `json:"href"`
	SortOrder int     `json:"sortOrder"`
}

func FromCategory(c *entity.Category) Category {
	return Category{
		ID:        c.ID,
		Name:      c.Name,
		Slug:      c.Slug,
		Image:     c.Image,
		Href:      c.Href,
		SortOrder: c.SortOrder,
	}
}

func FromCategories(categories []*entity.Category) []Category {
	out := make([]Category, 0, len(categories))
	for _, c := range categories {
		out = append(out, FromCategory(c))
	}
	return out
}

type Product struct {
	ID             string               `json:"id"`
	Name           string               `json:"name"`
	Category       *Category            `json:"category"`
	Price          float64              `json:"price"`
	OriginalPrice  float64              `json:"originalPrice"`
	Image          string               `json:"image"`
	Condition      string               `json:"condition"`
	IsNew          bool                 `json:"isNew"`
	IsBestSeller   bool                 `json:"isBestSeller"`
	IsFeatured     bool                 `json:"isFeatured"`
	IsActive       bool                 `json:"isActive"`
	Stock          int                  `json:"stock"`
	Description    *string              `json:"description"`
	Colors         []entity.ColorOption `json:"colors"`
	StorageOptions []entity.SizedOption `json:"storageOptions"`
	MemoryOptions  []entity.SizedOption `json:"memoryOptions"`
	Grades         []entity.GradeOption `json:"grades"`
	Specs          []entity.SpecEntry   `json:"specs"`
	Images         []string             `json:"images"`
	CreatedAt      time.Time            `json:"createdAt"`
	UpdatedAt      time.Time            `json:"updatedAt"`
}

func FromProduct(pc *repository.ProductWithCategory) Product {
	p := pc.Product

	out := Product{
		ID:             p.ID.String(),
		Name:           p.Name,
		Price:          p.Price.InexactFloat64(),
		OriginalPrice:  p.OriginalPrice.InexactFloat64(),
		Image:          p.Image,
		Condition:      string(p.Condition),
		IsNew:          p.IsNew,
		IsBestSeller:   p.IsBestSeller,
		IsFeatured:     p.IsFeatured,
		IsActive:       p.IsActive,
		Stock:          p.Stock,
		Description:    p.Description,
		Colors:         p.Colors,
		StorageOptions: p.StorageOptions,
		MemoryOptions:  p.MemoryOptions,
		Grades:         p.Grades,
		Specs:          p.Specs,
		Images:         p.Images,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}

	if pc.Category != nil {
		c := FromCategory(pc.Category)
		out.Category = &c
	}

	return out
}

func FromProducts(products []*repository.ProductWithCategory) []Product {
	out := make([]Product, 0, len(products))
	for _, pc := range products {
		out = append(out, FromProduct(pc))
	}
	return out
}

type HeroSlide struct {
	ID        int    `json:"id"`
	Content   string `json:"content"`
	Image     string `json:"image"`
	CTA       string `json:"cta"`
	Href      string `json:"href"`
	SortOrder int    `json:"sortOrder"`
	IsActive  bool   `json:"isActive"`
}

func FromHeroSlide(s *entity.HeroSlide) HeroSlide {
	return HeroSlide{
		ID:        s.ID,
		Content:   s.Content,
		Image:     s.Image,
		CTA:       s.CTA,
		Href:      s.Href,
		SortOrder: s.SortOrder,
		IsActive:  s.IsActive,
	}
}

func FromHeroSlides(slides []*entity.HeroSlide) []HeroSlide {
	out := make([]HeroSlide, 0, len(slides))
	for _, s := range slides {
		out = append(out, FromHeroSlide(s))
	}
	return out
}

type PromoBanner struct {
	ID        int    `json:"id"`
	Content   string `json:"content"`
	CTAText   string `json:"ctaText"`
	CTALink   string `json:"ctaLink"`
	BgColor   string `json:"bgColor"`
	Image     string `json:"image"`
	SortOrder int    `json:"sortOrder"`
	IsActive  bool   `json:"isActive"`
}

func FromPromoBanner(b *entity.PromoBanner) PromoBanner {
	return PromoBanner{
		ID:        b.ID,
		Content:   b.Content,
		CTAText:   b.CTAText,
		CTALink:   b.CTALink,
		BgColor:   b.BgColor,
		Image:     b.Image,
		SortOrder: b.SortOrder,
		IsActive:  b.IsActive,
	}
}

func FromPromoBanners(banners []*entity.PromoBanner) []PromoBanner {
	out := make([]PromoBanner, 0, len(banners))
	for _, b := range banners {
		out = append(out, FromPromoBanner(b))
	}
	return out
}

// LandingPage is assembled from three reads; the featured, best-seller
// and latest lists are derived from the one product fetch.
type LandingPage struct {
	HeroSlides       []HeroSlide   `json:"heroSlides"`
	PromoBanners     []PromoBanner `json:"promoBanners"`
	Products         []Product     `json:"products"`
	FeaturedProducts []Product     `json:"featuredProducts"`
	BestSellers      []Product     `json:"bestSellers"`
	LatestProducts   []Product     `json:"latestProducts"`
}
