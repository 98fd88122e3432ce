package entity

type HeroSlide struct {
	ID        int    `db:"id"`
	Content   string `db:"content"` // rich text HTML
	Image     string `db:"image"`
	CTA       string `db:"cta"`
	Href      string `db:"href"`
	SortOrder int    `db:"sort_order"`
	IsActive  bool   `db:"is_active"`
}

type PromoBanner struct {
	ID        int    `db:"id"`
	Content   string `db:"content"` // rich text HTML
	CTAText   string `db:"cta_text"`
	CTALink   string `db:"cta_link"`
	BgColor   string `db:"bg_color"`
	Image     string `db:"image"`
	SortOrder int    `db:"sort_order"`
	IsActive  bool   `db:"is_active"`
}
