package entity

type Category struct {
	ID        int     `db:"id"`
	Name      string  `db:"name"`
	Slug      string  `db:"slug"`
	Image     *string `db:"image"`
	Href      *string `db:"href"`
	SortOrder int     `db:"sort_order"`
}
