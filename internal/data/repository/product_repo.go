package repository

import (
	"context"
	"fmt"
	"strings"

	"storefront/internal/data/entity"
	"storefront/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Catalog sort keys, matching the storefront query parameter values.
const (
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortAlpha     = "a-z"
	SortNewest    = "newest"
)

// ProductFilter narrows the public catalog listing. All set fields are
// combined with AND.
type ProductFilter struct {
	CategorySlug string
	Query        string
	Conditions   []string
	MinPrice     *decimal.Decimal
	MaxPrice     *decimal.Decimal
	Sort         string
}

// ProductWithCategory carries the joined category row (nil when the
// category was deleted out from under the product).
type ProductWithCategory struct {
	Product  entity.Product
	Category *entity.Category
}

type ProductRepository interface {
	FindActive(ctx context.Context, filter ProductFilter) ([]*ProductWithCategory, error)
	FindAllWithCategory(ctx context.Context) ([]*ProductWithCategory, error)
	FindByID(ctx context.Context, id uuid.UUID) (*ProductWithCategory, error)
	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByCategoryID(ctx context.Context, categoryID int) (int64, error)
}

type productRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewProductRepository(db database.PgxIface, log *zap.Logger) ProductRepository {
	return &productRepository{
		db:  db,
		log: log.With(zap.String("repository", "product")),
	}
}

const productSelect = `
	SELECT p.id, p.name, p.category_id, p.price, p.original_price, p.image,
	       p.condition, p.is_new, p.is_best_seller, p.is_featured, p.is_active,
	       p.stock, p.description, p.colors, p.storage_options, p.memory_options,
	       p.grades, p.specs, p.images, p.created_at, p.updated_at,
	       c.id, c.name, c.slug, c.image, c.href, c.sort_order
	FROM products p
	LEFT JOIN categories c ON c.id = p.category_id
`

func scanProductWithCategory(row pgx.Row) (*ProductWithCategory, error) {
	var pc ProductWithCategory
	var colors, storageOptions, memoryOptions, grades, specs, images []byte
	var catID, catSortOrder *int
	var catName, catSlug *string
	var catImage, catHref *string

	err := row.Scan(
		&pc.Product.ID,
		&pc.Product.Name,
		&pc.Product.CategoryID,
		&pc.Product.Price,
		&pc.Product.OriginalPrice,
		&pc.Product.Image,
		&pc.Product.Condition,
		&pc.Product.IsNew,
		&pc.Product.IsBestSeller,
		&pc.Product.IsFeatured,
		&pc.Product.IsActive,
		&pc.Product.Stock,
		&pc.Product.Description,
		&colors,
		&storageOptions,
		&memoryOptions,
		&grades,
		&specs,
		&images,
		&pc.Product.CreatedAt,
		&pc.Product.UpdatedAt,
		&catID,
		&catName,
		&catSlug,
		&catImage,
		&catHref,
		&catSortOrder,
	)
	if err != nil {
		return nil, err
	}

	// Blob decode failures yield empty lists, never an error.
	pc.Product.Colors = entity.DecodeList[entity.ColorOption](colors)
	pc.Product.StorageOptions = entity.DecodeList[entity.SizedOption](storageOptions)
	pc.Product.MemoryOptions = entity.DecodeList[entity.SizedOption](memoryOptions)
	pc.Product.Grades = entity.DecodeList[entity.GradeOption](grades)
	pc.Product.Specs = entity.DecodeList[entity.SpecEntry](specs)
	pc.Product.Images = entity.DecodeList[string](images)

	if catID != nil {
		pc.Category = &entity.Category{
			ID:        *catID,
			Name:      *catName,
			Slug:      *catSlug,
			Image:     catImage,
			Href:      catHref,
			SortOrder: *catSortOrder,
		}
	}

	return &pc, nil
}

func (r *productRepository) queryProducts(ctx context.Context, query string, args ...any) ([]*ProductWithCategory, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*ProductWithCategory
	for rows.Next() {
		pc, err := scanProductWithCategory(rows)
		if err != nil {
			r.log.Error("Failed to scan product row", zap.Error(err))
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		products = append(products, pc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate product rows: %w", err)
	}

	return products, nil
}

// FindActive returns active products matching the filter conjunction.
func (r *productRepository) FindActive(ctx context.Context, filter ProductFilter) ([]*ProductWithCategory, error) {
	var sb strings.Builder
	sb.WriteString(productSelect)
	sb.WriteString(" WHERE p.is_active = TRUE")

	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.CategorySlug != "" && filter.CategorySlug != "all" {
		sb.WriteString(" AND c.slug = " + arg(filter.CategorySlug))
	}

	if filter.Query != "" {
		placeholder := arg("%" + filter.Query + "%")
		sb.WriteString(" AND (p.name ILIKE " + placeholder + " OR p.description ILIKE " + placeholder + ")")
	}

	if len(filter.Conditions) > 0 {
		sb.WriteString(" AND p.condition = ANY(" + arg(filter.Conditions) + ")")
	}

	if filter.MinPrice != nil {
		sb.WriteString(" AND p.price >= " + arg(*filter.MinPrice))
	}

	if filter.MaxPrice != nil {
		sb.WriteString(" AND p.price <= " + arg(*filter.MaxPrice))
	}

	switch filter.Sort {
	case SortPriceLow:
		sb.WriteString(" ORDER BY p.price")
	case SortPriceHigh:
		sb.WriteString(" ORDER BY p.price DESC")
	case SortAlpha:
		sb.WriteString(" ORDER BY p.name")
	default:
		sb.WriteString(" ORDER BY p.created_at DESC")
	}

	products, err := r.queryProducts(ctx, sb.String(), args...)
	if err != nil {
		r.log.Error("Failed to find active products", zap.Error(err))
		return nil, fmt.Errorf("find active products: %w", err)
	}

	return products, nil
}

// FindAllWithCategory is the back-office listing: every product, active
// or not, newest first.
func (r *productRepository) FindAllWithCategory(ctx context.Context) ([]*ProductWithCategory, error) {
	query := productSelect + " ORDER BY p.created_at DESC"

	products, err := r.queryProducts(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all products", zap.Error(err))
		return nil, fmt.Errorf("find all products: %w", err)
	}

	return products, nil
}

// FindByID deliberately skips the is_active filter: the detail view
// serves inactive products too.
func (r *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*ProductWithCategory, error) {
	query := productSelect + " WHERE p.id = $1"

	pc, err := scanProductWithCategory(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find product by ID",
			zap.Error(err),
			zap.String("product_id", id.String()),
		)
		return nil, fmt.Errorf("find product by ID %s: %w", id.String(), err)
	}

	return pc, nil
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, category_id, price, original_price, image,
		                      condition, is_new, is_best_seller, is_featured, is_active,
		                      stock, description, colors, storage_options, memory_options,
		                      grades, specs, images, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11,
		        $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
	`

	_, err := r.db.Exec(ctx, query,
		product.ID,
		product.Name,
		product.CategoryID,
		product.Price,
		product.OriginalPrice,
		product.Image,
		product.Condition,
		product.IsNew,
		product.IsBestSeller,
		product.IsFeatured,
		product.IsActive,
		product.Stock,
		product.Description,
		entity.EncodeList(product.Colors),
		entity.EncodeList(product.StorageOptions),
		entity.EncodeList(product.MemoryOptions),
		entity.EncodeList(product.Grades),
		entity.EncodeList(product.Specs),
		entity.EncodeList(product.Images),
		product.CreatedAt,
		product.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create product",
			zap.Error(err),
			zap.String("name", product.Name),
		)
		return fmt.Errorf("create product %s: %w", product.Name, err)
	}

	return nil
}

func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, category_id = $3, price = $4, original_price = $5, image = $6,
		    condition = $7, is_new = $8, is_best_seller = $9, is_featured = $10,
		    is_active = $11, stock = $12, description = $13, colors = $14,
		    storage_options = $15, memory_options = $16, grades = $17, specs = $18,
		    images = $19, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		product.ID,
		product.Name,
		product.CategoryID,
		product.Price,
		product.OriginalPrice,
		product.Image,
		product.Condition,
		product.IsNew,
		product.IsBestSeller,
		product.IsFeatured,
		product.IsActive,
		product.Stock,
		product.Description,
		entity.EncodeList(product.Colors),
		entity.EncodeList(product.StorageOptions),
		entity.EncodeList(product.MemoryOptions),
		entity.EncodeList(product.Grades),
		entity.EncodeList(product.Specs),
		entity.EncodeList(product.Images),
	)

	if err != nil {
		r.log.Error("Failed to update product",
			zap.Error(err),
			zap.String("product_id", product.ID.String()),
		)
		return fmt.Errorf("update product %s: %w", product.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("product %s not found", product.ID.String())
	}

	return nil
}

func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM products WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete product",
			zap.Error(err),
			zap.String("product_id", id.String()),
		)
		return fmt.Errorf("delete product %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("product %s not found", id.String())
	}

	r.log.Info("Product deleted", zap.String("product_id", id.String()))
	return nil
}

func (r *productRepository) CountByCategoryID(ctx context.Context, categoryID int) (int64, error) {
	query := `SELECT COUNT(*) FROM products WHERE category_id = $1`

	var count int64
	if err := r.db.QueryRow(ctx, query, categoryID).Scan(&count); err != nil {
		r.log.Error("Failed to count products by category",
			zap.Error(err),
			zap.Int("category_id", categoryID),
		)
		return 0, fmt.Errorf("count products in category %d: %w", categoryID, err)
	}

	return count, nil
}
