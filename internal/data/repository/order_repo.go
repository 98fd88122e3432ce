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

// OrderCreation bundles everything checkout writes in one transaction.
// PhoneNumber, when set, is copied onto the customer row.
type OrderCreation struct {
	Order       *entity.Order
	Items       []*entity.OrderItem
	Address     *entity.Address
	PhoneNumber *string
}

type OrderRepository interface {
	ExistsByID(ctx context.Context, id string) (bool, error)
	CreateWithDetails(ctx context.Context, creation *OrderCreation) error
	FindByID(ctx context.Context, id string) (*entity.Order, error)
	FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error)
	FindAll(ctx context.Context) ([]*entity.Order, error)
	UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) error
}

type orderRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOrderRepository(db database.PgxIface, log *zap.Logger) OrderRepository {
	return &orderRepository{
		db:  db,
		log: log.With(zap.String("repository", "order")),
	}
}

const orderColumns = `id, customer_id, shipping_address_id, subtotal, tax, shipping_cost,
	       total, status, payment_status, tracking_number, created_at, updated_at`

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var o entity.Order
	err := row.Scan(
		&o.ID,
		&o.CustomerID,
		&o.ShippingAddressID,
		&o.Subtotal,
		&o.Tax,
		&o.ShippingCost,
		&o.Total,
		&o.Status,
		&o.PaymentStatus,
		&o.TrackingNumber,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *orderRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM orders WHERE id = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		r.log.Error("Failed to check order existence",
			zap.Error(err),
			zap.String("order_id", id),
		)
		return false, fmt.Errorf("check order %s exists: %w", id, err)
	}

	return exists, nil
}

// CreateWithDetails runs the whole checkout write set in one
// transaction: optional phone update, default-address swap, the order
// row, and the item snapshots. Any failure rolls everything back.
func (r *orderRepository) CreateWithDetails(ctx context.Context, creation *OrderCreation) error {
	order := creation.Order

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin create order: %w", err)
	}
	defer tx.Rollback(ctx)

	if creation.PhoneNumber != nil {
		if _, err := tx.Exec(ctx,
			`UPDATE users SET phone_number = $2, updated_at = NOW() WHERE id = $1`,
			order.CustomerID, *creation.PhoneNumber,
		); err != nil {
			r.log.Error("Failed to update customer phone",
				zap.Error(err),
				zap.String("customer_id", order.CustomerID.String()),
			)
			return fmt.Errorf("update phone for customer %s: %w", order.CustomerID.String(), err)
		}
	}

	addr := creation.Address
	if _, err := tx.Exec(ctx,
		`UPDATE addresses SET is_default = FALSE WHERE user_id = $1`,
		addr.UserID,
	); err != nil {
		return fmt.Errorf("clear default addresses for user %s: %w", addr.UserID.String(), err)
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO addresses (id, user_id, address, city, region, zip_code, country, is_default)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, TRUE)`,
		addr.ID,
		addr.UserID,
		addr.Address,
		addr.City,
		addr.Region,
		addr.ZipCode,
		addr.Country,
	); err != nil {
		return fmt.Errorf("insert shipping address for user %s: %w", addr.UserID.String(), err)
	}
	addr.IsDefault = true

	if _, err := tx.Exec(ctx,
		`INSERT INTO orders (id, customer_id, shipping_address_id, subtotal, tax, shipping_cost,
		                     total, status, payment_status, tracking_number, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		order.ID,
		order.CustomerID,
		order.ShippingAddressID,
		order.Subtotal,
		order.Tax,
		order.ShippingCost,
		order.Total,
		order.Status,
		order.PaymentStatus,
		order.TrackingNumber,
		order.CreatedAt,
		order.UpdatedAt,
	); err != nil {
		r.log.Error("Failed to insert order",
			zap.Error(err),
			zap.String("order_id", order.ID),
		)
		return fmt.Errorf("insert order %s: %w", order.ID, err)
	}

	for _, item := range creation.Items {
		if _, err := tx.Exec(ctx,
			`INSERT INTO order_items (id, order_id, product_id, name, price, quantity, image, selected_options)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			item.ID,
			item.OrderID,
			item.ProductID,
			item.Name,
			item.Price,
			item.Quantity,
			item.Image,
			entity.EncodeList(item.SelectedOptions),
		); err != nil {
			r.log.Error("Failed to insert order item",
				zap.Error(err),
				zap.String("order_id", order.ID),
				zap.String("product_id", item.ProductID),
			)
			return fmt.Errorf("insert item for order %s: %w", order.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit create order %s: %w", order.ID, err)
	}

	r.log.Info("Order created",
		zap.String("order_id", order.ID),
		zap.String("customer_id", order.CustomerID.String()),
		zap.Int("items", len(creation.Items)),
	)
	return nil
}

func (r *orderRepository) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	order, err := scanOrder(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find order by ID",
			zap.Error(err),
			zap.String("order_id", id),
		)
		return nil, fmt.Errorf("find order by ID %s: %w", id, err)
	}

	return order, nil
}

func (r *orderRepository) queryOrders(ctx context.Context, query string, args ...any) ([]*entity.Order, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*entity.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			r.log.Error("Failed to scan order row", zap.Error(err))
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order rows: %w", err)
	}

	return orders, nil
}

func (r *orderRepository) FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE customer_id = $1 ORDER BY created_at DESC`

	orders, err := r.queryOrders(ctx, query, customerID)
	if err != nil {
		r.log.Error("Failed to find orders by customer",
			zap.Error(err),
			zap.String("customer_id", customerID.String()),
		)
		return nil, fmt.Errorf("find orders for customer %s: %w", customerID.String(), err)
	}

	return orders, nil
}

func (r *orderRepository) FindAll(ctx context.Context) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC`

	orders, err := r.queryOrders(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all orders", zap.Error(err))
		return nil, fmt.Errorf("find all orders: %w", err)
	}

	return orders, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) error {
	query := `UPDATE orders SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update order status",
			zap.Error(err),
			zap.String("order_id", id),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update order %s status to %s: %w", id, string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("order %s not found", id)
	}

	r.log.Info("Order status updated",
		zap.String("order_id", id),
		zap.String("status", string(status)),
	)
	return nil
}
