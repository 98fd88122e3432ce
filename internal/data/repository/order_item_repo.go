package repository

import (
	"context"
	"fmt"

	"storefront/internal/data/entity"
	"storefront/pkg/database"

	"go.uber.org/zap"
)

type OrderItemRepository interface {
	FindByOrderID(ctx context.Context, orderID string) ([]*entity.OrderItem, error)
	// FindByOrderIDs loads the items for a batch of orders in one query,
	// keyed by order ID.
	FindByOrderIDs(ctx context.Context, orderIDs []string) (map[string][]*entity.OrderItem, error)
}

type orderItemRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOrderItemRepository(db database.PgxIface, log *zap.Logger) OrderItemRepository {
	return &orderItemRepository{
		db:  db,
		log: log.With(zap.String("repository", "order_item")),
	}
}

const orderItemColumns = `id, order_id, product_id, name, price, quantity, image, selected_options`

func (r *orderItemRepository) FindByOrderID(ctx context.Context, orderID string) ([]*entity.OrderItem, error) {
	query := `SELECT ` + orderItemColumns + ` FROM order_items WHERE order_id = $1`

	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		r.log.Error("Failed to find order items",
			zap.Error(err),
			zap.String("order_id", orderID),
		)
		return nil, fmt.Errorf("find items for order %s: %w", orderID, err)
	}
	defer rows.Close()

	var items []*entity.OrderItem
	for rows.Next() {
		var item entity.OrderItem
		var selectedOptions []byte

		err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.ProductID,
			&item.Name,
			&item.Price,
			&item.Quantity,
			&item.Image,
			&selectedOptions,
		)
		if err != nil {
			r.log.Error("Failed to scan order item row", zap.Error(err))
			return nil, fmt.Errorf("scan order item row: %w", err)
		}

		item.SelectedOptions = entity.DecodeList[string](selectedOptions)
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order item rows: %w", err)
	}

	return items, nil
}

func (r *orderItemRepository) FindByOrderIDs(ctx context.Context, orderIDs []string) (map[string][]*entity.OrderItem, error) {
	grouped := make(map[string][]*entity.OrderItem)
	if len(orderIDs) == 0 {
		return grouped, nil
	}

	query := `SELECT ` + orderItemColumns + ` FROM order_items WHERE order_id = ANY($1)`

	rows, err := r.db.Query(ctx, query, orderIDs)
	if err != nil {
		r.log.Error("Failed to find order items batch",
			zap.Error(err),
			zap.Int("orders", len(orderIDs)),
		)
		return nil, fmt.Errorf("find items for %d orders: %w", len(orderIDs), err)
	}
	defer rows.Close()

	for rows.Next() {
		var item entity.OrderItem
		var selectedOptions []byte

		err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.ProductID,
			&item.Name,
			&item.Price,
			&item.Quantity,
			&item.Image,
			&selectedOptions,
		)
		if err != nil {
			r.log.Error("Failed to scan order item row", zap.Error(err))
			return nil, fmt.Errorf("scan order item row: %w", err)
		}

		item.SelectedOptions = entity.DecodeList[string](selectedOptions)
		grouped[item.OrderID] = append(grouped[item.OrderID], &item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order item rows: %w", err)
	}

	return grouped, nil
}
