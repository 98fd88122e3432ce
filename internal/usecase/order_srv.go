package usecase

import (
	"context"
	"fmt"
	"time"

	"storefront/internal/data/entity"
	"storefront/internal/data/repository"
	"storefront/internal/dto/request"
	"storefront/internal/dto/response"
	"storefront/pkg/emmisor"
	"storefront/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// orderCodeAttempts bounds the collision check on the generated code.
// After that many collisions the code is used anyway; the primary key
// constraint is the backstop.
const orderCodeAttempts = 5

type OrderService interface {
	Create(ctx context.Context, customerID uuid.UUID, req *request.CreateOrder) (*response.CheckoutResult, error)
	ListMine(ctx context.Context, customerID uuid.UUID) ([]response.Order, error)
	GetMine(ctx context.Context, customerID uuid.UUID, orderID string) (*response.Order, error)
}

type orderService struct {
	repo   *repository.Repository
	mailer *emmisor.Client
	log    *zap.Logger
}

func NewOrderService(repo *repository.Repository, mailer *emmisor.Client, log *zap.Logger) OrderService {
	return &orderService{
		repo:   repo,
		mailer: mailer,
		log:    log.With(zap.String("service", "order")),
	}
}

func (s *orderService) Create(ctx context.Context, customerID uuid.UUID, req *request.CreateOrder) (*response.CheckoutResult, error) {
	// 1. Validate the cart before any write
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Checkout validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	// 2. Totals with exact decimal arithmetic. Tax and shipping are
	// zero for now but stay in the layout.
	subtotal := decimal.Zero
	for _, item := range req.Items {
		line := item.Price.Mul(decimal.NewFromInt(int64(item.Qty())))
		subtotal = subtotal.Add(line)
	}
	tax := decimal.Zero
	shipping := decimal.Zero
	total := subtotal.Add(tax).Add(shipping)

	// 3. Allocate an order code, retrying on collision
	orderID, err := s.allocateOrderCode(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate order code")
	}

	// 4. Build the write set
	now := time.Now()
	address := &entity.Address{
		ID:      utils.GenerateUUID(),
		UserID:  customerID,
		Address: req.ShippingAddress.Address,
		City:    req.ShippingAddress.City,
		Region:  req.ShippingAddress.Region,
		ZipCode: req.ShippingAddress.ZipCode,
		Country: req.ShippingAddress.Country,
	}

	order := &entity.Order{
		ID:                orderID,
		CustomerID:        customerID,
		ShippingAddressID: &address.ID,
		Subtotal:          subtotal,
		Tax:               tax,
		ShippingCost:      shipping,
		Total:             total,
		Status:            entity.OrderStatusProcessing,
		PaymentStatus:     entity.PaymentStatusPaid,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	items := make([]*entity.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, &entity.OrderItem{
			ID:              utils.GenerateUUID(),
			OrderID:         orderID,
			ProductID:       item.ProductID,
			Name:            item.Name,
			Price:           *item.Price,
			Quantity:        item.Qty(),
			Image:           item.Image,
			SelectedOptions: item.SelectedOptions,
		})
	}

	// 5. One transaction for the whole write set
	creation := &repository.OrderCreation{
		Order:       order,
		Items:       items,
		Address:     address,
		PhoneNumber: req.PhoneNumber,
	}
	if err := s.repo.Order.CreateWithDetails(ctx, creation); err != nil {
		return nil, fmt.Errorf("failed to create order")
	}

	// 6. Best-effort confirmation email, off the request path
	go s.sendConfirmationEmail(order, items, address)

	return &response.CheckoutResult{
		ID:    order.ID,
		Total: order.Total.InexactFloat64(),
	}, nil
}

func (s *orderService) allocateOrderCode(ctx context.Context) (string, error) {
	code := utils.GenerateOrderCode()
	for attempt := 0; attempt < orderCodeAttempts; attempt++ {
		exists, err := s.repo.Order.ExistsByID(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
		s.log.Warn("Order code collision", zap.String("code", code))
		code = utils.GenerateOrderCode()
	}
	return code, nil
}

func (s *orderService) sendConfirmationEmail(order *entity.Order, items []*entity.OrderItem, address *entity.Address) {
	if !s.mailer.Enabled() {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	customer, err := s.repo.User.FindByID(ctx, order.CustomerID)
	if err != nil || customer == nil {
		s.log.Warn("Skipping confirmation email, customer lookup failed",
			zap.Error(err),
			zap.String("order_id", order.ID),
		)
		return
	}

	emailItems := make([]emmisor.OrderEmailItem, 0, len(items))
	for _, item := range items {
		emailItems = append(emailItems, emmisor.OrderEmailItem{
			Name:            item.Name,
			Quantity:        item.Quantity,
			Price:           item.Price,
			SelectedOptions: item.SelectedOptions,
		})
	}

	subject, html, err := emmisor.BuildOrderConfirmationEmail(emmisor.OrderEmailData{
		OrderID:      order.ID,
		CustomerName: customer.FullName(),
		Date:         order.CreatedAt.Format("January 2, 2006"),
		Items:        emailItems,
		Subtotal:     order.Subtotal,
		ShippingCost: order.ShippingCost,
		Tax:          order.Tax,
		Total:        order.Total,
		Address:      address.Address,
		City:         address.City,
		Region:       address.Region,
		ZipCode:      address.ZipCode,
		Country:      address.Country,
	})
	if err != nil {
		s.log.Error("Failed to render confirmation email",
			zap.Error(err),
			zap.String("order_id", order.ID),
		)
		return
	}

	msg := emmisor.EmailMessage{
		To:      []string{customer.Email},
		Subject: subject,
		HTML:    html,
	}
	if err := s.mailer.SendEmail(ctx, msg); err != nil {
		// One attempt; the order already succeeded.
		s.log.Error("Failed to send confirmation email",
			zap.Error(err),
			zap.String("order_id", order.ID),
		)
		return
	}

	s.log.Info("Confirmation email sent", zap.String("order_id", order.ID))
}

func (s *orderService) ListMine(ctx context.Context, customerID uuid.UUID) ([]response.Order, error) {
	orders, err := s.repo.Order.FindByCustomerID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load orders")
	}

	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}

	itemsByOrder, err := s.repo.OrderItem.FindByOrderIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load order items")
	}

	out := make([]response.Order, 0, len(orders))
	for _, o := range orders {
		address, err := s.loadShippingAddress(ctx, o)
		if err != nil {
			return nil, err
		}
		out = append(out, response.FromOrder(o, itemsByOrder[o.ID], address))
	}

	return out, nil
}

func (s *orderService) GetMine(ctx context.Context, customerID uuid.UUID, orderID string) (*response.Order, error) {
	order, err := s.repo.Order.FindByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to load order")
	}
	// A foreign order is reported as absent, not forbidden.
	if order == nil || order.CustomerID != customerID {
		return nil, fmt.Errorf("%w: order not found", ErrNotFound)
	}

	items, err := s.repo.OrderItem.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to load order items")
	}

	address, err := s.loadShippingAddress(ctx, order)
	if err != nil {
		return nil, err
	}

	resp := response.FromOrder(order, items, address)
	return &resp, nil
}

func (s *orderService) loadShippingAddress(ctx context.Context, order *entity.Order) (*entity.Address, error) {
	if order.ShippingAddressID == nil {
		return nil, nil
	}
	address, err := s.repo.Address.FindByID(ctx, *order.ShippingAddressID)
	if err != nil {
		return nil, fmt.Errorf("failed to load shipping address")
	}
	return address, nil
}
