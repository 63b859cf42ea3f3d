package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sohublabs/smartstore-backend/internal/cart"
	"github.com/sohublabs/smartstore-backend/internal/customers"
	"github.com/sohublabs/smartstore-backend/pkg/db/models"
	"github.com/sohublabs/smartstore-backend/pkg/enums"
	pkgerrors "github.com/sohublabs/smartstore-backend/pkg/errors"
	"github.com/sohublabs/smartstore-backend/pkg/logger"
	"github.com/sohublabs/smartstore-backend/pkg/metrics"
	"github.com/sohublabs/smartstore-backend/pkg/types"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type cartLoader interface {
	ListBySession(ctx context.Context, sessionID string) ([]models.CartLine, error)
	WithTx(tx *gorm.DB) cart.LineRepository
}

type customerRecorder interface {
	RecordOrder(ctx context.Context, input customers.UpsertInput) (*models.Customer, error)
}

// CheckoutInput is everything a shopper submits at checkout. The priced lines
// come from the session cart, never the request body.
type CheckoutInput struct {
	SessionID       string
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	CustomerAddress string
	PaymentMethod   string
}

// Service assembles orders from session carts and runs the admin order desk.
type Service interface {
	Checkout(ctx context.Context, input CheckoutInput) (*models.Order, error)
	List(ctx context.Context, status string) ([]models.Order, error)
	Search(ctx context.Context, query string) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.Order, error)
}

type service struct {
	repo      OrderRepository
	tx        txRunner
	cart      cartLoader
	customers customerRecorder
	logg      *logger.Logger
	metrics   *metrics.StoreMetrics
	now       func() time.Time
}

// NewService builds the order service. Metrics are optional.
func NewService(
	repo OrderRepository,
	tx txRunner,
	cart cartLoader,
	customerSvc customerRecorder,
	logg *logger.Logger,
	storeMetrics *metrics.StoreMetrics,
) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("order repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if cart == nil {
		return nil, fmt.Errorf("cart loader required")
	}
	if customerSvc == nil {
		return nil, fmt.Errorf("customer service required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{
		repo:      repo,
		tx:        tx,
		cart:      cart,
		customers: customerSvc,
		logg:      logg,
		metrics:   storeMetrics,
		now:       time.Now,
	}, nil
}

// Checkout snapshots the session cart into a pending order, clears the cart
// in the same transaction, then best-effort records the customer. A customer
// write failure is logged and swallowed; the order stands.
func (s *service) Checkout(ctx context.Context, input CheckoutInput) (*models.Order, error) {
	if err := validateCheckout(input); err != nil {
		return nil, err
	}
	paymentMethod, err := enums.ParsePaymentMethod(input.PaymentMethod)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown payment method %q", input.PaymentMethod))
	}

	lines, err := s.cart.ListBySession(ctx, input.SessionID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading cart")
	}
	if len(lines) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}

	items := make(types.OrderItems, 0, len(lines))
	total := 0
	for _, line := range lines {
		items = append(items, types.OrderItem{
			ProductID:   line.ProductID.String(),
			ProductName: line.Name,
			Quantity:    line.Quantity,
			PriceUnits:  line.UnitPriceUnits,
			Category:    line.Category,
		})
		total += line.TotalPriceUnits
	}

	now := s.now().UTC()
	order := &models.Order{
		OrderNumber:      fmt.Sprintf("ORD%d", now.UnixMilli()),
		CustomerName:     strings.TrimSpace(input.CustomerName),
		CustomerEmail:    strings.TrimSpace(input.CustomerEmail),
		CustomerPhone:    strings.TrimSpace(input.CustomerPhone),
		CustomerAddress:  strings.TrimSpace(input.CustomerAddress),
		Items:            items,
		TotalAmountUnits: total,
		PaymentMethod:    paymentMethod,
		Status:           enums.OrderStatusPending,
	}

	if err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		if _, err := s.repo.WithTx(tx).Create(ctx, order); err != nil {
			return err
		}
		// Clear on the same tx: the order commit and the cart wipe stand or
		// fall together.
		return s.cart.WithTx(tx).ClearSession(ctx, input.SessionID)
	}); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating order")
	}

	s.metrics.ObserveOrder(paymentMethod.String(), total)
	s.recordCustomer(ctx, order)
	return order, nil
}

// recordCustomer is the secondary write: never fails the checkout.
func (s *service) recordCustomer(ctx context.Context, order *models.Order) {
	address := order.CustomerAddress
	_, err := s.customers.RecordOrder(ctx, customers.UpsertInput{
		Name:       order.CustomerName,
		Email:      order.CustomerEmail,
		Phone:      order.CustomerPhone,
		Address:    &address,
		SpentUnits: order.TotalAmountUnits,
	})
	if err != nil {
		ctx = s.logg.WithField(ctx, "order_number", order.OrderNumber)
		s.logg.Error(ctx, "order.customer_record_failed", err)
	}
}

func (s *service) List(ctx context.Context, status string) ([]models.Order, error) {
	var filter *enums.OrderStatus
	if status != "" {
		parsed, err := enums.ParseOrderStatus(status)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown status %q", status))
		}
		filter = &parsed
	}

	orders, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing orders")
	}
	return orders, nil
}

func (s *service) Search(ctx context.Context, query string) ([]models.Order, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []models.Order{}, nil
	}

	orders, err := s.repo.Search(ctx, query)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "searching orders")
	}
	return orders, nil
}

func (s *service) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.Order, error) {
	parsed, err := enums.ParseOrderStatus(status)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown status %q", status))
	}

	if err := s.repo.UpdateStatus(ctx, id, parsed); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "updating order status")
	}

	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "reloading order")
	}
	return order, nil
}

func validateCheckout(input CheckoutInput) error {
	if input.SessionID == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "cart session required")
	}
	if strings.TrimSpace(input.CustomerName) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "customer name required")
	}
	if strings.TrimSpace(input.CustomerPhone) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "customer phone required")
	}
	if strings.TrimSpace(input.CustomerAddress) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "customer address required")
	}
	return nil
}
