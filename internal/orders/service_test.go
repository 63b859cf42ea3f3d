package orders

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sohublabs/smartstore-backend/internal/cart"
	"github.com/sohublabs/smartstore-backend/internal/customers"
	"github.com/sohublabs/smartstore-backend/pkg/db/models"
	"github.com/sohublabs/smartstore-backend/pkg/enums"
	pkgerrors "github.com/sohublabs/smartstore-backend/pkg/errors"
	"github.com/sohublabs/smartstore-backend/pkg/logger"
)

type stubOrderRepo struct {
	created      *models.Order
	found        *models.Order
	listed       []models.Order
	statusErr    error
	lastStatus   enums.OrderStatus
	searchedWith string
}

func (s *stubOrderRepo) WithTx(*gorm.DB) OrderRepository { return s }

func (s *stubOrderRepo) Create(_ context.Context, o *models.Order) (*models.Order, error) {
	s.created = o
	return o, nil
}

func (s *stubOrderRepo) FindByID(context.Context, uuid.UUID) (*models.Order, error) {
	return s.found, nil
}

func (s *stubOrderRepo) List(context.Context, *enums.OrderStatus) ([]models.Order, error) {
	return s.listed, nil
}

func (s *stubOrderRepo) Search(_ context.Context, query string) ([]models.Order, error) {
	s.searchedWith = query
	return s.listed, nil
}

func (s *stubOrderRepo) UpdateStatus(_ context.Context, _ uuid.UUID, status enums.OrderStatus) error {
	s.lastStatus = status
	return s.statusErr
}

type stubOrderTx struct {
	tx *gorm.DB
}

func (s stubOrderTx) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return fn(s.tx)
}

// stubCart satisfies cart.LineRepository so the service can hand it the
// checkout transaction.
type stubCart struct {
	lines    []models.CartLine
	cleared  int
	clearErr error
	lastTx   *gorm.DB
	clearTx  *gorm.DB
}

func (s *stubCart) WithTx(tx *gorm.DB) cart.LineRepository {
	s.lastTx = tx
	return s
}

func (s *stubCart) CreateLines(context.Context, []models.CartLine) error { return nil }

func (s *stubCart) ListBySession(context.Context, string) ([]models.CartLine, error) {
	return s.lines, nil
}

func (s *stubCart) DeleteLine(context.Context, string, string) error { return nil }

func (s *stubCart) ClearSession(context.Context, string) error {
	s.cleared++
	s.clearTx = s.lastTx
	return s.clearErr
}

type stubRecorder struct {
	input customers.UpsertInput
	calls int
	err   error
}

func (s *stubRecorder) RecordOrder(_ context.Context, input customers.UpsertInput) (*models.Customer, error) {
	s.calls++
	s.input = input
	return &models.Customer{}, s.err
}

func cartLines() []models.CartLine {
	return []models.CartLine{
		{
			LineID:          "line-1",
			ProductID:       uuid.New(),
			Name:            "PDLC Film (4' x 5' - Qty: 1)",
			Category:        "pdlc_film",
			UnitPriceUnits:  500,
			Quantity:        1,
			TotalPriceUnits: 19500,
		},
		{
			LineID:          "line-2",
			ProductID:       uuid.New(),
			Name:            "Light Switch (White)",
			Category:        "smart_switch",
			UnitPriceUnits:  3700,
			Quantity:        1,
			TotalPriceUnits: 3700,
		},
	}
}

func newTestOrders(t *testing.T, repo *stubOrderRepo, cart *stubCart, recorder *stubRecorder) *service {
	t.Helper()
	svc, err := NewService(repo, stubOrderTx{}, cart, recorder, logger.New(logger.Options{ServiceName: "test"}), nil)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc.(*service)
}

func checkoutInput() CheckoutInput {
	return CheckoutInput{
		SessionID:       "sess-1",
		CustomerName:    "Farhan Ahmed",
		CustomerEmail:   "farhan@example.com",
		CustomerPhone:   "+8801700000000",
		CustomerAddress: "House 7, Dhanmondi, Dhaka",
		PaymentMethod:   "cash_on_delivery",
	}
}

func TestCheckoutAssemblesPendingOrder(t *testing.T) {
	repo := &stubOrderRepo{}
	cart := &stubCart{lines: cartLines()}
	recorder := &stubRecorder{}
	svc := newTestOrders(t, repo, cart, recorder)
	svc.now = func() time.Time { return time.UnixMilli(1754820000000) }

	order, err := svc.Checkout(context.Background(), checkoutInput())
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}

	if order.OrderNumber != "ORD1754820000000" {
		t.Fatalf("unexpected order number %q", order.OrderNumber)
	}
	if order.Status != enums.OrderStatusPending {
		t.Fatalf("new orders must start pending, got %s", order.Status)
	}
	if order.TotalAmountUnits != 23200 {
		t.Fatalf("expected total 23200, got %d", order.TotalAmountUnits)
	}
	if len(order.Items) != 2 {
		t.Fatalf("expected 2 item snapshots, got %d", len(order.Items))
	}
	if order.Items[0].PriceUnits != 500 || order.Items[0].Quantity != 1 {
		t.Fatalf("item snapshot should carry unit price, got %+v", order.Items[0])
	}
	if cart.cleared != 1 {
		t.Fatalf("cart must be cleared with the order, cleared=%d", cart.cleared)
	}
	if recorder.calls != 1 {
		t.Fatalf("expected one customer record, got %d", recorder.calls)
	}
	if recorder.input.SpentUnits != 23200 {
		t.Fatalf("customer spend should match order total, got %d", recorder.input.SpentUnits)
	}
}

func TestCheckoutClearsCartInOrderTransaction(t *testing.T) {
	repo := &stubOrderRepo{}
	cart := &stubCart{lines: cartLines()}
	sentinel := &gorm.DB{}
	svc, err := NewService(repo, stubOrderTx{tx: sentinel}, cart, &stubRecorder{}, logger.New(logger.Options{ServiceName: "test"}), nil)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	if _, err := svc.Checkout(context.Background(), checkoutInput()); err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if cart.cleared != 1 {
		t.Fatalf("cart must be cleared with the order, cleared=%d", cart.cleared)
	}
	if cart.clearTx != sentinel {
		t.Fatal("cart clear must run on the checkout transaction, not an independent connection")
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	svc := newTestOrders(t, &stubOrderRepo{}, &stubCart{}, &stubRecorder{})

	_, err := svc.Checkout(context.Background(), checkoutInput())
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for empty cart, got %v", err)
	}
}

func TestCheckoutValidation(t *testing.T) {
	svc := newTestOrders(t, &stubOrderRepo{}, &stubCart{lines: cartLines()}, &stubRecorder{})

	cases := []struct {
		name   string
		mutate func(*CheckoutInput)
	}{
		{"missing session", func(i *CheckoutInput) { i.SessionID = "" }},
		{"missing name", func(i *CheckoutInput) { i.CustomerName = " " }},
		{"missing phone", func(i *CheckoutInput) { i.CustomerPhone = "" }},
		{"missing address", func(i *CheckoutInput) { i.CustomerAddress = "" }},
		{"bad payment method", func(i *CheckoutInput) { i.PaymentMethod = "crypto" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := checkoutInput()
			tc.mutate(&input)
			_, err := svc.Checkout(context.Background(), input)
			if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestCheckoutSwallowsCustomerFailure(t *testing.T) {
	repo := &stubOrderRepo{}
	recorder := &stubRecorder{err: errors.New("directory unavailable")}
	svc := newTestOrders(t, repo, &stubCart{lines: cartLines()}, recorder)

	order, err := svc.Checkout(context.Background(), checkoutInput())
	if err != nil {
		t.Fatalf("customer failure must not fail checkout: %v", err)
	}
	if repo.created == nil {
		t.Fatal("order should still be persisted")
	}
	if !strings.HasPrefix(order.OrderNumber, "ORD") {
		t.Fatalf("unexpected order number %q", order.OrderNumber)
	}
}

func TestListRejectsUnknownStatus(t *testing.T) {
	svc := newTestOrders(t, &stubOrderRepo{}, &stubCart{}, &stubRecorder{})

	_, err := svc.List(context.Background(), "archived")
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSearchBlankQuery(t *testing.T) {
	repo := &stubOrderRepo{}
	svc := newTestOrders(t, repo, &stubCart{}, &stubRecorder{})

	got, err := svc.Search(context.Background(), "   ")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got) != 0 || repo.searchedWith != "" {
		t.Fatalf("blank query must not hit the repository")
	}
}

func TestUpdateStatus(t *testing.T) {
	repo := &stubOrderRepo{found: &models.Order{Status: enums.OrderStatusConfirmed}}
	svc := newTestOrders(t, repo, &stubCart{}, &stubRecorder{})

	order, err := svc.UpdateStatus(context.Background(), uuid.New(), "confirmed")
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if repo.lastStatus != enums.OrderStatusConfirmed {
		t.Fatalf("unexpected status written %s", repo.lastStatus)
	}
	if order.Status != enums.OrderStatusConfirmed {
		t.Fatalf("unexpected status returned %s", order.Status)
	}
}

func TestUpdateStatusNotFound(t *testing.T) {
	repo := &stubOrderRepo{statusErr: gorm.ErrRecordNotFound}
	svc := newTestOrders(t, repo, &stubCart{}, &stubRecorder{})

	_, err := svc.UpdateStatus(context.Background(), uuid.New(), "shipped")
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}
