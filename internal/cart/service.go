package cart

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sohublabs/smartstore-backend/internal/pricing"
	"github.com/sohublabs/smartstore-backend/pkg/db/models"
	pkgerrors "github.com/sohublabs/smartstore-backend/pkg/errors"
	"github.com/sohublabs/smartstore-backend/pkg/logger"
	"github.com/sohublabs/smartstore-backend/pkg/metrics"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type productLoader interface {
	FindActiveByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

// AddToBagInput is one configured product heading into the bag.
type AddToBagInput struct {
	ProductID uuid.UUID
	Selection pricing.Selection
}

// View is the assembled cart for a session.
type View struct {
	SessionID  string            `json:"session_id"`
	Lines      []models.CartLine `json:"lines"`
	TotalUnits int               `json:"total"`
	LineCount  int               `json:"line_count"`
}

// Service exposes cart composition and persistence operations.
type Service interface {
	AddToBag(ctx context.Context, sessionID string, input AddToBagInput) ([]models.CartLine, error)
	GetCart(ctx context.Context, sessionID string) (*View, error)
	RemoveLine(ctx context.Context, sessionID, lineID string) error
	ClearCart(ctx context.Context, sessionID string) error
}

type service struct {
	repo     LineRepository
	tx       txRunner
	products productLoader
	notifier Notifier
	logg     *logger.Logger
	metrics  *metrics.StoreMetrics
	defaults pricing.Defaults
	now      func() time.Time
}

// NewService builds a cart service backed by the provided stack. The notifier
// and metrics are optional.
func NewService(
	repo LineRepository,
	tx txRunner,
	products productLoader,
	notifier Notifier,
	logg *logger.Logger,
	storeMetrics *metrics.StoreMetrics,
	defaults pricing.Defaults,
) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("cart repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if products == nil {
		return nil, fmt.Errorf("product loader required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{
		repo:     repo,
		tx:       tx,
		products: products,
		notifier: notifier,
		logg:     logg,
		metrics:  storeMetrics,
		defaults: defaults,
		now:      time.Now,
	}, nil
}

// AddToBag prices the configured product, persists every resulting line in a
// single transaction and fires one cart-updated notification after commit.
func (s *service) AddToBag(ctx context.Context, sessionID string, input AddToBagInput) ([]models.CartLine, error) {
	if sessionID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart session required")
	}
	if input.ProductID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id required")
	}

	product, err := s.products.FindActiveByID(ctx, input.ProductID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading product")
	}

	strategy := pricing.ForCategory(product.Category)
	drafts := strategy.Price(productInfo(product), input.Selection, s.defaults)
	if len(drafts) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "selection produced no priced lines")
	}

	lines := ComposeLines(product.ID, sessionID, drafts, s.now().UTC())

	if err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		return s.repo.WithTx(tx).CreateLines(ctx, lines)
	}); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "persisting cart lines")
	}

	for _, line := range lines {
		s.metrics.AddCartLines(line.Category, 1)
	}

	s.notifyCartUpdated(ctx, sessionID)
	return lines, nil
}

// GetCart returns the session's lines with the running total.
func (s *service) GetCart(ctx context.Context, sessionID string) (*View, error) {
	if sessionID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart session required")
	}

	lines, err := s.repo.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing cart lines")
	}

	view := &View{SessionID: sessionID, Lines: lines, LineCount: len(lines)}
	for _, line := range lines {
		view.TotalUnits += line.TotalPriceUnits
	}
	return view, nil
}

// RemoveLine deletes one line and notifies.
func (s *service) RemoveLine(ctx context.Context, sessionID, lineID string) error {
	if sessionID == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "cart session required")
	}
	if lineID == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "line id required")
	}

	if err := s.repo.DeleteLine(ctx, sessionID, lineID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return pkgerrors.New(pkgerrors.CodeNotFound, "cart line not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "deleting cart line")
	}

	s.notifyCartUpdated(ctx, sessionID)
	return nil
}

// ClearCart drops every line for the session and notifies.
func (s *service) ClearCart(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "cart session required")
	}

	if err := s.repo.ClearSession(ctx, sessionID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "clearing cart")
	}

	s.notifyCartUpdated(ctx, sessionID)
	return nil
}

// notifyCartUpdated publishes the session's current line count. Best-effort:
// neither the recount nor the delivery failing ever fails the call.
func (s *service) notifyCartUpdated(ctx context.Context, sessionID string) {
	if s.notifier == nil {
		return
	}

	lineCount := 0
	if lines, err := s.repo.ListBySession(ctx, sessionID); err != nil {
		ctx = s.logg.WithCartSession(ctx, sessionID)
		s.logg.Error(ctx, "cart.notify_count_failed", err)
	} else {
		lineCount = len(lines)
	}

	if err := s.notifier.CartUpdated(ctx, sessionID, lineCount); err != nil {
		ctx = s.logg.WithCartSession(ctx, sessionID)
		s.logg.Error(ctx, "cart.notify_failed", err)
	}
}

func productInfo(p *models.Product) pricing.ProductInfo {
	return pricing.ProductInfo{
		Name:                p.Name,
		Category:            p.Category,
		PriceUnits:          p.PriceUnits,
		RawVariants:         p.Variants,
		EngravingAvailable:  p.EngravingAvailable,
		EngravingPriceUnits: p.EngravingPriceUnits,
		Image:               p.Image,
	}
}
