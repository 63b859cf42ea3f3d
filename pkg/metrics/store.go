package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// StoreMetrics records storefront activity: checkouts and cart growth.
type StoreMetrics struct {
	ordersCreated *prometheus.CounterVec
	orderAmount   prometheus.Histogram
	cartLines     *prometheus.CounterVec
}

// NewStoreMetrics registers the storefront metrics on the provided registerer.
func NewStoreMetrics(reg prometheus.Registerer) *StoreMetrics {
	if reg == nil {
		return &StoreMetrics{}
	}
	ordersCreated := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "orders_created_total",
		Help: "Orders created, by payment method.",
	}, []string{"payment_method"})
	orderAmount := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "order_amount_units",
		Help:    "Order totals in currency units.",
		Buckets: []float64{1000, 5000, 10000, 25000, 50000, 100000, 250000, 500000},
	})
	cartLines := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_lines_added_total",
		Help: "Cart lines persisted, by product category.",
	}, []string{"category"})
	reg.MustRegister(ordersCreated, orderAmount, cartLines)
	return &StoreMetrics{
		ordersCreated: ordersCreated,
		orderAmount:   orderAmount,
		cartLines:     cartLines,
	}
}

// ObserveOrder records one created order and its total.
func (s *StoreMetrics) ObserveOrder(paymentMethod string, totalUnits int) {
	if s == nil || s.ordersCreated == nil {
		return
	}
	s.ordersCreated.WithLabelValues(normalizeLabel(paymentMethod)).Inc()
	s.orderAmount.Observe(float64(totalUnits))
}

// AddCartLines increments the cart line counter for the category.
func (s *StoreMetrics) AddCartLines(category string, count int) {
	if s == nil || s.cartLines == nil {
		return
	}
	s.cartLines.WithLabelValues(normalizeLabel(category)).Add(float64(count))
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
