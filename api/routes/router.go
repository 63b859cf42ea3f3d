package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sohublabs/smartstore-backend/api/controllers"
	"github.com/sohublabs/smartstore-backend/api/middleware"
	"github.com/sohublabs/smartstore-backend/internal/admins"
	"github.com/sohublabs/smartstore-backend/internal/cart"
	"github.com/sohublabs/smartstore-backend/internal/customers"
	"github.com/sohublabs/smartstore-backend/internal/orders"
	"github.com/sohublabs/smartstore-backend/internal/pricing"
	"github.com/sohublabs/smartstore-backend/internal/products"
	"github.com/sohublabs/smartstore-backend/pkg/config"
	"github.com/sohublabs/smartstore-backend/pkg/db"
	"github.com/sohublabs/smartstore-backend/pkg/logger"
	"github.com/sohublabs/smartstore-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *redis.Client,
	registry *prometheus.Registry,
	productService products.Service,
	cartService cart.Service,
	orderService orders.Service,
	customerService customers.Service,
	adminService admins.Service,
	pricingDefaults pricing.Defaults,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"admin-login",
		cfg.AdminRate.LoginWindow,
		cfg.AdminRate.LoginIPLimit,
		cfg.AdminRate.LoginEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisClient))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ListProducts(productService, logg))
			r.Get("/{productId}", controllers.GetProduct(productService, logg))
			r.Post("/{productId}/quote", controllers.QuoteProduct(productService, pricingDefaults, logg))
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.CartSession(logg))

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", controllers.ViewCart(cartService, logg))
				r.Delete("/", controllers.ClearCart(cartService, logg))
				r.Post("/lines", controllers.AddToBag(cartService, logg))
				r.Delete("/lines/{lineId}", controllers.RemoveCartLine(cartService, logg))
			})

			r.Post("/orders", controllers.Checkout(orderService, logg))
		})
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(loginPolicy, redisClient, logg)).
			Post("/auth/login", controllers.AdminLogin(adminService, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.AdminAuth(cfg.JWT, logg))

			r.Route("/products", func(r chi.Router) {
				r.Get("/", controllers.AdminListProducts(productService, logg))
				r.Post("/", controllers.AdminCreateProduct(productService, logg))
				r.Get("/{productId}", controllers.AdminGetProduct(productService, logg))
				r.Put("/{productId}", controllers.AdminUpdateProduct(productService, logg))
				r.Delete("/{productId}", controllers.AdminDeleteProduct(productService, logg))
			})

			r.Route("/orders", func(r chi.Router) {
				r.Get("/", controllers.AdminListOrders(orderService, logg))
				r.Patch("/{orderId}/status", controllers.AdminUpdateOrderStatus(orderService, logg))
			})

			r.Get("/customers", controllers.AdminListCustomers(customerService, logg))
		})
	})

	return r
}
