package httptransport

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/corray333/storefront/internal/service/models/brand"
	"github.com/corray333/storefront/internal/service/models/invoice"
	"github.com/corray333/storefront/internal/service/models/order"
	"github.com/corray333/storefront/internal/service/models/product"
	"github.com/corray333/storefront/internal/service/services/cartsvc"
	"github.com/corray333/storefront/internal/service/services/checkoutsvc"
	"github.com/corray333/storefront/internal/service/services/ordersvc"
	checkouthandler "github.com/corray333/storefront/internal/transport/http/checkout"
	getorder "github.com/corray333/storefront/internal/transport/http/get_order"
	getproduct "github.com/corray333/storefront/internal/transport/http/get_product"
	listbrands "github.com/corray333/storefront/internal/transport/http/list_brands"
	listorders "github.com/corray333/storefront/internal/transport/http/list_orders"
	listproducts "github.com/corray333/storefront/internal/transport/http/list_products"
	renderinvoice "github.com/corray333/storefront/internal/transport/http/render_invoice"
	updatecart "github.com/corray333/storefront/internal/transport/http/update_cart"
	updatestatus "github.com/corray333/storefront/internal/transport/http/update_status"
	viewcart "github.com/corray333/storefront/internal/transport/http/view_cart"
	"github.com/corray333/storefront/pkg/http/middleware/auth"
	"github.com/corray333/storefront/pkg/http/middleware/session"
	"github.com/corray333/storefront/pkg/http/middleware/trace"
	"github.com/corray333/storefront/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/spf13/viper"
)

type catalogService interface {
	ListProducts(ctx context.Context, search string, brandID int64, limit, offset int) ([]product.Product, error)
	GetProduct(ctx context.Context, productID int64) (*product.Product, error)
	ListBrands(ctx context.Context) ([]brand.Brand, error)
}

type cartService interface {
	Add(ctx context.Context, sessionID string, productID int64, qty int) error
	SetQuantity(ctx context.Context, sessionID string, productID int64, rawQty string) error
	Remove(ctx context.Context, sessionID string, productID int64) error
	Detail(ctx context.Context, sessionID string) (*cartsvc.Detail, error)
}

type checkoutService interface {
	Checkout(ctx context.Context, req checkoutsvc.CheckoutRequest) (int64, error)
}

type orderService interface {
	GetOrders(ctx context.Context, customerID int64, limit, offset int) ([]order.Order, error)
	GetOrder(ctx context.Context, orderID, customerID int64) (*ordersvc.Detail, error)
	UpdateStatus(ctx context.Context, orderIds []int64, next order.Status) error
}

type invoiceService interface {
	Compute(ctx context.Context, orderID, customerID int64) (*invoice.Invoice, error)
}

type HTTPTransport struct {
	server     *http.Server
	router     *chi.Mux
	catalogSvc catalogService
	cartSvc    cartService
	checkout   checkoutService
	orderSvc   orderService
	invoiceSvc invoiceService
}

func NewHTTPTransport(
	catalogSvc catalogService,
	cartSvc cartService,
	checkout checkoutService,
	orderSvc orderService,
	invoiceSvc invoiceService,
) *HTTPTransport {
	router := newRouter()
	server := newServer(router)
	return &HTTPTransport{
		server:     server,
		router:     router,
		catalogSvc: catalogSvc,
		cartSvc:    cartSvc,
		checkout:   checkout,
		orderSvc:   orderSvc,
		invoiceSvc: invoiceSvc,
	}
}

func (h *HTTPTransport) Run() error {
	return h.server.ListenAndServe()
}

func (h *HTTPTransport) Shutdown(ctx context.Context) error {
	return h.server.Shutdown(ctx)
}

// RegisterRoutes registers the routes for the HTTPTransport. Catalog and
// cart routes need only a session; checkout, orders and invoices require
// an authenticated customer.
func (h *HTTPTransport) RegisterRoutes() {
	h.router.Route("/api", func(r chi.Router) {
		r.Get("/products", h.listProducts)
		r.Get("/products/{productId}", h.getProduct)
		r.Get("/brands", h.listBrands)

		r.Get("/cart", h.viewCart)
		r.Post("/cart/add/{productId}", h.addToCart)
		r.Post("/cart/update/{productId}", h.setCartQuantity)
		r.Post("/cart/remove/{productId}", h.removeFromCart)

		r.Group(func(r chi.Router) {
			r.Use(auth.NewAuthMiddleware)
			r.Post("/checkout", h.doCheckout)
			r.Get("/orders", h.listOrders)
			r.Get("/orders/{orderId}", h.getOrder)
			r.Post("/orders/status", h.updateStatus)
			r.Get("/orders/{orderId}/invoice", h.invoiceHTML)
			r.Get("/orders/{orderId}/invoice/pdf", h.invoicePDF)
		})
	})
}

func (h *HTTPTransport) listProducts(w http.ResponseWriter, r *http.Request) {
	listproducts.ListProducts(w, r, h.catalogSvc)
}

func (h *HTTPTransport) getProduct(w http.ResponseWriter, r *http.Request) {
	getproduct.GetProduct(w, r, h.catalogSvc)
}

func (h *HTTPTransport) listBrands(w http.ResponseWriter, r *http.Request) {
	listbrands.ListBrands(w, r, h.catalogSvc)
}

func (h *HTTPTransport) viewCart(w http.ResponseWriter, r *http.Request) {
	viewcart.ViewCart(w, r, h.cartSvc)
}

func (h *HTTPTransport) addToCart(w http.ResponseWriter, r *http.Request) {
	updatecart.AddToCart(w, r, h.cartSvc)
}

func (h *HTTPTransport) setCartQuantity(w http.ResponseWriter, r *http.Request) {
	updatecart.SetQuantity(w, r, h.cartSvc)
}

func (h *HTTPTransport) removeFromCart(w http.ResponseWriter, r *http.Request) {
	updatecart.RemoveFromCart(w, r, h.cartSvc)
}

func (h *HTTPTransport) doCheckout(w http.ResponseWriter, r *http.Request) {
	checkouthandler.Checkout(w, r, h.checkout)
}

func (h *HTTPTransport) listOrders(w http.ResponseWriter, r *http.Request) {
	listorders.ListOrders(w, r, h.orderSvc)
}

func (h *HTTPTransport) getOrder(w http.ResponseWriter, r *http.Request) {
	getorder.GetOrder(w, r, h.orderSvc)
}

func (h *HTTPTransport) updateStatus(w http.ResponseWriter, r *http.Request) {
	updatestatus.UpdateStatus(w, r, h.orderSvc)
}

func (h *HTTPTransport) invoiceHTML(w http.ResponseWriter, r *http.Request) {
	renderinvoice.RenderHTML(w, r, h.invoiceSvc)
}

func (h *HTTPTransport) invoicePDF(w http.ResponseWriter, r *http.Request) {
	renderinvoice.RenderPDF(w, r, h.invoiceSvc)
}

func newRouter() *chi.Mux {
	router := chi.NewMux()
	router.Use(middleware.RequestID)
	router.Use(trace.NewTraceMiddleware)
	router.Use(logger.NewLoggerMiddleware(slog.Default()))
	router.Use(session.NewSessionMiddleware)

	allowedOrigins := viper.GetStringSlice("server.http.cors.allowed_origins")
	allowedMethods := viper.GetStringSlice("server.http.cors.allowed_methods")
	allowedHeaders := viper.GetStringSlice("server.http.cors.allowed_headers")
	exposedHeaders := viper.GetStringSlice("server.http.cors.exposed_headers")
	allowCredentials := viper.GetBool("server.http.cors.allow_credentials")
	maxAge := viper.GetInt("server.http.cors.max_age")

	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   allowedMethods,
		AllowedHeaders:   allowedHeaders,
		ExposedHeaders:   exposedHeaders,
		AllowCredentials: allowCredentials,
		MaxAge:           maxAge,
	})

	router.Use(c.Handler)

	return router
}

func newServer(router http.Handler) *http.Server {
	return &http.Server{
		Addr:    "0.0.0.0:" + viper.GetString("server.http.port"),
		Handler: router,
	}
}
