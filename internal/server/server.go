package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"payfast-store-demo/internal/config"
	"payfast-store-demo/internal/handler"
	"payfast-store-demo/internal/service"
)

type Server struct {
	echo           *echo.Echo
	paymentHandler *handler.PaymentHandler
	productHandler *handler.ProductHandler
	cartHandler    *handler.CartHandler
	orderHandler   *handler.OrderHandler
	contactHandler *handler.ContactHandler
	ping           service.PingFunc
}

func NewServer(
	cfg *config.Config,
	paymentService service.PaymentService,
	catalogService service.CatalogService,
	cartService service.CartService,
	orderService service.OrderService,
	contactService service.ContactService,
	ping service.PingFunc,
) *Server {
	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{cfg.FrontendOrigin},
		AllowCredentials: true,
	}))

	// Storefront build; HTML5 mode falls back to index.html so
	// client-side routes keep working on refresh.
	e.Use(middleware.StaticWithConfig(middleware.StaticConfig{
		Root:  cfg.StaticDir,
		Index: "index.html",
		HTML5: true,
	}))

	s := &Server{
		echo:           e,
		paymentHandler: handler.NewPaymentHandler(paymentService),
		productHandler: handler.NewProductHandler(catalogService),
		cartHandler:    handler.NewCartHandler(cartService),
		orderHandler:   handler.NewOrderHandler(orderService),
		contactHandler: handler.NewContactHandler(contactService),
		ping:           ping,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		if err := s.ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "store unavailable"})
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// -------- catalog --------
	products := api.Group("/products")
	products.GET("", s.productHandler.ListProducts)
	products.POST("/seed", s.productHandler.SeedProducts)
	products.GET("/:handle", s.productHandler.GetProduct)

	// -------- cart --------
	cart := api.Group("/cart")
	cart.GET("", s.cartHandler.GetCart)
	cart.POST("/add", s.cartHandler.AddItem)
	cart.PUT("/:itemID", s.cartHandler.UpdateItem)
	cart.DELETE("/:itemID", s.cartHandler.RemoveItem)
	cart.DELETE("", s.cartHandler.ClearCart)

	// -------- orders --------
	orders := api.Group("/orders")
	orders.GET("", s.orderHandler.ListOrders)
	orders.POST("", s.orderHandler.CreateOrder)

	// -------- contact --------
	api.POST("/contact/submit", s.contactHandler.Submit)

	// -------- payments / gateway callbacks --------
	payments := api.Group("/payments")
	payments.POST("/initiate", s.paymentHandler.InitiateCheckout)
	payments.POST("/notify", s.paymentHandler.Notify)
	payments.GET("/status/:orderID", s.paymentHandler.GetStatus)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
