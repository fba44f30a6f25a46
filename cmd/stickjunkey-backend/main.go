package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/stickjunkey/stickjunkey-backend/internal/api/handlers"
	"github.com/stickjunkey/stickjunkey-backend/internal/api/middleware"
	"github.com/stickjunkey/stickjunkey-backend/internal/cache"
	"github.com/stickjunkey/stickjunkey-backend/internal/config"
	"github.com/stickjunkey/stickjunkey-backend/internal/health"
	"github.com/stickjunkey/stickjunkey-backend/internal/metrics"
	repository "github.com/stickjunkey/stickjunkey-backend/internal/repositories"
	service "github.com/stickjunkey/stickjunkey-backend/internal/services"
	"github.com/stickjunkey/stickjunkey-backend/pkg/sendgrid"
)

func main() {
	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Database setup
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("Error accessing the database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("Database connection closed")
		}
	}()

	// Redis setup
	redisClient, err := repository.NewRedisClient(cfg)
	if err != nil {
		slog.Error("Error accessing the redis instance", slog.String("error", err.Error()))
		os.Exit(1)
	}

	itemCache := cache.NewRedisCache(redisClient, &cfg.Cache)
	rateLimitRepo := repository.NewRateLimitRepo(redisClient, cfg)

	defer func() {
		if err := itemCache.Close(); err != nil {
			slog.Error("Error closing redis connection", slog.String("error", err.Error()))
		}
	}()

	jwtKey := []byte(cfg.Security.JWTKey)
	emailService := sendgrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)

	userService := service.NewUserService(repos.User, rateLimitRepo, jwtKey)
	userHandler := handlers.NewUserHandler(userService)
	itemService := service.NewItemService(repos.Item, itemCache)
	itemHandler := handlers.NewItemHandler(itemService)
	cartService := service.NewCartService(repos.Cart, repos.Item)
	cartHandler := handlers.NewCartHandler(cartService)
	wishlistService := service.NewWishlistService(repos.Wishlist, repos.Item)
	wishlistHandler := handlers.NewWishlistHandler(wishlistService)
	orderService := service.NewOrderService(repos.Order, repos.Cart, repos.Item, repos.User, emailService)
	orderHandler := handlers.NewOrderHandler(orderService)
	authMiddleware := middleware.NewAuthMiddleware(jwtKey)
	adminMiddleware := middleware.NewAdminMiddleware(repos.User)

	healthHandler, err := health.NewHealthHandler(cfg)
	if err != nil {
		slog.Error("Error creating the health handler", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", "1.0.0"))

	admin := func(h http.HandlerFunc) http.HandlerFunc {
		return authMiddleware.Authenticate(adminMiddleware.RequireAdmin(h))
	}

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("POST /api/v1/auth/register", userHandler.Register())
	routerMux.HandleFunc("POST /api/v1/auth/login", userHandler.Login())
	routerMux.HandleFunc("GET /api/v1/auth/me", authMiddleware.Authenticate(userHandler.Profile()))

	routerMux.HandleFunc("GET /api/v1/items", itemHandler.ListItems())
	routerMux.HandleFunc("GET /api/v1/items/{id}", itemHandler.GetItem())

	routerMux.HandleFunc("GET /api/v1/cart", authMiddleware.Authenticate(cartHandler.GetCart()))
	routerMux.HandleFunc("POST /api/v1/cart/{itemId}", authMiddleware.Authenticate(cartHandler.AddItem()))
	routerMux.HandleFunc("PUT /api/v1/cart/{itemId}", authMiddleware.Authenticate(cartHandler.UpdateQuantity()))
	routerMux.HandleFunc("DELETE /api/v1/cart/{itemId}", authMiddleware.Authenticate(cartHandler.RemoveItem()))

	routerMux.HandleFunc("GET /api/v1/wishlist", authMiddleware.Authenticate(wishlistHandler.GetWishlist()))
	// "clear" is registered before the {itemId} wildcard on purpose
	routerMux.HandleFunc("DELETE /api/v1/wishlist/clear", authMiddleware.Authenticate(wishlistHandler.Clear()))
	routerMux.HandleFunc("GET /api/v1/wishlist/check/{itemId}", authMiddleware.Authenticate(wishlistHandler.Check()))
	routerMux.HandleFunc("POST /api/v1/wishlist/{itemId}", authMiddleware.Authenticate(wishlistHandler.AddItem()))
	routerMux.HandleFunc("DELETE /api/v1/wishlist/{itemId}", authMiddleware.Authenticate(wishlistHandler.RemoveItem()))

	routerMux.HandleFunc("POST /api/v1/orders", authMiddleware.Authenticate(orderHandler.Checkout()))
	routerMux.HandleFunc("GET /api/v1/orders", authMiddleware.Authenticate(orderHandler.ListOrders()))
	routerMux.HandleFunc("GET /api/v1/orders/{id}", authMiddleware.Authenticate(orderHandler.GetOrder()))

	routerMux.HandleFunc("GET /api/v1/admin/items", admin(itemHandler.ListItems()))
	routerMux.HandleFunc("POST /api/v1/admin/items", admin(itemHandler.CreateItem()))
	routerMux.HandleFunc("PUT /api/v1/admin/items/{id}", admin(itemHandler.UpdateItem()))
	routerMux.HandleFunc("DELETE /api/v1/admin/items/{id}", admin(itemHandler.DeleteItem()))

	routerMux.HandleFunc("GET /api/v1/admin/orders", admin(orderHandler.AdminListOrders()))
	routerMux.HandleFunc("GET /api/v1/admin/orders/{id}", admin(orderHandler.AdminGetOrder()))
	routerMux.HandleFunc("PUT /api/v1/admin/orders/{id}/status", admin(orderHandler.UpdateStatus()))
	routerMux.HandleFunc("GET /api/v1/admin/dashboard", admin(orderHandler.Dashboard()))

	routerMux.Handle("GET /health", healthHandler.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)

	// Setup http server
	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("Failed to start server", slog.String("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("Server shut down gracefully. All connections closed.")
	}
}
