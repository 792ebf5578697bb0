package main

import (
	"encoding/json"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	database "personalfinance/db"
	"personalfinance/internal/auth"
	"personalfinance/internal/config"
	"personalfinance/internal/finance/application"
	"personalfinance/internal/finance/infrastructure"
	"personalfinance/internal/finance/interfaces"
)

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]interface{}{
		"status":  "error",
		"message": message,
		"code":    status,
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func loggingMiddleware(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(recorder, r)

		logger.Info("request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", recorder.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

type Server struct {
	router             *http.ServeMux
	dbService          *database.DBService
	authHandler        *auth.Handler
	authService        auth.Service
	categoryHandler    *interfaces.CategoryHandler
	transactionHandler *interfaces.TransactionHandler
}

func NewServer(
	dbService *database.DBService,
	authHandler *auth.Handler,
	authService auth.Service,
	categoryHandler *interfaces.CategoryHandler,
	transactionHandler *interfaces.TransactionHandler,
) *Server {
	return &Server{
		router:             http.NewServeMux(),
		dbService:          dbService,
		authHandler:        authHandler,
		authService:        authService,
		categoryHandler:    categoryHandler,
		transactionHandler: transactionHandler,
	}
}

func notFoundHandler(w http.ResponseWriter, _ *http.Request) {
	respondError(w, http.StatusNotFound, "Path not found")
}

func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	health := s.dbService.Health()
	if health["status"] != "up" {
		respondJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "not ready"})
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func (s *Server) RegisterRoutes() {
	mux := http.NewServeMux()
	protected := s.authService.JWTAccessTokenMiddleware()

	// Public routes
	mux.Handle("POST /api/auth/register", http.HandlerFunc(s.authHandler.HandleRegister))
	mux.Handle("POST /api/auth/login", http.HandlerFunc(s.authHandler.HandleLogin))
	mux.Handle("GET /api/ready", http.HandlerFunc(s.handleReady))

	// CATEGORIES API
	mux.Handle("GET /api/categories", protected(http.HandlerFunc(s.categoryHandler.GetCategories)))
	mux.Handle("POST /api/categories", protected(http.HandlerFunc(s.categoryHandler.CreateCategory)))
	mux.Handle("GET /api/categories/{id}", protected(http.HandlerFunc(s.categoryHandler.GetCategory)))
	mux.Handle("PUT /api/categories/{id}", protected(http.HandlerFunc(s.categoryHandler.UpdateCategory)))
	mux.Handle("DELETE /api/categories/{id}", protected(http.HandlerFunc(s.categoryHandler.DeleteCategory)))

	// TRANSACTIONS API
	mux.Handle("GET /api/transactions", protected(http.HandlerFunc(s.transactionHandler.GetTransactions)))
	mux.Handle("POST /api/transactions", protected(http.HandlerFunc(s.transactionHandler.CreateTransaction)))
	mux.Handle("GET /api/transactions/summary", protected(http.HandlerFunc(s.transactionHandler.GetTransactionSummary)))
	mux.Handle("GET /api/transactions/{id}", protected(http.HandlerFunc(s.transactionHandler.GetTransaction)))
	mux.Handle("PUT /api/transactions/{id}", protected(http.HandlerFunc(s.transactionHandler.UpdateTransaction)))
	mux.Handle("DELETE /api/transactions/{id}", protected(http.HandlerFunc(s.transactionHandler.DeleteTransaction)))

	mux.Handle("/", http.HandlerFunc(notFoundHandler))

	s.router = mux
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	dbService, err := database.NewDBService(cfg.DBConnectionString)
	if err != nil {
		log.Fatalf("Could not initialize database: %v", err)
	}
	defer dbService.Close()

	if err := database.RunMigrations(cfg.DBConnectionString); err != nil {
		log.Fatalf("Could not run migrations: %v", err)
	}

	hasher, err := auth.NewPasswordHasher(cfg.PasswordHashScheme)
	if err != nil {
		log.Fatalf("Could not initialize password hasher: %v", err)
	}
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience, cfg.JWTExpiry, cfg.JWTClockSkew)

	userRepo := auth.NewUserRepository(dbService.DB)
	authService := auth.NewAuthService(userRepo, jwtManager, hasher)
	authHandler := auth.NewHandler(authService)

	categoryRepo := infrastructure.NewCategoryRepository(dbService.DB)
	categoryService := application.NewCategoryService(categoryRepo)
	categoryHandler := interfaces.NewCategoryHandler(categoryService, respondJSON, respondError)

	transactionRepo := infrastructure.NewTransactionRepository(dbService.DB)
	transactionService := application.NewTransactionService(transactionRepo, categoryService)
	transactionHandler := interfaces.NewTransactionHandler(transactionService, respondJSON, respondError)

	server := NewServer(dbService, authHandler, authService, categoryHandler, transactionHandler)
	server.RegisterRoutes()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	handler := loggingMiddleware(logger, server.router)

	logger.Info("server starting", "port", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
