package main

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	database "fintrack/db"
	"fintrack/internal/auth"
	"fintrack/internal/finance/application"
	"fintrack/internal/finance/infrastructure"
	"fintrack/internal/finance/interfaces"
	"fintrack/internal/user"
)

type Response struct {
	Message string `json:"message"`
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("Started %s %s", r.Method, r.URL.Path)

		next.ServeHTTP(w, r)

		log.Printf("Completed %s in %v", r.URL.Path, time.Since(start))
	})
}

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

type Server struct {
	router          *http.ServeMux
	dbService       *database.DBService
	authHandler     *auth.Handler
	userHandler     *user.Handler
	authService     auth.Service
	categoryHandler *interfaces.CategoryHandler
	entryHandler    *interfaces.EntryHandler
	summaryHandler  *interfaces.SummaryHandler
}

func NewServer(
	dbService *database.DBService,
	authHandler *auth.Handler,
	authService auth.Service,
	userHandler *user.Handler,
	categoryHandler *interfaces.CategoryHandler,
	entryHandler *interfaces.EntryHandler,
	summaryHandler *interfaces.SummaryHandler,
) *Server {
	return &Server{
		dbService:       dbService,
		authHandler:     authHandler,
		userHandler:     userHandler,
		authService:     authService,
		categoryHandler: categoryHandler,
		entryHandler:    entryHandler,
		summaryHandler:  summaryHandler,
		router:          http.NewServeMux(),
	}
}

func notFoundHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	json.NewEncoder(w).Encode(Response{Message: "Path not found"})
}

func checkConfiguration() error {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, continuing with system environment variables")
	}

	if os.Getenv("JWT_SECRET") == "" {
		return errors.New("no JWT_SECRET Provided")
	}
	return nil
}

func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	health := s.dbService.Health()
	status := http.StatusOK
	if health["status"] != "up" {
		status = http.StatusServiceUnavailable
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(health)
}

func (s *Server) RegisterRoutes() {
	withAccessToken := s.authService.JWTAccessTokenMiddleware()

	// Public routes
	publicRoutes := http.NewServeMux()
	publicRoutes.Handle("POST /api/register", http.HandlerFunc(s.userHandler.HandleRegister))
	publicRoutes.Handle("POST /api/auth/login", http.HandlerFunc(s.authHandler.HandleLogin))
	publicRoutes.Handle("POST /api/auth/logout", http.HandlerFunc(s.authHandler.HandleLogout))
	publicRoutes.Handle("POST /api/auth/2fa/verify", http.HandlerFunc(s.authHandler.HandleVerifyTwoFactor))
	publicRoutes.Handle("GET /api/ready", http.HandlerFunc(s.handleReady))

	// Protected routes (using JWT Access Token Middleware)
	protectedRoutes := http.NewServeMux()
	protectedRoutes.Handle("GET /api/protected/profile", withAccessToken(http.HandlerFunc(s.userHandler.HandleGetProfile)))
	protectedRoutes.Handle("PUT /api/protected/profile", withAccessToken(http.HandlerFunc(s.userHandler.HandleUpdateProfile)))
	protectedRoutes.Handle("POST /api/protected/change-password", withAccessToken(http.HandlerFunc(s.userHandler.HandleChangePassword)))

	protectedRoutes.Handle("POST /api/protected/2fa/register", withAccessToken(http.HandlerFunc(s.authHandler.HandleRegisterTwoFactor)))
	protectedRoutes.Handle("POST /api/protected/2fa/verify-registration", withAccessToken(http.HandlerFunc(s.authHandler.HandleConfirmTwoFactor)))
	protectedRoutes.Handle("DELETE /api/protected/2fa/disable", withAccessToken(http.HandlerFunc(s.authHandler.HandleDisableTwoFactor)))

	// CATEGORIES API
	protectedRoutes.Handle("GET /api/protected/categories", withAccessToken(http.HandlerFunc(s.categoryHandler.GetCategories)))
	protectedRoutes.Handle("POST /api/protected/categories", withAccessToken(http.HandlerFunc(s.categoryHandler.CreateCategory)))
	protectedRoutes.Handle("GET /api/protected/categories/usage", withAccessToken(http.HandlerFunc(s.categoryHandler.GetUsage)))
	protectedRoutes.Handle("PUT /api/protected/categories/{categoryID}", withAccessToken(http.HandlerFunc(s.categoryHandler.UpdateCategory)))
	protectedRoutes.Handle("DELETE /api/protected/categories/{categoryID}", withAccessToken(http.HandlerFunc(s.categoryHandler.DeleteCategory)))
	protectedRoutes.Handle("GET /api/protected/categories/{categoryID}/delete-check", withAccessToken(http.HandlerFunc(s.categoryHandler.GetDeleteCheck)))

	// ENTRIES API
	protectedRoutes.Handle("GET /api/protected/entries", withAccessToken(http.HandlerFunc(s.entryHandler.GetEntries)))
	protectedRoutes.Handle("POST /api/protected/entries", withAccessToken(http.HandlerFunc(s.entryHandler.CreateEntry)))
	protectedRoutes.Handle("GET /api/protected/entries/{entryID}", withAccessToken(http.HandlerFunc(s.entryHandler.GetEntry)))
	protectedRoutes.Handle("PUT /api/protected/entries/{entryID}", withAccessToken(http.HandlerFunc(s.entryHandler.UpdateEntry)))
	protectedRoutes.Handle("DELETE /api/protected/entries/{entryID}", withAccessToken(http.HandlerFunc(s.entryHandler.DeleteEntry)))

	// SUMMARY API
	protectedRoutes.Handle("GET /api/protected/summary/balance", withAccessToken(http.HandlerFunc(s.summaryHandler.GetBalance)))
	protectedRoutes.Handle("GET /api/protected/summary/monthly", withAccessToken(http.HandlerFunc(s.summaryHandler.GetMonthly)))
	protectedRoutes.Handle("GET /api/protected/summary/recent", withAccessToken(http.HandlerFunc(s.summaryHandler.GetRecent)))

	// Refresh token routes
	refreshTokenRoutes := http.NewServeMux()
	refreshTokenRoutes.Handle("PUT /api/refresh/token", s.authService.JWTRefreshTokenMiddleware()(http.HandlerFunc(s.authHandler.RefreshAccessToken)))

	// Main router
	mainRouter := http.NewServeMux()
	mainRouter.Handle("/api/", publicRoutes)
	mainRouter.Handle("/api/protected/", protectedRoutes)
	mainRouter.Handle("/api/refresh/", refreshTokenRoutes)
	mainRouter.Handle("/", http.HandlerFunc(notFoundHandler))

	s.router = mainRouter
}

func StartSessionCleanupScheduler(sessionManager auth.SessionManagerInterface) error {
	c := cron.New()
	_, err := c.AddFunc("@every 5m", func() {
		sessionManager.CleanupExpired()
	})
	if err != nil {
		return err
	}
	c.Start()
	return nil
}

func main() {
	if err := checkConfiguration(); err != nil {
		log.Fatalf("Missing configuration, update to start server")
	}

	dbService, err := database.NewDBService()
	if err != nil {
		log.Fatalf("Could not initialize database: %v", err)
	}
	defer dbService.Close()

	if err := dbService.EnsureSchema(); err != nil {
		log.Fatalf("Could not apply database schema: %v", err)
	}

	authRepo := auth.NewUserRepository(dbService.DB)
	userRepo := user.NewUserRepository(dbService.DB)

	sessionManager := auth.NewSessionManager()
	jwtManager := auth.NewJWTManager()
	authenticator := &auth.Authenticator{}

	userService := user.NewUserService(userRepo)
	userHandler := user.NewHandler(userService)
	authService := auth.NewAuthService(authRepo, userService, sessionManager, jwtManager, authenticator)
	authHandler := auth.NewHandler(authService)

	categoryRepo := infrastructure.NewCategoryRepository(dbService.DB)
	entryRepo := infrastructure.NewEntryRepository(dbService.DB)

	categoryService := application.NewCategoryService(categoryRepo, entryRepo)
	entryService := application.NewEntryService(entryRepo, categoryRepo)
	summaryService := application.NewSummaryService(entryRepo, categoryRepo)

	categoryHandler := interfaces.NewCategoryHandler(categoryService, respondJSON, respondError)
	entryHandler := interfaces.NewEntryHandler(entryService, respondJSON, respondError)
	summaryHandler := interfaces.NewSummaryHandler(summaryService, respondJSON, respondError)

	server := NewServer(dbService, authHandler, authService, userHandler, categoryHandler, entryHandler, summaryHandler)
	server.RegisterRoutes()

	if err := StartSessionCleanupScheduler(sessionManager); err != nil {
		log.Fatalf("Scheduler didn't start, stoping the app ...")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	handler := loggingMiddleware(server.router)
	log.Printf("Server starting on port %s...", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
