package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pulsecheck/internal/cache"
	"pulsecheck/internal/config"
	"pulsecheck/internal/repository"
	"pulsecheck/internal/service"
	"pulsecheck/internal/transport/rest"
	"pulsecheck/internal/transport/ws"
)

func main() {
	log.Println("started")
	ctx := context.Background()

	cfg := config.Load()
	if len(cfg.AdminAccess.Emails) == 0 && len(cfg.AdminAccess.Domains) == 0 {
		log.Println("Warning: ADMIN_EMAILS/ADMIN_DOMAINS not set, admin identity checks will deny everyone")
	}

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDB)

	// Redis connection
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Live dashboard hub
	wsHub := ws.NewHub()
	log.Println("WebSocket hub started")

	// Initialize repositories
	clientRepo := repository.NewClientRepo(db)
	responseRepo := repository.NewResponseRepo(db)
	sessionRepo := repository.NewSessionRepo(db)

	// Initialize caches
	clientCache := cache.NewClientCache(rdb)
	reportCache := cache.NewReportCache(rdb)

	// Initialize services
	authSvc := service.NewAuthService(cfg)
	clientSvc := service.NewClientService(clientRepo, clientCache)
	accessSvc := service.NewAccessService(authSvc, clientSvc, sessionRepo)
	responseSvc := service.NewResponseService(responseRepo, clientSvc, reportCache)
	analyticsSvc := service.NewAnalyticsService(responseRepo, reportCache)

	// Inject broadcaster (wsHub implements service.Broadcaster)
	responseSvc.SetBroadcaster(wsHub)

	// Create router with container
	container := &rest.Container{
		AuthService:      authSvc,
		ClientService:    clientSvc,
		AccessService:    accessSvc,
		ResponseService:  responseSvc,
		AnalyticsService: analyticsSvc,
		WSHub:            wsHub,
	}

	router := rest.NewRouter(container)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Println("Endpoints:")
		log.Println("  POST /v1/auth/login")
		log.Println("  GET  /v1/survey/client-info")
		log.Println("  POST /v1/survey/validate-access")
		log.Println("  POST /v1/survey/submit")
		log.Println("  GET/POST/PATCH/DELETE /v1/admin/clients")
		log.Println("  GET  /v1/admin/clients/{id}/responses")
		log.Println("  GET  /v1/admin/clients/{id}/analytics")
		log.Println("  WS   /v1/ws/clients/{clientId}")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
