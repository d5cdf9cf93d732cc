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

	"github.com/philippoppel/findmytherapy-sub000/internal/cache"
	"github.com/philippoppel/findmytherapy-sub000/internal/config"
	"github.com/philippoppel/findmytherapy-sub000/internal/repository"
	"github.com/philippoppel/findmytherapy-sub000/internal/service"
	"github.com/philippoppel/findmytherapy-sub000/internal/transport/rest"
	"github.com/philippoppel/findmytherapy-sub000/internal/transport/ws"
)

// @title FindMyTherapy Assessment API
// @version 1.0
// @description Adaptive mental-health self-assessment engine (screening aid, not a diagnostic tool)
// @host localhost:8080
// @BasePath /v1
func main() {
	log.Println("started")
	ctx := context.Background()

	cfg := config.Load()

	sessionTTL, err := time.ParseDuration(cfg.SessionTTL)
	if err != nil {
		log.Printf("Warning: invalid SESSION_TTL %q, using 2h", cfg.SessionTTL)
		sessionTTL = 2 * time.Hour
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
	redisAddr := cfg.RedisAddr
	// Remove redis:// prefix if present
	if len(redisAddr) > 8 && redisAddr[:8] == "redis://" {
		redisAddr = redisAddr[8:]
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize WebSocket hub
	wsHub := ws.NewHub()
	log.Println("WebSocket hub started")

	// Initialize collaborators and service
	submissionRepo := repository.NewSubmissionRepo(db)
	sessionStore := cache.NewSessionStore(rdb, sessionTTL)

	assessmentSvc := service.NewAssessmentService(sessionStore, submissionRepo)

	// Inject broadcaster (wsHub implements service.Broadcaster)
	assessmentSvc.SetBroadcaster(wsHub)

	// Create router with container
	container := &rest.Container{
		AssessmentService: assessmentSvc,
		WSHub:             wsHub,
	}

	router := rest.NewRouter(container)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Println("Endpoints:")
		log.Println("  POST /v1/assessments")
		log.Println("  GET/DELETE /v1/assessments/{sessionId}")
		log.Println("  POST /v1/assessments/{sessionId}/answers")
		log.Println("  POST /v1/assessments/{sessionId}/back")
		log.Println("  PUT  /v1/assessments/{sessionId}/preferences")
		log.Println("  POST /v1/assessments/{sessionId}/complete")
		log.Println("  POST /v1/assessments/{sessionId}/submit")
		log.Println("  GET  /v1/assessments/{sessionId}/result")
		log.Println("  GET  /v1/instruments")
		log.Println("  POST /v1/wellbeing/score")
		log.Println("  WS   /v1/ws/assessments/{sessionId}")

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
