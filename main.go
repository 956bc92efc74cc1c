package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/plugins/migratecmd"

	"campus-agenda/config"
	"campus-agenda/handlers"
	"campus-agenda/jobs"
	_ "campus-agenda/migrations"
	"campus-agenda/monitoring"
	"campus-agenda/security"
	"campus-agenda/services"
	"campus-agenda/store"
	"campus-agenda/utils"
)

func main() {
	app := pocketbase.New()

	// Load configuration
	cfg := config.LoadConfig()

	// Initialize Redis
	redisClient := utils.NewRedisClient(cfg.RedisURL)
	defer redisClient.Close()

	// Initialize stores and services
	pbStore := store.NewPBStore(app)
	eventService := services.NewEventService(pbStore, redisClient, cfg)
	engagementService := services.NewEngagementService(eventService, pbStore)
	commentService := services.NewCommentService(pbStore)
	suggestionService := services.NewSuggestionService(pbStore)
	accountService := services.NewAccountService(pbStore)
	dashboardService := services.NewDashboardService(eventService, pbStore, pbStore)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(accountService)
	eventHandler := handlers.NewEventHandler(eventService)
	engagementHandler := handlers.NewEngagementHandler(engagementService)
	commentHandler := handlers.NewCommentHandler(commentService)
	suggestionHandler := handlers.NewSuggestionHandler(suggestionService)
	adminHandler := handlers.NewAdminHandler(dashboardService, accountService)

	rateLimiter := security.NewRateLimiter(redisClient, cfg)

	// Enable migrations
	migratecmd.MustRegister(app, app.RootCmd, migratecmd.Config{
		Automigrate: true,
	})

	// Create context for background tasks
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Setup graceful shutdown
	go handleShutdown(cancel)

	// Register routes
	app.OnServe().BindFunc(func(e *core.ServeEvent) error {
		e.Router.BindFunc(rateLimiter.Middleware())

		// Auth endpoints
		e.Router.POST("/api/auth/register", authHandler.Register)
		e.Router.POST("/api/auth/login", authHandler.Login)

		// Event endpoints
		e.Router.GET("/api/events", eventHandler.ListEvents)
		e.Router.POST("/api/events", eventHandler.CreateEvent)
		e.Router.GET("/api/events/{id}", eventHandler.GetEvent)
		e.Router.GET("/api/events/{id}/display", engagementHandler.EventDisplay)
		e.Router.GET("/api/events/calendar.ics", eventHandler.Calendar)

		// Engagement endpoints
		e.Router.GET("/api/accounts/{accountId}/agenda", engagementHandler.MyAgenda)
		e.Router.POST("/api/favorites", engagementHandler.AddFavorite)
		e.Router.DELETE("/api/favorites", engagementHandler.RemoveFavorite)
		e.Router.POST("/api/attendance", engagementHandler.AddAttendance)
		e.Router.DELETE("/api/attendance", engagementHandler.RemoveAttendance)

		// Comment endpoints
		e.Router.GET("/api/events/{id}/comments", commentHandler.ListComments)
		e.Router.POST("/api/events/{id}/comments", commentHandler.CreateComment)

		// Suggestion endpoints
		e.Router.POST("/api/suggestions", suggestionHandler.CreateSuggestion)
		e.Router.GET("/api/suggestions", suggestionHandler.ListSuggestions)
		e.Router.GET("/api/admin/suggestions", suggestionHandler.ListAllSuggestions)

		// Admin endpoints
		e.Router.GET("/api/admin/dashboard", adminHandler.GetDashboard)
		e.Router.GET("/api/admin/accounts", adminHandler.ListAccounts)

		// Health check
		e.Router.GET("/health", func(e *core.RequestEvent) error {
			if err := utils.RedisHealthCheck(redisClient); err != nil {
				return e.JSON(503, map[string]string{
					"status": "unhealthy",
					"error":  err.Error(),
				})
			}
			return e.JSON(200, map[string]string{"status": "healthy"})
		})

		// Warm the cache on boot and keep it warm on the configured
		// schedule.
		if err := eventService.WarmCache(ctx); err != nil {
			log.Printf("initial cache warmup failed: %v", err)
		}
		warmup, err := jobs.StartWarmup(eventService, cfg.WarmupSchedule)
		if err != nil {
			log.Printf("warmup scheduler not started: %v", err)
		} else {
			go func() {
				<-ctx.Done()
				warmup.Stop()
			}()
		}

		if cfg.EnableMetrics {
			monitoring.StartMetricsServer(cfg.MetricsPort)
		}

		log.Println("Server routes registered")

		return e.Next()
	})

	// Start server
	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}

// handleShutdown handles graceful shutdown
func handleShutdown(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Println("Shutdown signal received, cleaning up...")
	cancel()
}
