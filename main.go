package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"opsdesk/config"
	"opsdesk/database"
	"opsdesk/routes"
	"opsdesk/scheduler"
	"opsdesk/storage"

	"github.com/gin-gonic/gin"
)

func main() {
	app, err := NewApplication()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.Start(); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}
}

// Application wires configuration, database, storage, routes and the
// background scheduler into one HTTP server.
type Application struct {
	config    *config.Config
	server    *http.Server
	router    *gin.Engine
	scheduler *scheduler.Scheduler
}

func NewApplication() (*Application, error) {
	cfg := config.LoadConfig()
	if err := cfg.ValidateConfig(); err != nil {
		return nil, err
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := setupRouter(cfg)

	return &Application{
		config: cfg,
		router: router,
		server: &http.Server{
			Addr:         cfg.GetServerAddress(),
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}, nil
}

// Start initializes all subsystems and serves until a shutdown signal.
func (app *Application) Start() error {
	log.Printf("Starting %s v%s in %s mode",
		app.config.AppName,
		app.config.AppVersion,
		app.config.Environment)

	if err := app.initializeDatabase(); err != nil {
		return err
	}

	if err := storage.Initialize(app.config); err != nil {
		return err
	}

	routes.SetupRoutes(app.router)

	app.scheduler = scheduler.New()
	if err := app.scheduler.Start(app.config); err != nil {
		return err
	}

	go func() {
		log.Printf("Server starting on %s", app.server.Addr)
		if err := app.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()
	return nil
}

func (app *Application) initializeDatabase() error {
	if err := database.Connect(app.config.MongoURI, app.config.DBName); err != nil {
		return err
	}
	return database.Setup(app.config)
}

func setupRouter(cfg *config.Config) *gin.Engine {
	router := gin.New()
	router.SetTrustedProxies([]string{"127.0.0.1", "::1"})
	router.Use(gin.Recovery())

	router.GET("/health", healthCheckHandler())
	router.GET("/version", versionHandler())

	if cfg.StorageProvider == "local" {
		router.Static("/uploads", cfg.UploadPath)
	}

	return router
}

func (app *Application) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Println("Shutdown signal received...")
	app.shutdown()
}

func (app *Application) shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if app.scheduler != nil {
		app.scheduler.Stop()
	}

	if err := app.server.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	if err := database.Disconnect(); err != nil {
		log.Printf("Error closing database: %v", err)
	}

	log.Println("Server shutdown complete")
}

func healthCheckHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"service":   config.AppConfig.AppName,
			"version":   config.AppConfig.AppVersion,
			"timestamp": time.Now().Unix(),
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := database.Ping(ctx); err != nil {
			health["status"] = "degraded"
			health["database"] = "unhealthy"
		} else {
			health["database"] = "healthy"
		}

		c.JSON(http.StatusOK, health)
	}
}

func versionHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":        config.AppConfig.AppName,
			"version":     config.AppConfig.AppVersion,
			"environment": config.AppConfig.Environment,
		})
	}
}
