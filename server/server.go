package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rental-server/confs"
	"rental-server/db"
	"rental-server/handlers"
	httpHandler "rental-server/handlers/http"
	"rental-server/repositories"
	"rental-server/usecases"
	"rental-server/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	app *gin.Engine
	cfg *confs.Config
	db  db.Database
	hub *ws.Hub
}

func NewServer(cfg *confs.Config, database db.Database) *Server {
	s := &Server{
		app: gin.Default(),
		cfg: cfg,
		db:  database,
		hub: ws.NewHub(),
	}
	s.routes()
	return s
}

// Router exposes the configured engine, mainly for tests.
func (s *Server) Router() *gin.Engine { return s.app }

// Hub exposes the live feed hub.
func (s *Server) Hub() *ws.Hub { return s.hub }

func (s *Server) routes() {
	// Setup CORS middleware
	config := cors.DefaultConfig()
	if s.cfg.AllowAllOrigins() {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = s.cfg.AllowedOrigins
	}
	config.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	s.app.Use(cors.New(config))

	s.app.HandleMethodNotAllowed = true
	s.app.NoRoute(httpHandler.PathNotFound)
	s.app.NoMethod(httpHandler.MethodNotAllowed)

	// Setup healthcheck route
	s.app.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "OK",
		})
	})

	// Initialize repositories
	propertyRepo := repositories.NewPropertyGormRepository(s.db)
	propertyTypeRepo := repositories.NewPropertyTypeGormRepository(s.db)
	userRepo := repositories.NewUserGormRepository(s.db)
	reviewRepo := repositories.NewReviewGormRepository(s.db)
	favouriteRepo := repositories.NewFavouriteGormRepository(s.db)
	aggregateRepo := repositories.NewAggregateGormRepository(s.db)

	// Initialize use cases
	propertyUseCase := usecases.NewPropertyUseCase(propertyRepo, propertyTypeRepo, favouriteRepo, userRepo)
	reviewUseCase := usecases.NewReviewUseCase(reviewRepo, propertyRepo, userRepo, aggregateRepo, s.hub)
	favouriteUseCase := usecases.NewFavouriteUseCase(favouriteRepo, userRepo, propertyRepo, aggregateRepo, s.hub)
	userUseCase := usecases.NewUserUseCase(userRepo)

	// Initialize handlers
	propertyHandler := httpHandler.NewPropertyHandler(propertyUseCase)
	reviewHandler := httpHandler.NewReviewHandler(reviewUseCase)
	favouriteHandler := httpHandler.NewFavouriteHandler(favouriteUseCase)
	userHandler := httpHandler.NewUserHandler(userUseCase)
	wsHandler := handlers.NewWSHandler(s.hub)

	api := s.app.Group("/api")
	{
		properties := api.Group("/properties")
		{
			properties.GET("", propertyHandler.ListProperties)
			properties.GET("/:id", propertyHandler.GetProperty)
			properties.GET("/:id/reviews", reviewHandler.ListReviews)
			properties.POST("/:id/reviews", reviewHandler.CreateReview)
			properties.POST("/:id/favourite", favouriteHandler.AddFavourite)
			properties.DELETE("/:id/users/:user_id/favourite", favouriteHandler.RemoveFavourite)
		}

		api.DELETE("/reviews/:id", reviewHandler.DeleteReview)

		users := api.Group("/users")
		{
			users.GET("/:id", userHandler.GetUser)
			users.PATCH("/:id", userHandler.UpdateUser)
		}

		api.GET("/feed/subscribers", wsHandler.GetSubscribers)
	}

	s.app.GET("/ws", wsHandler.HandleFeed)
}

// Start serves until SIGINT or SIGTERM, then drains in-flight requests.
func (s *Server) Start() error {
	srv := &http.Server{
		Addr:    "0.0.0.0:" + s.cfg.Port,
		Handler: s.app,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
