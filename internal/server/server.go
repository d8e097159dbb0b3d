// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"context"
	"fmt"
	"time"

	"quill/internal/cache"
	"quill/internal/config"
	"quill/internal/database"
	"quill/internal/middleware"
	"quill/internal/observability"
	"quill/internal/repository"
	"quill/internal/service"
	"quill/internal/session"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config          *config.Config
	db              *gorm.DB
	redis           *redis.Client
	promMiddleware  *fiberprometheus.FiberPrometheus
	tracingShutdown func(context.Context) error
	registry        *session.Registry
	userService     *service.UserService
	postService     *service.PostService
	commentService  *service.CommentService
	sessionService  *service.SessionService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)

	tracingShutdown, err := observability.InitTracing(observability.TracingConfig{
		ServiceName:  "quill-api",
		Environment:  cfg.Env,
		Enabled:      cfg.TracingEnabled,
		Exporter:     cfg.TracingExporter,
		OTLPEndpoint: cfg.OTLPEndpoint,
	})
	if err != nil {
		return nil, fmt.Errorf("tracing setup failed: %w", err)
	}

	registry := session.NewRegistry(time.Duration(cfg.SessionTTLHours) * time.Hour)

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	server := &Server{
		config:          cfg,
		db:              db,
		redis:           cache.GetClient(),
		promMiddleware:  fiberprometheus.New("quill-api"),
		tracingShutdown: tracingShutdown,
		registry:        registry,
		userService:     service.NewUserService(userRepo),
		postService:     service.NewPostService(postRepo, userRepo),
		commentService:  service.NewCommentService(commentRepo, postRepo, userRepo),
		sessionService:  service.NewSessionService(userRepo, registry),
	}
	return server, nil
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for correlation
	app.Use(requestid.New())

	// Tracing before the context middleware so the trace ID reaches the logger
	app.Use(middleware.TracingMiddleware())

	// Context middleware propagates request ID and trace ID into ctx
	app.Use(middleware.ContextMiddleware())

	// Prometheus HTTP metrics
	if s.promMiddleware != nil {
		app.Use(s.promMiddleware.Middleware)
	}

	// Security headers
	app.Use(helmet.New())

	// Structured logging (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	origins := ""
	if s.config != nil {
		origins = s.config.AllowedOrigins
	}
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		MaxAge:       86400,
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	// User routes; login/logout before the generic /:id route
	users := app.Group("/users")
	users.Post("/", s.CreateUser)
	users.Get("/", s.ListUsers)
	users.Post("/login", middleware.RateLimit(
		s.redis, 10, 5*time.Minute, "login"), s.Login)
	users.Post("/logout", s.Logout)
	users.Get("/:id/posts", s.ListUserPosts)
	users.Get("/:id/comments", s.ListUserComments)
	users.Get("/:id", s.GetUser)
	users.Put("/:id", s.UpdateUser)
	users.Delete("/:id", s.DeleteUser)

	// Post routes with the comment sub-resource nested under a post
	posts := app.Group("/posts")
	posts.Post("/", s.CreatePost)
	posts.Get("/", s.ListPosts)
	posts.Post("/:id/comments/", s.CreateComment)
	posts.Get("/:id/comments/", s.ListPostComments)
	posts.Put("/:id/comments/:cid", s.UpdateComment)
	posts.Delete("/:id/comments/:cid", s.DeleteComment)
	posts.Get("/:id", s.GetPost)
	posts.Put("/:id", s.UpdatePost)
	posts.Delete("/:id", s.DeletePost)
}

// LivenessCheck reports that the process is up.
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// ReadinessCheck reports whether the database is reachable.
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	if s.db != nil {
		sqlDB, err := s.db.DB()
		if err == nil {
			if pingErr := sqlDB.PingContext(c.Context()); pingErr == nil {
				return c.JSON(fiber.Map{"status": "ready"})
			}
		}
	}
	return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded"})
}

// Shutdown releases server resources.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.tracingShutdown != nil {
		if err := s.tracingShutdown(ctx); err != nil {
			return err
		}
	}
	if s.db != nil {
		if sqlDB, err := s.db.DB(); err == nil {
			return sqlDB.Close()
		}
	}
	return nil
}
