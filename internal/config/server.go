package config

import (
	"PhysiqueGolang/database/postgres"
	analysisHandler "PhysiqueGolang/internal/api/analysis/handler"
	analysisService "PhysiqueGolang/internal/api/analysis/service"
	pathwayHandler "PhysiqueGolang/internal/api/pathway/handler"
	pathwayService "PhysiqueGolang/internal/api/pathway/service"
	physiqueHandler "PhysiqueGolang/internal/api/physique/handler"
	physiqueRepository "PhysiqueGolang/internal/api/physique/repository"
	physiqueService "PhysiqueGolang/internal/api/physique/service"
	scanHandler "PhysiqueGolang/internal/api/scan/handler"
	scanService "PhysiqueGolang/internal/api/scan/service"
	"PhysiqueGolang/internal/middleware"
	"PhysiqueGolang/pkg/capture"
	"PhysiqueGolang/pkg/gemini"
	"PhysiqueGolang/pkg/landmarks"
	"PhysiqueGolang/pkg/redis"
	"PhysiqueGolang/pkg/s3"
	"PhysiqueGolang/pkg/utils"
	"fmt"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"os"
)

type ServerOption func(*Server) error

type Server struct {
	engine         *fiber.App
	db             *sqlx.DB
	log            *logrus.Logger
	middleware     middleware.Middleware
	validator      *validator.Validate
	utils          utils.IUtils
	handlers       []handler
	redisServer    redis.IRedis
	landmarkSource landmarks.ISource
	geminiClient   gemini.IGemini
	s3Client       s3.ItfS3
	captureConfig  capture.Config
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{
		captureConfig: capture.DefaultConfig(),
	}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}

		if err := postgres.Migrate(db); err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to run migrations: %v", err)
			}
			return fmt.Errorf("failed to run migrations: %w", err)
		}

		s.db = db
		return nil
	}
}

func WithRedisServer(redisServer redis.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer
		return nil
	}
}

func WithLandmarkSource(source landmarks.ISource) ServerOption {
	return func(s *Server) error {
		s.landmarkSource = source
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func WithS3Client() ServerOption {
	return func(s *Server) error {
		client, err := s3.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to initialize S3 client: %v", err)
			}
			return fmt.Errorf("failed to create S3 client: %w", err)
		}
		s.s3Client = client
		return nil
	}
}

// WithGeminiClient is non-fatal. Without credentials pathway generation
// simply runs rule-based.
func WithGeminiClient() ServerOption {
	return func(s *Server) error {
		client, err := gemini.NewGeminiClient()
		if err != nil {
			if s.log != nil {
				s.log.Warnf("Gemini client unavailable, pathway generation will be rule-based: %v", err)
			}
			return nil
		}
		s.geminiClient = client
		return nil
	}
}

func WithCaptureConfig(cfg capture.Config) ServerOption {
	return func(s *Server) error {
		s.captureConfig = cfg
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Physique Domain
	physiqueRepo := physiqueRepository.New(s.db, s.log)
	physiqueServices := physiqueService.NewPhysiqueService(s.log, physiqueRepo, s.redisServer, s.s3Client, s.utils)
	physiqueHandlers := physiqueHandler.New(s.log, s.validator, s.middleware, physiqueServices)

	// Scan Domain
	scanServices := scanService.NewScanService(s.log, s.captureConfig, s.landmarkSource, physiqueServices)
	scanHandlers := scanHandler.New(s.log, s.validator, s.middleware, scanServices)

	// Analysis Domain
	analysisServices := analysisService.NewAnalysisService(s.log)
	analysisHandlers := analysisHandler.New(s.log, s.validator, s.middleware, analysisServices)

	// Pathway Domain
	pathwayServices := pathwayService.NewPathwayService(s.log, s.redisServer, s.geminiClient, s.utils)
	pathwayHandlers := pathwayHandler.New(s.log, s.validator, s.middleware, pathwayServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, scanHandlers, physiqueHandlers, analysisHandlers, pathwayHandlers)
}

func (s *Server) Run() error {
	router := s.engine.Group("/api/v1")
	s.engine.Use(s.middleware.NewRequestIDMiddleware())

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	if err := s.engine.Listen(fmt.Sprintf(":%s", port)); err != nil {
		if s.landmarkSource != nil {
			s.landmarkSource.CloseConnections()
		}
		return err
	}

	return nil
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
