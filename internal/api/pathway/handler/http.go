package pathwayHandler

import (
	pathwayService "PhysiqueGolang/internal/api/pathway/service"
	"PhysiqueGolang/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type PathwayHandler struct {
	log            *logrus.Logger
	validator      *validator.Validate
	middleware     middleware.Middleware
	pathwayService pathwayService.IPathwayService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	pathwayService pathwayService.IPathwayService,
) *PathwayHandler {
	return &PathwayHandler{
		log:            log,
		validator:      validate,
		middleware:     middleware,
		pathwayService: pathwayService,
	}
}

func (h *PathwayHandler) Start(srv fiber.Router) {
	pathway := srv.Group("/pathway")

	pathway.Post("/generate", h.Generate)
	pathway.Post("/complete-task", h.CompleteTask)
	pathway.Get("/progress", h.Progress)
	pathway.Get("/:id", h.GetPathway)
}
