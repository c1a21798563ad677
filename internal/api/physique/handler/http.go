package physiqueHandler

import (
	physiqueService "PhysiqueGolang/internal/api/physique/service"
	"PhysiqueGolang/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type PhysiqueHandler struct {
	log             *logrus.Logger
	validator       *validator.Validate
	middleware      middleware.Middleware
	physiqueService physiqueService.IPhysiqueService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	physiqueService physiqueService.IPhysiqueService,
) *PhysiqueHandler {
	return &PhysiqueHandler{
		log:             log,
		validator:       validate,
		middleware:      middleware,
		physiqueService: physiqueService,
	}
}

func (h *PhysiqueHandler) Start(srv fiber.Router) {
	physique := srv.Group("/physique")

	physique.Post("/analyze", h.Analyze)
	physique.Get("/latest", h.Latest)
	physique.Get("/history", h.History)
	physique.Get("/progression", h.Progression)
}
