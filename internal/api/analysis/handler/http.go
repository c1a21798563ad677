package analysisHandler

import (
	analysisService "PhysiqueGolang/internal/api/analysis/service"
	"PhysiqueGolang/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AnalysisHandler struct {
	log             *logrus.Logger
	validator       *validator.Validate
	middleware      middleware.Middleware
	analysisService analysisService.IAnalysisService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	analysisService analysisService.IAnalysisService,
) *AnalysisHandler {
	return &AnalysisHandler{
		log:             log,
		validator:       validate,
		middleware:      middleware,
		analysisService: analysisService,
	}
}

func (h *AnalysisHandler) Start(srv fiber.Router) {
	analysis := srv.Group("/analysis")

	analysis.Post("/body", h.AnalyzeBody)
	analysis.Post("/diet-plan", h.DietPlan)
	analysis.Post("/workout-routine", h.WorkoutRoutine)
	analysis.Post("/complete", h.CompleteAnalysis)
}
