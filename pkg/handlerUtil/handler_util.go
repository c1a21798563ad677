package handlerUtil

import (
	"PhysiqueGolang/internal/api/analysis"
	"PhysiqueGolang/internal/api/pathway"
	"PhysiqueGolang/internal/api/physique"
	"PhysiqueGolang/internal/api/scan"
	"PhysiqueGolang/pkg/log"
	"PhysiqueGolang/pkg/response"
	"PhysiqueGolang/pkg/scoring"
	"errors"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/sirupsen/logrus"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

type ErrorHandler struct {
	logger *logrus.Logger
}

func New(logger *logrus.Logger) *ErrorHandler {
	return &ErrorHandler{
		logger: logger,
	}
}

func (h *ErrorHandler) Handle(c *fiber.Ctx, requestID string, err error, path string, operation string) error {
	var genderErr *scoring.UnsupportedGenderError
	if errors.As(err, &genderErr) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"gender":     genderErr.Gender,
			"path":       path,
			"operation":  operation,
		}).Warn("Unsupported gender for physique scoring")
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": genderErr.Error(),
			"code":  "UNSUPPORTED_GENDER",
		})
	}

	var respErr *response.Error
	if errors.As(err, &respErr) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"code":       respErr.Code,
			"path":       path,
			"operation":  operation,
		}).Warn("Operation failed with error response")
		return c.Status(respErr.Code).JSON(fiber.Map{"error": err.Error()})
	}

	// Physique domain errors
	if errors.Is(err, physique.ErrNoBaseline) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("No baseline scan recorded")
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "No baseline scan recorded",
			"code":  "NO_BASELINE",
		})
	}

	if errors.Is(err, physique.ErrNoScansForUser) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("No scans recorded for user")
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "No scans recorded for user",
			"code":  "NO_SCANS",
		})
	}

	if errors.Is(err, physique.ErrIncompletePose) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Incomplete pose data")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Pose data is incomplete",
			"code":  "INCOMPLETE_POSE",
		})
	}

	// Analysis domain errors
	if errors.Is(err, analysis.ErrNoBodyDetected) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("No body detected in pose data")
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "No body detected in pose data",
			"code":  "NO_BODY_DETECTED",
		})
	}

	// Pathway domain errors
	if errors.Is(err, pathway.ErrPathwayNotFound) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Pathway not found")
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Pathway not found",
			"code":  "PATHWAY_NOT_FOUND",
		})
	}

	if errors.Is(err, pathway.ErrTaskAlreadyDone) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Task already completed")
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Task already completed",
			"code":  "TASK_ALREADY_COMPLETED",
		})
	}

	// Scan domain errors
	if errors.Is(err, scan.ErrPoseEstimation) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Error("Pose estimation service unavailable")
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Pose estimation service unavailable",
			"code":  "POSE_ESTIMATION_UNAVAILABLE",
		})
	}

	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
		"operation":  operation,
	}).Error("Unexpected error")

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "An unexpected error occurred",
	})
}

func (h *ErrorHandler) HandleValidationError(c *fiber.Ctx, requestID string, err error, path string) error {
	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
	}).Warn("Validation failed")

	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": "Validation failed: " + err.Error(),
		"code":  "VALIDATION_ERROR",
	})
}

func (h *ErrorHandler) HandleRequestTimeout(c *fiber.Ctx) error {
	return c.Status(fiber.StatusRequestTimeout).JSON(utils.StatusMessage(fiber.StatusRequestTimeout))
}

func (h *ErrorHandler) HandleSuccess(c *fiber.Ctx, statusCode int, data interface{}) error {
	if data == nil {
		return c.SendStatus(statusCode)
	}
	return c.Status(statusCode).JSON(data)
}
