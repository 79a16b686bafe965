package handlers

import (
	"errors"
	"log"

	"health-records-service/internal/api/middleware"
	"health-records-service/internal/auth"
	"health-records-service/internal/domain/dtos"
	"health-records-service/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RecordHandler exposes the medical record endpoints.
type RecordHandler struct {
	recordService services.RecordServiceContract
	logger        *log.Logger
}

// NewRecordHandler creates a new RecordHandler.
func NewRecordHandler(rs services.RecordServiceContract, logger *log.Logger) *RecordHandler {
	return &RecordHandler{
		recordService: rs,
		logger:        logger,
	}
}

// CreateRecord handles POST /api/records.
func (h *RecordHandler) CreateRecord(c *fiber.Ctx) error {
	var req dtos.CreateRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "patientId, recordType, and data are required",
		})
	}

	caller := middleware.PrincipalFrom(c)
	resp, err := h.recordService.CreateRecord(c.Context(), caller, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "patientId, recordType, and data are required",
			})
		case errors.Is(err, services.ErrPatientNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Patient not found",
			})
		default:
			h.logger.Printf("create record error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Server error",
			})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListByPatient handles GET /api/records/patient/:patientId, returning the
// patient's records decrypted, newest first.
func (h *RecordHandler) ListByPatient(c *fiber.Ctx) error {
	patientID, err := uuid.Parse(c.Params("patientId"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Patient not found",
		})
	}

	result, err := h.recordService.ListByPatient(c.Context(), patientID)
	if err != nil {
		if errors.Is(err, services.ErrPatientNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Patient not found",
			})
		}
		h.logger.Printf("list records error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Server error",
		})
	}

	return c.JSON(result)
}

// RegisterRecordRoutes wires the record endpoints under /api/records. Every
// route authenticates first and then checks the role policy; the payload is
// only looked at after both succeed.
func RegisterRecordRoutes(app *fiber.App, h *RecordHandler, authenticate fiber.Handler, policy auth.Policy) {
	group := app.Group("/api/records", authenticate)
	group.Post("/", middleware.Permit(policy, auth.OpRecordsWrite), h.CreateRecord)
	group.Get("/patient/:patientId", middleware.Permit(policy, auth.OpRecordsRead), h.ListByPatient)
}
