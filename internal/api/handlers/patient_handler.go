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

// PatientHandler exposes the patient demographics endpoints.
type PatientHandler struct {
	patientService services.PatientServiceContract
	logger         *log.Logger
}

// NewPatientHandler creates a new PatientHandler.
func NewPatientHandler(ps services.PatientServiceContract, logger *log.Logger) *PatientHandler {
	return &PatientHandler{
		patientService: ps,
		logger:         logger,
	}
}

// CreatePatient handles POST /api/patients.
func (h *PatientHandler) CreatePatient(c *fiber.Ctx) error {
	var req dtos.CreatePatientRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "firstName, lastName, dob, and gender are required",
		})
	}

	patient, err := h.patientService.CreatePatient(c.Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "firstName, lastName, dob, and gender are required",
			})
		}
		h.logger.Printf("create patient error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Server error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(patient)
}

// ListPatients handles GET /api/patients.
func (h *PatientHandler) ListPatients(c *fiber.Ctx) error {
	patients, err := h.patientService.ListPatients(c.Context())
	if err != nil {
		h.logger.Printf("list patients error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Server error",
		})
	}
	return c.JSON(patients)
}

// GetPatient handles GET /api/patients/:id.
func (h *PatientHandler) GetPatient(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Patient not found",
		})
	}

	patient, err := h.patientService.GetPatient(c.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrPatientNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Patient not found",
			})
		}
		h.logger.Printf("get patient error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Server error",
		})
	}

	return c.JSON(patient)
}

// RegisterPatientRoutes wires the patient endpoints under /api/patients.
func RegisterPatientRoutes(app *fiber.App, h *PatientHandler, authenticate fiber.Handler, policy auth.Policy) {
	group := app.Group("/api/patients", authenticate)
	group.Post("/", middleware.Permit(policy, auth.OpPatientsWrite), h.CreatePatient)
	group.Get("/", middleware.Permit(policy, auth.OpPatientsRead), h.ListPatients)
	group.Get("/:id", middleware.Permit(policy, auth.OpPatientsRead), h.GetPatient)
}
