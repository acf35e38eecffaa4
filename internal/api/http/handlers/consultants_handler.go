package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/staffing-service/internal/api/dto"
	"github.com/spec-kit/staffing-service/internal/auth"
	"github.com/spec-kit/staffing-service/internal/service"
	apperrors "github.com/spec-kit/staffing-service/pkg/util"
)

// ConsultantsHandler manages consultant directory endpoints.
type ConsultantsHandler struct {
	service *service.ConsultantService
}

// NewConsultantsHandler constructs handler.
func NewConsultantsHandler(consultantService *service.ConsultantService) *ConsultantsHandler {
	return &ConsultantsHandler{service: consultantService}
}

// List GET /consultants.
func (h *ConsultantsHandler) List(c *fiber.Ctx) error {
	consultants, err := h.service.List(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.ConsultantResponse, 0, len(consultants))
	for i := range consultants {
		items = append(items, dto.NewConsultantResponse(&consultants[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Get GET /consultants/:id.
func (h *ConsultantsHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	consultant, err := h.service.Get(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewConsultantResponse(consultant)})
}

// Create POST /consultants.
func (h *ConsultantsHandler) Create(c *fiber.Ctx) error {
	var req dto.ConsultantRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	consultant, err := h.service.Create(c.Context(), consultantInput(req))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewConsultantResponse(consultant)})
}

// Update PUT /consultants/:id.
func (h *ConsultantsHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req dto.ConsultantRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	consultant, err := h.service.Update(c.Context(), id, consultantInput(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewConsultantResponse(consultant)})
}

// Delete DELETE /consultants/:id.
func (h *ConsultantsHandler) Delete(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.service.Remove(c.Context(), principal.Identity(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "consultant deleted successfully"})
}

func consultantInput(req dto.ConsultantRequest) service.ConsultantInput {
	return service.ConsultantInput{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Phone:           req.Phone,
		Skills:          req.Skills,
		ExperienceYears: req.ExperienceYears,
		RatePerHour:     req.RatePerHour,
		Availability:    req.Availability,
		Location:        req.Location,
		Notes:           req.Notes,
	}
}
