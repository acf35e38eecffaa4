package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/staffing-service/internal/api/dto"
	"github.com/spec-kit/staffing-service/internal/auth"
	"github.com/spec-kit/staffing-service/internal/domain"
	"github.com/spec-kit/staffing-service/internal/service"
	apperrors "github.com/spec-kit/staffing-service/pkg/util"
)

const dateLayout = "2006-01-02"

// SubmissionsHandler manages submission endpoints.
type SubmissionsHandler struct {
	service *service.SubmissionService
}

// NewSubmissionsHandler constructs handler.
func NewSubmissionsHandler(submissionService *service.SubmissionService) *SubmissionsHandler {
	return &SubmissionsHandler{service: submissionService}
}

// List GET /submissions.
func (h *SubmissionsHandler) List(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	filter, err := parseSubmissionQuery(c)
	if err != nil {
		return err
	}
	details, err := h.service.List(c.Context(), principal.Identity(), filter)
	if err != nil {
		return err
	}
	items := make([]dto.SubmissionDetailResponse, 0, len(details))
	for i := range details {
		items = append(items, dto.NewSubmissionDetailResponse(&details[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Create POST /submissions.
func (h *SubmissionsHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.CreateSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	input := service.SubmissionCreateInput{
		ConsultantID:  req.ConsultantID,
		CompanyID:     req.CompanyID,
		PositionTitle: req.PositionTitle,
		RateSubmitted: req.RateSubmitted,
		Notes:         req.Notes,
	}
	if req.SubmissionDate != "" {
		date, err := time.Parse(dateLayout, req.SubmissionDate)
		if err != nil {
			return apperrors.NewValidationError("submission_date must be YYYY-MM-DD", nil)
		}
		input.SubmissionDate = &date
	}

	submission, err := h.service.Create(c.Context(), principal.Identity(), input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewSubmissionResponse(submission)})
}

// Update PUT /submissions/:id.
func (h *SubmissionsHandler) Update(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req dto.UpdateSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	input := service.SubmissionUpdateInput{
		ConsultantID:  req.ConsultantID,
		CompanyID:     req.CompanyID,
		PositionTitle: req.PositionTitle,
		Status:        req.Status,
		RateSubmitted: req.RateSubmitted,
		Notes:         req.Notes,
		InterviewDate: req.InterviewDate,
		Feedback:      req.Feedback,
	}
	if req.SubmissionDate != nil {
		date, err := time.Parse(dateLayout, *req.SubmissionDate)
		if err != nil {
			return apperrors.NewValidationError("submission_date must be YYYY-MM-DD", nil)
		}
		input.SubmissionDate = &date
	}

	submission, err := h.service.Update(c.Context(), principal.Identity(), id, input)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewSubmissionResponse(submission)})
}

// Delete DELETE /submissions/:id.
func (h *SubmissionsHandler) Delete(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Context(), principal.Identity(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "submission deleted successfully"})
}

// Stats GET /submissions/stats.
func (h *SubmissionsHandler) Stats(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	stats, err := h.service.Stats(c.Context(), principal.Identity())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": stats})
}

func parseSubmissionQuery(c *fiber.Ctx) (service.SubmissionListFilter, error) {
	filter := service.SubmissionListFilter{}
	var err error
	if filter.ConsultantID, err = parseInt64Query(c, "consultant_id"); err != nil {
		return filter, err
	}
	if filter.CompanyID, err = parseInt64Query(c, "company_id"); err != nil {
		return filter, err
	}
	if status := c.Query("status"); status != "" {
		s := domain.SubmissionStatus(status)
		filter.Status = &s
	}
	if filter.StartDate, err = parseDateQuery(c, "start_date"); err != nil {
		return filter, err
	}
	if filter.EndDate, err = parseDateQuery(c, "end_date"); err != nil {
		return filter, err
	}
	return filter, nil
}

func parseID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("invalid id", nil)
	}
	return id, nil
}

func parseInt64Query(c *fiber.Ctx, key string) (*int64, error) {
	val := c.Query(key)
	if val == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return nil, apperrors.NewValidationError(key+" must be an integer", nil)
	}
	return &parsed, nil
}

func parseDateQuery(c *fiber.Ctx, key string) (*time.Time, error) {
	val := c.Query(key)
	if val == "" {
		return nil, nil
	}
	parsed, err := time.Parse(dateLayout, val)
	if err != nil {
		return nil, apperrors.NewValidationError(key+" must be YYYY-MM-DD", nil)
	}
	return &parsed, nil
}
