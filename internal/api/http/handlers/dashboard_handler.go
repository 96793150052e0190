package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/clinicops/notes-dashboard/internal/domain"
	"github.com/clinicops/notes-dashboard/internal/service"
	apperrors "github.com/clinicops/notes-dashboard/pkg/util/errorutil"
)

const (
	maxFilterIDs = 500
	maxIDLength  = 128
)

// DashboardHandler exposes dashboard sessions and stateless previews.
type DashboardHandler struct {
	service *service.DashboardService
	version string
}

// NewDashboardHandler constructs handler.
func NewDashboardHandler(dashboardService *service.DashboardService, version string) *DashboardHandler {
	return &DashboardHandler{service: dashboardService, version: version}
}

// Preview GET /api/v1/dashboard?departments=a,b&doctors=x,y.
func (h *DashboardHandler) Preview(c *fiber.Ctx) error {
	departments, err := parseIDList(c.Query("departments"), "departments")
	if err != nil {
		return err
	}
	doctors, err := parseIDList(c.Query("doctors"), "doctors")
	if err != nil {
		return err
	}
	view := h.service.Preview(c.UserContext(), domain.NewSelection(departments, doctors))
	return c.JSON(fiber.Map{"data": dashboardResponse(view, h.service.Catalog(), h.version)})
}

// OpenSession POST /api/v1/sessions.
func (h *DashboardHandler) OpenSession(c *fiber.Ctx) error {
	view := h.service.OpenSession(c.UserContext())
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dashboardResponse(view, h.service.Catalog(), h.version)})
}

// GetSession GET /api/v1/sessions/:id.
func (h *DashboardHandler) GetSession(c *fiber.Ctx) error {
	view, err := h.service.GetSession(c.UserContext(), c.Params("id"))
	return h.respond(c, view, err)
}

// ToggleDepartment POST /api/v1/sessions/:id/departments/:departmentId/toggle.
func (h *DashboardHandler) ToggleDepartment(c *fiber.Ctx) error {
	view, err := h.service.ToggleDepartment(c.UserContext(), c.Params("id"), c.Params("departmentId"))
	return h.respond(c, view, err)
}

// ToggleDoctor POST /api/v1/sessions/:id/doctors/:doctorId/toggle.
func (h *DashboardHandler) ToggleDoctor(c *fiber.Ctx) error {
	view, err := h.service.ToggleDoctor(c.UserContext(), c.Params("id"), c.Params("doctorId"))
	return h.respond(c, view, err)
}

// ClearDepartments DELETE /api/v1/sessions/:id/departments.
func (h *DashboardHandler) ClearDepartments(c *fiber.Ctx) error {
	view, err := h.service.ClearDepartments(c.UserContext(), c.Params("id"))
	return h.respond(c, view, err)
}

// ClearDoctors DELETE /api/v1/sessions/:id/doctors.
func (h *DashboardHandler) ClearDoctors(c *fiber.Ctx) error {
	view, err := h.service.ClearDoctors(c.UserContext(), c.Params("id"))
	return h.respond(c, view, err)
}

// CloseSession DELETE /api/v1/sessions/:id.
func (h *DashboardHandler) CloseSession(c *fiber.Ctx) error {
	if err := h.service.CloseSession(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func (h *DashboardHandler) respond(c *fiber.Ctx, view service.SessionView, err error) error {
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dashboardResponse(view, h.service.Catalog(), h.version)})
}

func parseIDList(raw, field string) ([]string, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	if len(parts) > maxFilterIDs {
		return nil, apperrors.NewValidationError("too many ids", map[string]any{"field": field, "max": maxFilterIDs})
	}
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		id := strings.TrimSpace(p)
		if id == "" {
			continue
		}
		if len(id) > maxIDLength {
			return nil, apperrors.NewValidationError("id too long", map[string]any{"field": field, "max_length": maxIDLength})
		}
		ids = append(ids, id)
	}
	return ids, nil
}
