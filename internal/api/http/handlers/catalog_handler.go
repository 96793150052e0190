package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clinicops/notes-dashboard/internal/analytics"
	"github.com/clinicops/notes-dashboard/internal/domain"
	"github.com/clinicops/notes-dashboard/internal/service"
)

// CatalogHandler lists the roster.
type CatalogHandler struct {
	service *service.DashboardService
}

// NewCatalogHandler constructs handler.
func NewCatalogHandler(dashboardService *service.DashboardService) *CatalogHandler {
	return &CatalogHandler{service: dashboardService}
}

// ListDepartments GET /api/v1/catalog/departments.
func (h *CatalogHandler) ListDepartments(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": departmentList(h.service.Catalog().Departments())})
}

// ListDoctors GET /api/v1/catalog/doctors?departments=a,b. The department
// filter narrows the list the same way the practitioner panel does.
func (h *CatalogHandler) ListDoctors(c *fiber.Ctx) error {
	departments, err := parseIDList(c.Query("departments"), "departments")
	if err != nil {
		return err
	}
	cat := h.service.Catalog()
	doctors := analytics.AvailableDoctors(cat.Departments(), cat.Doctors(), domain.NewIDSet(departments...))
	return c.JSON(fiber.Map{"data": doctorList(doctors)})
}
