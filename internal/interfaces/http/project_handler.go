package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rahmanabdur1/productivity-app/internal/application/dto"
	"github.com/rahmanabdur1/productivity-app/internal/application/reporting"
	"github.com/rahmanabdur1/productivity-app/internal/application/usecase"
)

// ProjectHandler handles the project endpoints, including the derived
// progress report (protected).
type ProjectHandler struct {
	uc      *usecase.ProjectUseCase
	reports *reporting.ReportUseCase
	pdf     *reporting.PDFUseCase
}

// NewProjectHandler builds the handler.
func NewProjectHandler(uc *usecase.ProjectUseCase, reports *reporting.ReportUseCase, pdf *reporting.PDFUseCase) *ProjectHandler {
	return &ProjectHandler{uc: uc, reports: reports, pdf: pdf}
}

// Create godoc
// @Summary      Create a project
// @Tags         projects
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProjectRequest  true  "project data"
// @Success      201   {object}  dto.ProjectResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/projects/projects/ [post]
func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProjectRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(GetScope(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      List visible projects
// @Tags         projects
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limit"   default(100)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {array}  dto.ProjectResponse
// @Router       /api/projects/projects/ [get]
func (h *ProjectHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetScope(c), c.QueryInt("limit"), c.QueryInt("offset"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Get a project by id
// @Tags         projects
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "project id"
// @Success      200  {object}  dto.ProjectResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/projects/projects/{id}/ [get]
func (h *ProjectHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetScope(c), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Update a project
// @Tags         projects
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "project id"
// @Param        body  body  dto.UpdateProjectRequest  true  "fields to update"
// @Success      200   {object}  dto.ProjectResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/projects/projects/{id}/ [put]
func (h *ProjectHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProjectRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(GetScope(c), c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Delete a project
// @Tags         projects
// @Security     Bearer
// @Param        id  path  string  true  "project id"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/projects/projects/{id}/ [delete]
func (h *ProjectHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetScope(c), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ProgressReport godoc
// @Summary      Project progress against the estimated-hours budget
// @Tags         projects
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "project id"
// @Success      200  {object}  dto.ProgressReportResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/projects/projects/{id}/progress_report/ [get]
func (h *ProjectHandler) ProgressReport(c *fiber.Ctx) error {
	out, err := h.reports.ProgressReport(c.Context(), GetScope(c), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// ProgressReportPDF godoc
// @Summary      Project progress report as a downloadable PDF
// @Tags         projects
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "project id"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/projects/projects/{id}/progress_report/pdf/ [get]
func (h *ProjectHandler) ProgressReportPDF(c *fiber.Ctx) error {
	data, err := h.pdf.ProgressReportPDF(c.Context(), GetScope(c), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="progress_report.pdf"`)
	return c.Send(data)
}
