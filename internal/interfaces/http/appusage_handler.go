package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rahmanabdur1/productivity-app/internal/application/dto"
	"github.com/rahmanabdur1/productivity-app/internal/application/reporting"
	"github.com/rahmanabdur1/productivity-app/internal/application/usecase"
)

// AppUsageHandler handles the app-usage endpoints and the per-application
// summary (protected).
type AppUsageHandler struct {
	uc      *usecase.AppUsageUseCase
	reports *reporting.ReportUseCase
}

// NewAppUsageHandler builds the handler.
func NewAppUsageHandler(uc *usecase.AppUsageUseCase, reports *reporting.ReportUseCase) *AppUsageHandler {
	return &AppUsageHandler{uc: uc, reports: reports}
}

// Create godoc
// @Summary      Record an app-usage sample
// @Tags         timetracking
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAppUsageRequest  true  "sample data; owner comes from the token"
// @Success      201   {object}  dto.AppUsageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/timetracking/appusages/ [post]
func (h *AppUsageHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAppUsageRequest
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
// @Summary      List visible app-usage samples
// @Tags         timetracking
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limit"   default(100)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {array}  dto.AppUsageResponse
// @Router       /api/timetracking/appusages/ [get]
func (h *AppUsageHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetScope(c), c.QueryInt("limit"), c.QueryInt("offset"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Summary godoc
// @Summary      Total usage hours grouped by application
// @Tags         timetracking
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  false  "YYYY-MM-DD, defaults to 30 days ago"
// @Param        end_date    query  string  false  "YYYY-MM-DD, defaults to today"
// @Success      200  {array}  dto.AppUsageSummaryRecord
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/timetracking/appusages/summary/ [get]
func (h *AppUsageHandler) Summary(c *fiber.Ctx) error {
	out, err := h.reports.AppUsageSummary(c.Context(), GetScope(c),
		c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Get an app-usage sample by id
// @Tags         timetracking
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "sample id"
// @Success      200  {object}  dto.AppUsageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/timetracking/appusages/{id}/ [get]
func (h *AppUsageHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetScope(c), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Update an app-usage sample
// @Tags         timetracking
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "sample id"
// @Param        body  body  dto.UpdateAppUsageRequest  true  "fields to update"
// @Success      200   {object}  dto.AppUsageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/timetracking/appusages/{id}/ [put]
func (h *AppUsageHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateAppUsageRequest
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
// @Summary      Delete an app-usage sample
// @Tags         timetracking
// @Security     Bearer
// @Param        id  path  string  true  "sample id"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/timetracking/appusages/{id}/ [delete]
func (h *AppUsageHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetScope(c), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
