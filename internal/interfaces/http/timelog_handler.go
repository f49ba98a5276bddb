package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rahmanabdur1/productivity-app/internal/application/dto"
	"github.com/rahmanabdur1/productivity-app/internal/application/reporting"
	"github.com/rahmanabdur1/productivity-app/internal/application/usecase"
)

// TimeLogHandler handles the time log endpoints and the daily summary
// (protected).
type TimeLogHandler struct {
	uc      *usecase.TimeLogUseCase
	reports *reporting.ReportUseCase
}

// NewTimeLogHandler builds the handler.
func NewTimeLogHandler(uc *usecase.TimeLogUseCase, reports *reporting.ReportUseCase) *TimeLogHandler {
	return &TimeLogHandler{uc: uc, reports: reports}
}

// Create godoc
// @Summary      Record a time log
// @Tags         timetracking
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTimeLogRequest  true  "log data; owner comes from the token"
// @Success      201   {object}  dto.TimeLogResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/timetracking/timelogs/ [post]
func (h *TimeLogHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTimeLogRequest
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
// @Summary      List visible time logs
// @Tags         timetracking
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limit"   default(100)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {array}  dto.TimeLogResponse
// @Router       /api/timetracking/timelogs/ [get]
func (h *TimeLogHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetScope(c), c.QueryInt("limit"), c.QueryInt("offset"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// DailySummary godoc
// @Summary      Per-day working hours, app usage and productivity score
// @Tags         timetracking
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  false  "YYYY-MM-DD, defaults to 7 days ago"
// @Param        end_date    query  string  false  "YYYY-MM-DD, defaults to today"
// @Success      200  {array}  dto.DailySummaryRecord
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/timetracking/timelogs/daily_summary/ [get]
func (h *TimeLogHandler) DailySummary(c *fiber.Ctx) error {
	out, err := h.reports.DailySummary(c.Context(), GetScope(c),
		c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Get a time log by id
// @Tags         timetracking
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "time log id"
// @Success      200  {object}  dto.TimeLogResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/timetracking/timelogs/{id}/ [get]
func (h *TimeLogHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetScope(c), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Update a time log
// @Tags         timetracking
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "time log id"
// @Param        body  body  dto.UpdateTimeLogRequest  true  "fields to update"
// @Success      200   {object}  dto.TimeLogResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/timetracking/timelogs/{id}/ [put]
func (h *TimeLogHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTimeLogRequest
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
// @Summary      Delete a time log
// @Tags         timetracking
// @Security     Bearer
// @Param        id  path  string  true  "time log id"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/timetracking/timelogs/{id}/ [delete]
func (h *TimeLogHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetScope(c), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
