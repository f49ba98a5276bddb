package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rahmanabdur1/productivity-app/internal/application/dto"
	"github.com/rahmanabdur1/productivity-app/internal/application/usecase"
)

// ActivityMetricHandler handles the activity metric endpoints (protected).
type ActivityMetricHandler struct {
	uc *usecase.ActivityMetricUseCase
}

// NewActivityMetricHandler builds the handler.
func NewActivityMetricHandler(uc *usecase.ActivityMetricUseCase) *ActivityMetricHandler {
	return &ActivityMetricHandler{uc: uc}
}

// Create godoc
// @Summary      Record an activity metric sample
// @Tags         timetracking
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateActivityMetricRequest  true  "sample data; owner comes from the token"
// @Success      201   {object}  dto.ActivityMetricResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/timetracking/activitymetrics/ [post]
func (h *ActivityMetricHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateActivityMetricRequest
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
// @Summary      List visible activity metrics
// @Tags         timetracking
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limit"   default(100)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {array}  dto.ActivityMetricResponse
// @Router       /api/timetracking/activitymetrics/ [get]
func (h *ActivityMetricHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetScope(c), c.QueryInt("limit"), c.QueryInt("offset"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Get an activity metric by id
// @Tags         timetracking
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "metric id"
// @Success      200  {object}  dto.ActivityMetricResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/timetracking/activitymetrics/{id}/ [get]
func (h *ActivityMetricHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetScope(c), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Update an activity metric
// @Tags         timetracking
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "metric id"
// @Param        body  body  dto.UpdateActivityMetricRequest  true  "fields to update"
// @Success      200   {object}  dto.ActivityMetricResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/timetracking/activitymetrics/{id}/ [put]
func (h *ActivityMetricHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateActivityMetricRequest
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
// @Summary      Delete an activity metric
// @Tags         timetracking
// @Security     Bearer
// @Param        id  path  string  true  "metric id"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/timetracking/activitymetrics/{id}/ [delete]
func (h *ActivityMetricHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetScope(c), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
