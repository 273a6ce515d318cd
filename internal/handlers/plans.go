package handlers

import (
	"github.com/gofiber/fiber/v3"
	"github.com/resicare/resicare-api/internal/models"
)

type PlanHandler struct{}

func NewPlanHandler() *PlanHandler {
	return &PlanHandler{}
}

// List returns the full plan catalog.
func (h *PlanHandler) List(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"plans": models.AllPlans(),
	})
}

// Get returns one plan by id.
func (h *PlanHandler) Get(c fiber.Ctx) error {
	plan, ok := models.GetPlan(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":   "Not Found",
			"message": "Unknown plan",
		})
	}

	return c.JSON(fiber.Map{
		"plan": plan,
	})
}
