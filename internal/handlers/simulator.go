package handlers

import (
	"context"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"github.com/resicare/resicare-api/internal/middleware"
	"github.com/resicare/resicare-api/internal/simulator"
)

type SimulatorHandler struct {
	store *simulator.CalculationStore
}

func NewSimulatorHandler(store *simulator.CalculationStore) *SimulatorHandler {
	return &SimulatorHandler{store: store}
}

// SimulatorInput is the raw simulator form as submitted. Fields arrive as
// strings so empty and non-numeric input fail validation instead of being
// coerced to zero.
type SimulatorInput struct {
	ItemValue string `json:"item_value"`
	Plan      string `json:"plan"` // plan price as entered in the select
	Duration  string `json:"duration"`
}

// Validate runs the three field checks and reports each result.
func (h *SimulatorHandler) Validate(c fiber.Ctx) error {
	var input SimulatorInput
	if err := c.Bind().JSON(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Bad Request",
			"message": "Invalid request body",
		})
	}

	lang := requestLanguage(c)
	itemValue := simulator.ValidateItemValue(input.ItemValue, lang)
	duration := simulator.ValidateDuration(input.Duration, lang)
	plan := simulator.ValidatePlan(input.Plan, lang)

	return c.JSON(fiber.Map{
		"valid": itemValue.Valid && duration.Valid && plan.Valid,
		"fields": fiber.Map{
			"item_value": itemValue,
			"duration":   duration,
			"plan":       plan,
		},
	})
}

// Calculate validates, computes the premium and persists it as the session's
// last calculation. Invalid input returns the per-field messages and no
// calculation at all.
func (h *SimulatorHandler) Calculate(c fiber.Ctx) error {
	var input SimulatorInput
	if err := c.Bind().JSON(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Bad Request",
			"message": "Invalid request body",
		})
	}

	lang := requestLanguage(c)
	itemValueResult := simulator.ValidateItemValue(input.ItemValue, lang)
	durationResult := simulator.ValidateDuration(input.Duration, lang)
	planResult := simulator.ValidatePlan(input.Plan, lang)

	if !itemValueResult.Valid || !durationResult.Valid || !planResult.Valid {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"valid": false,
			"fields": fiber.Map{
				"item_value": itemValueResult,
				"duration":   durationResult,
				"plan":       planResult,
			},
		})
	}

	// Parses cannot fail after validation.
	itemValue, _ := strconv.ParseFloat(input.ItemValue, 64)
	planPrice, _ := strconv.ParseFloat(input.Plan, 64)
	duration, _ := strconv.Atoi(input.Duration)

	calc := simulator.Calculate(itemValue, planPrice, duration)

	sessionID := middleware.GetSessionID(c)
	h.store.Save(context.Background(), sessionID, calc)

	return c.JSON(fiber.Map{
		"valid":       true,
		"calculation": calc,
	})
}

// Last returns the session's saved calculation if it is under 24 hours old.
func (h *SimulatorHandler) Last(c fiber.Ctx) error {
	sessionID := middleware.GetSessionID(c)
	saved, ok := h.store.Load(context.Background(), sessionID)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":   "Not Found",
			"message": "No saved calculation",
		})
	}

	return c.JSON(fiber.Map{
		"calculation": saved,
	})
}

// Reset clears the session's saved calculation.
func (h *SimulatorHandler) Reset(c fiber.Ctx) error {
	sessionID := middleware.GetSessionID(c)
	h.store.Reset(context.Background(), sessionID)

	return c.JSON(fiber.Map{
		"message": "Simulator reset",
		"defaults": fiber.Map{
			"item_value": simulator.DefaultItemValue,
			"plan":       simulator.DefaultPlanID,
			"duration":   simulator.DefaultDuration,
		},
	})
}
