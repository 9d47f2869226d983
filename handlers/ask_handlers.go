package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/pithiyakeval/shopify-ai-analytics/agent"
	"github.com/pithiyakeval/shopify-ai-analytics/models"
)

// pipeline is the shared question-answering agent, set once at startup.
var pipeline *agent.Agent

// SetPipeline installs the agent used by HandleAsk.
func SetPipeline(a *agent.Agent) {
	pipeline = a
}

// HandleAsk answers a natural-language analytics question.
// POST /ask
func HandleAsk(c *fiber.Ctx) error {
	var req models.AskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	if req.StoreID == "" || req.Question == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "store_id and question are required",
		})
	}

	log.Printf("[ask] store=%s question=%q", req.StoreID, req.Question)
	answer := pipeline.Handle(c.Context(), req.StoreID, req.Question)
	return c.JSON(answer)
}
