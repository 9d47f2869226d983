package agent

import (
	"context"
	"errors"
	"log"

	"github.com/pithiyakeval/shopify-ai-analytics/llm"
	"github.com/pithiyakeval/shopify-ai-analytics/metrics"
	"github.com/pithiyakeval/shopify-ai-analytics/models"
	"github.com/pithiyakeval/shopify-ai-analytics/query"
	"github.com/pithiyakeval/shopify-ai-analytics/utils"
)

// noDataAnswer is the degraded answer when a query legitimately produced no
// rows. The request still succeeds; only the confidence drops.
const noDataAnswer = "No data is available for that question yet. Try again once the store has recorded some activity."

// Agent runs the question-answering pipeline: plan with the LLM, validate,
// build ShopifyQL, execute, explain. One Agent serves all requests; it holds
// no per-request state.
type Agent struct {
	gateway  llm.Gateway
	executor query.Executor
}

func New(gateway llm.Gateway, executor query.Executor) *Agent {
	return &Agent{gateway: gateway, executor: executor}
}

// Handle answers one question for one store. It never fails: unusable model
// output degrades to deterministic fallbacks, and an empty query result
// degrades to a fixed "no data" answer.
func (a *Agent) Handle(ctx context.Context, storeID, question string) models.Answer {
	prompt := llm.IntentPrompt(question)
	raw := a.gateway.Ask(ctx, prompt)
	log.Printf("[agent] store=%s llm raw output: %s", storeID, utils.TruncateForLog(raw, 500))

	candidate := ExtractCandidate(raw)
	plan := ValidatePlan(candidate, question)
	shopifyql := BuildShopifyQL(plan)

	metrics.QuestionsTotal.WithLabelValues(string(plan.Intent)).Inc()

	result, err := a.executor.Execute(ctx, shopifyql)
	if err != nil {
		log.Printf("[agent] store=%s query execution failed: %v", storeID, err)
		result = models.QueryResult{}
	}

	answer, err := ExplainResult(result, plan)
	confidence := "medium"
	if errors.Is(err, ErrNoData) {
		answer = noDataAnswer
		confidence = "low"
	}

	return models.Answer{
		Answer:     answer,
		Confidence: confidence,
		Debug: models.DebugInfo{
			Plan:      plan,
			ShopifyQL: shopifyql,
		},
	}
}
