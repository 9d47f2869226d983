package llm

import (
	"context"
	"log"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/pithiyakeval/shopify-ai-analytics/metrics"
)

// retryInterval is the fixed pause between attempts against a backend.
const retryInterval = 500 * time.Millisecond

// retryGateway wraps a fallible backend with bounded retries. After the
// last attempt fails it returns an empty string, which the pipeline treats
// as "model gave nothing usable" rather than an error.
type retryGateway struct {
	inner      asker
	maxRetries int
}

func withRetry(inner asker, maxRetries int) Gateway {
	if maxRetries < 0 {
		maxRetries = 0
	}
	return &retryGateway{inner: inner, maxRetries: maxRetries}
}

func (g *retryGateway) Ask(ctx context.Context, prompt string) string {
	var out string

	attempt := func() error {
		metrics.LLMAttempts.Inc()
		text, err := g.inner.ask(ctx, prompt)
		if err != nil {
			metrics.LLMFailures.Inc()
			log.Printf("[llm] attempt failed: %v", err)
			return err
		}
		out = text
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(retryInterval), uint64(g.maxRetries)),
		ctx,
	)

	if err := backoff.Retry(attempt, policy); err != nil {
		return ""
	}
	return out
}
