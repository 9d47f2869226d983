package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	QuestionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ai_questions_total",
			Help: "Total number of questions answered, by resolved intent",
		},
		[]string{"intent"},
	)

	LLMAttempts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ai_llm_attempts_total",
			Help: "Total number of LLM invocation attempts",
		},
	)

	LLMFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ai_llm_failures_total",
			Help: "Total number of failed LLM invocation attempts",
		},
	)
)
