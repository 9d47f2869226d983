package llm

import "fmt"

// intentPromptTemplate instructs the model to answer with strict JSON
// carrying exactly the three plan fields. Models violate this instruction
// often enough that the extractor must tolerate prose and markdown anyway.
const intentPromptTemplate = `You are an AI planning agent for a Shopify analytics system.

Your job is to analyze the question and extract ONLY these fields:

- intent: one of [sales, inventory, customers]
- metric: short string (example: quantity, available, count)
- time_range_days: integer number of days

RULES:
- Respond with ONLY valid JSON
- Do NOT include markdown
- Do NOT include explanations
- Do NOT include extra fields
- If unsure, make a reasonable assumption

Question:
%s

VALID RESPONSE FORMAT:
{
  "intent": "sales",
  "metric": "quantity",
  "time_range_days": 7
}`

// IntentPrompt renders the planning prompt for one question.
func IntentPrompt(question string) string {
	return fmt.Sprintf(intentPromptTemplate, question)
}
