package models

// AskRequest defines the structure for questions sent to the service.
type AskRequest struct {
	StoreID  string `json:"store_id"`
	Question string `json:"question"`
}

// Row is a single result row from the analytics backend.
type Row struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// QueryResult is the tabular result of one analytics query.
type QueryResult struct {
	Rows []Row `json:"rows"`
}

// DebugInfo exposes the validated plan and the generated query for
// observability. It is returned to the caller on every answer.
type DebugInfo struct {
	Plan      Plan   `json:"plan"`
	ShopifyQL string `json:"shopifyql"`
}

// Answer is the response envelope for one question.
type Answer struct {
	Answer     string    `json:"answer"`
	Confidence string    `json:"confidence"`
	Debug      DebugInfo `json:"debug"`
}
