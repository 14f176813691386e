package models

// Categorize request outcome constants, used as metric label values.
const (
	OutcomeStored    = "stored"
	OutcomeMalformed = "malformed"
	OutcomeStoreFail = "store_failure"
)

// HealthResponse is the body returned by GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}
