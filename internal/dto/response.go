package dto

// CountResponse GET /count.
type CountResponse struct {
	Count int64 `json:"count"`
}

// HealthResponse GET /health.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Redis    string `json:"redis"`
}
