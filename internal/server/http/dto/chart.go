package dto

// PriorityResponse is one bar of the summary chart.
type PriorityResponse struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// MarketSizeResponse is one point of the reports chart.
type MarketSizeResponse struct {
	Year  int     `json:"year"`
	Value float64 `json:"value"`
}

// HealthResponse reports datastore reachability.
type HealthResponse struct {
	Status string `json:"status"`
}
