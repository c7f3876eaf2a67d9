package dto

// MetricsResponse mirrors the /api/v1/metrics contract. The engine computes in
// exact decimal; conversion to JSON numbers happens only here, at the edge.
type MetricsResponse struct {
	MRR               float64 `json:"mrr"`
	ActiveSubscribers int     `json:"active_subscribers"`
	ChurnRate         float64 `json:"churn_rate"`
}
