package request_models

type CompleteActivityRequest struct {
	Activity  string `json:"activity" binding:"required"`
	Sentiment string `json:"sentiment"`
	// RFC3339 timestamp from the client; empty means now
	CompletedAt string `json:"completedAt"`
}
