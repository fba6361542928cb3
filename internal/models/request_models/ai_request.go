package request_models

type AnalyzeRequest struct {
	Text        string `json:"text" binding:"required"`
	Mood        string `json:"mood"`
	StressLevel int    `json:"stressLevel" binding:"omitempty,gte=1,lte=10"`
}

type ChatRequest struct {
	Message  string `json:"message" binding:"required,max=4000"`
	Language string `json:"language"`
}
