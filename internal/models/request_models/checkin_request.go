package request_models

type CreateCheckInRequest struct {
	Mood        int    `json:"mood" binding:"required,gte=1,lte=5"`
	StressLevel int    `json:"stressLevel" binding:"required,gte=1,lte=10"`
	Journal     string `json:"journal" binding:"max=5000"`
}
