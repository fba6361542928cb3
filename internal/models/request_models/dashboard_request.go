package request_models

type UpdateHealthDataRequest struct {
	StepCount     *int     `json:"stepCount"`
	SleepDuration *float64 `json:"sleepDuration"`
}

type UpdateMoodRequest struct {
	Rating *int `json:"rating" binding:"required"`
}

type CompleteTaskRequest struct {
	Task string `json:"task" binding:"required"`
}

type ShareBadgeRequest struct {
	BadgeID  string `json:"badgeId" binding:"required"`
	Platform string `json:"platform" binding:"required"`
}
