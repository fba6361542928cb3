package response_models

import "aura/internal/models/db_models"

type ActivityCompletion struct {
	Message             string                        `json:"message"`
	CompletedActivities []db_models.CompletedActivity `json:"completedActivities"`
	NewBadges           []db_models.Badge             `json:"newBadges,omitempty"`
}

type ActivityHistory struct {
	CompletedActivities []db_models.CompletedActivity `json:"completedActivities"`
}

type CheckInHistory struct {
	CheckIns []db_models.CheckIn `json:"checkIns"`
}

type AnalysisResult struct {
	Sentiment            string   `json:"sentiment"`
	Emotion              string   `json:"emotion"`
	Recommendations      []string `json:"recommendations"`
	PersonalizedResponse string   `json:"personalizedResponse"`
}

type ChatReply struct {
	Response string `json:"response"`
}

type AssistantReply struct {
	Message string `json:"message"`
}
