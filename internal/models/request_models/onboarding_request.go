package request_models

// OnboardingRequest is the full intake form. Every submission overwrites the
// stored intake, so every required field must be resupplied.
type OnboardingRequest struct {
	Name                 string   `json:"name" binding:"required"`
	Age                  int      `json:"age" binding:"required,gte=13,lte=120"`
	Gender               string   `json:"gender" binding:"omitempty,oneof=male female other unspecified"`
	CurrentMentalHealth  string   `json:"currentMentalHealth" binding:"required,oneof=Excellent Good Fair Poor Struggling"`
	JoinReason           string   `json:"joinReason"`
	Goals                []string `json:"goals" binding:"required"`
	SleepPattern         string   `json:"sleepPattern" binding:"required,oneof=Excellent Good Fair Poor Struggling"`
	StressLevel          int      `json:"stressLevel" binding:"required,gte=1,lte=10"`
	SocialConnection     string   `json:"socialConnection" binding:"required,oneof=Strong Moderate Weak Isolated"`
	MentalHealthConcerns []string `json:"mentalHealthConcerns" binding:"required"`
	ExerciseFrequency    string   `json:"exerciseFrequency" binding:"required,oneof=daily 3-4-times-week 1-2-times-week rarely never"`
	DietQuality          string   `json:"dietQuality" binding:"required,oneof=excellent good fair poor"`
	SubstanceUse         string   `json:"substanceUse" binding:"required"`
	CopingMechanisms     string   `json:"copingMechanisms" binding:"required"`
}
