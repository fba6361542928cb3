package response_models

// DashboardData averages the mood ledger over the rolling window; the
// check-in figures cover the most recent check-ins instead.
type DashboardData struct {
	Profile            ProfileView      `json:"profile"`
	MoodData           []MoodPoint      `json:"moodData"`
	AverageMood        float64          `json:"averageMood"`
	CheckInAverageMood float64          `json:"checkInAverageMood"`
	TotalCheckIns      int              `json:"totalCheckIns"`
	StepData           []StepPoint      `json:"stepData"`
	SleepData          []SleepPoint     `json:"sleepData"`
	Recommendations    []Recommendation `json:"recommendations"`
}

type HealthDataUpdate struct {
	Message string      `json:"message"`
	Profile ProfileView `json:"profile"`
}

type MoodUpdate struct {
	Message  string      `json:"message"`
	MoodData []MoodPoint `json:"moodData"`
}

type OnboardingResult struct {
	Profile         ProfileView      `json:"profile"`
	Recommendations []Recommendation `json:"recommendations"`
}

type OnboardingStatus struct {
	OnboardingCompleted bool `json:"onboardingCompleted"`
}
