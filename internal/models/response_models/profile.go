package response_models

import (
	"time"

	"aura/internal/models/db_models"
)

type StepPoint struct {
	Date  string `json:"date"`
	Steps int    `json:"steps"`
}

type SleepPoint struct {
	Date  string  `json:"date"`
	Hours float64 `json:"hours"`
}

type MoodPoint struct {
	Date   string `json:"date"`
	Rating int    `json:"rating"`
}

// ProfileView is the client-facing shape of a wellness profile. The ledgers
// are typed as any so handlers can substitute a windowed projection.
type ProfileView struct {
	UserID               string   `json:"user"`
	Name                 string   `json:"name"`
	Age                  int      `json:"age"`
	Gender               string   `json:"gender"`
	CurrentMentalHealth  string   `json:"currentMentalHealth"`
	JoinReason           string   `json:"joinReason,omitempty"`
	Goals                []string `json:"goals"`
	MentalHealthConcerns []string `json:"mentalHealthConcerns"`
	SleepPattern         string   `json:"sleepPattern,omitempty"`
	StressLevel          int      `json:"stressLevel,omitempty"`
	SocialConnection     string   `json:"socialConnection,omitempty"`
	ExerciseFrequency    string   `json:"exerciseFrequency,omitempty"`
	DietQuality          string   `json:"dietQuality,omitempty"`
	SubstanceUse         string   `json:"substanceUse,omitempty"`
	CopingMechanisms     string   `json:"copingMechanisms,omitempty"`
	OnboardingCompleted  bool     `json:"onboardingCompleted"`

	StepHistory         interface{}                   `json:"stepHistory"`
	SleepHistory        interface{}                   `json:"sleepHistory"`
	MoodHistory         interface{}                   `json:"moodHistory"`
	CompletedTasks      []string                      `json:"completedTasks"`
	Badges              []db_models.Badge             `json:"badges"`
	CompletedActivities []db_models.CompletedActivity `json:"completedActivities"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewProfileView(p *db_models.WellnessProfile) ProfileView {
	return ProfileView{
		UserID:               p.UserID,
		Name:                 p.Name,
		Age:                  p.Age,
		Gender:               string(p.Gender),
		CurrentMentalHealth:  string(p.CurrentMentalHealth),
		JoinReason:           p.JoinReason,
		Goals:                nonNil(p.Goals),
		MentalHealthConcerns: nonNil(p.MentalHealthConcerns),
		SleepPattern:         string(p.SleepPattern),
		StressLevel:          p.StressLevel,
		SocialConnection:     string(p.SocialConnection),
		ExerciseFrequency:    string(p.ExerciseFrequency),
		DietQuality:          string(p.DietQuality),
		SubstanceUse:         p.SubstanceUse,
		CopingMechanisms:     p.CopingMechanisms,
		OnboardingCompleted:  p.OnboardingCompleted,
		StepHistory:          nonNil(p.StepHistory),
		SleepHistory:         nonNil(p.SleepHistory),
		MoodHistory:          nonNil(p.MoodHistory),
		CompletedTasks:       nonNil(p.CompletedTasks),
		Badges:               nonNil(p.Badges),
		CompletedActivities:  nonNil(p.CompletedActivities),
		CreatedAt:            time.Unix(p.CreatedAt, 0),
		UpdatedAt:            time.Unix(p.UpdatedAt, 0),
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
