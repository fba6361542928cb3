package db_models

import (
	"time"

	"gorm.io/datatypes"
)

type StepEntry struct {
	Date  time.Time `json:"date" bson:"date"`
	Count int       `json:"count" bson:"count"`
}

type SleepEntry struct {
	Date     time.Time `json:"date" bson:"date"`
	Duration float64   `json:"duration" bson:"duration"`
}

type MoodEntry struct {
	Date   time.Time `json:"date" bson:"date"`
	Rating int       `json:"rating" bson:"rating"`
}

type BadgeKey string

type BadgeShare struct {
	Twitter  bool `json:"twitter" bson:"twitter"`
	LinkedIn bool `json:"linkedin" bson:"linkedin"`
}

type Badge struct {
	ID          string     `json:"id" bson:"id"`
	Key         BadgeKey   `json:"key" bson:"key"`
	Name        string     `json:"name" bson:"name"`
	Description string     `json:"description" bson:"description"`
	ImageURL    string     `json:"imageUrl" bson:"image_url"`
	EarnedAt    time.Time  `json:"earnedAt" bson:"earned_at"`
	Shared      BadgeShare `json:"shared" bson:"shared"`
}

type CompletedActivity struct {
	Activity    string    `json:"activity" bson:"activity"`
	Sentiment   string    `json:"sentiment" bson:"sentiment"`
	CompletedAt time.Time `json:"completedAt" bson:"completed_at"`
}

// WellnessProfile is the single per-user document. History, badge and
// activity collections are stored as JSON columns so a profile is read and
// written as one unit; Version guards concurrent writers.
type WellnessProfile struct {
	BaseModel `bson:",inline"`

	UserID  string `gorm:"uniqueIndex;not null" bson:"user"`
	Version int64  `gorm:"not null;default:1" bson:"version"`

	Name                 string                      `gorm:"not null" bson:"name"`
	Age                  int                         `gorm:"not null" bson:"age"`
	Gender               Gender                      `gorm:"default:unspecified" bson:"gender"`
	CurrentMentalHealth  WellbeingLevel              `gorm:"not null" bson:"current_mental_health"`
	JoinReason           string                      `bson:"join_reason"`
	Goals                datatypes.JSONSlice[string] `bson:"goals"`
	MentalHealthConcerns datatypes.JSONSlice[string] `bson:"mental_health_concerns"`

	SleepPattern      WellbeingLevel    `bson:"sleep_pattern"`
	StressLevel       int               `bson:"stress_level"`
	SocialConnection  SocialConnection  `bson:"social_connection"`
	ExerciseFrequency ExerciseFrequency `bson:"exercise_frequency"`
	DietQuality       DietQuality       `bson:"diet_quality"`
	SubstanceUse      string            `bson:"substance_use"`
	CopingMechanisms  string            `bson:"coping_mechanisms"`

	OnboardingCompleted bool `gorm:"not null;default:false" bson:"onboarding_completed"`

	StepHistory         datatypes.JSONSlice[StepEntry]         `bson:"step_history"`
	SleepHistory        datatypes.JSONSlice[SleepEntry]        `bson:"sleep_history"`
	MoodHistory         datatypes.JSONSlice[MoodEntry]         `bson:"mood_history"`
	CompletedTasks      datatypes.JSONSlice[string]            `bson:"completed_tasks"`
	Badges              datatypes.JSONSlice[Badge]             `bson:"badges"`
	CompletedActivities datatypes.JSONSlice[CompletedActivity] `bson:"completed_activities"`
}

func (WellnessProfile) TableName() string {
	return "user_profiles"
}

// HasCompletedTask reports whether task is already recorded.
func (p *WellnessProfile) HasCompletedTask(task string) bool {
	for _, t := range p.CompletedTasks {
		if t == task {
			return true
		}
	}
	return false
}
