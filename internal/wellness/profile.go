package wellness

import "aura/internal/models/db_models"

// PlaceholderProfile is what a user gets when the dashboard is opened before
// onboarding. onboardingCompleted stays false until the intake is submitted.
func PlaceholderProfile(userID string) *db_models.WellnessProfile {
	return &db_models.WellnessProfile{
		UserID:               userID,
		Name:                 "User",
		Age:                  25,
		Gender:               db_models.GenderUnspecified,
		CurrentMentalHealth:  db_models.WellbeingGood,
		Goals:                []string{},
		MentalHealthConcerns: []string{},
		StepHistory:          []db_models.StepEntry{},
		SleepHistory:         []db_models.SleepEntry{},
		MoodHistory:          []db_models.MoodEntry{},
		CompletedTasks:       []string{},
		Badges:               []db_models.Badge{},
		CompletedActivities:  []db_models.CompletedActivity{},
	}
}
