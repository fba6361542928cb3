package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"aura/internal/models/db_models"
	"aura/internal/models/request_models"
	"aura/internal/models/response_models"
	"aura/internal/wellness"
	mem "aura/pkg/memcache"
	"aura/pkg/utils"
)

// RecommendationTTL is how long onboarding recommendations stay on the dashboard.
const RecommendationTTL = 24 * time.Hour

type ProfileServiceInterface interface {
	SubmitOnboarding(ctx context.Context, userID string, req request_models.OnboardingRequest) (*response_models.OnboardingResult, error)
	OnboardingStatus(ctx context.Context, userID string) (bool, error)
}

type profileService struct {
	store ProfileStore
	ai    utils.GenerativeClient
	recs  mem.RecommendationStore
	rt    Runtime
}

func NewProfileService(store ProfileStore, ai utils.GenerativeClient, recs mem.RecommendationStore, rt Runtime) ProfileServiceInterface {
	return &profileService{store: store, ai: ai, recs: recs, rt: rt}
}

func (s *profileService) SubmitOnboarding(ctx context.Context, userID string, req request_models.OnboardingRequest) (*response_models.OnboardingResult, error) {
	profile, err := s.store.Upsert(ctx, userID,
		func() *db_models.WellnessProfile { return wellness.PlaceholderProfile(userID) },
		func(p *db_models.WellnessProfile) error {
			applyIntake(p, req)
			return nil
		})
	if err != nil {
		return nil, err
	}

	recs := s.recommend(ctx, userID, req)
	s.recs.Set(userID, recs, RecommendationTTL)

	return &response_models.OnboardingResult{
		Profile:         response_models.NewProfileView(profile),
		Recommendations: recs,
	}, nil
}

func (s *profileService) OnboardingStatus(ctx context.Context, userID string) (bool, error) {
	p, err := s.store.Get(ctx, userID)
	if errors.Is(err, utils.ErrProfileNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return p.OnboardingCompleted, nil
}

// applyIntake overwrites every intake field; submissions never merge.
func applyIntake(p *db_models.WellnessProfile, req request_models.OnboardingRequest) {
	gender := db_models.Gender(req.Gender)
	if gender == "" {
		gender = db_models.GenderUnspecified
	}

	p.Name = strings.TrimSpace(req.Name)
	p.Age = req.Age
	p.Gender = gender
	p.CurrentMentalHealth = db_models.WellbeingLevel(req.CurrentMentalHealth)
	p.JoinReason = req.JoinReason
	p.Goals = append([]string{}, req.Goals...)
	p.SleepPattern = db_models.WellbeingLevel(req.SleepPattern)
	p.StressLevel = req.StressLevel
	p.SocialConnection = db_models.SocialConnection(req.SocialConnection)
	p.MentalHealthConcerns = append([]string{}, req.MentalHealthConcerns...)
	p.ExerciseFrequency = db_models.ExerciseFrequency(req.ExerciseFrequency)
	p.DietQuality = db_models.DietQuality(req.DietQuality)
	p.SubstanceUse = req.SubstanceUse
	p.CopingMechanisms = req.CopingMechanisms
	p.OnboardingCompleted = true
}

func (s *profileService) recommend(ctx context.Context, userID string, req request_models.OnboardingRequest) []response_models.Recommendation {
	ctx, cancel := s.rt.withAITimeout(ctx)
	defer cancel()

	raw, err := s.ai.Generate(ctx, onboardingPrompt(req), utils.GenerationOptions{JSON: true})
	if err == nil {
		var set response_models.RecommendationSet
		if set, err = utils.NormalizeRecommendations(raw); err == nil {
			return set.AsRecommendations()
		}
	}

	s.rt.logger().Warn("onboarding recommendations unavailable, using fallback",
		zap.String("user_id", userID),
		zap.Error(err))
	return []response_models.Recommendation{response_models.FallbackOnboardingRecommendation()}
}

func onboardingPrompt(req request_models.OnboardingRequest) string {
	var b strings.Builder
	b.WriteString("Based on the following user profile, provide 3-4 personalized recommendations for improving mental health:\n")
	fmt.Fprintf(&b, "- Current mental health: %s\n", req.CurrentMentalHealth)
	fmt.Fprintf(&b, "- Goals: %s\n", strings.Join(req.Goals, ", "))
	fmt.Fprintf(&b, "- Sleep pattern: %s\n", req.SleepPattern)
	fmt.Fprintf(&b, "- Stress level: %d\n", req.StressLevel)
	fmt.Fprintf(&b, "- Social connection: %s\n", req.SocialConnection)
	fmt.Fprintf(&b, "- Mental health concerns: %s\n", strings.Join(req.MentalHealthConcerns, ", "))
	fmt.Fprintf(&b, "- Exercise frequency: %s\n", req.ExerciseFrequency)
	fmt.Fprintf(&b, "- Diet quality: %s\n", req.DietQuality)
	fmt.Fprintf(&b, "- Substance use: %s\n", req.SubstanceUse)
	fmt.Fprintf(&b, "- Coping mechanisms: %s\n", req.CopingMechanisms)
	b.WriteString("\nReturn JSON only: an array of objects with \"title\" and \"description\" fields. ")
	b.WriteString("Focus on practical, actionable advice for this user's situation and goals.")
	return b.String()
}
