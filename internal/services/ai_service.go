package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"aura/internal/models/db_models"
	"aura/internal/models/request_models"
	"aura/internal/models/response_models"
	"aura/internal/repositories"
	"aura/pkg/utils"
)

const (
	fallbackSentiment      = "neutral"
	fallbackActivity       = "Take a few slow, deep breaths and step outside for a short walk."
	fallbackPersonalReply  = "Thank you for sharing how you feel. Be gentle with yourself today, and reach out to someone you trust if things feel heavy."
	fallbackChatReply      = "I'm here for you. I couldn't respond properly just now, but please take a moment to breathe, and try again shortly."
	defaultStressLevel     = 5
	defaultChatLanguage    = "English"
	personaSystemPromptFmt = "You are an AI chatbot \"Aura\" providing empathetic mental health check-ins.\nUser Info: Name: %s, Mood: %s, Stress: %d"
)

type AIServiceInterface interface {
	Analyze(ctx context.Context, userID string, req request_models.AnalyzeRequest) (*response_models.AnalysisResult, error)
}

type aiService struct {
	store       ProfileStore
	checkIns    repositories.CheckInRepository
	sentiment   utils.SentimentClassifier
	recommender utils.ActivityRecommender
	gen         utils.GenerativeClient
	rt          Runtime
}

func NewAIService(
	store ProfileStore,
	checkIns repositories.CheckInRepository,
	sentiment utils.SentimentClassifier,
	recommender utils.ActivityRecommender,
	gen utils.GenerativeClient,
	rt Runtime,
) AIServiceInterface {
	return &aiService{
		store:       store,
		checkIns:    checkIns,
		sentiment:   sentiment,
		recommender: recommender,
		gen:         gen,
		rt:          rt,
	}
}

// Analyze classifies the journal text, then asks for activity suggestions and
// a personal reply in parallel. Upstream failures fall back per field.
func (s *aiService) Analyze(ctx context.Context, userID string, req request_models.AnalyzeRequest) (*response_models.AnalysisResult, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, utils.NewValidationError("text", "Invalid or missing \"text\" input")
	}

	profile, err := s.store.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	previous, err := s.checkIns.Latest(ctx, userID)
	if err != nil {
		return nil, utils.DBError("latest check-in", err)
	}

	sentiment := s.classify(ctx, userID, text)
	emotion := utils.EmotionFor(sentiment)

	mood := req.Mood
	if mood == "" {
		mood = sentiment
	}
	stress := req.StressLevel
	if stress == 0 {
		stress = defaultStressLevel
	}

	var (
		recommendations []string
		reply           string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		recommendations = s.recommend(gctx, userID, text, mood)
		return nil
	})
	g.Go(func() error {
		reply = s.personalReply(gctx, userID, profile, previous, sentiment, stress, text)
		return nil
	})
	_ = g.Wait()

	return &response_models.AnalysisResult{
		Sentiment:            sentiment,
		Emotion:              emotion,
		Recommendations:      recommendations,
		PersonalizedResponse: reply,
	}, nil
}

func (s *aiService) classify(ctx context.Context, userID, text string) string {
	ctx, cancel := s.rt.withAITimeout(ctx)
	defer cancel()

	label, err := s.sentiment.Classify(ctx, text)
	if err != nil {
		s.rt.logger().Warn("sentiment unavailable, using fallback", zap.String("user_id", userID), zap.Error(err))
		return fallbackSentiment
	}
	return label
}

func (s *aiService) recommend(ctx context.Context, userID, text, mood string) []string {
	ctx, cancel := s.rt.withAITimeout(ctx)
	defer cancel()

	set, err := s.recommender.Recommend(ctx, text, mood)
	if err != nil {
		s.rt.logger().Warn("activity recommendations unavailable, using fallback", zap.String("user_id", userID), zap.Error(err))
		return []string{fallbackActivity}
	}
	return set.AsTexts()
}

func (s *aiService) personalReply(
	ctx context.Context,
	userID string,
	profile *db_models.WellnessProfile,
	previous *db_models.CheckIn,
	sentiment string,
	stress int,
	text string,
) string {
	ctx, cancel := s.rt.withAITimeout(ctx)
	defer cancel()

	name := profile.Name
	if name == "" {
		name = "User"
	}
	system := fmt.Sprintf(personaSystemPromptFmt, name, sentiment, stress)
	if previous != nil {
		system += fmt.Sprintf("\nPrevious check-in: Mood: %d/5, Stress: %d", previous.Mood, previous.StressLevel)
	}

	reply, err := s.gen.Generate(ctx, text, utils.PersonaOptions(system))
	if err != nil || strings.TrimSpace(reply) == "" {
		s.rt.logger().Warn("personalized response unavailable, using fallback", zap.String("user_id", userID), zap.Error(err))
		return fallbackPersonalReply
	}
	return strings.TrimSpace(reply)
}
