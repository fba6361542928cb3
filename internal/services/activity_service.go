package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"aura/internal/models/db_models"
	"aura/internal/models/request_models"
	"aura/internal/models/response_models"
	"aura/internal/wellness"
	"aura/pkg/utils"
)

type ActivityServiceInterface interface {
	CompleteActivity(ctx context.Context, userID string, req request_models.CompleteActivityRequest) (*response_models.ActivityCompletion, error)
	History(ctx context.Context, userID string) (*response_models.ActivityHistory, error)
}

type activityService struct {
	store  ProfileStore
	badges *wellness.BadgeEvaluator
	rt     Runtime
}

func NewActivityService(store ProfileStore, badges *wellness.BadgeEvaluator, rt Runtime) ActivityServiceInterface {
	return &activityService{store: store, badges: badges, rt: rt}
}

func (s *activityService) CompleteActivity(ctx context.Context, userID string, req request_models.CompleteActivityRequest) (*response_models.ActivityCompletion, error) {
	activity := strings.TrimSpace(req.Activity)
	if activity == "" {
		return nil, utils.NewValidationError("activity", "activity is required")
	}

	now := s.rt.now()
	completedAt := now
	if req.CompletedAt != "" {
		t, ok := utils.ParseClientTime(req.CompletedAt, s.rt.location())
		if !ok {
			return nil, utils.NewValidationError("completedAt", "completedAt must be an RFC3339 timestamp")
		}
		completedAt = t
	}

	var awarded []db_models.Badge
	profile, err := s.store.Mutate(ctx, userID, func(p *db_models.WellnessProfile) error {
		p.CompletedActivities = append(p.CompletedActivities, db_models.CompletedActivity{
			Activity:    activity,
			Sentiment:   req.Sentiment,
			CompletedAt: completedAt,
		})
		awarded = s.badges.Evaluate(p, now)
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, b := range awarded {
		s.rt.logger().Info("badge awarded",
			zap.String("user_id", userID),
			zap.String("badge", string(b.Key)))
	}

	return &response_models.ActivityCompletion{
		Message:             "Activity completed successfully",
		CompletedActivities: nonNilActivities(profile.CompletedActivities),
		NewBadges:           awarded,
	}, nil
}

func (s *activityService) History(ctx context.Context, userID string) (*response_models.ActivityHistory, error) {
	p, err := s.store.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &response_models.ActivityHistory{CompletedActivities: nonNilActivities(p.CompletedActivities)}, nil
}

func nonNilActivities(in []db_models.CompletedActivity) []db_models.CompletedActivity {
	if in == nil {
		return []db_models.CompletedActivity{}
	}
	return in
}
