package services

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"aura/internal/models/db_models"
	"aura/internal/models/request_models"
	"aura/internal/models/response_models"
	"aura/internal/repositories"
	"aura/internal/wellness"
	mem "aura/pkg/memcache"
	"aura/pkg/utils"
)

type DashboardService interface {
	GetDashboardData(ctx context.Context, userID string) (*response_models.DashboardData, error)
	UpdateHealthData(ctx context.Context, userID string, req request_models.UpdateHealthDataRequest) (*response_models.HealthDataUpdate, error)
	CompleteTask(ctx context.Context, userID, task string) (*response_models.ProfileView, error)
	ShareBadge(ctx context.Context, userID, badgeID, platform string) (*response_models.ProfileView, error)
	UpdateMood(ctx context.Context, userID string, rating int) (*response_models.MoodUpdate, error)
}

type dashboardService struct {
	store    ProfileStore
	checkIns repositories.CheckInRepository
	recs     mem.RecommendationStore
	rt       Runtime
}

func NewDashboardService(
	store ProfileStore,
	checkIns repositories.CheckInRepository,
	recs mem.RecommendationStore,
	rt Runtime,
) DashboardService {
	return &dashboardService{store: store, checkIns: checkIns, recs: recs, rt: rt}
}

func (s *dashboardService) GetDashboardData(ctx context.Context, userID string) (*response_models.DashboardData, error) {
	if !utils.ValidUserID(userID) {
		return nil, utils.ErrInvalidUserID
	}

	var (
		profile  *db_models.WellnessProfile
		checkIns []db_models.CheckIn
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := s.store.GetOrCreate(gctx, userID, func() *db_models.WellnessProfile {
			return wellness.PlaceholderProfile(userID)
		})
		profile = p
		return err
	})
	g.Go(func() error {
		list, err := s.checkIns.ListRecent(gctx, userID, wellness.CheckInSampleSize)
		if err != nil {
			return utils.DBError("list check-ins", err)
		}
		checkIns = list
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	now := s.rt.now()
	since := wellness.WindowStart(now)
	loc := s.rt.location()

	recommendations, ok := s.recs.Peek(userID)
	if !ok || len(recommendations) == 0 {
		recommendations = response_models.DefaultDashboardRecommendations()
	}

	return &response_models.DashboardData{
		Profile:            response_models.NewProfileView(profile),
		MoodData:           moodPoints(wellness.Mood.Window(profile.MoodHistory, since, loc)),
		AverageMood:        wellness.Mood.WindowStats(profile.MoodHistory, now).Average,
		CheckInAverageMood: wellness.CheckInMoodStats(checkIns).Average,
		TotalCheckIns:      len(checkIns),
		StepData:           stepPoints(wellness.Steps.Window(profile.StepHistory, since, loc)),
		SleepData:          sleepPoints(wellness.Sleep.Window(profile.SleepHistory, since, loc)),
		Recommendations:    recommendations,
	}, nil
}

func (s *dashboardService) UpdateHealthData(ctx context.Context, userID string, req request_models.UpdateHealthDataRequest) (*response_models.HealthDataUpdate, error) {
	if !utils.ValidUserID(userID) {
		return nil, utils.ErrInvalidUserID
	}
	if req.StepCount == nil && req.SleepDuration == nil {
		return nil, utils.NewValidationError("body", "At least one of stepCount or sleepDuration must be provided")
	}

	verr := &utils.ValidationError{}
	if req.StepCount != nil {
		if err := wellness.Steps.Validate(*req.StepCount); err != nil {
			verr.Add(wellness.Steps.Field, "Invalid step count value")
		}
	}
	if req.SleepDuration != nil {
		if err := wellness.Sleep.Validate(*req.SleepDuration); err != nil {
			verr.Add(wellness.Sleep.Field, "Invalid sleep duration value")
		}
	}
	if err := verr.Err(); err != nil {
		return nil, err
	}

	today := s.rt.now()
	profile, err := s.store.Mutate(ctx, userID, func(p *db_models.WellnessProfile) error {
		if req.StepCount != nil {
			steps, err := wellness.Steps.UpsertDayEntry(p.StepHistory, today, *req.StepCount)
			if err != nil {
				return err
			}
			p.StepHistory = steps
		}
		if req.SleepDuration != nil {
			sleep, err := wellness.Sleep.UpsertDayEntry(p.SleepHistory, today, *req.SleepDuration)
			if err != nil {
				return err
			}
			p.SleepHistory = sleep
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.rt.logger().Debug("health data updated",
		zap.String("user_id", userID),
		zap.Bool("steps", req.StepCount != nil),
		zap.Bool("sleep", req.SleepDuration != nil))

	return &response_models.HealthDataUpdate{
		Message: "Health data updated successfully",
		Profile: s.windowedView(profile),
	}, nil
}

func (s *dashboardService) CompleteTask(ctx context.Context, userID, task string) (*response_models.ProfileView, error) {
	task = strings.TrimSpace(task)
	if task == "" {
		return nil, utils.NewValidationError("task", "Task is required")
	}

	profile, err := s.store.Mutate(ctx, userID, func(p *db_models.WellnessProfile) error {
		if p.HasCompletedTask(task) {
			return ErrSkipSave
		}
		p.CompletedTasks = append(p.CompletedTasks, task)
		return nil
	})
	if err != nil {
		return nil, err
	}

	view := response_models.NewProfileView(profile)
	return &view, nil
}

func (s *dashboardService) ShareBadge(ctx context.Context, userID, badgeID, platform string) (*response_models.ProfileView, error) {
	if badgeID == "" || platform == "" {
		return nil, utils.NewValidationError("body", "Badge ID and platform are required")
	}
	target := db_models.SharePlatform(strings.ToLower(strings.TrimSpace(platform)))
	if !wellness.ValidPlatform(target) {
		return nil, utils.NewValidationError("platform", "platform must be one of: twitter, linkedin")
	}

	profile, err := s.store.Mutate(ctx, userID, func(p *db_models.WellnessProfile) error {
		changed, err := wellness.MarkShared(p, badgeID, target)
		if err != nil {
			return err
		}
		if !changed {
			return ErrSkipSave
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	view := response_models.NewProfileView(profile)
	return &view, nil
}

func (s *dashboardService) UpdateMood(ctx context.Context, userID string, rating int) (*response_models.MoodUpdate, error) {
	if err := wellness.Mood.Validate(rating); err != nil {
		return nil, err
	}

	today := s.rt.now()
	profile, err := s.store.Mutate(ctx, userID, func(p *db_models.WellnessProfile) error {
		moods, err := wellness.Mood.UpsertDayEntry(p.MoodHistory, today, rating)
		if err != nil {
			return err
		}
		p.MoodHistory = moods
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &response_models.MoodUpdate{
		Message:  "Mood updated successfully",
		MoodData: moodPoints(wellness.Mood.Window(profile.MoodHistory, wellness.WindowStart(today), s.rt.location())),
	}, nil
}

// windowedView is the profile with its ledgers cut to the rolling window.
func (s *dashboardService) windowedView(p *db_models.WellnessProfile) response_models.ProfileView {
	since := wellness.WindowStart(s.rt.now())
	loc := s.rt.location()

	view := response_models.NewProfileView(p)
	view.StepHistory = stepPoints(wellness.Steps.Window(p.StepHistory, since, loc))
	view.SleepHistory = sleepPoints(wellness.Sleep.Window(p.SleepHistory, since, loc))
	view.MoodHistory = moodPoints(wellness.Mood.Window(p.MoodHistory, since, loc))
	return view
}
