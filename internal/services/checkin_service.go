package services

import (
	"context"

	"aura/internal/models/db_models"
	"aura/internal/models/request_models"
	"aura/internal/models/response_models"
	"aura/internal/repositories"
	"aura/internal/wellness"
	"aura/pkg/utils"
)

type CheckInServiceInterface interface {
	Create(ctx context.Context, userID string, req request_models.CreateCheckInRequest) (*db_models.CheckIn, error)
	History(ctx context.Context, userID string) (*response_models.CheckInHistory, error)
}

type checkInService struct {
	repo repositories.CheckInRepository
	rt   Runtime
}

func NewCheckInService(repo repositories.CheckInRepository, rt Runtime) CheckInServiceInterface {
	return &checkInService{repo: repo, rt: rt}
}

func (s *checkInService) Create(ctx context.Context, userID string, req request_models.CreateCheckInRequest) (*db_models.CheckIn, error) {
	verr := &utils.ValidationError{}
	if req.Mood < 1 || req.Mood > 5 {
		verr.Add("mood", "mood must be between 1 and 5")
	}
	if req.StressLevel < 1 || req.StressLevel > 10 {
		verr.Add("stressLevel", "stressLevel must be between 1 and 10")
	}
	if err := verr.Err(); err != nil {
		return nil, err
	}

	checkIn := &db_models.CheckIn{
		UserID:      userID,
		Mood:        req.Mood,
		StressLevel: req.StressLevel,
		Journal:     req.Journal,
		LoggedAt:    s.rt.now(),
	}
	if err := s.repo.Create(ctx, checkIn); err != nil {
		return nil, utils.DBError("create check-in", err)
	}
	return checkIn, nil
}

func (s *checkInService) History(ctx context.Context, userID string) (*response_models.CheckInHistory, error) {
	list, err := s.repo.ListRecent(ctx, userID, wellness.CheckInSampleSize)
	if err != nil {
		return nil, utils.DBError("list check-ins", err)
	}
	if list == nil {
		list = []db_models.CheckIn{}
	}
	return &response_models.CheckInHistory{CheckIns: list}, nil
}
