package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"aura/internal/models/response_models"
	"aura/internal/wellness"
	"aura/pkg/utils"
)

// Runtime carries the ambient dependencies every service shares.
type Runtime struct {
	Clock     utils.Clock
	Location  *time.Location
	Logger    *zap.Logger
	AITimeout time.Duration
}

func (r Runtime) now() time.Time {
	if r.Clock == nil {
		return time.Now().In(r.location())
	}
	return r.Clock()
}

func (r Runtime) location() *time.Location {
	if r.Location == nil {
		return time.Local
	}
	return r.Location
}

func (r Runtime) logger() *zap.Logger {
	if r.Logger == nil {
		return zap.NewNop()
	}
	return r.Logger
}

// withAITimeout bounds a single upstream AI call.
func (r Runtime) withAITimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := r.AITimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return context.WithTimeout(ctx, timeout)
}

func stepPoints(entries []wellness.DayValue[int]) []response_models.StepPoint {
	out := make([]response_models.StepPoint, 0, len(entries))
	for _, e := range entries {
		out = append(out, response_models.StepPoint{Date: e.Date, Steps: e.Value})
	}
	return out
}

func sleepPoints(entries []wellness.DayValue[float64]) []response_models.SleepPoint {
	out := make([]response_models.SleepPoint, 0, len(entries))
	for _, e := range entries {
		out = append(out, response_models.SleepPoint{Date: e.Date, Hours: e.Value})
	}
	return out
}

func moodPoints(entries []wellness.DayValue[int]) []response_models.MoodPoint {
	out := make([]response_models.MoodPoint, 0, len(entries))
	for _, e := range entries {
		out = append(out, response_models.MoodPoint{Date: e.Date, Rating: e.Value})
	}
	return out
}
