package wellness

import (
	"time"

	"github.com/google/uuid"

	"aura/internal/models/db_models"
	"aura/pkg/utils"
)

const BadgeDedication db_models.BadgeKey = "dedication"

// BadgeRule is one row of the badge catalog.
type BadgeRule struct {
	Key         db_models.BadgeKey
	Name        string
	Description string
	ImageURL    string
	Earned      func(p *db_models.WellnessProfile) bool
}

// Catalog lists every badge the service can award.
var Catalog = []BadgeRule{
	{
		Key:         BadgeDedication,
		Name:        "Dedication Master",
		Description: "Completed 5 recommended activities",
		ImageURL:    "/badges/dedication.png",
		Earned: func(p *db_models.WellnessProfile) bool {
			return len(p.CompletedActivities) >= 5
		},
	},
}

type BadgeEvaluator struct {
	rules []BadgeRule
	newID func() string
}

func NewBadgeEvaluator(rules []BadgeRule) *BadgeEvaluator {
	return &BadgeEvaluator{
		rules: rules,
		newID: func() string { return uuid.NewString() },
	}
}

// Evaluate appends every badge p is eligible for and does not hold yet, and
// returns the newly awarded ones. Running it again on the same profile is a no-op.
func (e *BadgeEvaluator) Evaluate(p *db_models.WellnessProfile, now time.Time) []db_models.Badge {
	var awarded []db_models.Badge
	for _, rule := range e.rules {
		if HasBadge(p, rule) || !rule.Earned(p) {
			continue
		}
		badge := db_models.Badge{
			ID:          e.newID(),
			Key:         rule.Key,
			Name:        rule.Name,
			Description: rule.Description,
			ImageURL:    rule.ImageURL,
			EarnedAt:    now,
			Shared:      db_models.BadgeShare{},
		}
		p.Badges = append(p.Badges, badge)
		awarded = append(awarded, badge)
	}
	return awarded
}

// HasBadge matches by catalog key. Badges stored before keys were persisted
// only carry a name, so a keyless badge with the rule's name also counts.
func HasBadge(p *db_models.WellnessProfile, rule BadgeRule) bool {
	for _, b := range p.Badges {
		if b.Key == rule.Key || (b.Key == "" && b.Name == rule.Name) {
			return true
		}
	}
	return false
}

// MarkShared flags badgeID as shared on platform. It reports whether the
// profile changed.
func MarkShared(p *db_models.WellnessProfile, badgeID string, platform db_models.SharePlatform) (bool, error) {
	if !ValidPlatform(platform) {
		return false, utils.NewValidationError("platform", "platform must be one of: twitter, linkedin")
	}

	for i := range p.Badges {
		b := &p.Badges[i]
		if b.ID != badgeID {
			continue
		}
		switch platform {
		case db_models.PlatformTwitter:
			if b.Shared.Twitter {
				return false, nil
			}
			b.Shared.Twitter = true
		case db_models.PlatformLinkedIn:
			if b.Shared.LinkedIn {
				return false, nil
			}
			b.Shared.LinkedIn = true
		}
		return true, nil
	}
	return false, utils.ErrBadgeNotFound
}

func ValidPlatform(platform db_models.SharePlatform) bool {
	return platform == db_models.PlatformTwitter || platform == db_models.PlatformLinkedIn
}
