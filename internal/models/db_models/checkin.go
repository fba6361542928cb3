package db_models

import "time"

// CheckIn is one entry of the daily check-in log. It is kept apart from the
// profile's mood ledger and feeds the dashboard's check-in statistics.
type CheckIn struct {
	BaseModel `bson:",inline"`

	UserID      string    `gorm:"index;not null" bson:"user" json:"user"`
	Mood        int       `gorm:"not null" bson:"mood" json:"mood"`
	StressLevel int       `gorm:"not null" bson:"stress_level" json:"stressLevel"`
	Journal     string    `gorm:"type:text" bson:"journal" json:"journal"`
	LoggedAt    time.Time `gorm:"index;not null" bson:"logged_at" json:"loggedAt"`
}

func (CheckIn) TableName() string {
	return "check_ins"
}
