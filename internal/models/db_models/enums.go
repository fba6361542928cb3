package db_models

type WellbeingLevel string

const (
	WellbeingExcellent  WellbeingLevel = "Excellent"
	WellbeingGood       WellbeingLevel = "Good"
	WellbeingFair       WellbeingLevel = "Fair"
	WellbeingPoor       WellbeingLevel = "Poor"
	WellbeingStruggling WellbeingLevel = "Struggling"
)

type SocialConnection string

const (
	SocialStrong   SocialConnection = "Strong"
	SocialModerate SocialConnection = "Moderate"
	SocialWeak     SocialConnection = "Weak"
	SocialIsolated SocialConnection = "Isolated"
)

type ExerciseFrequency string

const (
	ExerciseDaily       ExerciseFrequency = "daily"
	ExerciseThreeToFour ExerciseFrequency = "3-4-times-week"
	ExerciseOneToTwo    ExerciseFrequency = "1-2-times-week"
	ExerciseRarely      ExerciseFrequency = "rarely"
	ExerciseNever       ExerciseFrequency = "never"
)

type DietQuality string

const (
	DietExcellent DietQuality = "excellent"
	DietGood      DietQuality = "good"
	DietFair      DietQuality = "fair"
	DietPoor      DietQuality = "poor"
)

type Gender string

const (
	GenderMale        Gender = "male"
	GenderFemale      Gender = "female"
	GenderOther       Gender = "other"
	GenderUnspecified Gender = "unspecified"
)

type SharePlatform string

const (
	PlatformTwitter  SharePlatform = "twitter"
	PlatformLinkedIn SharePlatform = "linkedin"
)
