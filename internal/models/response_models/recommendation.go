package response_models

type Recommendation struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type,omitempty"`
}

// RecommendationKind tags which shape an AI service answered with.
type RecommendationKind int

const (
	RecommendationSingleText RecommendationKind = iota + 1
	RecommendationTextList
	RecommendationStructured
)

// RecommendationSet is the normalized form of every AI recommendation
// payload. Exactly one of Text, Texts or Items is meaningful, per Kind.
type RecommendationSet struct {
	Kind  RecommendationKind
	Text  string
	Texts []string
	Items []Recommendation
}

func SingleText(text string) RecommendationSet {
	return RecommendationSet{Kind: RecommendationSingleText, Text: text}
}

func TextList(texts []string) RecommendationSet {
	return RecommendationSet{Kind: RecommendationTextList, Texts: texts}
}

func Structured(items []Recommendation) RecommendationSet {
	return RecommendationSet{Kind: RecommendationStructured, Items: items}
}

// AsRecommendations projects any kind to titled recommendations.
func (s RecommendationSet) AsRecommendations() []Recommendation {
	switch s.Kind {
	case RecommendationStructured:
		return append([]Recommendation(nil), s.Items...)
	case RecommendationTextList:
		out := make([]Recommendation, 0, len(s.Texts))
		for _, t := range s.Texts {
			out = append(out, Recommendation{Title: t})
		}
		return out
	case RecommendationSingleText:
		return []Recommendation{{Title: s.Text}}
	default:
		return []Recommendation{}
	}
}

// AsTexts projects any kind to plain suggestion strings.
func (s RecommendationSet) AsTexts() []string {
	switch s.Kind {
	case RecommendationTextList:
		return append([]string(nil), s.Texts...)
	case RecommendationSingleText:
		return []string{s.Text}
	case RecommendationStructured:
		out := make([]string, 0, len(s.Items))
		for _, r := range s.Items {
			if r.Description != "" {
				out = append(out, r.Title+": "+r.Description)
			} else {
				out = append(out, r.Title)
			}
		}
		return out
	default:
		return []string{}
	}
}

// DefaultDashboardRecommendations are shown until a personalized set exists.
func DefaultDashboardRecommendations() []Recommendation {
	return []Recommendation{
		{Title: "Daily Meditation", Description: "Start with 5 minutes of mindful breathing", Type: "mental"},
		{Title: "Physical Activity", Description: "Aim for a 10-minute walk today", Type: "physical"},
		{Title: "Sleep Hygiene", Description: "Set a consistent bedtime routine", Type: "physical"},
		{Title: "Mindful Journaling", Description: "Write down three things you're grateful for", Type: "mental"},
	}
}

// FallbackOnboardingRecommendation replaces an unusable AI answer at onboarding.
func FallbackOnboardingRecommendation() Recommendation {
	return Recommendation{
		Title:       "Start with Mindfulness",
		Description: "Begin with 5 minutes of daily mindful breathing exercises.",
	}
}
