package utils

import (
	"testing"

	"aura/internal/models/response_models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRecommendations_FencedArray(t *testing.T) {
	raw := "Here you go:\n```json\n[{\"title\":\"Walk\",\"description\":\"10 minutes outside\"},{\"title\":\"Breathe\",\"description\":\"Box breathing\"}]\n```"

	set, err := NormalizeRecommendations(raw)
	require.NoError(t, err)

	assert.Equal(t, response_models.RecommendationStructured, set.Kind)
	assert.Equal(t, []response_models.Recommendation{
		{Title: "Walk", Description: "10 minutes outside"},
		{Title: "Breathe", Description: "Box breathing"},
	}, set.Items)
}

func TestNormalizeRecommendations_StringArray(t *testing.T) {
	set, err := NormalizeRecommendations(`["Go for a run", " ", "Call a friend"]`)
	require.NoError(t, err)

	assert.Equal(t, response_models.RecommendationTextList, set.Kind)
	assert.Equal(t, []string{"Go for a run", "Call a friend"}, set.Texts)
}

func TestNormalizeRecommendations_Prose(t *testing.T) {
	set, err := NormalizeRecommendations("  Take a short walk and drink some water.  ")
	require.NoError(t, err)

	assert.Equal(t, response_models.RecommendationSingleText, set.Kind)
	assert.Equal(t, "Take a short walk and drink some water.", set.Text)
	assert.Equal(t, []string{"Take a short walk and drink some water."}, set.AsTexts())
}

func TestNormalizeRecommendations_WrappedObject(t *testing.T) {
	set, err := NormalizeRecommendations(`{"recommendations":[{"title":"Journal","description":"Write one page"}]}`)
	require.NoError(t, err)

	assert.Equal(t, response_models.RecommendationStructured, set.Kind)
	assert.Equal(t, "Journal", set.Items[0].Title)
}

func TestNormalizeRecommendations_GradioNestedOutput(t *testing.T) {
	raw := []interface{}{[]interface{}{"Listen to music", "Stretch"}}

	set, err := NormalizeRecommendations(raw)
	require.NoError(t, err)

	assert.Equal(t, response_models.RecommendationTextList, set.Kind)
	assert.Equal(t, []string{"Listen to music", "Stretch"}, set.Texts)
}

func TestNormalizeRecommendations_Unusable(t *testing.T) {
	for name, raw := range map[string]interface{}{
		"nil":          nil,
		"blank":        "   ",
		"empty array":  "[]",
		"empty fences": "```json\n```",
		"no titles":    `[{"foo":"bar"}]`,
		"number":       42,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := NormalizeRecommendations(raw)
			assert.ErrorIs(t, err, ErrUnexpectedBehaviorOfAI)
		})
	}
}

func TestCleanJSONResponse(t *testing.T) {
	assert.Equal(t, `{"a":"}"}`, CleanJSONResponse("prefix {\"a\":\"}\"} trailing"))
	assert.Equal(t, `[1,[2]]`, CleanJSONResponse("```json\n[1,[2]]\n```"))
	assert.Equal(t, "plain", CleanJSONResponse(" plain "))
}

func TestRecommendationSetProjections(t *testing.T) {
	set := response_models.Structured([]response_models.Recommendation{
		{Title: "Walk", Description: "outside"},
		{Title: "Rest"},
	})

	assert.Equal(t, []string{"Walk: outside", "Rest"}, set.AsTexts())
	assert.Equal(t, []response_models.Recommendation{{Title: "a"}, {Title: "b"}}, response_models.TextList([]string{"a", "b"}).AsRecommendations())
}
