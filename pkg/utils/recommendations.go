package utils

import (
	"encoding/json"
	"fmt"
	"strings"

	"aura/internal/models/response_models"
)

// NormalizeRecommendations turns whatever an AI service returned into a
// RecommendationSet. It accepts raw model text (optionally fenced or wrapped
// in prose), decoded JSON values and Gradio output arrays.
func NormalizeRecommendations(raw interface{}) (response_models.RecommendationSet, error) {
	switch v := raw.(type) {
	case nil:
		return response_models.RecommendationSet{}, fmt.Errorf("%w: empty payload", ErrUnexpectedBehaviorOfAI)
	case response_models.RecommendationSet:
		if v.Kind == 0 {
			return v, fmt.Errorf("%w: untyped recommendation set", ErrUnexpectedBehaviorOfAI)
		}
		return v, nil
	case []response_models.Recommendation:
		return structuredOrError(v)
	case string:
		return normalizeText(v)
	case []string:
		return textListOrError(v)
	case []interface{}:
		return normalizeList(v)
	case map[string]interface{}:
		return normalizeObject(v)
	default:
		return response_models.RecommendationSet{}, fmt.Errorf("%w: unsupported payload %T", ErrUnexpectedBehaviorOfAI, raw)
	}
}

func normalizeText(text string) (response_models.RecommendationSet, error) {
	cleaned := CleanJSONResponse(text)
	if strings.HasPrefix(cleaned, "{") || strings.HasPrefix(cleaned, "[") {
		var decoded interface{}
		if err := json.Unmarshal([]byte(cleaned), &decoded); err == nil {
			return NormalizeRecommendations(decoded)
		}
	}

	prose := strings.TrimSpace(stripFences(text))

	// A quoted JSON string is still a single suggestion.
	var s string
	if err := json.Unmarshal([]byte(prose), &s); err == nil {
		prose = strings.TrimSpace(s)
	}

	if prose == "" {
		return response_models.RecommendationSet{}, fmt.Errorf("%w: empty text", ErrUnexpectedBehaviorOfAI)
	}
	return response_models.SingleText(prose), nil
}

func normalizeList(items []interface{}) (response_models.RecommendationSet, error) {
	var (
		texts      []string
		structured []response_models.Recommendation
		sawObject  bool
	)

	for _, item := range items {
		switch v := item.(type) {
		case string:
			if t := strings.TrimSpace(v); t != "" {
				texts = append(texts, t)
				structured = append(structured, response_models.Recommendation{Title: t})
			}
		case map[string]interface{}:
			if rec, ok := recommendationFromMap(v); ok {
				sawObject = true
				structured = append(structured, rec)
			}
		case []interface{}:
			// Gradio wraps outputs in an extra array.
			nested, err := normalizeList(v)
			if err != nil {
				continue
			}
			for _, rec := range nested.AsRecommendations() {
				structured = append(structured, rec)
				if nested.Kind == response_models.RecommendationStructured {
					sawObject = true
				} else {
					texts = append(texts, rec.Title)
				}
			}
		}
	}

	if sawObject {
		return structuredOrError(structured)
	}
	return textListOrError(texts)
}

func normalizeObject(obj map[string]interface{}) (response_models.RecommendationSet, error) {
	for _, key := range []string{"recommendations", "data", "suggestions"} {
		if inner, ok := obj[key]; ok {
			return NormalizeRecommendations(inner)
		}
	}
	if rec, ok := recommendationFromMap(obj); ok {
		return structuredOrError([]response_models.Recommendation{rec})
	}
	return response_models.RecommendationSet{}, fmt.Errorf("%w: object without recommendations", ErrUnexpectedBehaviorOfAI)
}

func recommendationFromMap(m map[string]interface{}) (response_models.Recommendation, bool) {
	title, _ := m["title"].(string)
	desc, _ := m["description"].(string)
	kind, _ := m["type"].(string)

	rec := response_models.Recommendation{
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(desc),
		Type:        strings.TrimSpace(kind),
	}
	if rec.Title == "" && rec.Description == "" {
		return rec, false
	}
	if rec.Title == "" {
		rec.Title, rec.Description = rec.Description, ""
	}
	return rec, true
}

func structuredOrError(items []response_models.Recommendation) (response_models.RecommendationSet, error) {
	out := make([]response_models.Recommendation, 0, len(items))
	for _, it := range items {
		if strings.TrimSpace(it.Title) != "" {
			out = append(out, it)
		}
	}
	if len(out) == 0 {
		return response_models.RecommendationSet{}, fmt.Errorf("%w: no usable recommendations", ErrUnexpectedBehaviorOfAI)
	}
	return response_models.Structured(out), nil
}

func textListOrError(texts []string) (response_models.RecommendationSet, error) {
	out := make([]string, 0, len(texts))
	for _, t := range texts {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		return response_models.RecommendationSet{}, fmt.Errorf("%w: no usable recommendations", ErrUnexpectedBehaviorOfAI)
	}
	return response_models.TextList(out), nil
}

// CleanJSONResponse removes markdown fences and surrounding prose, keeping the
// first complete JSON object or array when one is present.
func CleanJSONResponse(response string) string {
	response = strings.TrimSpace(stripFences(response))

	objStart := strings.Index(response, "{")
	arrStart := strings.Index(response, "[")

	if objStart != -1 && (arrStart == -1 || objStart < arrStart) {
		if objEnd := findMatching(response, objStart, '{', '}'); objEnd != -1 {
			response = response[objStart : objEnd+1]
		}
	} else if arrStart != -1 {
		if arrEnd := findMatching(response, arrStart, '[', ']'); arrEnd != -1 {
			response = response[arrStart : arrEnd+1]
		}
	}

	return strings.TrimSpace(response)
}

func stripFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```JSON", "")
	return strings.ReplaceAll(s, "```", "")
}

// findMatching returns the index of the delimiter closing the one at start,
// ignoring delimiters inside JSON strings, or -1.
func findMatching(s string, start int, openCh, closeCh byte) int {
	if start >= len(s) || s[start] != openCh {
		return -1
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		char := s[i]

		if escaped {
			escaped = false
			continue
		}
		if char == '\\' && inString {
			escaped = true
			continue
		}
		if char == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch char {
		case openCh:
			depth++
		case closeCh:
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}
