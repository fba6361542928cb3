package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-contrib/sse"

	"aura/internal/models/response_models"
)

// GradioClient calls a hosted Gradio space through its two-step HTTP API:
// POST /gradio_api/call/<api> returns an event id, then GET on the same path
// streams the result as server-sent events.
type GradioClient struct {
	baseURL string
	http    *http.Client
}

func NewGradioClient(baseURL string, httpClient *http.Client) *GradioClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &GradioClient{baseURL: strings.TrimRight(baseURL, "/"), http: httpClient}
}

// Predict runs apiName (without the leading slash) with positional inputs and
// returns the decoded output array of the "complete" event.
func (g *GradioClient) Predict(ctx context.Context, apiName string, inputs ...interface{}) ([]interface{}, error) {
	endpoint := fmt.Sprintf("%s/gradio_api/call/%s", g.baseURL, strings.TrimPrefix(apiName, "/"))

	body, err := json.Marshal(map[string]interface{}{"data": inputs})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAIUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: gradio call returned %d", ErrAIUnavailable, resp.StatusCode)
	}

	var queued struct {
		EventID string `json:"event_id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&queued); err != nil || queued.EventID == "" {
		return nil, fmt.Errorf("%w: missing event id", ErrUnexpectedBehaviorOfAI)
	}

	return g.await(ctx, endpoint+"/"+queued.EventID)
}

func (g *GradioClient) await(ctx context.Context, url string) ([]interface{}, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "text/event-stream")

	resp, err := g.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAIUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: gradio stream returned %d", ErrAIUnavailable, resp.StatusCode)
	}

	events, err := sse.Decode(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedBehaviorOfAI, err)
	}

	for _, ev := range events {
		switch ev.Event {
		case "complete":
			data, _ := ev.Data.(string)
			var out []interface{}
			if err := json.Unmarshal([]byte(data), &out); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrUnexpectedBehaviorOfAI, err)
			}
			return out, nil
		case "error":
			return nil, fmt.Errorf("%w: gradio reported an error", ErrAIUnavailable)
		}
	}
	return nil, fmt.Errorf("%w: stream ended without result", ErrUnexpectedBehaviorOfAI)
}

// SentimentClassifier labels free text as positive, negative or neutral.
type SentimentClassifier interface {
	Classify(ctx context.Context, text string) (string, error)
}

// ActivityRecommender suggests activities for a mood and description.
type ActivityRecommender interface {
	Recommend(ctx context.Context, description, mood string) (response_models.RecommendationSet, error)
}

type hostedSentiment struct {
	gradio *GradioClient
}

func NewHostedSentiment(g *GradioClient) SentimentClassifier {
	return &hostedSentiment{gradio: g}
}

func (h *hostedSentiment) Classify(ctx context.Context, text string) (string, error) {
	out, err := h.gradio.Predict(ctx, "lambda", text)
	if err != nil {
		return "", err
	}
	label := SentimentLabel(out)
	if label == "" {
		return "", fmt.Errorf("%w: no sentiment label", ErrUnexpectedBehaviorOfAI)
	}
	return label, nil
}

type hostedRecommender struct {
	gradio *GradioClient
}

func NewHostedRecommender(g *GradioClient) ActivityRecommender {
	return &hostedRecommender{gradio: g}
}

func (h *hostedRecommender) Recommend(ctx context.Context, description, mood string) (response_models.RecommendationSet, error) {
	out, err := h.gradio.Predict(ctx, "predict", description, mood)
	if err != nil {
		return response_models.RecommendationSet{}, err
	}
	// Some spaces answer with one newline separated string.
	if len(out) == 1 {
		if text, ok := out[0].(string); ok && strings.Contains(text, "\n") {
			return NormalizeRecommendations(splitLines(text))
		}
	}
	return NormalizeRecommendations(out)
}

// SentimentLabel extracts a lowercase label from a Gradio output array. It
// understands plain strings and label objects ({"label": "..."}).
func SentimentLabel(out []interface{}) string {
	for _, item := range out {
		switch v := item.(type) {
		case string:
			if l := canonicalSentiment(v); l != "" {
				return l
			}
		case map[string]interface{}:
			if s, ok := v["label"].(string); ok {
				if l := canonicalSentiment(s); l != "" {
					return l
				}
			}
		case []interface{}:
			if l := SentimentLabel(v); l != "" {
				return l
			}
		}
	}
	return ""
}

func canonicalSentiment(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case s == "":
		return ""
	case strings.Contains(s, "pos"):
		return "positive"
	case strings.Contains(s, "neg"):
		return "negative"
	case strings.Contains(s, "neu"):
		return "neutral"
	default:
		return s
	}
}

// EmotionFor maps a sentiment label to the emotion shown to the user.
func EmotionFor(sentiment string) string {
	switch sentiment {
	case "positive":
		return "happy"
	case "negative":
		return "sad"
	default:
		return "neutral"
	}
}

var listMarker = regexp.MustCompile(`^\s*(?:[-*•]|\d+[.)])\s+`)

func splitLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(listMarker.ReplaceAllString(line, ""))
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
