package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"time"

	log "github.com/sirupsen/logrus"
	"google.golang.org/genai"

	"github.com/wanderhub/wanderhub-api/schema"
)

const (
	logPrefix      = "assistant"
	defaultTimeout = 30 * time.Second

	maxMessageLength = 1000
	// keep the last few exchanges as conversation context
	contextWindow = 10

	// minimum count of usable suggestions before the caller should
	// fall back to the deterministic ranking
	minSuggestions = 3
	maxSuggestions = 5
)

var (
	ErrNoMessages              = fmt.Errorf("no valid messages provided")
	ErrLastMessageNotUser      = fmt.Errorf("last message must be from user")
	ErrMessageTooLong          = fmt.Errorf("message exceeds %d characters", maxMessageLength)
	ErrEmptyResponse           = fmt.Errorf("empty response from assistant")
	ErrUnparsableSuggestions   = fmt.Errorf("assistant returned unparsable suggestions")
	ErrInsufficientSuggestions = fmt.Errorf("assistant returned fewer than %d usable suggestions", minSuggestions)
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// DestinationContext is the cached destination data a scoped chat is
// grounded on.
type DestinationContext struct {
	Name         string
	Description  string
	Category     string
	Address      string
	Rating       *float64
	PriceLevel   *int
	Website      string
	OpeningHours []string
}

// Candidate is one destination offered to the recommender.
type Candidate struct {
	Name     string
	Category string
	Distance float64
}

// Assistant - interface to operate the conversational-AI provider
type Assistant interface {
	DestinationChat(ctx context.Context, messages []Message, destination DestinationContext) (string, error)
	TravelChat(ctx context.Context, messages []Message) (string, error)
	RecommendDestinations(ctx context.Context, interests []string, budget string, location schema.Location, candidates []Candidate) ([]string, error)
}

type geminiAssistant struct {
	client         *genai.Client
	primaryModel   string
	secondaryModel string
}

// New - new Assistant backed by the Gemini API. primaryModel is tried
// first on every call; secondaryModel is the documented known-good
// fallback used for exactly one retry.
func New(ctx context.Context, apiKey, primaryModel, secondaryModel string) (Assistant, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"error":  err,
		}).Error("new assistant client")

		return nil, err
	}

	if primaryModel == "" {
		primaryModel = "gemini-2.0-flash"
	}
	if secondaryModel == "" {
		secondaryModel = "gemini-1.5-flash"
	}

	return &geminiAssistant{
		client:         client,
		primaryModel:   primaryModel,
		secondaryModel: secondaryModel,
	}, nil
}

func (a *geminiAssistant) DestinationChat(ctx context.Context, messages []Message, destination DestinationContext) (string, error) {
	if destination.Name == "" || destination.Category == "" {
		return "", fmt.Errorf("destination context requires name and category")
	}

	prompt, err := conversationPrompt(destinationSystemPrompt(destination), messages)
	if err != nil {
		return "", err
	}

	return a.generate(ctx, prompt, &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(0.7)),
		TopP:            genai.Ptr(float32(0.95)),
		MaxOutputTokens: 500,
	})
}

func (a *geminiAssistant) TravelChat(ctx context.Context, messages []Message) (string, error) {
	prompt, err := conversationPrompt(generalTravelPrompt, messages)
	if err != nil {
		return "", err
	}

	return a.generate(ctx, prompt, &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(0.8)),
		TopP:            genai.Ptr(float32(0.95)),
		MaxOutputTokens: 600,
	})
}

// RecommendDestinations asks the model to pick the best candidates for
// the user. The reply must contain a JSON array of candidate names; a
// reply that cannot be parsed, or that yields fewer than three names
// present in the candidate set, is an error so the caller can fall back
// to the deterministic ranking.
func (a *geminiAssistant) RecommendDestinations(ctx context.Context, interests []string, budget string, location schema.Location, candidates []Candidate) ([]string, error) {
	if len(interests) == 0 {
		return nil, fmt.Errorf("user interests are required for recommendations")
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("no candidates available for recommendations")
	}

	text, err := a.generate(ctx, recommendationPrompt(interests, budget, location, candidates), &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(0.4)),
		MaxOutputTokens: 200,
	})
	if err != nil {
		return nil, err
	}

	return parseSuggestions(text, candidates)
}

// generate runs one content generation against the primary model with
// a single retry on the secondary model. No further retries; callers
// decide whether a fallback path exists.
func (a *geminiAssistant) generate(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	text, err := a.generateWithModel(ctx, a.primaryModel, prompt, config)
	if err == nil {
		return text, nil
	}

	log.WithFields(log.Fields{
		"prefix": logPrefix,
		"model":  a.primaryModel,
		"error":  err,
	}).Warn("primary model failed, retrying with secondary model")

	return a.generateWithModel(ctx, a.secondaryModel, prompt, config)
}

func (a *geminiAssistant) generateWithModel(ctx context.Context, model, prompt string, config *genai.GenerateContentConfig) (string, error) {
	resp, err := a.client.Models.GenerateContent(ctx, model, []*genai.Content{
		{
			Role:  genai.RoleUser,
			Parts: []*genai.Part{genai.NewPartFromText(prompt)},
		},
	}, config)
	if err != nil {
		return "", err
	}

	text := resp.Text()
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

var suggestionArrayPattern = regexp.MustCompile(`(?s)\[.*\]`)

// parseSuggestions extracts a JSON array of destination names from the
// model output and keeps only names that exist in the candidate set.
func parseSuggestions(text string, candidates []Candidate) ([]string, error) {
	match := suggestionArrayPattern.FindString(text)
	if match == "" {
		return nil, ErrUnparsableSuggestions
	}

	var names []string
	if err := json.Unmarshal([]byte(match), &names); err != nil {
		return nil, ErrUnparsableSuggestions
	}

	known := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		known[c.Name] = struct{}{}
	}

	valid := make([]string, 0, len(names))
	for _, name := range names {
		if _, ok := known[name]; ok {
			valid = append(valid, name)
		}
	}

	if len(valid) < minSuggestions {
		return nil, ErrInsufficientSuggestions
	}
	if len(valid) > maxSuggestions {
		valid = valid[:maxSuggestions]
	}
	return valid, nil
}
