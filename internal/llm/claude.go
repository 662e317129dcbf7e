package llm

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/nutritrack/nutritrack-backend/internal/config"
	"github.com/nutritrack/nutritrack-backend/internal/nutrition"
)

const anthropicVersion = "2023-06-01"

// Claude calls the Anthropic Messages API.
type Claude struct {
	apiKey string
	apiURL string
	model  string
	client *http.Client
}

func NewClaude(cfg *config.Config) *Claude {
	return &Claude{
		apiKey: cfg.AnthropicAPIKey,
		apiURL: cfg.AnthropicAPIURL,
		model:  cfg.AnthropicModel,
		client: &http.Client{Timeout: cfg.LLMTimeout},
	}
}

// NewProvider returns the provider for a settings value, defaulting to Claude
// for unknown names.
func NewProvider(name string, cfg *config.Config) Provider {
	switch name {
	case "claude":
		return NewClaude(cfg)
	default:
		return NewClaude(cfg)
	}
}

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

// ask sends a single user message and returns the first text block.
func (c *Claude) ask(prompt string) (string, error) {
	if c.apiKey == "" {
		return "", errors.New("anthropic api key is not configured")
	}

	payload, err := json.Marshal(anthropicRequest{
		Model:     c.model,
		MaxTokens: 1024,
		Messages:  []anthropicMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.apiURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("anthropic request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("anthropic returned status %d: %s", resp.StatusCode, string(body))
	}

	var parsed anthropicResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode anthropic response: %w", err)
	}
	for _, block := range parsed.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}
	return "", errors.New("anthropic response contained no text block")
}

func (c *Claude) GenerateWeeklyDigest(userData UserData, weekLogs WeekLogs) (string, error) {
	return c.ask(weeklyDigestPrompt(userData, weekLogs))
}

func (c *Claude) EstimateCaloriesBurned(activity string, durationMinutes int, activityLevel string) (int, error) {
	response, err := c.ask(calorieEstimatePrompt(activity, durationMinutes, activityLevel))
	if err != nil {
		return 0, err
	}
	calories, err := strconv.Atoi(strings.TrimSpace(response))
	if err != nil {
		return 0, fmt.Errorf("model returned a non-numeric calorie estimate: %q", response)
	}
	return calories, nil
}

func (c *Claude) EstimateNutrition(description string) (nutrition.Estimate, error) {
	response, err := c.ask(nutritionEstimatePrompt(description))
	if err != nil {
		return nutrition.Estimate{}, err
	}
	return parseEstimate(response, description)
}

func (c *Claude) EstimateNutritionVariations(description string) ([]nutrition.FoodSearchResult, error) {
	response, err := c.ask(nutritionVariationsPrompt(description))
	if err != nil {
		return nil, err
	}
	return parseVariations(response, description)
}

func (c *Claude) GenerateWelcomeMessage(data OnboardingData) (string, error) {
	return c.ask(welcomeMessagePrompt(data))
}

func (c *Claude) GenerateEmptyStateMessage(data OnboardingData) (string, error) {
	return c.ask(emptyStateMessagePrompt(data))
}
