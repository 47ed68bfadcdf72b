package service

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"lingua_backend/internal/config"
	"lingua_backend/internal/model"
	"lingua_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatCompleter is the single seam to the text-generation provider. The
// service owns prompts, caching and schema validation; completers only turn
// messages into text.
type ChatCompleter interface {
	Complete(ctx context.Context, messages []ChatMessage) (string, error)
}

type chatCompletionRequest struct {
	Model    string        `json:"model"`
	Messages []ChatMessage `json:"messages"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message ChatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// OpenAIClient talks to any OpenAI-compatible chat completions endpoint.
type OpenAIClient struct {
	BaseURL    string
	APIKey     string
	Model      string
	HTTPClient *http.Client
}

func NewOpenAIClient(cfg config.AIConfig) *OpenAIClient {
	timeout := time.Duration(cfg.RequestTimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &OpenAIClient{
		BaseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		APIKey:     cfg.APIKey,
		Model:      cfg.Model,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

func (c *OpenAIClient) Complete(ctx context.Context, messages []ChatMessage) (string, error) {
	body, err := json.Marshal(chatCompletionRequest{Model: c.Model, Messages: messages})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var completion chatCompletionResponse
	if err := json.Unmarshal(data, &completion); err != nil {
		return "", fmt.Errorf("decode completion response: %w", err)
	}
	if completion.Error != nil {
		return "", fmt.Errorf("completion API error: %s", completion.Error.Message)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("completion API returned no choices")
	}
	return completion.Choices[0].Message.Content, nil
}

// AIService is the gateway in front of the generative provider: prompt
// construction, response caching and schema checks live here. Every generate
// method returns an error instead of partial output, and callers supply
// static fallbacks.
type AIService struct {
	Completer ChatCompleter
	Cache     *redis.Client
	Cfg       config.AIConfig
}

// NewAIService builds the gateway. An empty API key leaves the completer nil
// and every generation call fails fast into the caller's fallback. A nil
// cache client disables caching.
func NewAIService(cfg config.AIConfig, cache *redis.Client) *AIService {
	s := &AIService{Cache: cache, Cfg: cfg}
	if cfg.APIKey != "" {
		s.Completer = NewOpenAIClient(cfg)
	}
	return s
}

var errAIDisabled = fmt.Errorf("AI provider not configured")

// Enabled reports whether a completer is wired.
func (s *AIService) Enabled() bool {
	return s.Completer != nil
}

func (s *AIService) cacheKey(system, prompt string) string {
	sum := sha256.Sum256([]byte(s.Cfg.Model + "\x00" + system + "\x00" + prompt))
	return "ai:" + hex.EncodeToString(sum[:])
}

// GenerateContent runs one prompt through the completer, consulting the
// response cache first. A zero TTL bypasses the cache in both directions.
func (s *AIService) GenerateContent(ctx context.Context, system, prompt string, ttl time.Duration) (string, error) {
	if s.Completer == nil {
		return "", errAIDisabled
	}

	key := s.cacheKey(system, prompt)
	if ttl > 0 && s.Cache != nil {
		if cached, err := s.Cache.Get(ctx, key).Result(); err == nil {
			return cached, nil
		}
	}

	messages := make([]ChatMessage, 0, 2)
	if system != "" {
		messages = append(messages, ChatMessage{Role: "system", Content: system})
	}
	messages = append(messages, ChatMessage{Role: "user", Content: prompt})

	text, err := s.Completer.Complete(ctx, messages)
	if err != nil {
		return "", err
	}

	if ttl > 0 && s.Cache != nil && text != "" {
		if err := s.Cache.Set(ctx, key, text, ttl).Err(); err != nil {
			logger.Log.Warn("failed to cache AI response", zap.Error(err))
		}
	}
	return text, nil
}

// generateJSON asks for JSON, strips markdown fences, and verifies the
// required top-level keys are present before handing the document back.
func (s *AIService) generateJSON(ctx context.Context, system, prompt string, requiredKeys []string, ttl time.Duration) (json.RawMessage, error) {
	jsonPrompt := prompt + "\n\nPlease respond with valid JSON only."

	text, err := s.GenerateContent(ctx, system, jsonPrompt, ttl)
	if err != nil {
		return nil, err
	}

	cleaned := StripMarkdownFences(text)
	var document map[string]json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &document); err != nil {
		return nil, fmt.Errorf("parse generated JSON: %w", err)
	}
	for _, key := range requiredKeys {
		if _, ok := document[key]; !ok {
			return nil, fmt.Errorf("generated JSON missing required key %q", key)
		}
	}
	return json.RawMessage(cleaned), nil
}

// StripMarkdownFences removes a surrounding ```json / ``` code fence, which
// models add despite being asked for raw JSON.
func StripMarkdownFences(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = text[len("```json"):]
	}
	if strings.HasPrefix(text, "```") {
		text = text[len("```"):]
	}
	if strings.HasSuffix(text, "```") {
		text = text[:len(text)-len("```")]
	}
	return strings.TrimSpace(text)
}

// RoadmapPlan is the generated (or fallback) curriculum before persistence.
type RoadmapPlan struct {
	Modules []RoadmapModulePlan `json:"modules"`
}

type RoadmapModulePlan struct {
	Title              string          `json:"title"`
	Description        string          `json:"description"`
	Objectives         []string        `json:"objectives"`
	CheckpointCriteria json.RawMessage `json:"checkpoint_criteria"`
}

// GenerateRoadmap asks the provider for a module plan. Cached for a day:
// plans for the same language+level pair are deliberately shared between
// users.
func (s *AIService) GenerateRoadmap(ctx context.Context, language, cefrLevel string, modulesCount int) (*RoadmapPlan, error) {
	system := "You are an expert language learning curriculum designer. " +
		"Create structured, pedagogically sound learning roadmaps."

	prompt := fmt.Sprintf(`Create a %d-module learning roadmap for %s at %s level.

Each module should include:
- title: Clear, descriptive module title
- description: Brief description of what learners will achieve
- objectives: List of 3-5 specific learning objectives
- checkpoint_criteria: Success criteria for completing the module

Return the response as a JSON object with this structure:
{
  "modules": [
    {
      "title": "Module title",
      "description": "Module description",
      "objectives": ["objective 1", "objective 2", "objective 3"],
      "checkpoint_criteria": {
        "accuracy_threshold": 0.85,
        "min_tasks_completed": 10
      }
    }
  ]
}`, modulesCount, language, cefrLevel)

	raw, err := s.generateJSON(ctx, system, prompt, []string{"modules"}, s.Cfg.RoadmapCacheTTL)
	if err != nil {
		return nil, err
	}

	var plan RoadmapPlan
	if err := json.Unmarshal(raw, &plan); err != nil {
		return nil, fmt.Errorf("decode roadmap plan: %w", err)
	}
	if len(plan.Modules) == 0 {
		return nil, fmt.Errorf("generated roadmap has no modules")
	}
	return &plan, nil
}

// TaskFeedback is the structured explanation attached to an attempt.
type TaskFeedback struct {
	Rule            string `json:"rule"`
	ExampleContrast string `json:"example_contrast"`
	Tip             string `json:"tip,omitempty"`
}

// GenerateTaskFeedback explains a wrong answer. Cached: identical wrong
// answers to the same task get the same explanation.
func (s *AIService) GenerateTaskFeedback(ctx context.Context, userAnswer, correctAnswer string, taskType model.TaskType, taskContext string) (*TaskFeedback, error) {
	system := "You are a helpful language teacher. Provide concise, clear feedback " +
		"that helps learners understand their mistakes and learn from them."

	contextStr := ""
	if taskContext != "" {
		contextStr = "\nContext: " + taskContext
	}

	prompt := fmt.Sprintf(`The user attempted a %s task.
User's answer: %s
Correct answer: %s%s

Provide feedback with:
1. A brief explanation of the relevant grammar/vocabulary rule
2. An example contrast showing the difference between correct and incorrect usage
3. A short tip to remember the rule

Return as JSON:
{
  "rule": "Brief explanation of the rule",
  "example_contrast": "Correct: ... vs Incorrect: ...",
  "tip": "Helpful tip to remember"
}`, taskType, userAnswer, correctAnswer, contextStr)

	raw, err := s.generateJSON(ctx, system, prompt, []string{"rule", "example_contrast"}, s.Cfg.CacheTTL)
	if err != nil {
		return nil, err
	}

	var feedback TaskFeedback
	if err := json.Unmarshal(raw, &feedback); err != nil {
		return nil, fmt.Errorf("decode task feedback: %w", err)
	}
	return &feedback, nil
}

// DialogueReply is one tutor turn: the in-language response plus error
// corrections for the user's message.
type DialogueReply struct {
	Response      string          `json:"ai_response"`
	Corrections   json.RawMessage `json:"corrections"`
	Reformulation string          `json:"reformulation"`
}

// GenerateDialogueResponse produces the next tutor turn. Never cached: the
// same user message must yield a fresh reply in a different conversation
// state.
func (s *AIService) GenerateDialogueResponse(ctx context.Context, scenarioContext string, history []ChatMessage, userMessage, targetLanguage, cefrLevel string) (*DialogueReply, error) {
	system := fmt.Sprintf(
		"You are a friendly %s tutor having a conversation with a %s level learner. Be encouraging and helpful.",
		targetLanguage, cefrLevel,
	)

	var historyText strings.Builder
	for _, msg := range history {
		speaker := "AI"
		if msg.Role == "user" {
			speaker = "User"
		}
		fmt.Fprintf(&historyText, "%s: %s\n", speaker, msg.Content)
	}

	prompt := fmt.Sprintf(`Scenario: %s

Previous conversation:
%s
User's latest message: %s

Please:
1. Respond naturally to the user's message in %s
2. Identify any errors in the user's message and provide corrections
3. Provide a reformulated version of the user's message if there were errors

Return as JSON:
{
  "ai_response": "Your natural response in %s",
  "corrections": [
    {
      "original": "the incorrect part",
      "corrected": "the correct version",
      "explanation": "brief explanation"
    }
  ],
  "reformulation": "Full corrected version of user's message (only if errors exist)"
}`, scenarioContext, historyText.String(), userMessage, targetLanguage, targetLanguage)

	raw, err := s.generateJSON(ctx, system, prompt, []string{"ai_response", "corrections"}, 0)
	if err != nil {
		return nil, err
	}

	var reply DialogueReply
	if err := json.Unmarshal(raw, &reply); err != nil {
		return nil, fmt.Errorf("decode dialogue reply: %w", err)
	}
	return &reply, nil
}
