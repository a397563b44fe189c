package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"caseprep/internal/evidence"
	"caseprep/internal/schema"
)

// OpenAIAssistant implements Assistant against any OpenAI-compatible chat
// completions endpoint.
type OpenAIAssistant struct {
	client        *http.Client
	apiKey        string
	model         string
	endpoint      string
	promptBuilder *PromptBuilder
}

type openAIChatRequest struct {
	Model       string              `json:"model"`
	Messages    []openAIChatMessage `json:"messages"`
	Temperature float64             `json:"temperature,omitempty"`
}

type openAIChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIChatResponse struct {
	Choices []struct {
		Message openAIChatMessage `json:"message"`
	} `json:"choices"`
}

func NewOpenAIAssistant(apiKey, model, baseURL string) *OpenAIAssistant {
	endpoint := strings.TrimSpace(baseURL)
	if endpoint == "" {
		endpoint = "https://api.openai.com/v1/chat/completions"
	} else {
		endpoint = strings.TrimRight(endpoint, "/")
		if !strings.HasSuffix(endpoint, "/chat/completions") {
			if strings.HasSuffix(endpoint, "/v1") {
				endpoint += "/chat/completions"
			} else {
				endpoint += "/v1/chat/completions"
			}
		}
	}
	return &OpenAIAssistant{
		client: &http.Client{
			Timeout: 90 * time.Second,
		},
		apiKey:        apiKey,
		model:         model,
		endpoint:      endpoint,
		promptBuilder: &PromptBuilder{},
	}
}

func (s *OpenAIAssistant) ExtractRecord(ctx context.Context, documentText string, ct *schema.CaseType) ([]byte, error) {
	prompt := s.promptBuilder.BuildExtractionPrompt(documentText, ct)
	resp, err := s.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}
	return []byte(cleanJSONOutput(resp)), nil
}

func (s *OpenAIAssistant) ClassifyDocuments(ctx context.Context, files []evidence.FileText, cc CaseContext) ([]ClassifiedDocument, error) {
	ct, err := schema.ByID(cc.CaseTypeID)
	if err != nil {
		return nil, err
	}
	prompt := s.promptBuilder.BuildClassificationPrompt(files, cc, ct.Tabs)
	resp, err := s.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}
	return parseClassification(resp)
}

func (s *OpenAIAssistant) DraftNarrative(ctx context.Context, facts map[string]string, cc CaseContext) (string, error) {
	prompt := s.promptBuilder.BuildNarrativePrompt(facts, cc)
	return s.generate(ctx, prompt)
}

func (s *OpenAIAssistant) VerifyCompleteness(ctx context.Context, buckets map[string][]string, cc CaseContext) (bool, []string, error) {
	prompt := s.promptBuilder.BuildCompletenessPrompt(buckets, cc)
	resp, err := s.generate(ctx, prompt)
	if err != nil {
		return false, nil, err
	}
	return parseVerdict(resp)
}

func (s *OpenAIAssistant) generate(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(s.apiKey) == "" {
		return "", fmt.Errorf("openai api key is required")
	}
	if strings.TrimSpace(s.model) == "" {
		return "", fmt.Errorf("openai model is required")
	}

	reqBody := openAIChatRequest{
		Model: s.model,
		Messages: []openAIChatMessage{
			{Role: "user", Content: prompt},
		},
		Temperature: 0.1,
	}
	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("openai request failed with status %d: %s", resp.StatusCode, truncate(string(respBody), 500))
	}

	var parsed openAIChatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("failed to decode openai response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("openai response contained no choices")
	}
	return parsed.Choices[0].Message.Content, nil
}
