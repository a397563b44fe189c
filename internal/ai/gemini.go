package ai

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"caseprep/internal/evidence"
	"caseprep/internal/schema"
)

// GeminiAssistant implements Assistant using Gemini text generation.
type GeminiAssistant struct {
	client        *genai.Client
	model         string
	promptBuilder *PromptBuilder
}

func NewGeminiAssistant(ctx context.Context, apiKey string, modelName string) (*GeminiAssistant, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &GeminiAssistant{
		client:        client,
		model:         modelName,
		promptBuilder: &PromptBuilder{},
	}, nil
}

func (g *GeminiAssistant) ExtractRecord(ctx context.Context, documentText string, ct *schema.CaseType) ([]byte, error) {
	prompt := g.promptBuilder.BuildExtractionPrompt(documentText, ct)
	resp, err := g.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}
	return []byte(cleanJSONOutput(resp)), nil
}

func (g *GeminiAssistant) ClassifyDocuments(ctx context.Context, files []evidence.FileText, cc CaseContext) ([]ClassifiedDocument, error) {
	ct, err := schema.ByID(cc.CaseTypeID)
	if err != nil {
		return nil, err
	}
	prompt := g.promptBuilder.BuildClassificationPrompt(files, cc, ct.Tabs)
	resp, err := g.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}
	return parseClassification(resp)
}

func (g *GeminiAssistant) DraftNarrative(ctx context.Context, facts map[string]string, cc CaseContext) (string, error) {
	prompt := g.promptBuilder.BuildNarrativePrompt(facts, cc)
	return g.generate(ctx, prompt)
}

func (g *GeminiAssistant) VerifyCompleteness(ctx context.Context, buckets map[string][]string, cc CaseContext) (bool, []string, error) {
	prompt := g.promptBuilder.BuildCompletenessPrompt(buckets, cc)
	resp, err := g.generate(ctx, prompt)
	if err != nil {
		return false, nil, err
	}
	return parseVerdict(resp)
}

func (g *GeminiAssistant) generate(ctx context.Context, prompt string) (string, error) {
	contents := genai.Text(prompt)
	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return "", err
	}
	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("empty response from model %s", g.model)
	}
	return text, nil
}
