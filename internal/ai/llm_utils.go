package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

func cleanJSONOutput(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(text, "```")
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
	}
	return strings.TrimSpace(text)
}

var classificationSchema = jsonschema.MustCompileString("classification.schema.json", `{
	"type": "array",
	"items": {
		"type": "object",
		"required": ["description", "tab"],
		"properties": {
			"description": {"type": "string"},
			"tab": {"type": "string"}
		}
	}
}`)

func parseClassification(text string) ([]ClassifiedDocument, error) {
	cleaned := cleanJSONOutput(text)
	var v interface{}
	if err := json.Unmarshal([]byte(cleaned), &v); err != nil {
		return nil, fmt.Errorf("classification response is not valid JSON: %w", err)
	}
	if err := classificationSchema.Validate(v); err != nil {
		return nil, fmt.Errorf("classification response failed schema validation: %w", err)
	}
	var docs []ClassifiedDocument
	if err := json.Unmarshal([]byte(cleaned), &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

type verdictResponse struct {
	HasMinimum bool     `json:"has_minimum"`
	Missing    []string `json:"missing"`
}

func parseVerdict(text string) (bool, []string, error) {
	var v verdictResponse
	if err := json.Unmarshal([]byte(cleanJSONOutput(text)), &v); err != nil {
		return false, nil, fmt.Errorf("verdict response is not valid JSON: %w", err)
	}
	return v.HasMinimum, v.Missing, nil
}
