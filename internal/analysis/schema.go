// internal/analysis/schema.go
package analysis

import (
	"encoding/json"
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	stderrors "bizfit-workers/internal/common/errors"
)

// aiPayload mirrors the JSON object the LLM is instructed to produce.
type aiPayload struct {
	Matches []aiMatch `json:"matches"`
	Personality struct {
		TraitScores      map[string]int `json:"traitScores"`
		Strengths        []string       `json:"strengths"`
		DevelopmentAreas []string       `json:"developmentAreas"`
		WorkStyle        string         `json:"workStyle"`
		RiskProfile      string         `json:"riskProfile"`
	} `json:"personality"`
	Recommendations []string `json:"recommendations"`
}

type aiMatch struct {
	ModelID    string   `json:"modelId"`
	FitScore   float64  `json:"fitScore"`
	Reasoning  string   `json:"reasoning"`
	Strengths  []string `json:"strengths"`
	Challenges []string `json:"challenges"`
	Confidence float64  `json:"confidence"`
}

// responseSchema is validated before unmarshalling so a structurally wrong
// completion is classified AI_RESPONSE_INVALID instead of producing a
// half-filled analysis.
var responseSchema = map[string]interface{}{
	"type":     "object",
	"required": []interface{}{"matches", "personality"},
	"properties": map[string]interface{}{
		"matches": map[string]interface{}{
			"type":     "array",
			"minItems": 1,
			"items": map[string]interface{}{
				"type":     "object",
				"required": []interface{}{"modelId", "fitScore"},
				"properties": map[string]interface{}{
					"modelId":    map[string]interface{}{"type": "string"},
					"fitScore":   map[string]interface{}{"type": "number"},
					"reasoning":  map[string]interface{}{"type": "string"},
					"strengths":  map[string]interface{}{"type": "array"},
					"challenges": map[string]interface{}{"type": "array"},
					"confidence": map[string]interface{}{"type": "number"},
				},
			},
		},
		"personality": map[string]interface{}{
			"type":     "object",
			"required": []interface{}{"traitScores"},
			"properties": map[string]interface{}{
				"traitScores": map[string]interface{}{"type": "object"},
			},
		},
		"recommendations": map[string]interface{}{"type": "array"},
	},
}

// parseAIResponse validates the completion content against the expected
// schema and unmarshals it.
func parseAIResponse(content string) (*aiPayload, error) {
	var doc interface{}
	if err := json.Unmarshal([]byte(content), &doc); err != nil {
		return nil, stderrors.Wrap(stderrors.ErrCodeAIResponseInvalid, err)
	}

	schemaLoader := gojsonschema.NewGoLoader(responseSchema)
	documentLoader := gojsonschema.NewGoLoader(doc)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, stderrors.Wrap(stderrors.ErrCodeAIResponseInvalid, err)
	}
	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return nil, stderrors.New(stderrors.ErrCodeAIResponseInvalid,
			fmt.Sprintf("schema validation failed: %v", errs))
	}

	var payload aiPayload
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return nil, stderrors.Wrap(stderrors.ErrCodeAIResponseInvalid, err)
	}
	return &payload, nil
}
