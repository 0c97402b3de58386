// pkg/ai/mock_client.go

package ai

import (
	"context"
	"encoding/json"
	"strings"
)

type mockClient struct{}

// NewMock answers without any external call; used when no API key is set.
func NewMock() VisionClient { return &mockClient{} }

func (m *mockClient) Analyze(ctx context.Context, img Image, cropHint string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	crop := strings.TrimSpace(cropHint)
	if crop == "" {
		crop = "Unknown plant"
	}
	b, _ := json.Marshal(map[string]any{
		"identifiedCrop":    crop,
		"commonName":        crop,
		"condition":         "Healthy",
		"scientificName":    "",
		"status":            "Healthy",
		"advice":            "Offline analysis only. Configure GEMINI_API_KEY for a real diagnosis.",
		"symptoms":          []string{},
		"treatmentOrganic":  "No treatment required.",
		"treatmentChemical": "No treatment required.",
		"confidence":        0.5,
	})
	return "Mock vision result:\n" + string(b), nil
}
