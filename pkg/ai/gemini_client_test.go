package ai

import (
	"context"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperr "agrow/pkg/errors"
)

func newTestGemini(t *testing.T) (*Gemini, *httpmock.MockTransport) {
	t.Helper()
	mt := httpmock.NewMockTransport()
	g, err := NewGemini(context.Background(), GeminiOptions{
		APIKey:     "test-key",
		Model:      "gemini-test",
		HTTPClient: &http.Client{Transport: mt},
	})
	require.NoError(t, err)
	return g, mt
}

func textReply(text string) map[string]any {
	return map[string]any{
		"candidates": []any{map[string]any{
			"content": map[string]any{
				"role":  "model",
				"parts": []any{map[string]any{"text": text}},
			},
			"finishReason": "STOP",
		}},
	}
}

func TestGemini_Analyze(t *testing.T) {
	g, mt := newTestGemini(t)
	mt.RegisterResponder(http.MethodPost, `=~gemini-test:generateContent`,
		httpmock.NewJsonResponderOrPanic(200, textReply(`Sure. {"identifiedCrop":"Tomato","confidence":0.92}`)))

	out, err := g.Analyze(context.Background(), Image{Data: []byte{1, 2, 3}, MIMEType: "image/png"}, "Tomato")
	require.NoError(t, err)
	assert.Contains(t, out, `"identifiedCrop":"Tomato"`)
	assert.Equal(t, 1, mt.GetTotalCallCount())
}

func TestGemini_Analyze_APIError(t *testing.T) {
	g, mt := newTestGemini(t)
	mt.RegisterResponder(http.MethodPost, `=~generateContent`,
		httpmock.NewJsonResponderOrPanic(403, map[string]any{
			"error": map[string]any{"code": 403, "message": "API key not valid", "status": "PERMISSION_DENIED"},
		}))

	_, err := g.Analyze(context.Background(), Image{Data: []byte{1}, MIMEType: "image/png"}, "")
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.ErrInference))
}

func TestGemini_Analyze_EmptyReply(t *testing.T) {
	g, mt := newTestGemini(t)
	mt.RegisterResponder(http.MethodPost, `=~generateContent`,
		httpmock.NewJsonResponderOrPanic(200, map[string]any{"candidates": []any{}}))

	_, err := g.Analyze(context.Background(), Image{Data: []byte{1}, MIMEType: "image/png"}, "")
	require.Error(t, err)
	assert.Equal(t, apperr.KindInference, apperr.KindOf(err))
}

func TestGemini_ListModels(t *testing.T) {
	g, mt := newTestGemini(t)
	mt.RegisterResponder(http.MethodGet, `=~/models`,
		httpmock.NewJsonResponderOrPanic(200, map[string]any{
			"models": []any{
				map[string]any{"name": "models/gemini-2.0-flash"},
				map[string]any{"name": "models/gemini-1.5-pro"},
			},
		}))

	names, err := g.ListModels(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"models/gemini-2.0-flash", "models/gemini-1.5-pro"}, names)
}

func TestGemini_ProbeStopsAtFirstSuccess(t *testing.T) {
	g, mt := newTestGemini(t)
	mt.RegisterResponder(http.MethodPost, `=~/models/bad-model:generateContent`,
		httpmock.NewJsonResponderOrPanic(404, map[string]any{
			"error": map[string]any{"code": 404, "message": "not found", "status": "NOT_FOUND"},
		}))
	mt.RegisterResponder(http.MethodPost, `=~/models/good-model:generateContent`,
		httpmock.NewJsonResponderOrPanic(200, textReply("Hello!")))

	res := g.Probe(context.Background(), []string{"bad-model", "good-model", "never-tried"})
	require.Len(t, res, 2)
	assert.Error(t, res[0].Err)
	assert.NoError(t, res[1].Err)
	assert.Equal(t, "Hello!", res[1].Reply)
}

func TestNewGemini_RequiresKey(t *testing.T) {
	_, err := NewGemini(context.Background(), GeminiOptions{})
	assert.Error(t, err)
}

func TestMock_UsesCropHint(t *testing.T) {
	out, err := NewMock().Analyze(context.Background(), Image{}, "Cassava")
	require.NoError(t, err)
	assert.Contains(t, out, `"identifiedCrop":"Cassava"`)
	assert.Contains(t, renderDiagnosisPrompt("Cassava"), "primary interest is Cassava")
}
