// pkg/ai/gemini_client.go

package ai

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"

	apperr "agrow/pkg/errors"
)

type GeminiOptions struct {
	APIKey  string
	Model   string
	BaseURL string
	// HTTPClient overrides the transport; tests plug a mock in here.
	HTTPClient *http.Client
}

type Gemini struct {
	client *genai.Client
	model  string
}

func NewGemini(ctx context.Context, opts GeminiOptions) (*Gemini, error) {
	if opts.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if opts.Model == "" {
		opts.Model = "gemini-2.0-flash"
	}
	cfg := &genai.ClientConfig{
		APIKey:     opts.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: opts.HTTPClient,
	}
	if opts.BaseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: opts.BaseURL}
	}
	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	return &Gemini{client: client, model: opts.Model}, nil
}

func (g *Gemini) Model() string { return g.model }

func (g *Gemini) Analyze(ctx context.Context, img Image, cropHint string) (string, error) {
	const op = "gemini.generate"
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(renderDiagnosisPrompt(cropHint)),
			genai.NewPartFromBytes(img.Data, img.MIMEType),
		}, genai.RoleUser),
	}
	return g.generate(ctx, op, g.model, contents)
}

func (g *Gemini) generate(ctx context.Context, op, model string, contents []*genai.Content) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, model, contents, nil)
	if err != nil {
		return "", apperr.E(apperr.KindInference, op, err)
	}
	text := ""
	if resp != nil {
		text = strings.TrimSpace(resp.Text())
	}
	if text == "" {
		return "", apperr.Newf(apperr.KindInference, op, "model %s returned no usable text", model)
	}
	return text, nil
}

// ListModels returns the model names visible to the configured key.
func (g *Gemini) ListModels(ctx context.Context) ([]string, error) {
	var names []string
	for m, err := range g.client.Models.All(ctx) {
		if err != nil {
			return names, apperr.E(apperr.KindInference, "gemini.list_models", err)
		}
		names = append(names, m.Name)
	}
	return names, nil
}

// DefaultProbeModels is tried in order by Probe.
var DefaultProbeModels = []string{
	"gemini-2.0-flash",
	"gemini-2.0-flash-lite",
	"gemini-1.5-flash",
	"gemini-1.5-pro",
}

type ProbeResult struct {
	Model string
	Reply string
	Err   error
}

// Probe sends a trivial prompt to each candidate until one answers. It
// returns every attempt; the last one is the success, if any.
func (g *Gemini) Probe(ctx context.Context, candidates []string) []ProbeResult {
	if len(candidates) == 0 {
		candidates = DefaultProbeModels
	}
	var out []ProbeResult
	for _, m := range candidates {
		reply, err := g.generate(ctx, "gemini.probe", m, genai.Text("Hello"))
		out = append(out, ProbeResult{Model: m, Reply: reply, Err: err})
		if err == nil {
			break
		}
	}
	return out
}
