// pkg/ai/client.go

package ai

import "context"

type Image struct {
	Data     []byte
	MIMEType string
}

// VisionClient runs one inference call and returns the model's raw text.
// Every failure, including an empty reply, is an error of kind inference.
type VisionClient interface {
	Analyze(ctx context.Context, img Image, cropHint string) (string, error)
}

// VisionFunc adapts a function to VisionClient.
type VisionFunc func(ctx context.Context, img Image, cropHint string) (string, error)

func (f VisionFunc) Analyze(ctx context.Context, img Image, cropHint string) (string, error) {
	return f(ctx, img, cropHint)
}
