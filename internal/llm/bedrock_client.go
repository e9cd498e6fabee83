package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	bedrockruntime "github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/smithy-go"
)

type BedrockClient interface {
	InvokeModel(ctx context.Context, params *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error)
}

// BedrockGenerator sends the same single-turn request through Bedrock.
// Credentials come from the Lambda execution role, so apiKey is unused.
type BedrockGenerator struct {
	client  BedrockClient
	modelID string
}

func NewBedrockGenerator(c BedrockClient, modelID string) *BedrockGenerator {
	return &BedrockGenerator{client: c, modelID: modelID}
}

func (g *BedrockGenerator) Generate(ctx context.Context, _ string, prompt string) (string, error) {
	// Bedrock takes the Messages body minus "model", plus its own version field.
	req := NewMessagesRequest(prompt)
	body, err := json.Marshal(map[string]any{
		"anthropic_version": "bedrock-2023-05-31",
		"max_tokens":        req.MaxTokens,
		"messages":          req.Messages,
	})
	if err != nil {
		return "", fmt.Errorf("marshal bedrock request: %w", err)
	}

	out, err := g.client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(g.modelID),
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
		Body:        body,
	})
	if err != nil {
		var status interface{ HTTPStatusCode() int }
		if errors.As(err, &status) && status.HTTPStatusCode() > 0 {
			msg := "Unknown error"
			var apiErr smithy.APIError
			if errors.As(err, &apiErr) && apiErr.ErrorMessage() != "" {
				msg = apiErr.ErrorMessage()
			}
			return "", &UpstreamError{StatusCode: status.HTTPStatusCode(), Message: msg, Body: []byte(err.Error())}
		}
		return "", fmt.Errorf("bedrock InvokeModel: %w", err)
	}

	return FirstText(out.Body)
}
