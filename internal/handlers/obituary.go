package handlers

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-sdk-go-v2/aws"
	bedrockruntime "github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/sirupsen/logrus"

	"obituary/internal/config"
	"obituary/internal/llm"
	"obituary/internal/logging"
	"obituary/internal/secrets"
)

type ObituaryHandler struct {
	gen  llm.Generator
	keys secrets.Source // nil when the generator authenticates on its own
	log  logrus.FieldLogger
}

func NewObituaryHandler(gen llm.Generator, keys secrets.Source, log logrus.FieldLogger) *ObituaryHandler {
	return &ObituaryHandler{gen: gen, keys: keys, log: log}
}

// NewObituaryHandlerFromConfig wires the generator and key lookup picked by cfg.
func NewObituaryHandlerFromConfig(awsCfg aws.Config, cfg *config.Config, log logrus.FieldLogger) *ObituaryHandler {
	if cfg.Provider == config.ProviderBedrock {
		br := bedrockruntime.NewFromConfig(awsCfg)
		return NewObituaryHandler(llm.NewBedrockGenerator(br, cfg.BedrockModelID), nil, log)
	}

	keys := secrets.Chain{secrets.Env(cfg.APIKeyEnv)}
	if cfg.APIKeyParam != "" {
		keys = append(keys, secrets.Parameter{Client: ssm.NewFromConfig(awsCfg), Name: cfg.APIKeyParam})
	}
	return NewObituaryHandler(llm.NewAnthropicClient(nil, cfg.BaseURL), keys, log)
}

type ObituaryResponse struct {
	Text string `json:"text"`
}

func (h *ObituaryHandler) Handle(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	log := logging.ForRequest(h.log, req)

	if req.RequestContext.HTTP.Method != http.MethodPost {
		return jsonErr(http.StatusMethodNotAllowed, "Method not allowed", nil), nil
	}

	prompt, err := parsePrompt(req)
	if err != nil {
		return h.failed(log, err), nil
	}
	if prompt == "" {
		return jsonErr(http.StatusBadRequest, "Prompt is required", nil), nil
	}

	apiKey := ""
	if h.keys != nil {
		apiKey, err = h.keys.APIKey(ctx)
		if err != nil {
			log.WithError(err).Error("API key lookup failed")
			return jsonErr(http.StatusInternalServerError, "API key not configured", nil), nil
		}
		if apiKey == "" {
			log.WithField("key_sources", fmt.Sprint(h.keys)).Error("API key is not set in any configured source")
			return jsonErr(http.StatusInternalServerError, "API key not configured", nil), nil
		}
	}

	text, err := h.gen.Generate(ctx, apiKey, prompt)
	if err != nil {
		var upErr *llm.UpstreamError
		if errors.As(err, &upErr) {
			log.WithFields(logrus.Fields{
				"status":        upErr.StatusCode,
				"upstream_body": string(upErr.Body),
			}).Error("upstream API error")
			return jsonErr(upErr.StatusCode, "API request failed: "+upErr.Message, nil), nil
		}
		return h.failed(log, err), nil
	}

	return jsonOK(ObituaryResponse{Text: text}), nil
}

func (h *ObituaryHandler) failed(log logrus.FieldLogger, err error) events.APIGatewayV2HTTPResponse {
	log.WithError(err).Error("generate obituary failed")
	return jsonErr(http.StatusInternalServerError, "Failed to generate obituary", err)
}

// parsePrompt fails only when the body is not JSON or is JSON null. Any other
// value without a non-empty string "prompt" yields "".
func parsePrompt(req events.APIGatewayV2HTTPRequest) (string, error) {
	raw := []byte(req.Body)
	if req.IsBase64Encoded {
		b, err := base64.StdEncoding.DecodeString(req.Body)
		if err != nil {
			return "", fmt.Errorf("decode base64 body: %w", err)
		}
		raw = b
	}

	var body any
	if err := json.Unmarshal(raw, &body); err != nil {
		return "", err
	}
	if body == nil {
		return "", errors.New("request body is null")
	}

	obj, _ := body.(map[string]any)
	prompt, _ := obj["prompt"].(string)
	return prompt, nil
}
