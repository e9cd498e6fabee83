package secrets

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

// Source resolves the upstream API key. An empty key with a nil error means
// the key is not configured.
type Source interface {
	APIKey(ctx context.Context) (string, error)
}

// Env reads the named environment variable on every call.
type Env string

func (e Env) APIKey(ctx context.Context) (string, error) {
	return strings.TrimSpace(os.Getenv(string(e))), nil
}

func (e Env) String() string { return "env " + string(e) }

type ParameterClient interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

// Parameter reads a SecureString from SSM Parameter Store. Nothing is cached
// between calls.
type Parameter struct {
	Client ParameterClient
	Name   string
}

func (p Parameter) APIKey(ctx context.Context) (string, error) {
	out, err := p.Client.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(p.Name),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("ssm GetParameter %s: %w", p.Name, err)
	}
	if out.Parameter == nil {
		return "", nil
	}
	return strings.TrimSpace(aws.ToString(out.Parameter.Value)), nil
}

func (p Parameter) String() string { return "ssm parameter " + p.Name }

// Chain returns the first non-empty key. Later sources are not consulted once
// one succeeds, and the first error stops the lookup.
type Chain []Source

func (c Chain) APIKey(ctx context.Context) (string, error) {
	for _, s := range c {
		k, err := s.APIKey(ctx)
		if err != nil {
			return "", err
		}
		if k != "" {
			return k, nil
		}
	}
	return "", nil
}

// String lists the sources in lookup order.
func (c Chain) String() string {
	names := make([]string, 0, len(c))
	for _, s := range c {
		names = append(names, fmt.Sprint(s))
	}
	return strings.Join(names, ", ")
}
