package handlers

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
)

type HealthResponse struct {
	OK      bool   `json:"ok"`
	Service string `json:"service"`
}

func Health(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	return jsonOK(HealthResponse{OK: true, Service: "obituary-backend"}), nil
}
