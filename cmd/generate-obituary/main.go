package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"

	"obituary/internal/config"
	"obituary/internal/handlers"
	"obituary/internal/logging"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logging.New("info").Fatalf("load config: %v", err)
	}
	log := logging.New(cfg.LogLevel)

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		log.Fatalf("load aws config: %v", err)
	}

	h := handlers.NewObituaryHandlerFromConfig(awsCfg, cfg, log)

	lambda.Start(h.Handle)
}
