package main

import (
	"context"
	"net/http"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/joho/godotenv"

	"obituary/internal/config"
	"obituary/internal/handlers"
	"obituary/internal/logging"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.New("info").Fatalf("load config: %v", err)
	}
	log := logging.New(cfg.LogLevel)

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background())
	if err != nil {
		log.Fatalf("load aws config: %v", err)
	}

	h := handlers.NewObituaryHandlerFromConfig(awsCfg, cfg, log)

	mux := http.NewServeMux()
	mux.Handle("/.netlify/functions/generate-obituary", handlers.HTTPHandler(h.Handle))
	mux.Handle("/generate-obituary", handlers.HTTPHandler(h.Handle))
	mux.Handle("/health", handlers.HTTPHandler(handlers.Health))

	log.Infof("listening on %s", cfg.LocalAddr)
	if err := http.ListenAndServe(cfg.LocalAddr, mux); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
