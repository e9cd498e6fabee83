package main

import (
	"github.com/aws/aws-lambda-go/lambda"

	"obituary/internal/handlers"
)

func main() {
	lambda.Start(handlers.Health)
}
