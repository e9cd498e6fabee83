package logging

import (
	"os"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/sirupsen/logrus"
)

// New returns a JSON logger writing to stdout, which Lambda ships to CloudWatch.
// An unparseable level falls back to info.
func New(level string) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)
	return l
}

// ForRequest tags log entries with the API Gateway request id.
func ForRequest(log logrus.FieldLogger, req events.APIGatewayV2HTTPRequest) logrus.FieldLogger {
	if id := req.RequestContext.RequestID; id != "" {
		return log.WithField("request_id", id)
	}
	return log
}
