package logging

import (
	"bytes"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
)

func TestNew_Level(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, New("debug").GetLevel())
	assert.Equal(t, logrus.InfoLevel, New("").GetLevel())
	assert.Equal(t, logrus.InfoLevel, New("loud").GetLevel())
}

func TestForRequest(t *testing.T) {
	var buf bytes.Buffer
	l := New("info")
	l.SetOutput(&buf)

	req := events.APIGatewayV2HTTPRequest{}
	req.RequestContext.RequestID = "req-123"

	ForRequest(l, req).Error("boom")

	out := buf.Bytes()
	assert.Equal(t, "req-123", gjson.GetBytes(out, "request_id").String())
	assert.Equal(t, "boom", gjson.GetBytes(out, "msg").String())
	assert.Equal(t, "error", gjson.GetBytes(out, "level").String())
}
