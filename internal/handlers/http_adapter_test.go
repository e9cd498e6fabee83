package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPHandler_TranslatesRequest(t *testing.T) {
	var got events.APIGatewayV2HTTPRequest
	fn := func(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
		got = req
		return jsonResp(http.StatusCreated, map[string]string{"ok": "yes"}), nil
	}

	req := httptest.NewRequest(http.MethodPost, "/.netlify/functions/generate-obituary?x=1", strings.NewReader(`{"prompt":"hi"}`))
	req.Header.Set("X-Trace", "abc")
	rec := httptest.NewRecorder()

	HTTPHandler(fn).ServeHTTP(rec, req)

	assert.Equal(t, http.MethodPost, got.RequestContext.HTTP.Method)
	assert.Equal(t, "/.netlify/functions/generate-obituary", got.RawPath)
	assert.Equal(t, "x=1", got.RawQueryString)
	assert.Equal(t, `{"prompt":"hi"}`, got.Body)
	assert.Equal(t, "abc", got.Headers["x-trace"])

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"ok":"yes"}`, rec.Body.String())
}

func TestHTTPHandler_ObituaryEndToEnd(t *testing.T) {
	log, _ := logtest.NewNullLogger()
	h := NewObituaryHandler(&fakeGenerator{text: "Jane Doe, beloved..."}, staticKey("sk"), log)

	srv := httptest.NewServer(HTTPHandler(h.Handle))
	defer srv.Close()

	resp, err := http.Post(srv.URL, "application/json", strings.NewReader(`{"prompt":"Write about Jane Doe"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"text":"Jane Doe, beloved..."}`, string(body))

	resp, err = http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}
