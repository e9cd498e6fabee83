package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
)

type errorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func jsonOK(v any) events.APIGatewayV2HTTPResponse {
	return jsonResp(http.StatusOK, v)
}

// jsonErr puts err's message in "details" when err is non-nil.
func jsonErr(status int, msg string, err error) events.APIGatewayV2HTTPResponse {
	resp := errorBody{Error: msg}
	if err != nil {
		resp.Details = err.Error()
	}
	return jsonResp(status, resp)
}

func jsonResp(status int, v any) events.APIGatewayV2HTTPResponse {
	b, _ := json.Marshal(v)
	return events.APIGatewayV2HTTPResponse{
		StatusCode: status,
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
		Body: string(b),
	}
}
