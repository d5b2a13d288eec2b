package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"kbquery"

	"github.com/aws/aws-lambda-go/events"
)

// NewPayload wraps the question the way API Gateway would deliver it.
func NewPayload(question string) ([]byte, error) {
	body, err := json.Marshal(kbquery.QueryRequest{Query: question})
	if err != nil {
		return nil, err
	}
	return json.Marshal(events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodPost,
		Path:       "/query",
		Body:       string(body),
	})
}

// DecodeReply unpacks a proxy response. Non-200 replies become errors
// carrying the function's error message.
func DecodeReply(payload []byte) (*kbquery.Response, error) {
	var reply events.APIGatewayProxyResponse
	if err := json.Unmarshal(payload, &reply); err != nil {
		return nil, fmt.Errorf("unexpected payload: %w", err)
	}
	if reply.StatusCode != http.StatusOK {
		var e kbquery.ErrorResponse
		if err := json.Unmarshal([]byte(reply.Body), &e); err != nil || e.Error == "" {
			return nil, fmt.Errorf("status %d: %s", reply.StatusCode, reply.Body)
		}
		return nil, fmt.Errorf("status %d: %w", reply.StatusCode, errors.New(e.Error))
	}
	var response kbquery.Response
	if err := json.Unmarshal([]byte(reply.Body), &response); err != nil {
		return nil, fmt.Errorf("unexpected body: %w", err)
	}
	return &response, nil
}
