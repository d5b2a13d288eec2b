package query

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"maps"
	"net/http"

	"kbquery"

	"github.com/aws/aws-lambda-go/events"
)

// Reply is the status and JSON body for one request.
type Reply struct {
	StatusCode int
	Body       any
}

func errorReply(status int, err error) Reply {
	return Reply{StatusCode: status, Body: kbquery.ErrorResponse{Error: err.Error()}}
}

// ParseQuestion returns the query field of a JSON body.
// Empty or malformed bodies yield "".
func ParseQuestion(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	var req kbquery.QueryRequest
	if err := json.Unmarshal(body, &req); err != nil {
		kbquery.Logger.Debug("Body is not a query request", "error", err)
		return ""
	}
	return req.Query
}

// Handle never fails: every error is turned into a reply.
func (a *Adapter) Handle(ctx context.Context, body []byte) Reply {
	question := ParseQuestion(body)
	if question == "" {
		return errorReply(http.StatusBadRequest, kbquery.ErrQueryRequired)
	}
	kbquery.Logger.Info("Question received", "question", question)

	response, err := a.Query(ctx, question)
	if err != nil {
		return errorReply(http.StatusInternalServerError, err)
	}
	return Reply{StatusCode: http.StatusOK, Body: response}
}

// HandleEvent is the Lambda entry point for API Gateway and function URL events.
// The returned error is always nil.
func (a *Adapter) HandleEvent(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	body := []byte(req.Body)
	if req.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(req.Body)
		if err != nil {
			kbquery.Logger.Warn("Body is not valid base64", "error", err)
			decoded = nil
		}
		body = decoded
	}
	return a.Handle(ctx, body).ProxyResponse(), nil
}

func (r Reply) ProxyResponse() events.APIGatewayProxyResponse {
	status := r.StatusCode
	payload, err := json.Marshal(r.Body)
	if err != nil {
		kbquery.Logger.Error("Encoding reply failed", "error", err)
		status = http.StatusInternalServerError
		payload, _ = json.Marshal(kbquery.ErrorResponse{Error: err.Error()})
	}
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    maps.Clone(kbquery.Headers),
		Body:       string(payload),
	}
}
