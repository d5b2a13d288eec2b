package server_test

import (
	"context"
	"encoding/json"
	"kbquery"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"kbquery/query"
	"kbquery/server"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagentruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagentruntime/types"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/gin-gonic/gin"
	"gotest.tools/v3/assert"
)

type identity struct{}

func (identity) GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error) {
	return &sts.GetCallerIdentityOutput{Account: aws.String("123456789012")}, nil
}

type agent struct {
	calls int
}

func (a *agent) RetrieveAndGenerate(ctx context.Context, params *bedrockagentruntime.RetrieveAndGenerateInput, optFns ...func(*bedrockagentruntime.Options)) (*bedrockagentruntime.RetrieveAndGenerateOutput, error) {
	a.calls++
	return &bedrockagentruntime.RetrieveAndGenerateOutput{
		Output: &types.RetrieveAndGenerateOutput{Text: aws.String("Refunds within 30 days.")},
		Citations: []types.Citation{
			{RetrievedReferences: []types.RetrievedReference{{
				Content: &types.RetrievalResultContent{Text: aws.String("policy")},
			}}},
		},
	}, nil
}

func newAdapter(ag *agent) *query.Adapter {
	cfg := kbquery.Config{Region: "us-west-2", KnowledgeBaseID: "KB123"}
	return query.New(cfg, query.WithClients(ag, identity{}))
}

func init() {
	gin.SetMode(gin.TestMode)
}

func TestPostQuery(t *testing.T) {
	ag := &agent{}
	r := server.New(newAdapter(ag))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/query", strings.NewReader(`{"query":"What is the refund policy?"}`))
	r.ServeHTTP(w, req)

	assert.Equal(t, w.Code, http.StatusOK)
	assert.Equal(t, w.Header().Get("Access-Control-Allow-Origin"), "*")
	assert.Equal(t, w.Header().Get("Access-Control-Allow-Methods"), "POST,OPTIONS")

	var got kbquery.Response
	assert.NilError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, got.Answer, "Refunds within 30 days.")
	assert.DeepEqual(t, got.Citations, []kbquery.Citation{{Content: "policy", Location: map[string]any{}}})
	assert.Equal(t, ag.calls, 1)
}

func TestPostQueryWithoutQuery(t *testing.T) {
	ag := &agent{}
	r := server.New(newAdapter(ag))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/query", strings.NewReader(`{}`))
	r.ServeHTTP(w, req)

	assert.Equal(t, w.Code, http.StatusBadRequest)
	assert.Equal(t, w.Header().Get("Access-Control-Allow-Headers"), "*")
	assert.Equal(t, strings.TrimSpace(w.Body.String()), `{"error":"query is required"}`)
	assert.Equal(t, ag.calls, 0)
}

func TestPreflight(t *testing.T) {
	r := server.New(newAdapter(&agent{}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/query", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, w.Code, http.StatusNoContent)
	assert.Equal(t, w.Header().Get("Access-Control-Allow-Methods"), "POST,OPTIONS")
}

func TestLambdaProxy(t *testing.T) {
	ag := &agent{}
	l := server.NewLambda(newAdapter(ag))

	resp, err := l.ProxyWithContext(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodPost,
		Path:       "/query",
		Body:       `{"query":"What is the refund policy?"}`,
	})
	assert.NilError(t, err)
	assert.Equal(t, resp.StatusCode, http.StatusOK)
	assert.Equal(t, ag.calls, 1)
}
