package kbquery

import "errors"

// ModelID is the Bedrock inference profile used for generation.
const ModelID = "us.anthropic.claude-sonnet-4-5-20250929-v1:0"

const (
	// NumberOfResults is the vector search top-k passed to the knowledge base.
	NumberOfResults = 5
	// Temperature is the sampling temperature for the generated answer.
	Temperature = 0.2
	// MaxCitations caps the citations returned to the caller.
	MaxCitations = 5
)

var (
	ErrQueryRequired          = errors.New("query is required")
	ErrMissingKnowledgeBaseID = errors.New("KNOWLEDGE_BASE_ID is not set")
)

// Headers are sent with every reply, errors included.
var Headers = map[string]string{
	"Access-Control-Allow-Origin":  "*",
	"Access-Control-Allow-Headers": "*",
	"Access-Control-Allow-Methods": "POST,OPTIONS",
	"Content-Type":                 "application/json",
}

type QueryRequest struct {
	Query string `json:"query"`
}

type Citation struct {
	Content  string         `json:"content" yaml:"content"`
	Location map[string]any `json:"location" yaml:"location"`
}

type Response struct {
	Answer    string     `json:"answer" yaml:"answer"`
	Citations []Citation `json:"citations" yaml:"citations"`
}

type ErrorResponse struct {
	Error string `json:"error" yaml:"error"`
}
