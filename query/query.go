package query

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"kbquery"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagentruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagentruntime/types"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

var ErrNoAccount = errors.New("caller identity has no account")

// Adapter answers questions from a Bedrock knowledge base.
type Adapter struct {
	cfg     kbquery.Config
	clients func() (*Clients, error)
}

type Option func(*Adapter)

// WithClients replaces the lazily created AWS clients.
func WithClients(agent RetrieveAndGenerateAPI, identity CallerIdentityAPI) Option {
	return func(a *Adapter) {
		c := &Clients{Agent: agent, Identity: identity}
		a.clients = func() (*Clients, error) { return c, nil }
	}
}

func New(cfg kbquery.Config, opts ...Option) *Adapter {
	a := &Adapter{cfg: cfg}
	a.clients = sync.OnceValues(func() (*Clients, error) {
		return NewClients(context.Background(), cfg.Region)
	})
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Query resolves the account, calls RetrieveAndGenerate once and shapes the result.
func (a *Adapter) Query(ctx context.Context, question string) (*kbquery.Response, error) {
	log := kbquery.Logger

	clients, err := a.clients()
	if err != nil {
		log.Error("Loading AWS configuration failed", "error", err)
		return nil, err
	}

	account, err := resolveAccount(ctx, clients.Identity)
	if err != nil {
		log.Error("Caller identity failed", "error", err)
		return nil, err
	}

	knowledgeBaseID, err := a.cfg.KnowledgeBase()
	if err != nil {
		log.Error("Configuration incomplete", "error", err)
		return nil, err
	}

	modelArn := ModelArn(a.cfg.Region, account)
	log.Debug("Retrieve and generate", "knowledgeBase", knowledgeBaseID, "model", modelArn)
	out, err := clients.Agent.RetrieveAndGenerate(ctx, BuildInput(question, knowledgeBaseID, modelArn))
	if err != nil {
		log.Error("Retrieve and generate failed", "error", err)
		return nil, err
	}

	response, err := ShapeResponse(out)
	if err != nil {
		log.Error("Unexpected response", "error", err)
		return nil, err
	}
	log.Info("Answer received", "citations", len(response.Citations))
	return response, nil
}

func resolveAccount(ctx context.Context, identity CallerIdentityAPI) (string, error) {
	out, err := identity.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return "", err
	}
	account := aws.ToString(out.Account)
	if account == "" {
		return "", ErrNoAccount
	}
	return account, nil
}

// ModelArn addresses the inference profile in the caller's account.
func ModelArn(region, account string) string {
	return fmt.Sprintf("arn:aws:bedrock:%s:%s:inference-profile/%s", region, account, kbquery.ModelID)
}

// BuildInput returns a new request on every call.
func BuildInput(question, knowledgeBaseID, modelArn string) *bedrockagentruntime.RetrieveAndGenerateInput {
	return &bedrockagentruntime.RetrieveAndGenerateInput{
		Input: &types.RetrieveAndGenerateInput{
			Text: aws.String(question),
		},
		RetrieveAndGenerateConfiguration: &types.RetrieveAndGenerateConfiguration{
			Type: types.RetrieveAndGenerateTypeKnowledgeBase,
			KnowledgeBaseConfiguration: &types.KnowledgeBaseRetrieveAndGenerateConfiguration{
				KnowledgeBaseId: aws.String(knowledgeBaseID),
				ModelArn:        aws.String(modelArn),
				RetrievalConfiguration: &types.KnowledgeBaseRetrievalConfiguration{
					VectorSearchConfiguration: &types.KnowledgeBaseVectorSearchConfiguration{
						NumberOfResults: aws.Int32(kbquery.NumberOfResults),
					},
				},
				GenerationConfiguration: &types.GenerationConfiguration{
					InferenceConfig: &types.InferenceConfig{
						TextInferenceConfig: &types.TextInferenceConfig{
							Temperature: aws.Float32(kbquery.Temperature),
						},
					},
				},
			},
		},
	}
}
