package query

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagentruntime"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// RetrieveAndGenerateAPI is the part of the Bedrock agent runtime client the adapter uses.
type RetrieveAndGenerateAPI interface {
	RetrieveAndGenerate(ctx context.Context, params *bedrockagentruntime.RetrieveAndGenerateInput, optFns ...func(*bedrockagentruntime.Options)) (*bedrockagentruntime.RetrieveAndGenerateOutput, error)
}

// CallerIdentityAPI resolves the account the function runs in.
type CallerIdentityAPI interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

// Clients is shared by all invocations and never modified after construction.
type Clients struct {
	Agent    RetrieveAndGenerateAPI
	Identity CallerIdentityAPI
}

func NewClients(ctx context.Context, region string) (*Clients, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return &Clients{
		Agent:    bedrockagentruntime.NewFromConfig(cfg),
		Identity: sts.NewFromConfig(cfg),
	}, nil
}
