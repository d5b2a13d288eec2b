package query_test

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagentruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagentruntime/types"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

type fakeIdentity struct {
	account string
	err     error
	calls   int
}

func (f *fakeIdentity) GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &sts.GetCallerIdentityOutput{Account: aws.String(f.account)}, nil
}

type fakeAgent struct {
	out   *bedrockagentruntime.RetrieveAndGenerateOutput
	err   error
	calls int
	input *bedrockagentruntime.RetrieveAndGenerateInput
}

func (f *fakeAgent) RetrieveAndGenerate(ctx context.Context, params *bedrockagentruntime.RetrieveAndGenerateInput, optFns ...func(*bedrockagentruntime.Options)) (*bedrockagentruntime.RetrieveAndGenerateOutput, error) {
	f.calls++
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return f.out, nil
}

func reference(text, uri string) types.RetrievedReference {
	return types.RetrievedReference{
		Content: &types.RetrievalResultContent{Text: aws.String(text)},
		Location: &types.RetrievalResultLocation{
			Type:       types.RetrievalResultLocationTypeS3,
			S3Location: &types.RetrievalResultS3Location{Uri: aws.String(uri)},
		},
	}
}

func citation(refs ...types.RetrievedReference) types.Citation {
	return types.Citation{RetrievedReferences: refs}
}

func output(text string, citations ...types.Citation) *bedrockagentruntime.RetrieveAndGenerateOutput {
	return &bedrockagentruntime.RetrieveAndGenerateOutput{
		Output:    &types.RetrieveAndGenerateOutput{Text: aws.String(text)},
		Citations: citations,
	}
}
