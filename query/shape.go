package query

import (
	"errors"

	"kbquery"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagentruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagentruntime/types"
)

var ErrNoOutput = errors.New("retrieve and generate returned no output text")

func ShapeResponse(out *bedrockagentruntime.RetrieveAndGenerateOutput) (*kbquery.Response, error) {
	if out == nil || out.Output == nil || out.Output.Text == nil {
		return nil, ErrNoOutput
	}
	return &kbquery.Response{
		Answer:    *out.Output.Text,
		Citations: ShapeCitations(out.Citations),
	}, nil
}

// ShapeCitations keeps the first reference of each citation, skipping
// citations without references, up to kbquery.MaxCitations entries.
func ShapeCitations(citations []types.Citation) []kbquery.Citation {
	shaped := make([]kbquery.Citation, 0, kbquery.MaxCitations)
	for _, c := range citations {
		if len(c.RetrievedReferences) == 0 {
			continue
		}
		ref := c.RetrievedReferences[0]
		content := ""
		if ref.Content != nil {
			content = aws.ToString(ref.Content.Text)
		}
		shaped = append(shaped, kbquery.Citation{
			Content:  content,
			Location: LocationMap(ref.Location),
		})
		if len(shaped) >= kbquery.MaxCitations {
			break
		}
	}
	return shaped
}

// LocationMap renders a location with the service's JSON field names.
// A nil location becomes an empty object.
func LocationMap(loc *types.RetrievalResultLocation) map[string]any {
	m := map[string]any{}
	if loc == nil {
		return m
	}
	if loc.Type != "" {
		m["type"] = string(loc.Type)
	}
	if l := loc.S3Location; l != nil {
		m["s3Location"] = field("uri", l.Uri)
	}
	if l := loc.WebLocation; l != nil {
		m["webLocation"] = field("url", l.Url)
	}
	if l := loc.ConfluenceLocation; l != nil {
		m["confluenceLocation"] = field("url", l.Url)
	}
	if l := loc.SalesforceLocation; l != nil {
		m["salesforceLocation"] = field("url", l.Url)
	}
	if l := loc.SharePointLocation; l != nil {
		m["sharePointLocation"] = field("url", l.Url)
	}
	if l := loc.CustomDocumentLocation; l != nil {
		m["customDocumentLocation"] = field("id", l.Id)
	}
	if l := loc.KendraDocumentLocation; l != nil {
		m["kendraDocumentLocation"] = field("uri", l.Uri)
	}
	if l := loc.SqlLocation; l != nil {
		m["sqlLocation"] = field("query", l.Query)
	}
	return m
}

func field(key string, value *string) map[string]any {
	m := map[string]any{}
	if value != nil {
		m[key] = *value
	}
	return m
}
