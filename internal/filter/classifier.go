package filter

import (
	"context"

	"github.com/nao1215/spamscan/internal/model"
)

// Verdict converts the decision to the wire verdict.
func (d Decision) Verdict() *model.Verdict {
	return &model.Verdict{IsSpam: d.IsSpam, Reason: d.Reason}
}

// Classifier runs a Filter in process in place of the remote service.
type Classifier struct {
	filter *Filter
}

// NewClassifier returns a Classifier backed by f.
func NewClassifier(f *Filter) *Classifier {
	return &Classifier{filter: f}
}

// Classify processes the request content with the filter.
func (c *Classifier) Classify(ctx context.Context, req model.AnalysisRequest) (*model.Verdict, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return c.filter.Process(req.Content).Verdict(), nil
}
