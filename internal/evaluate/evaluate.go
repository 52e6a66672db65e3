package evaluate

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nao1215/spamscan/internal/model"
)

// Classifier classifies one request.
type Classifier interface {
	Classify(ctx context.Context, req model.AnalysisRequest) (*model.Verdict, error)
}

type options struct {
	name        string
	concurrency int
	logger      *slog.Logger
	now         func() time.Time
}

// Option configures Run.
type Option func(*options)

// WithName sets the classifier name recorded in the evaluation.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithConcurrency sets how many emails are classified at once.
// The default of 1 classifies emails sequentially.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.concurrency = n
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Run classifies every email and returns the evaluation.
// Results keep the dataset order. A failed classification counts as
// incorrect and its error is recorded in the result.
func Run(ctx context.Context, c Classifier, emails []model.Email, opts ...Option) (*model.Evaluation, error) {
	o := options{concurrency: 1, now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	if len(emails) == 0 {
		return nil, ErrEmptyDataset
	}

	o.logger.Debug("starting evaluation", "emails", len(emails), "concurrency", o.concurrency)

	results := make([]model.EvaluationResult, len(emails))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)

	for i, email := range emails {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = classify(ctx, c, email, o)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	eval := &model.Evaluation{Classifier: o.name}
	for _, r := range results {
		eval.Add(r)
	}

	o.logger.Debug("evaluation complete",
		"correct", eval.Correct,
		"total", eval.Total,
		"accuracy", eval.Accuracy(),
	)
	return eval, nil
}

func classify(ctx context.Context, c Classifier, email model.Email, o options) model.EvaluationResult {
	result := model.EvaluationResult{Email: email}

	verdict, err := c.Classify(ctx, model.NewAnalysisRequest(email.Content, o.now()))
	if err == nil && verdict == nil {
		err = errNoVerdict
	}
	if err != nil {
		o.logger.Warn("classification failed", "email_id", string(email.ID), "error", err)
		result.Error = err.Error()
		return result
	}

	result.Actual = verdict.Classification()
	result.Reason = verdict.Reason
	result.Correct = verdict.IsSpam == email.ExpectsSpam()
	return result
}
