package controller

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/nao1215/spamscan/internal/model"
)

// InputSource provides the current raw text to analyze.
type InputSource interface {
	// Text returns the raw text content. It may be empty.
	Text() string
}

// StatusDisplay shows a single status message to the user.
type StatusDisplay interface {
	// SetText replaces the whole visible status content.
	SetText(message string)
}

// Classifier submits an analysis request to the classification service.
type Classifier interface {
	// Classify returns the verdict for the request, or an error when the
	// request could not be transmitted or the response could not be parsed.
	Classify(ctx context.Context, req model.AnalysisRequest) (*model.Verdict, error)
}

// Controller drives the analysis lifecycle for one input surface.
type Controller struct {
	input      InputSource
	display    StatusDisplay
	classifier Classifier

	logger  *slog.Logger
	timeout time.Duration
	now     func() time.Time

	// busy guards against overlapping triggers.
	busy atomic.Bool

	mu    sync.RWMutex
	state model.State
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger that receives diagnostic records.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// WithTimeout bounds each classification call.
// A zero or negative timeout leaves calls unbounded.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Controller) {
		c.timeout = timeout
	}
}

// WithClock sets the time source used for request timestamps and elapsed time.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		if now != nil {
			c.now = now
		}
	}
}

// New creates a Controller for the given collaborators.
func New(input InputSource, display StatusDisplay, classifier Classifier, opts ...Option) *Controller {
	c := &Controller{
		input:      input,
		display:    display,
		classifier: classifier,
		now:        time.Now,
		state:      model.StateIdle,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.logger == nil {
		c.logger = slog.Default()
	}

	return c
}

// State returns the current state of the controller.
func (c *Controller) State() model.State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Busy reports whether a trigger is currently being handled.
func (c *Controller) Busy() bool {
	return c.busy.Load()
}

// HandleTrigger runs one analysis cycle and returns what it displayed.
// It may be called at any time; calls made while another call is in
// progress return an OutcomeIgnored outcome without side effects.
func (c *Controller) HandleTrigger(ctx context.Context) model.Outcome {
	if !c.busy.CompareAndSwap(false, true) {
		c.logger.Debug("trigger ignored, analysis already in progress")
		return model.Outcome{Kind: model.OutcomeIgnored}
	}
	defer c.busy.Store(false)
	defer c.transition(model.StateIdle)

	c.transition(model.StateValidating)

	raw := c.input.Text()
	if strings.TrimSpace(raw) == "" {
		c.display.SetText(model.MessagePrompt)
		return model.Outcome{Kind: model.OutcomePrompted, Message: model.MessagePrompt}
	}

	c.display.SetText(model.MessageAnalyzing)
	c.transition(model.StateAwaitingResponse)

	start := c.now()
	req := model.NewAnalysisRequest(raw, start)
	result := c.submit(ctx, req)
	elapsed := c.now().Sub(start)

	c.transition(model.StateDisplaying)

	outcome := model.NewOutcome(req.ID, result, elapsed)
	if !result.OK() {
		c.logger.Error("analysis failed",
			"request_id", req.ID,
			"elapsed", elapsed,
			"error", result.Err,
		)
	} else {
		c.logger.Debug("analysis completed",
			"request_id", req.ID,
			"outcome", outcome.Kind,
			"elapsed", elapsed,
		)
	}

	c.display.SetText(outcome.Message)
	return outcome
}

// submit performs the network step and folds every failure into a Result.
func (c *Controller) submit(ctx context.Context, req model.AnalysisRequest) (result model.Result) {
	defer func() {
		if r := recover(); r != nil {
			result = model.Failed(fmt.Errorf("%w: %v", ErrClassifierPanic, r))
		}
	}()

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	verdict, err := c.classifier.Classify(ctx, req)
	if err != nil {
		return model.Failed(err)
	}
	if verdict == nil {
		return model.Failed(ErrNoVerdict)
	}
	return model.Succeeded(*verdict)
}

// transition records a state change.
func (c *Controller) transition(next model.State) {
	c.mu.Lock()
	prev := c.state
	c.state = next
	c.mu.Unlock()

	if prev != next {
		c.logger.Debug("state transition", "from", prev, "to", next)
	}
}
