package filter

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// category is one pattern set with the state and reason it produces.
type category struct {
	state    State
	reason   string
	patterns []string
}

// Decision is the result of processing one piece of content.
type Decision struct {
	// IsSpam reports whether the content is spam.
	IsSpam bool
	// Reason explains the decision.
	Reason string
	// State is the final state of the automaton.
	State State
	// Matches lists the states of the matched categories in order.
	Matches []State
}

// IsSpamState reports whether the automaton ended in the spam state.
func (d Decision) IsSpamState() bool {
	return d.State == StateSpam
}

// Filter classifies content with a fixed set of rules.
type Filter struct {
	categories []category
	threshold  int
}

// New creates a Filter from rules.
// Patterns are case-folded and empty patterns are dropped.
func New(rules Rules) (*Filter, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}

	return &Filter{
		categories: []category{
			{state: StateMoney, reason: reasonMoney, patterns: fold(rules.Money)},
			{state: StateUrgent, reason: reasonUrgent, patterns: fold(rules.Urgent)},
			{state: StateOffer, reason: reasonOffer, patterns: fold(rules.Offer)},
			{state: StateSuspiciousLink, reason: reasonLinks, patterns: fold(rules.Links)},
		},
		threshold: rules.Threshold,
	}, nil
}

// Default creates a Filter with DefaultRules.
func Default() *Filter {
	f, err := New(DefaultRules())
	if err != nil {
		panic(err) // DefaultRules is always valid
	}
	return f
}

// Process classifies content.
func (f *Filter) Process(content string) Decision {
	text := lower(content)

	var matches []State
	var reasons []string
	for _, c := range f.categories {
		if !containsAny(text, c.patterns) {
			continue
		}
		matches = append(matches, c.state)
		reasons = append(reasons, c.reason)
	}

	if len(matches) >= f.threshold {
		return Decision{
			IsSpam:  true,
			Reason:  strings.Join(reasons, reasonSeparator),
			State:   StateSpam,
			Matches: matches,
		}
	}

	return Decision{
		Reason:  ReasonLegitimate,
		State:   StateNormal,
		Matches: matches,
	}
}

// Threshold returns the number of categories required for spam.
func (f *Filter) Threshold() int {
	return f.threshold
}

func containsAny(text string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(text, p) {
			return true
		}
	}
	return false
}

// lower case-folds s. A Caser is not safe for concurrent use, so one is
// created per call.
func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

func fold(patterns []string) []string {
	out := make([]string, 0, len(patterns))
	for _, p := range patterns {
		if p == "" {
			continue
		}
		out = append(out, lower(p))
	}
	return out
}
