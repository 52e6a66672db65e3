// Package filter provides a rule-based spam classifier.
//
// The filter walks a small finite-state machine over four pattern
// categories (money, urgency, offers and suspicious links). Each category
// whose patterns appear in the case-folded content contributes one reason.
// Content matching at least Threshold categories is spam.
//
// A Filter holds no per-call state and is safe for concurrent use.
package filter
