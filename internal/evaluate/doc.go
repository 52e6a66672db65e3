// Package evaluate measures a classifier against a labelled dataset.
//
// A dataset is a JSON document of the form:
//
//	{"emails": [{"id": 1, "content": "...", "expected_classification": "spam"}]}
//
// Run classifies every email and reports the accuracy of the classifier.
package evaluate
