// Package classifier provides the HTTP client for the classification service.
//
// The wire contract is a JSON POST:
//
//	POST /analyze
//	Content-Type: application/json
//
//	{"content": "<original text>"}
//
// answered with
//
//	{"is_spam": true, "reason": "Contains suspicious links"}
//
// Every failure mode (unreachable service, non-2xx status, a body that is not
// JSON, missing fields) is reported as an error that wraps one of the
// sentinel errors of this package, so callers can use errors.Is.
package classifier
