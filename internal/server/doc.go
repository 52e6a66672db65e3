// Package server implements the HTTP classification service.
//
// The service exposes a single classification endpoint:
//
//	POST /analyze  {"content": "..."}  ->  {"is_spam": bool, "reason": "..."}
//
// plus GET /healthz for liveness checks. Cross-origin requests are allowed
// so browser extensions and web pages can call the service directly.
package server
