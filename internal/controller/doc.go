// Package controller implements the analysis controller, the state machine
// that drives one request/response cycle from a user trigger to a final
// status message.
//
// The controller reads text from an InputSource, validates it, shows a
// loading message on a StatusDisplay, submits the text to a Classifier and
// finally renders the verdict or a generic error message. Failures never
// escape HandleTrigger; their detail goes to the logger only.
//
// # Single flight
//
// At most one request is in flight per Controller. A trigger that arrives
// while another request is outstanding is ignored: it makes no network call
// and leaves the display untouched.
package controller
