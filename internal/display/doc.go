// Package display provides StatusDisplay implementations for the analysis controller.
//
//   - Writer prints each status as its own line, for terminals and pipes.
//   - Recorder keeps only the current status, for reports and tests.
package display
