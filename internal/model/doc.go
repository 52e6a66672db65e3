// Package model defines the data structures shared by the spamscan packages.
//
// This package contains the following main types:
//   - AnalysisRequest: One submission to the classification service
//   - Verdict: The classification returned by the service
//   - State: The phase of the analysis controller
//   - Result: The outcome of the network step (verdict or failure)
//   - Outcome: What a single trigger displayed
//   - Report and Evaluation: Serializable summaries for report writers
package model
