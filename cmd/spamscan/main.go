// Package main provides the entry point for the spamscan CLI.
//
// spamscan sends email text to a spam classification service and shows the
// verdict. It can also run the rule-based classification service locally
// and measure a classifier against a labelled dataset.
//
// Usage:
//
//	spamscan analyze "Act now to claim your prize"
//	spamscan serve
//	spamscan evaluate emails.json
//
// See --help for all available options.
package main

// main is the entry point for spamscan.
func main() {
	Execute()
}
