package model

// Status messages written to the status display.
const (
	// MessagePrompt is shown when the input is empty or whitespace only.
	MessagePrompt = "Please enter email content."

	// MessageAnalyzing is shown while a request is in flight.
	MessageAnalyzing = "Analyzing..."

	// MessageLegitimate is shown for a non-spam verdict.
	MessageLegitimate = "Normal: Email appears legitimate."

	// MessageError is shown for every transport or parse failure.
	MessageError = "Error analyzing email."

	// spamPrefix precedes the reason of a spam verdict.
	spamPrefix = "Spam: "
)

// SpamMessage returns the status message for a spam verdict.
func SpamMessage(reason string) string {
	return spamPrefix + reason
}
