package report

import (
	"encoding/json"
	"io"

	"github.com/nao1215/spamscan/internal/model"
)

// JSONWriter outputs reports in JSON format for tool integration.
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	// When false, output is compact (no extra whitespace).
	indent bool

	// indentPrefix is the prefix for each line in indented output.
	indentPrefix string

	// indentString is the indentation string (typically "  " or "\t").
	indentString string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed JSON output.
// The prefix is prepended to each line, and indent is used for each level.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithPrettyPrint enables pretty-printed JSON with default indentation.
func WithPrettyPrint() JSONWriterOption {
	return WithIndent("", "  ")
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the analysis report in JSON format.
func (w *JSONWriter) Write(report *model.Report) (int, error) {
	return w.writeJSON(report)
}

// WriteEvaluation outputs the evaluation in JSON format.
func (w *JSONWriter) WriteEvaluation(eval *model.Evaluation) (int, error) {
	return w.writeJSON(NewJSONEvaluation(eval))
}

// writeJSON marshals the given value to JSON and writes it to the output.
func (w *JSONWriter) writeJSON(v any) (int, error) {
	var data []byte
	var err error

	if w.indent {
		data, err = json.MarshalIndent(v, w.indentPrefix, w.indentString)
	} else {
		data, err = json.Marshal(v)
	}

	if err != nil {
		return 0, err
	}

	data = append(data, '\n')

	return w.output.Write(data)
}

// JSONEvaluation is an evaluation with its derived figures.
type JSONEvaluation struct {
	*model.Evaluation

	// Accuracy is the percentage of correct classifications.
	Accuracy float64 `json:"accuracy"`

	// Incorrect is the number of wrong or failed classifications.
	Incorrect int `json:"incorrect"`
}

// NewJSONEvaluation wraps an evaluation with its derived figures.
func NewJSONEvaluation(eval *model.Evaluation) *JSONEvaluation {
	return &JSONEvaluation{
		Evaluation: eval,
		Accuracy:   eval.Accuracy(),
		Incorrect:  eval.Incorrect(),
	}
}

// JSONReport is an analysis report wrapped with the tool version.
type JSONReport struct {
	// Version is the spamscan version that generated this report.
	Version string `json:"version"`

	// Report is the analysis report.
	Report *model.Report `json:"report"`
}

// FullJSONWriter outputs analysis reports with a version wrapper.
type FullJSONWriter struct {
	*JSONWriter

	// version is the spamscan version string.
	version string
}

// NewFullJSONWriter creates a writer for reports with version metadata.
func NewFullJSONWriter(output io.Writer, version string, opts ...JSONWriterOption) *FullJSONWriter {
	return &FullJSONWriter{
		JSONWriter: NewJSONWriter(output, opts...),
		version:    version,
	}
}

// Write outputs the analysis report wrapped with the version.
func (w *FullJSONWriter) Write(report *model.Report) (int, error) {
	return w.writeJSON(&JSONReport{Version: w.version, Report: report})
}
