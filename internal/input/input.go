package input

import (
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

// DefaultMaxSize is the default limit for text read from files or stdin.
const DefaultMaxSize = 1 << 20 // 1MiB

var (
	// ErrInputTooLarge is returned when the input exceeds the read limit.
	ErrInputTooLarge = errors.New("input exceeds size limit")

	// ErrInvalidUTF8 is returned when the input is not valid UTF-8 text.
	// The JSON request body could not carry it unchanged.
	ErrInvalidUTF8 = errors.New("input is not valid UTF-8")
)

// Static is an InputSource that always returns the same text.
type Static string

// Text returns the stored text.
func (s Static) Text() string {
	return string(s)
}

// New returns text as an InputSource after checking it is valid UTF-8.
func New(text string) (Static, error) {
	if !utf8.ValidString(text) {
		return "", ErrInvalidUTF8
	}
	return Static(text), nil
}

// ReadAll reads r completely and returns it as an InputSource.
// Reading stops with ErrInputTooLarge once more than limit bytes are seen,
// and text that is not valid UTF-8 is rejected with ErrInvalidUTF8.
// A limit of zero or less uses DefaultMaxSize.
func ReadAll(r io.Reader, limit int64) (Static, error) {
	if limit <= 0 {
		limit = DefaultMaxSize
	}

	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	if int64(len(data)) > limit {
		return "", fmt.Errorf("%w: more than %d bytes", ErrInputTooLarge, limit)
	}

	return New(string(data))
}
