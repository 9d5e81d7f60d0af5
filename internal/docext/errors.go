package docext

import "fmt"

// InputTooLargeError is returned when a document exceeds the configured byte
// ceiling before any parsing is attempted.
type InputTooLargeError struct {
	Size  int
	Limit int
}

func (e *InputTooLargeError) Error() string {
	return fmt.Sprintf("document of %d bytes exceeds the %d byte limit", e.Size, e.Limit)
}

// UnsupportedFormatError is returned for formats the extractor cannot handle.
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported document format: %s", e.Format)
}

// ExtractionError wraps a parser failure for a supported format.
type ExtractionError struct {
	Format string
	Cause  error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("failed to extract text from %s document: %v", e.Format, e.Cause)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
