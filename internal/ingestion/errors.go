// Package ingestion loads external resume payloads and migrates them into the canonical record.
package ingestion

import "fmt"

// InvalidDocumentError represents an uploaded or fetched payload that is not a JSON object
type InvalidDocumentError struct {
	Message string
	Cause   error
}

func (e *InvalidDocumentError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid document: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid document: %s", e.Message)
}

func (e *InvalidDocumentError) Unwrap() error {
	return e.Cause
}
