// Package api provides the HTTP host surface over the retrieval engine.
package api

import (
	"strings"
)

// ValidationError represents a validation error with field context
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult holds the result of validation operations
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// AddError adds a validation error to the result
func (vr *ValidationResult) AddError(field, message string) {
	vr.Valid = false
	vr.Errors = append(vr.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors
func (vr *ValidationResult) HasErrors() bool {
	return len(vr.Errors) > 0
}

// ValidateDocumentID validates a document ID path parameter
func ValidateDocumentID(documentID string) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if documentID == "" {
		result.AddError("documentId", "Document ID is required")
		return result
	}
	if strings.TrimSpace(documentID) != documentID {
		result.AddError("documentId", "Document ID cannot have leading or trailing whitespace")
		return result
	}
	if strings.ContainsAny(documentID, `/\`) || documentID == "." || documentID == ".." {
		result.AddError("documentId", "Document ID cannot contain path separators")
		return result
	}

	return result
}
