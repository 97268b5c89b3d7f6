package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// ErrDocumentNotFound is returned when a document has no persisted passages
	ErrDocumentNotFound = errors.New("document not found")

	// ErrInvalidSegmentation is returned when segmenter parameters are invalid
	ErrInvalidSegmentation = errors.New("invalid segmentation parameters")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrPersistenceFailed is returned when a durable write did not succeed
	ErrPersistenceFailed = errors.New("persistence failed")
)

// DocumentNotFoundError represents a document not found error with context
type DocumentNotFoundError struct {
	DocumentID string
}

func (e *DocumentNotFoundError) Error() string {
	return fmt.Sprintf("document with ID '%s' not found", e.DocumentID)
}

func (e *DocumentNotFoundError) Is(target error) bool {
	return target == ErrDocumentNotFound
}

// NewDocumentNotFoundError creates a new DocumentNotFoundError
func NewDocumentNotFoundError(documentID string) *DocumentNotFoundError {
	return &DocumentNotFoundError{DocumentID: documentID}
}

// SegmentationError represents invalid segmenter parameters with context
type SegmentationError struct {
	MaxChars int
	Overlap  int
	Message  string
}

func (e *SegmentationError) Error() string {
	return fmt.Sprintf("invalid segmentation parameters (max_chars=%d, overlap=%d): %s", e.MaxChars, e.Overlap, e.Message)
}

func (e *SegmentationError) Is(target error) bool {
	return target == ErrInvalidSegmentation
}

// NewSegmentationError creates a new SegmentationError
func NewSegmentationError(maxChars, overlap int, message string) *SegmentationError {
	return &SegmentationError{MaxChars: maxChars, Overlap: overlap, Message: message}
}

// ValidationError represents an input validation error with context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// PersistenceError represents a failed durable write with context
type PersistenceError struct {
	DocumentID string
	Err        error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to persist passages for document '%s': %v", e.DocumentID, e.Err)
}

func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistenceFailed
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// NewPersistenceError creates a new PersistenceError
func NewPersistenceError(documentID string, err error) *PersistenceError {
	return &PersistenceError{DocumentID: documentID, Err: err}
}
