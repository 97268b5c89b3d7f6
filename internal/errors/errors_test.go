package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestDocumentNotFoundError(t *testing.T) {
	err := NewDocumentNotFoundError("doc1")

	if !errors.Is(err, ErrDocumentNotFound) {
		t.Error("expected DocumentNotFoundError to match ErrDocumentNotFound")
	}
	if err.Error() != "document with ID 'doc1' not found" {
		t.Errorf("unexpected message: %s", err.Error())
	}
}

func TestSegmentationError(t *testing.T) {
	err := NewSegmentationError(10, 20, "overlap must be smaller than max_chars")

	if !errors.Is(err, ErrInvalidSegmentation) {
		t.Error("expected SegmentationError to match ErrInvalidSegmentation")
	}
	if errors.Is(err, ErrDocumentNotFound) {
		t.Error("SegmentationError should not match ErrDocumentNotFound")
	}
}

func TestValidationError(t *testing.T) {
	withField := NewValidationError("document_id", "cannot be empty")
	if !errors.Is(withField, ErrInvalidInput) {
		t.Error("expected ValidationError to match ErrInvalidInput")
	}
	if withField.Error() != "validation error for field 'document_id': cannot be empty" {
		t.Errorf("unexpected message: %s", withField.Error())
	}

	withoutField := NewValidationError("", "something is off")
	if withoutField.Error() != "validation error: something is off" {
		t.Errorf("unexpected message: %s", withoutField.Error())
	}
}

func TestPersistenceErrorUnwraps(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := NewPersistenceError("doc1", cause)

	if !errors.Is(err, ErrPersistenceFailed) {
		t.Error("expected PersistenceError to match ErrPersistenceFailed")
	}
	if !errors.Is(err, cause) {
		t.Error("expected PersistenceError to unwrap to its cause")
	}
}
