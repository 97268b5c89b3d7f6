package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	internalErrors "github.com/subinsoman/pdf/internal/errors"
)

// IndexDocumentRequest defines the body for indexing a document. Exactly
// one of Passages or Text must be provided: Passages indexes pre-segmented
// content as-is, Text is segmented with the engine's configured defaults
// first.
type IndexDocumentRequest struct {
	Passages []string `json:"passages,omitempty"`
	Text     string   `json:"text,omitempty"`
}

// SegmentRequest defines the body for the standalone segmentation route.
// MaxChars and Overlap fall back to the engine's configured defaults when
// omitted.
type SegmentRequest struct {
	Text     string `json:"text"`
	MaxChars int    `json:"max_chars,omitempty"`
	Overlap  int    `json:"overlap,omitempty"`
}

// IndexDocumentHandler handles the request to index or re-index a document.
// Request Body: IndexDocumentRequest
func (api *API) IndexDocumentHandler(c *gin.Context) {
	documentID := c.Param("documentId")
	if result := ValidateDocumentID(documentID); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	var req IndexDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendInvalidJSONError(c, err)
		return
	}

	if req.Text != "" && req.Passages != nil {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidRequest,
			"Provide either 'text' or 'passages', not both")
		return
	}

	var err error
	if req.Text != "" {
		err = api.engine.IndexText(documentID, req.Text)
	} else {
		err = api.engine.IndexDocument(documentID, req.Passages)
	}
	if err != nil {
		switch {
		case errors.Is(err, internalErrors.ErrInvalidInput):
			SendError(c, http.StatusBadRequest, ErrorCodeInvalidRequest, err.Error())
		case errors.Is(err, internalErrors.ErrInvalidSegmentation):
			SendSegmentationError(c, err)
		case errors.Is(err, internalErrors.ErrPersistenceFailed):
			SendError(c, http.StatusInternalServerError, ErrorCodePersistenceFailed, err.Error())
		default:
			SendIndexingError(c, documentID, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Document '" + documentID + "' indexed successfully"})
}

// DeleteDocumentHandler handles the request to delete a document's
// persisted passages and cached index entry.
func (api *API) DeleteDocumentHandler(c *gin.Context) {
	documentID := c.Param("documentId")
	if result := ValidateDocumentID(documentID); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	if err := api.engine.DeleteDocument(documentID); err != nil {
		if errors.Is(err, internalErrors.ErrDocumentNotFound) {
			SendDocumentNotFoundError(c, documentID)
			return
		}
		SendInternalError(c, "delete document", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Document '" + documentID + "' deleted successfully"})
}

// GetDocumentHandler returns a document's persisted passages.
func (api *API) GetDocumentHandler(c *gin.Context) {
	documentID := c.Param("documentId")
	if result := ValidateDocumentID(documentID); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	doc, err := api.engine.GetDocument(documentID)
	if err != nil {
		if errors.Is(err, internalErrors.ErrDocumentNotFound) {
			SendDocumentNotFoundError(c, documentID)
			return
		}
		SendInternalError(c, "get document", err)
		return
	}

	c.JSON(http.StatusOK, doc)
}

// ListDocumentsHandler returns the identifiers of all indexed documents.
func (api *API) ListDocumentsHandler(c *gin.Context) {
	documents := api.engine.ListDocuments()
	c.JSON(http.StatusOK, gin.H{
		"documents": documents,
		"total":     len(documents),
	})
}

// GetDocumentStatsHandler returns passage statistics for a document.
func (api *API) GetDocumentStatsHandler(c *gin.Context) {
	documentID := c.Param("documentId")
	if result := ValidateDocumentID(documentID); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	stats, err := api.engine.DocumentStats(documentID)
	if err != nil {
		if errors.Is(err, internalErrors.ErrDocumentNotFound) {
			SendDocumentNotFoundError(c, documentID)
			return
		}
		SendInternalError(c, "get document stats", err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// SegmentHandler splits normalized text into passages without indexing it.
// Request Body: SegmentRequest
func (api *API) SegmentHandler(c *gin.Context) {
	var req SegmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendInvalidJSONError(c, err)
		return
	}

	passages, err := api.engine.Segment(req.Text, req.MaxChars, req.Overlap)
	if err != nil {
		if errors.Is(err, internalErrors.ErrInvalidSegmentation) {
			SendSegmentationError(c, err)
			return
		}
		SendInternalError(c, "segment text", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"passages": passages,
		"total":    len(passages),
	})
}
