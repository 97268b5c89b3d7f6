package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	internalErrors "github.com/subinsoman/pdf/internal/errors"
)

// QueryRequest defines the structure for passage queries.
type QueryRequest struct {
	Question string `json:"question"`
	TopK     int    `json:"top_k,omitempty"` // Optional: defaults to the engine's configured top_k
}

// QueryHandler ranks a document's passages against a free-text question.
// Request Body: QueryRequest
func (api *API) QueryHandler(c *gin.Context) {
	documentID := c.Param("documentId")
	if result := ValidateDocumentID(documentID); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	var req QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendInvalidJSONError(c, err)
		return
	}

	result, err := api.engine.Query(documentID, req.Question, req.TopK)
	if err != nil {
		if errors.Is(err, internalErrors.ErrInvalidInput) {
			SendError(c, http.StatusBadRequest, ErrorCodeInvalidRequest, err.Error())
			return
		}
		SendQueryError(c, documentID, err)
		return
	}

	log.Printf("Query %s on document '%s' returned %d hits in %dms.",
		result.QueryID, documentID, result.Total, result.Took)
	c.JSON(http.StatusOK, result)
}
