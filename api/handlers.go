package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/subinsoman/pdf/services"
)

const maxRequestBodySize = 32 << 20 // 32 MB, enough for a large PDF's passages

// API holds dependencies for API handlers, primarily the retrieval engine.
type API struct {
	engine services.EngineAccessor
}

// NewAPI creates a new API handler structure.
func NewAPI(engine services.EngineAccessor) *API {
	return &API{engine: engine}
}

// SetupRoutes defines all the API routes for the retrieval engine.
func SetupRoutes(router *gin.Engine, engine services.EngineAccessor) {
	apiHandler := NewAPI(engine)

	router.Use(RequestIDMiddleware())
	router.Use(RequestSizeLimitMiddleware(maxRequestBodySize))

	// Health check route
	router.GET("/health", apiHandler.HealthCheckHandler)

	// Segmentation utility route
	router.POST("/segment", apiHandler.SegmentHandler)

	// Document management routes
	docRoutes := router.Group("/documents")
	{
		docRoutes.GET("", apiHandler.ListDocumentsHandler)                      // List indexed documents
		docRoutes.PUT("/:documentId", apiHandler.IndexDocumentHandler)          // Index/re-index a document
		docRoutes.GET("/:documentId", apiHandler.GetDocumentHandler)            // Get a document's passages
		docRoutes.DELETE("/:documentId", apiHandler.DeleteDocumentHandler)      // Delete a document
		docRoutes.GET("/:documentId/stats", apiHandler.GetDocumentStatsHandler) // Get passage stats
		docRoutes.POST("/:documentId/_query", apiHandler.QueryHandler)          // Rank passages against a question
	}
}

// HealthCheckHandler reports service liveness.
func (api *API) HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
