package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/subinsoman/pdf/api"
	"github.com/subinsoman/pdf/config"
	"github.com/subinsoman/pdf/internal/engine"
)

func main() {
	// Define command-line flags
	var (
		help       = flag.Bool("help", false, "Show help message")
		version    = flag.Bool("version", false, "Show version information")
		port       = flag.String("port", "", "Port to run the server on (overrides config file)")
		dataDir    = flag.String("data-dir", "", "Directory to store passage data (overrides config file)")
		configPath = flag.String("config", "./retrieval.yaml", "Path to YAML config file (optional)")
	)

	flag.Parse()

	// Handle help flag
	if *help {
		fmt.Printf("PDF Knowledgebase Retrieval Engine - passage indexing and TF-IDF ranking\n\n")
		fmt.Printf("Usage: %s [options]\n\n", os.Args[0])
		fmt.Printf("Options:\n")
		flag.PrintDefaults()
		fmt.Printf("\nExamples:\n")
		fmt.Printf("  %s                            # Start server with defaults\n", os.Args[0])
		fmt.Printf("  %s --port 9000                # Start server on port 9000\n", os.Args[0])
		fmt.Printf("  %s --data-dir /tmp/kb_data    # Use custom data directory\n", os.Args[0])
		return
	}

	// Handle version flag
	if *version {
		fmt.Printf("PDF Knowledgebase Retrieval Engine v1.0.0\n")
		return
	}

	settings, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *dataDir != "" {
		settings.DataDir = *dataDir
	}
	if *port != "" {
		settings.Port = *port
	}

	// Initialize the retrieval engine
	log.Printf("Using data directory: %s", settings.DataDir)
	retrievalEngine, err := engine.NewEngine(settings)
	if err != nil {
		log.Fatalf("Failed to initialize retrieval engine: %v", err)
	}

	// Initialize Gin router
	router := gin.Default()

	// Setup API routes
	api.SetupRoutes(router, retrievalEngine)

	// Start the server
	log.Printf("Starting server on port %s...", settings.Port)
	if err := router.Run(":" + settings.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
